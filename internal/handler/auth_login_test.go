package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cradoe/gopass"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sholaoke/churchbase/internal/mocks"
	"github.com/sholaoke/churchbase/internal/models"
)

func loginRequest(t *testing.T, email, password string) *http.Request {
	t.Helper()

	requestBody, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(requestBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleAuthLogin_ValidCredentials(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	h := newTestHandler(&mocks.MockDatabase{UserRepo: userRepo})

	hashed, err := gopass.Hash("correct_Password1!")
	require.NoError(t, err)

	testUser := &models.User{
		ID:             123,
		Email:          "admin@example.org",
		HashedPassword: hashed,
	}
	userRepo.On("GetByEmail", mock.Anything, "admin@example.org").Return(testUser, true, nil)

	rr := httptest.NewRecorder()
	h.HandleAuthLogin(rr, loginRequest(t, "admin@example.org", "correct_Password1!"))

	require.Equal(t, http.StatusOK, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]any)
	require.NotEmpty(t, data["authToken"])
	require.NotEmpty(t, data["tokenExpiry"])
}

func TestHandleAuthLogin_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	h := newTestHandler(&mocks.MockDatabase{UserRepo: userRepo})

	hashed, err := gopass.Hash("correct_Password1!")
	require.NoError(t, err)

	testUser := &models.User{
		ID:             123,
		Email:          "admin@example.org",
		HashedPassword: hashed,
	}
	userRepo.On("GetByEmail", mock.Anything, "admin@example.org").Return(testUser, true, nil)

	rr := httptest.NewRecorder()
	h.HandleAuthLogin(rr, loginRequest(t, "admin@example.org", "wrong password"))

	require.Equal(t, http.StatusBadRequest, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, false, envelope["success"])
}

func TestHandleAuthLogin_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	h := newTestHandler(&mocks.MockDatabase{UserRepo: userRepo})

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.org").Return((*models.User)(nil), false, nil)

	rr := httptest.NewRecorder()
	h.HandleAuthLogin(rr, loginRequest(t, "nobody@example.org", "whatever"))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
