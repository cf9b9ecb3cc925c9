package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sholaoke/churchbase/internal/config"
	"github.com/sholaoke/churchbase/internal/errHandler"
	"github.com/sholaoke/churchbase/internal/helper"
	"github.com/sholaoke/churchbase/internal/mocks"
	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/repository"
)

func newTestHandler(db *mocks.MockDatabase) *RouteHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eh := errHandler.New("", "http://localhost", nil, logger)

	cfg := &config.Config{BaseURL: "http://localhost"}
	cfg.Jwt.SecretKey = "test_secret"

	var wg sync.WaitGroup

	return NewRouteHandler(&RouteHandler{
		DB:         db,
		Config:     cfg,
		ErrHandler: eh,
		Helper:     helper.New(&cfg.BaseURL, &wg, eh),
	})
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	return envelope
}

func validMemberBody() map[string]any {
	return map[string]any{
		"firstName":   "Ada",
		"lastName":    "Obi",
		"gender":      "female",
		"civilStatus": "single",
		"churchId":    1,
	}
}

func TestHandlePersonCreate_ValidationErrors(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	body := map[string]any{
		"firstName":   "",
		"lastName":    "Obi",
		"gender":      "other",
		"civilStatus": "single",
		"churchId":    1,
		"children": []map[string]any{
			{"name": "", "gender": "female"},
		},
	}
	requestBody, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/api/members", bytes.NewBuffer(requestBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.HandlePersonCreate(models.PersonKindMember)(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, false, envelope["success"])
	require.Equal(t, "validation_failed", envelope["error"])

	details, ok := envelope["details"].([]any)
	require.True(t, ok)

	fields := make([]string, 0, len(details))
	for _, d := range details {
		entry := d.(map[string]any)
		fields = append(fields, entry["field"].(string))
	}
	require.Contains(t, fields, "firstName")
	require.Contains(t, fields, "gender")
	require.Contains(t, fields, "children[0].name")

	personRepo.AssertNotCalled(t, "CreateWithDependents", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePersonCreate_Success(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	created := &models.Person{ID: 7, FirstName: "Ada", LastName: "Obi"}
	personRepo.On("CreateWithDependents", mock.Anything, mock.Anything, mock.Anything).Return(created, nil)

	requestBody, _ := json.Marshal(validMemberBody())
	req := httptest.NewRequest("POST", "/api/members", bytes.NewBuffer(requestBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.HandlePersonCreate(models.PersonKindMember)(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, true, envelope["success"])
	require.Equal(t, "Member created successfully", envelope["message"])

	data := envelope["data"].(map[string]any)
	require.Equal(t, float64(7), data["id"])

	personRepo.AssertExpectations(t)
}

func TestHandlePersonCreate_DuplicateEmail(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	personRepo.On("CreateWithDependents", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, repository.ErrDuplicate)

	body := validMemberBody()
	body["email"] = "taken@example.org"
	requestBody, _ := json.Marshal(body)

	req := httptest.NewRequest("POST", "/api/ministers", bytes.NewBuffer(requestBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.HandlePersonCreate(models.PersonKindMinister)(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, "conflict", envelope["error"])
	require.Contains(t, envelope["message"], "minister with this email already exists")
}

func TestHandlePersonGet_NotFound(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	personRepo.On("GetOne", mock.Anything, models.PersonKindMinister, 9).Return(nil, false, nil)

	req := httptest.NewRequest("GET", "/api/ministers/9", nil)
	req.SetPathValue("id", "9")
	rr := httptest.NewRecorder()

	h.HandlePersonGet(models.PersonKindMinister)(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, false, envelope["success"])
	require.Equal(t, "not_found", envelope["error"])
	require.Equal(t, "Minister with id 9 could not be found", envelope["message"])
}

func TestHandlePersonList_Pagination(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	people := []models.Person{
		{ID: 11, FirstName: "Ada", LastName: "Obi"},
		{ID: 12, FirstName: "Ben", LastName: "Okoro"},
	}
	personRepo.On("List", mock.Anything, models.PersonKindMember, mock.Anything).Return(people, 25, nil)

	req := httptest.NewRequest("GET", "/api/members?page=2&limit=10", nil)
	rr := httptest.NewRecorder()

	h.HandlePersonList(models.PersonKindMember)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, true, envelope["success"])

	pagination := envelope["pagination"].(map[string]any)
	require.Equal(t, float64(2), pagination["page"])
	require.Equal(t, float64(25), pagination["total"])
	require.Equal(t, float64(3), pagination["totalPages"])
	require.Equal(t, true, pagination["hasNext"])
	require.Equal(t, true, pagination["hasPrev"])
}

func TestHandlePersonDelete_ReturnsIdAndName(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	person := &models.Person{ID: 4, FirstName: "Ada", LastName: "Obi"}
	personRepo.On("GetOne", mock.Anything, models.PersonKindMember, 4).Return(person, true, nil)
	personRepo.On("Delete", mock.Anything, models.PersonKindMember, 4).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/members/4", nil)
	req.SetPathValue("id", "4")
	rr := httptest.NewRecorder()

	h.HandlePersonDelete(models.PersonKindMember)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	envelope := decodeEnvelope(t, rr)
	data := envelope["data"].(map[string]any)
	require.Equal(t, float64(4), data["id"])
	require.Equal(t, "Ada Obi", data["name"])

	personRepo.AssertExpectations(t)
}

func TestHandlePersonUpdate_NotFound(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	personRepo.On("GetOne", mock.Anything, models.PersonKindMember, 99).Return(nil, false, nil)

	requestBody, _ := json.Marshal(validMemberBody())
	req := httptest.NewRequest("PUT", "/api/members/99", bytes.NewBuffer(requestBody))
	req.SetPathValue("id", "99")
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.HandlePersonUpdate(models.PersonKindMember)(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	personRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
