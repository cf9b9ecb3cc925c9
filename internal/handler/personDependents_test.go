package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sholaoke/churchbase/internal/mocks"
	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/repository"
)

func TestHandlePersonCollectionGet_UnknownCollection(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	req := httptest.NewRequest("GET", "/api/members/1/favorite-songs", nil)
	req.SetPathValue("id", "1")
	req.SetPathValue("collection", "favorite-songs")
	rr := httptest.NewRecorder()

	h.HandlePersonCollectionGet(models.PersonKindMember)(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	personRepo.AssertNotCalled(t, "GetCollection", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePersonCollectionGet(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	person := &models.Person{ID: 1, FirstName: "Ada", LastName: "Obi"}
	children := []models.PersonChild{{ID: 10, PersonID: 1, Name: "Ngozi"}}

	personRepo.On("GetOne", mock.Anything, models.PersonKindMember, 1).Return(person, true, nil)
	personRepo.On("GetCollection", mock.Anything, 1, repository.DependentChildren).Return(children, nil)

	req := httptest.NewRequest("GET", "/api/members/1/children", nil)
	req.SetPathValue("id", "1")
	req.SetPathValue("collection", "children")
	rr := httptest.NewRecorder()

	h.HandlePersonCollectionGet(models.PersonKindMember)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	envelope := decodeEnvelope(t, rr)
	rows := envelope["data"].([]any)
	require.Len(t, rows, 1)
}

func TestHandlePersonCollectionReplace(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	person := &models.Person{ID: 1, FirstName: "Ada", LastName: "Obi"}
	replaced := []models.SeminarRecord{{ID: 20, PersonID: 1, Title: "Leadership Summit"}}

	personRepo.On("GetOne", mock.Anything, models.PersonKindMinister, 1).Return(person, true, nil)
	personRepo.On("ReplaceCollection", mock.Anything, 1, repository.DependentSeminars, mock.Anything).Return(nil)
	personRepo.On("GetCollection", mock.Anything, 1, repository.DependentSeminars).Return(replaced, nil)

	body := map[string]any{
		"seminars": []map[string]any{
			{"title": "Leadership Summit", "year": 2025, "hours": 16},
		},
	}
	requestBody, _ := json.Marshal(body)

	req := httptest.NewRequest("PUT", "/api/ministers/1/seminars", bytes.NewBuffer(requestBody))
	req.SetPathValue("id", "1")
	req.SetPathValue("collection", "seminars")
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.HandlePersonCollectionReplace(models.PersonKindMinister)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	personRepo.AssertExpectations(t)
}

func TestHandlePersonCollectionReplace_ValidationFailure(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	body := map[string]any{
		"seminars": []map[string]any{
			{"title": "", "year": 1200},
		},
	}
	requestBody, _ := json.Marshal(body)

	req := httptest.NewRequest("PUT", "/api/ministers/1/seminars", bytes.NewBuffer(requestBody))
	req.SetPathValue("id", "1")
	req.SetPathValue("collection", "seminars")
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.HandlePersonCollectionReplace(models.PersonKindMinister)(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, "validation_failed", envelope["error"])

	personRepo.AssertNotCalled(t, "ReplaceCollection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
