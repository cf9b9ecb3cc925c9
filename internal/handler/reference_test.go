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

func TestHandleSkillCreate_DuplicateName(t *testing.T) {
	skillRepo := new(mocks.MockSkillRepo)
	h := newTestHandler(&mocks.MockDatabase{MinistrySkillRepo: skillRepo})

	skillRepo.On("Insert", mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicate)

	requestBody, _ := json.Marshal(map[string]string{"name": "Preaching"})
	req := httptest.NewRequest("POST", "/api/ministry-skills", bytes.NewBuffer(requestBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.HandleSkillCreate()(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, "conflict", envelope["error"])
	require.Equal(t, "A ministry skill with this name already exists.", envelope["message"])
}

func TestHandleSkillDelete_BlockedByUsage(t *testing.T) {
	skillRepo := new(mocks.MockSkillRepo)
	h := newTestHandler(&mocks.MockDatabase{MinistrySkillRepo: skillRepo})

	skill := &models.MinistrySkill{ID: 3, Name: "Choir"}
	skillRepo.On("GetOne", mock.Anything, 3).Return(skill, true, nil)
	skillRepo.On("UsageCount", mock.Anything, 3).Return(4, nil)

	req := httptest.NewRequest("DELETE", "/api/ministry-skills/3", nil)
	req.SetPathValue("id", "3")
	rr := httptest.NewRecorder()

	h.HandleSkillDelete()(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Contains(t, envelope["message"], "4 person records")

	skillRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestHandleSkillCreate_MissingName(t *testing.T) {
	skillRepo := new(mocks.MockSkillRepo)
	h := newTestHandler(&mocks.MockDatabase{MinistrySkillRepo: skillRepo})

	requestBody, _ := json.Marshal(map[string]string{"description": "no name"})
	req := httptest.NewRequest("POST", "/api/ministry-skills", bytes.NewBuffer(requestBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.HandleSkillCreate()(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, "validation_failed", envelope["error"])

	skillRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
