package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sholaoke/churchbase/internal/mocks"
	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/repository"
)

func TestHandleChurchDelete_BlockedByDependents(t *testing.T) {
	churchRepo := new(mocks.MockChurchRepo)
	h := newTestHandler(&mocks.MockDatabase{ChurchRepo: churchRepo})

	church := &models.Church{ID: 2, Name: "Grace Chapel"}
	churchRepo.On("GetOne", mock.Anything, 2).Return(church, true, nil)
	churchRepo.On("DependentCounts", mock.Anything, 2).Return([]repository.DependentCount{
		{Kind: "member", Count: 3},
		{Kind: "event", Count: 1},
	}, nil)

	req := httptest.NewRequest("DELETE", "/api/churches/2", nil)
	req.SetPathValue("id", "2")
	rr := httptest.NewRecorder()

	h.HandleChurchDelete(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)

	envelope := decodeEnvelope(t, rr)
	require.Equal(t, "conflict", envelope["error"])
	require.Contains(t, envelope["message"], "3 members")
	require.Contains(t, envelope["message"], "1 event")

	churchRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestHandleChurchDelete_NoDependents(t *testing.T) {
	churchRepo := new(mocks.MockChurchRepo)
	h := newTestHandler(&mocks.MockDatabase{ChurchRepo: churchRepo})

	church := &models.Church{ID: 5, Name: "Hope Assembly"}
	churchRepo.On("GetOne", mock.Anything, 5).Return(church, true, nil)
	churchRepo.On("DependentCounts", mock.Anything, 5).Return([]repository.DependentCount{}, nil)
	churchRepo.On("Delete", mock.Anything, 5).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/churches/5", nil)
	req.SetPathValue("id", "5")
	rr := httptest.NewRecorder()

	h.HandleChurchDelete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	churchRepo.AssertExpectations(t)
}

func TestBlockingMessage(t *testing.T) {
	counts := []repository.DependentCount{
		{Kind: "member", Count: 3},
		{Kind: "minister", Count: 1},
		{Kind: "event", Count: 2},
	}

	message := blockingMessage("church", counts)
	require.Equal(t, "Cannot delete this church: 3 members, 1 minister and 2 events still reference it", message)

	single := blockingMessage("church", counts[:1])
	require.Equal(t, "Cannot delete this church: 3 members still reference it", single)
}
