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

func TestForecastNextMonth(t *testing.T) {
	require.Equal(t, 0, forecastNextMonth(nil))

	counts := []repository.MonthCount{
		{Month: "2026-06", Count: 4},
		{Month: "2026-07", Count: 6},
		{Month: "2026-08", Count: 5},
	}
	require.Equal(t, 5, forecastNextMonth(counts))

	// Rounds to nearest whole registration.
	counts = []repository.MonthCount{
		{Month: "2026-07", Count: 1},
		{Month: "2026-08", Count: 2},
	}
	require.Equal(t, 2, forecastNextMonth(counts))
}

func TestHandleDashboardGrowth(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	counts := []repository.MonthCount{
		{Month: "2026-07", Count: 3},
		{Month: "2026-08", Count: 5},
	}
	personRepo.On("MonthlyRegistrations", mock.Anything, models.PersonKindMember, 6).Return(counts, nil)

	req := httptest.NewRequest("GET", "/api/dashboard/growth?months=6", nil)
	rr := httptest.NewRecorder()

	h.HandleDashboardGrowth(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	envelope := decodeEnvelope(t, rr)
	data := envelope["data"].(map[string]any)
	require.Equal(t, "member", data["kind"])
	require.Equal(t, float64(4), data["forecastNextMonth"])

	months := data["months"].([]any)
	require.Len(t, months, 2)
}

func TestHandleDashboardGrowth_InvalidMonths(t *testing.T) {
	personRepo := new(mocks.MockPersonRepo)
	h := newTestHandler(&mocks.MockDatabase{PersonRepo: personRepo})

	req := httptest.NewRequest("GET", "/api/dashboard/growth?months=999", nil)
	rr := httptest.NewRecorder()

	h.HandleDashboardGrowth(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	personRepo.AssertNotCalled(t, "MonthlyRegistrations", mock.Anything, mock.Anything, mock.Anything)
}
