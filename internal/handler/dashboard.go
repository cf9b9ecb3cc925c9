package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/repository"
	"github.com/sholaoke/churchbase/internal/response"
)

const (
	statsCacheKey  = "dashboard:stats"
	statsCacheTTL  = 60 * time.Second
	growthCacheTTL = 5 * time.Minute

	defaultGrowthMonths = 12
	maxGrowthMonths     = 60
)

// HandleDashboardStats serves the entity counts the admin landing page shows.
// Counts are cached briefly; the dashboard polls and exact freshness does not
// matter at that cadence.
func (h *RouteHandler) HandleDashboardStats(w http.ResponseWriter, r *http.Request) {
	var counts repository.EntityCounts

	if h.Cache != nil {
		found, err := h.Cache.GetJSON(statsCacheKey, &counts)
		if err == nil && found {
			err = response.JSONOkResponse(w, counts, "Dashboard statistics retrieved successfully", nil)
			if err != nil {
				h.ErrHandler.ServerError(w, r, err)
			}
			return
		}
	}

	fresh, err := h.DB.Stats().EntityCounts(r.Context())
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	if h.Cache != nil {
		// Cache failures only cost the next request a query.
		h.Cache.SetJSON(statsCacheKey, fresh, statsCacheTTL)
	}

	err = response.JSONOkResponse(w, fresh, "Dashboard statistics retrieved successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

type growthReport struct {
	Kind     string                  `json:"kind"`
	Months   []repository.MonthCount `json:"months"`
	Forecast int                     `json:"forecastNextMonth"`
}

// HandleDashboardGrowth reports per-month registrations over a trailing
// window plus a naive forecast: the mean of the observed monthly counts,
// rounded to the nearest whole registration.
func (h *RouteHandler) HandleDashboardGrowth(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = models.PersonKindMember
	}
	if kind != models.PersonKindMember && kind != models.PersonKindMinister {
		h.ErrHandler.BadRequest(w, r, errors.New("kind must be member or minister"))
		return
	}

	months := defaultGrowthMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxGrowthMonths {
			h.ErrHandler.BadRequest(w, r, fmt.Errorf("months must be between 1 and %d", maxGrowthMonths))
			return
		}
		months = parsed
	}

	cacheKey := fmt.Sprintf("dashboard:growth:%s:%d", kind, months)

	var report growthReport
	if h.Cache != nil {
		found, err := h.Cache.GetJSON(cacheKey, &report)
		if err == nil && found {
			err = response.JSONOkResponse(w, report, "Growth report retrieved successfully", nil)
			if err != nil {
				h.ErrHandler.ServerError(w, r, err)
			}
			return
		}
	}

	counts, err := h.DB.Person().MonthlyRegistrations(r.Context(), kind, months)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	report = growthReport{
		Kind:     kind,
		Months:   counts,
		Forecast: forecastNextMonth(counts),
	}

	if h.Cache != nil {
		h.Cache.SetJSON(cacheKey, report, growthCacheTTL)
	}

	err = response.JSONOkResponse(w, report, "Growth report retrieved successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

// forecastNextMonth is a deliberately simple estimate: the rounded mean of
// the observed months. Zero observed months forecasts zero.
func forecastNextMonth(counts []repository.MonthCount) int {
	if len(counts) == 0 {
		return 0
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}

	return (total + len(counts)/2) / len(counts)
}
