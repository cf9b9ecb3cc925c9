package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"middle page", 2, 10, 25, 3, true, true},
		{"first page", 1, 10, 25, 3, true, false},
		{"last page", 3, 10, 25, 3, false, true},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"empty result", 1, 10, 0, 0, false, false},
		{"single row", 1, 10, 1, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			require.Equal(t, tt.totalPages, p.TotalPages)
			require.Equal(t, tt.hasNext, p.HasNext)
			require.Equal(t, tt.hasPrev, p.HasPrev)
			require.Equal(t, tt.total, p.Total)
		})
	}
}

func TestJSONPaginatedResponse_EnvelopeShape(t *testing.T) {
	rr := httptest.NewRecorder()

	err := JSONPaginatedResponse(rr, []string{"a", "b"}, NewPagination(1, 10, 2), "retrieved")
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))

	require.Equal(t, true, envelope["success"])
	require.Equal(t, "retrieved", envelope["message"])
	require.Contains(t, envelope, "data")

	pagination, ok := envelope["pagination"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(2), pagination["total"])
	require.Equal(t, float64(1), pagination["totalPages"])
}

func TestJSONErrorResponse_EnvelopeShape(t *testing.T) {
	rr := httptest.NewRecorder()

	err := JSONErrorResponse(rr, "not_found", "Member with ID 9 not found", nil, 404, nil)
	require.NoError(t, err)
	require.Equal(t, 404, rr.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))

	require.Equal(t, false, envelope["success"])
	require.Equal(t, "not_found", envelope["error"])
	require.Equal(t, "Member with ID 9 not found", envelope["message"])
	require.NotContains(t, envelope, "data")
}
