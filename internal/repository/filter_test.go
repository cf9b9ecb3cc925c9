package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListFilter_Normalize(t *testing.T) {
	filter := ListFilter{Page: 0, Limit: 500, SortBy: "password", SortOrder: "DROP TABLE"}
	filter.Normalize("created_at", "first_name", "last_name", "created_at")

	require.Equal(t, DefaultPage, filter.Page)
	require.Equal(t, MaxLimit, filter.Limit)
	require.Equal(t, "created_at", filter.SortBy)
	require.Equal(t, "desc", filter.SortOrder)
}

func TestListFilter_NormalizeKeepsAllowedSort(t *testing.T) {
	filter := ListFilter{Page: 3, Limit: 20, SortBy: "last_name", SortOrder: "asc"}
	filter.Normalize("created_at", "first_name", "last_name", "created_at")

	require.Equal(t, 3, filter.Page)
	require.Equal(t, 20, filter.Limit)
	require.Equal(t, "last_name", filter.SortBy)
	require.Equal(t, "asc", filter.SortOrder)
}

func TestListFilter_Offset(t *testing.T) {
	filter := ListFilter{Page: 3, Limit: 10}
	require.Equal(t, 20, filter.Offset())

	filter = ListFilter{Page: 1, Limit: 10}
	require.Equal(t, 0, filter.Offset())
}

func TestSearchClause_OrsAcrossColumns(t *testing.T) {
	clause := searchClause([]string{"first_name", "last_name", "email"}, 2)
	require.Equal(t, "(first_name ILIKE $2 OR last_name ILIKE $2 OR email ILIKE $2)", clause)
}

func TestIsDependentKind(t *testing.T) {
	require.True(t, IsDependentKind("children"))
	require.True(t, IsDependentKind("emergency-contacts"))
	require.True(t, IsDependentKind("seminars"))
	require.False(t, IsDependentKind("complete"))
	require.False(t, IsDependentKind("qr"))
}
