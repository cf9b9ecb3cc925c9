package repository

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListFilter carries the common list-endpoint query parameters. Normalize
// clamps paging values and pins the sort pair to a per-entity allowlist so raw
// query-string input never reaches the SQL text.
type ListFilter struct {
	Page      int
	Limit     int
	Search    string
	IsActive  *bool
	SortBy    string
	SortOrder string
}

func (f *ListFilter) Normalize(defaultSort string, allowedSort ...string) {
	if f.Page < 1 {
		f.Page = DefaultPage
	}

	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}

	if !slices.Contains(allowedSort, f.SortBy) {
		f.SortBy = defaultSort
	}

	if f.SortOrder != "asc" && f.SortOrder != "desc" {
		f.SortOrder = "desc"
	}
}

func (f *ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// searchClause builds a case-insensitive OR match across the given columns,
// returning the SQL fragment and the next free placeholder index.
func searchClause(columns []string, argIndex int) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, argIndex)
	}

	return "(" + strings.Join(parts, " OR ") + ")"
}
