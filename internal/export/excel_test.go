package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTruncateCell(t *testing.T) {
	short := "hello"
	require.Equal(t, short, TruncateCell(short))

	long := strings.Repeat("x", MaxCellChars+100)
	truncated := TruncateCell(long)
	require.Len(t, truncated, MaxCellChars)
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "members-2026-08-29.xlsx", Filename("members", ts))
}

func TestWorkbook(t *testing.T) {
	sheet := Sheet{
		Name:    "Members",
		Headers: []string{"ID", "Name", "Active"},
		Rows: [][]any{
			{1, "Ada Obi", true},
			{2, strings.Repeat("y", MaxCellChars+10), false},
		},
	}

	data, err := Workbook(sheet)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// xlsx files are zip archives.
	require.Equal(t, byte('P'), data[0])
	require.Equal(t, byte('K'), data[1])
}
