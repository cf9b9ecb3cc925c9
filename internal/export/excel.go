package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// MaxCellChars is the hard ceiling xlsx puts on a single cell's text. Longer
// values are truncated before writing so the workbook stays openable.
const MaxCellChars = 32767

type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Workbook renders a single-sheet xlsx file: bold styled header row, one row
// per record, generous column widths.
func Workbook(sheet Sheet) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheet.Name)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range sheet.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheet.Name, cell, header); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellStyle(sheet.Name, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	if len(sheet.Headers) > 0 {
		lastCol, _ := excelize.ColumnNumberToName(len(sheet.Headers))
		if err := f.SetColWidth(sheet.Name, "A", lastCol, 22); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, row := range sheet.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, err
			}

			if s, ok := value.(string); ok {
				value = TruncateCell(s)
			}

			if err := f.SetCellValue(sheet.Name, cell, value); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := f.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func TruncateCell(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxCellChars {
		return s
	}

	return string(runes[:MaxCellChars])
}

// Filename builds the attachment name clients expect, e.g. "members-2026-08-29.xlsx".
func Filename(entity string, t time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", entity, t.Format("2006-01-02"))
}
