package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Sheet is one worksheet as a positional grid of cell values. Vendor files
// carry no usable header row, so callers address cells by column index.
type Sheet struct {
	Name string
	Rows [][]string
}

// Width is the widest row in the sheet.
func (s Sheet) Width() int {
	w := 0
	for _, r := range s.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Cell returns the trimmed value at (row, col), "" when out of range.
func (s Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// ReadSheets picks a parser by extension and returns every sheet in the
// workbook (CSV counts as a single sheet).
func ReadSheets(r io.Reader, filename string) ([]Sheet, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	case ".csv":
		return readCSV(r, filename)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// normalizeCell: trim and collapse non-breaking spaces to regular ones.
func normalizeCell(s string) string {
	s = strings.NewReplacer(" ", " ", " ", " ").Replace(s)
	return strings.TrimSpace(s)
}
