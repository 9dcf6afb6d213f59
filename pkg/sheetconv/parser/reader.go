// Package parser reads spreadsheet files into normalized sheets.
package parser

import (
	"errors"
	"strings"

	"github.com/ukaji3/sheetconv/pkg/sheetconv/models"
)

// ErrUnsupportedExtension indicates a path whose suffix no reader handles.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// File extensions handled by the readers. Matching is case-sensitive.
const (
	ExtXLS  = ".xls"
	ExtXLSX = ".xlsx"
)

// SheetReader opens workbooks of one format.
type SheetReader interface {
	// Format names the workbook format, e.g. "xlsx".
	Format() string
	// Open opens the workbook at path.
	Open(path string) (Workbook, error)
}

// Workbook is an open workbook.
type Workbook interface {
	// SheetCount returns the number of sheets.
	SheetCount() int
	// ReadSheet reads the sheet at index i, in workbook order.
	ReadSheet(i int) (models.Sheet, error)
	// Close releases the workbook.
	Close() error
}

// ReadAll reads every sheet of wb in workbook order.
func ReadAll(wb Workbook) ([]models.Sheet, error) {
	sheets := make([]models.Sheet, 0, wb.SheetCount())
	for i := 0; i < wb.SheetCount(); i++ {
		sheet, err := wb.ReadSheet(i)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

// ForPath returns the reader for the extension of path.
func ForPath(path string) (SheetReader, error) {
	switch {
	case strings.HasSuffix(path, ExtXLSX):
		return XLSXReader{}, nil
	case strings.HasSuffix(path, ExtXLS):
		return XLSReader{}, nil
	default:
		return nil, ErrUnsupportedExtension
	}
}

// padRows extends every row with nulls up to width so each record carries
// the full header sequence.
func padRows(rows [][]models.Value, width int) [][]models.Value {
	for i, row := range rows {
		if len(row) >= width {
			continue
		}
		padded := make([]models.Value, width)
		copy(padded, row)
		rows[i] = padded
	}
	return rows
}
