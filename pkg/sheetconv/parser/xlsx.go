package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetconv/pkg/sheetconv/models"
	"github.com/xuri/excelize/v2"
)

// XLSXReader reads Office Open XML workbooks (.xlsx).
type XLSXReader struct{}

// Format implements SheetReader.
func (XLSXReader) Format() string { return "xlsx" }

// Open implements SheetReader.
func (XLSXReader) Open(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{
		conv:   newXLSXConverter(f),
		sheets: f.GetSheetList(),
	}, nil
}

type xlsxWorkbook struct {
	conv   *xlsxConverter
	sheets []string
}

func (wb *xlsxWorkbook) SheetCount() int { return len(wb.sheets) }

func (wb *xlsxWorkbook) ReadSheet(i int) (models.Sheet, error) {
	if i < 0 || i >= len(wb.sheets) {
		return models.Sheet{}, fmt.Errorf("sheet index %d out of range", i)
	}
	sheetName := wb.sheets[i]
	rows, err := wb.conv.ExtractRows(sheetName)
	if err != nil {
		return models.Sheet{}, NewSheetError(sheetName, err)
	}
	return models.NewSheet(sheetName, rows), nil
}

func (wb *xlsxWorkbook) Close() error { return wb.conv.f.Close() }

// xlsxConverter turns excelize cells into typed values.
type xlsxConverter struct {
	f        *excelize.File
	date1904 bool
	// dateStyles caches whether a style index carries a date number format.
	dateStyles map[int]bool
}

func newXLSXConverter(f *excelize.File) *xlsxConverter {
	c := &xlsxConverter{f: f, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		c.date1904 = *props.Date1904
	}
	return c
}

// ExtractRows returns the typed rows of a sheet, each padded with nulls to
// the width of the widest row. Trailing empty rows are not reported.
func (c *xlsxConverter) ExtractRows(sheetName string) ([][]models.Value, error) {
	rows, err := c.f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var width int
	result := make([][]models.Value, 0, len(rows))
	for rowIdx, row := range rows {
		width = max(width, len(row))
		values := make([]models.Value, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			v, err := c.cellValue(sheetName, cellName, raw)
			if err != nil {
				return nil, err
			}
			values[colIdx] = v
		}
		result = append(result, values)
	}
	return padRows(result, width), nil
}

func (c *xlsxConverter) cellValue(sheetName, cellName, raw string) (models.Value, error) {
	typ, err := c.f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Null(), err
	}

	switch typ {
	case excelize.CellTypeBool:
		return models.Bool(parseBool(raw)), nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return models.Time(t), nil
		}
		return c.numericValue(sheetName, cellName, raw)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return c.numericValue(sheetName, cellName, raw)
	default:
		// Shared and inline strings, string formula results and error literals.
		return models.Text(raw), nil
	}
}

// numericValue parses raw as a number and promotes it to a time when the
// cell style uses a date format. Non-numeric content stays text.
func (c *xlsxConverter) numericValue(sheetName, cellName, raw string) (models.Value, error) {
	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Text(raw), nil
	}
	isDate, err := c.isDateCell(sheetName, cellName)
	if err != nil {
		return models.Null(), err
	}
	if isDate {
		if t, err := excelize.ExcelDateToTime(num, c.date1904); err == nil {
			return models.Time(t), nil
		}
	}
	return models.Number(num), nil
}

func (c *xlsxConverter) isDateCell(sheetName, cellName string) (bool, error) {
	styleID, err := c.f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := c.dateStyles[styleID]; ok {
		return isDate, nil
	}
	style, err := c.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	var isDate bool
	if style.CustomNumFmt != nil {
		isDate = IsDateFormatCode(*style.CustomNumFmt)
	} else {
		isDate = IsBuiltinDateFormat(style.NumFmt)
	}
	c.dateStyles[styleID] = isDate
	return isDate, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true
	default:
		return false
	}
}
