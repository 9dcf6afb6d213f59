package parser

import (
	"fmt"
	"io"
	"math"

	"github.com/ukaji3/sheetconv/pkg/sheetconv/models"
	"github.com/yamitzky/xlrd-go/xlrd"
)

// XLSReader reads legacy BIFF workbooks (.xls).
type XLSReader struct{}

// Format implements SheetReader.
func (XLSReader) Format() string { return "xls" }

// Open implements SheetReader.
func (XLSReader) Open(path string) (wb Workbook, err error) {
	// The BIFF decoder can panic on truncated records.
	defer recoverDecode(&err)

	book, err := xlrd.OpenWorkbook(path, &xlrd.OpenWorkbookOptions{
		Logfile:        io.Discard,
		FormattingInfo: true,
	})
	if err != nil {
		return nil, err
	}
	return &xlsWorkbook{book: book}, nil
}

type xlsWorkbook struct {
	book *xlrd.Book
}

func (wb *xlsWorkbook) SheetCount() int { return wb.book.NSheets }

func (wb *xlsWorkbook) ReadSheet(i int) (s models.Sheet, err error) {
	defer recoverDecode(&err)

	sheet, err := wb.book.SheetByIndex(i)
	if err != nil {
		return models.Sheet{}, NewSheetError(fmt.Sprintf("#%d", i), err)
	}
	if sheet == nil {
		return models.Sheet{}, NewSheetError(fmt.Sprintf("#%d", i), ErrSheetNotLoaded)
	}
	return models.NewSheet(sheet.Name, extractXLSRows(wb.book, sheet)), nil
}

func (wb *xlsWorkbook) Close() error {
	wb.book.ReleaseResources()
	return nil
}

func recoverDecode(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("decode xls: %v", r)
	}
}

// extractXLSRows returns the typed rows of a sheet, each padded with nulls
// to the sheet width.
func extractXLSRows(book *xlrd.Book, sheet *xlrd.Sheet) [][]models.Value {
	rows := make([][]models.Value, 0, sheet.NRows)
	for rowx := 0; rowx < sheet.NRows; rowx++ {
		n := min(sheet.RowLen(rowx), sheet.NCols)
		values := make([]models.Value, n)
		for colx := 0; colx < n; colx++ {
			ctype := sheet.CellType(rowx, colx)
			isDate := ctype == xlrd.XL_CELL_DATE ||
				(ctype == xlrd.XL_CELL_NUMBER && isXLSDateCell(book, sheet.CellXFIndex(rowx, colx)))
			values[colx] = xlsCellValue(ctype, sheet.CellValue(rowx, colx), isDate, book.Datemode)
		}
		rows = append(rows, values)
	}
	return padRows(rows, sheet.NCols)
}

// xlsCellValue converts a BIFF cell to a typed value.
func xlsCellValue(ctype int, value interface{}, isDate bool, datemode int) models.Value {
	switch ctype {
	case xlrd.XL_CELL_EMPTY, xlrd.XL_CELL_BLANK:
		return models.Null()
	case xlrd.XL_CELL_TEXT:
		s, ok := value.(string)
		if !ok {
			s = fmt.Sprint(value)
		}
		return models.Text(s)
	case xlrd.XL_CELL_NUMBER, xlrd.XL_CELL_DATE:
		num, ok := toFloat(value)
		if !ok {
			return models.Text(fmt.Sprint(value))
		}
		if isDate && !math.IsNaN(num) && !math.IsInf(num, 0) {
			if t, err := xlrd.XldateAsDatetime(num, datemode); err == nil {
				return models.Time(t)
			}
		}
		return models.Number(num)
	case xlrd.XL_CELL_BOOLEAN:
		switch v := value.(type) {
		case bool:
			return models.Bool(v)
		default:
			num, _ := toFloat(value)
			return models.Bool(num != 0)
		}
	case xlrd.XL_CELL_ERROR:
		return models.Text(xlsErrorText(value))
	default:
		if value == nil {
			return models.Null()
		}
		return models.Text(fmt.Sprint(value))
	}
}

func isXLSDateCell(book *xlrd.Book, xfIndex int) bool {
	if xfIndex < 0 || xfIndex >= len(book.XFList) {
		return false
	}
	formatKey := book.XFList[xfIndex].FormatKey
	if IsBuiltinDateFormat(formatKey) {
		return true
	}
	if book.FormatMap == nil {
		return false
	}
	format := book.FormatMap[formatKey]
	if format == nil || format.FormatString == "" {
		return false
	}
	return IsDateFormatCode(format.FormatString)
}

func xlsErrorText(value interface{}) string {
	switch v := value.(type) {
	case byte:
		if text, ok := xlrd.ErrorTextFromCode[v]; ok {
			return text
		}
	case int:
		if text, ok := xlrd.ErrorTextFromCode[byte(v)]; ok {
			return text
		}
	}
	return "#ERROR"
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
