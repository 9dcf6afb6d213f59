package parser

import (
	"errors"
	"fmt"
)

// ErrSheetNotLoaded indicates a sheet the decoder listed but did not read.
var ErrSheetNotLoaded = errors.New("sheet not loaded")

// SheetError reports a failure while reading one sheet.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("read sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Err:       err,
	}
}
