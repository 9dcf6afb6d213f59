package sheetconv

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetconv/pkg/sheetconv/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNotRegularFile indicates the input path is a directory or special file.
var ErrNotRegularFile = errors.New("not a regular file")

// ErrUnsupportedExtension indicates the input path is not .xls or .xlsx.
var ErrUnsupportedExtension = parser.ErrUnsupportedExtension

// ErrNoSheets indicates the workbook parsed but contains no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrNotLoaded indicates an export of a document that failed to load.
var ErrNotLoaded = errors.New("document not loaded")

// ErrNotImplemented is returned by actions that are advertised but not built.
var ErrNotImplemented = errors.New("not implemented")

// Reason classifies a load failure.
type Reason string

const (
	// ReasonUnsupportedPath covers missing files, non-regular files and unknown extensions.
	ReasonUnsupportedPath Reason = "unsupported_path"
	// ReasonParse covers corrupt or unreadable workbooks.
	ReasonParse Reason = "parse"
	// ReasonNoSheets covers workbooks without any sheet.
	ReasonNoSheets Reason = "no_sheets"
)

// LoadError represents a failed load.
type LoadError struct {
	Path   string
	Reason Reason
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Path, e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path string, reason Reason, err error) *LoadError {
	return &LoadError{
		Path:   path,
		Reason: reason,
		Err:    err,
	}
}

// IsUnsupportedPath reports whether err is a load failure caused by the path itself.
func IsUnsupportedPath(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Reason == ReasonUnsupportedPath
}

// IsParseError reports whether err is a load failure caused by workbook content.
func IsParseError(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Reason == ReasonParse
}
