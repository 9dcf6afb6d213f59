package sheetconv

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetconv/pkg/sheetconv/models"
	"github.com/ukaji3/sheetconv/pkg/sheetconv/parser"
)

// Load reads the workbook at path. It always returns a document; on
// failure the document has no sheets, Loaded is false and the error is a
// *LoadError.
func Load(path string, opts Options) (*models.Document, error) {
	log := opts.logger()

	doc := &models.Document{
		Name:   displayName(path),
		Path:   path,
		Sheets: []models.Sheet{},
	}

	sheets, err := readSheets(path, opts)
	if err != nil {
		log.Error("load failed", "path", path, "error", err)
		return doc, err
	}

	doc.Sheets = sheets
	doc.Loaded = len(doc.Sheets) > 0
	return doc, nil
}

func readSheets(path string, opts Options) ([]models.Sheet, error) {
	log := opts.logger()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewLoadError(path, ReasonUnsupportedPath, ErrFileNotFound)
		}
		return nil, NewLoadError(path, ReasonUnsupportedPath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, NewLoadError(path, ReasonUnsupportedPath, ErrNotRegularFile)
	}

	reader, err := parser.ForPath(path)
	if err != nil {
		return nil, NewLoadError(path, ReasonUnsupportedPath, err)
	}

	wb, err := reader.Open(path)
	if err != nil {
		return nil, NewLoadError(path, ReasonParse, err)
	}
	defer wb.Close()

	log.Info("loading workbook", "path", path, "format", reader.Format(), "sheets", wb.SheetCount())
	sheets, err := parser.ReadAll(wb)
	if err != nil {
		return nil, NewLoadError(path, ReasonParse, err)
	}
	if len(sheets) == 0 {
		return nil, NewLoadError(path, ReasonNoSheets, ErrNoSheets)
	}
	log.Info("workbook loaded", "path", path, "sheets", len(sheets))
	return sheets, nil
}

// displayName returns the file name of path without its extension.
func displayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Loader keeps a load outcome for callers that only check a flag.
type Loader struct {
	doc *models.Document
	err error
}

// NewLoader loads path and records the outcome.
func NewLoader(path string, opts Options) *Loader {
	doc, err := Load(path, opts)
	return &Loader{doc: doc, err: err}
}

// Document returns the loaded document. It is never nil.
func (l *Loader) Document() *models.Document { return l.doc }

// Loaded reports whether at least one sheet was read.
func (l *Loader) Loaded() bool { return l.doc.Loaded }

// Err returns the load failure, if any.
func (l *Loader) Err() error { return l.err }

// Export writes the document next to its source. See Export.
func (l *Loader) Export(opts ExportOptions) (string, error) {
	return Export(l.doc, opts)
}
