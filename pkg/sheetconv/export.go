package sheetconv

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetconv/pkg/sheetconv/models"
	"github.com/ukaji3/sheetconv/pkg/sheetconv/output"
)

// ExportPath returns where Export writes doc: the source directory, the
// document name and the extension of format f.
func ExportPath(doc *models.Document, f output.Format) string {
	return filepath.Join(filepath.Dir(doc.Path), doc.Name+"."+f.Ext())
}

// Export writes doc next to its source file and returns the written path.
// A document that is not loaded is not written and ErrNotLoaded is returned.
func Export(doc *models.Document, opts ExportOptions) (string, error) {
	log := opts.logger()

	if doc == nil || !doc.Loaded {
		path := ""
		if doc != nil {
			path = doc.Path
		}
		log.Error("export skipped", "path", path, "error", ErrNotLoaded)
		return "", ErrNotLoaded
	}

	format := opts.format()
	dst := ExportPath(doc, format)
	if err := writeFileAtomic(dst, func(w *bufio.Writer) error {
		return output.Write(w, doc, format, opts.Pretty)
	}); err != nil {
		log.Error("export failed", "path", doc.Path, "output", dst, "error", err)
		return "", fmt.Errorf("export %s: %w", doc.Path, err)
	}

	log.Info("document exported", "path", doc.Path, "output", dst, "format", format.String())
	return dst, nil
}

// writeFileAtomic writes to a temp file in the target directory, then
// renames it onto path once flushed and closed.
func writeFileAtomic(path string, write func(w *bufio.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := write(w); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
