package sheetconv

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetconv/pkg/sheetconv/models"
	"github.com/ukaji3/sheetconv/pkg/sheetconv/output"
	"gopkg.in/yaml.v3"
)

func loadBook(t *testing.T) *models.Document {
	t.Helper()
	opts, _ := testLogger()
	doc, err := Load(writeTwoSheetBook(t, t.TempDir()), opts)
	require.NoError(t, err)
	return doc
}

func TestExport_JSON(t *testing.T) {
	doc := loadBook(t)
	opts, logs := testLogger()

	dst, err := Export(doc, ExportOptions{Logger: opts.Logger})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(doc.Path), "book.json"), dst)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)

	// Non-ASCII characters are written literally.
	assert.Contains(t, string(data), "Zoë")
	assert.NotContains(t, string(data), `\u00eb`)

	var got models.Document
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, doc.Name, got.Name)
	assert.Equal(t, doc.Path, got.Path)
	assert.Equal(t, doc.Sheets, got.Sheets)

	assert.Contains(t, logs.String(), "document exported")
}

func TestExport_Pretty(t *testing.T) {
	doc := loadBook(t)
	opts, _ := testLogger()

	dst, err := Export(doc, ExportOptions{Pretty: true, Logger: opts.Logger})
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"name\": \"book\""))
}

func TestExport_YAML(t *testing.T) {
	doc := loadBook(t)
	opts, _ := testLogger()

	dst, err := Export(doc, ExportOptions{Format: output.YAML, Logger: opts.Logger})
	require.NoError(t, err)
	assert.Equal(t, "book.yaml", filepath.Base(dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "book", got["name"])
	assert.Equal(t, doc.Path, got["path"])
	sheets, ok := got["sheets"].([]interface{})
	require.True(t, ok)
	assert.Len(t, sheets, 2)
}

func TestExport_NotLoaded(t *testing.T) {
	dir := t.TempDir()
	opts, logs := testLogger()
	doc, err := Load(filepath.Join(dir, "missing.xlsx"), opts)
	require.Error(t, err)

	dst, err := Export(doc, ExportOptions{Logger: opts.Logger})

	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.Empty(t, dst)
	assert.NoFileExists(t, filepath.Join(dir, "missing.json"))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Contains(t, logs.String(), "export skipped")
}

func TestExport_NilDocument(t *testing.T) {
	opts, _ := testLogger()

	_, err := Export(nil, ExportOptions{Logger: opts.Logger})
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestExport_UnsupportedFormatLeavesNoFile(t *testing.T) {
	doc := loadBook(t)
	opts, _ := testLogger()

	_, err := Export(doc, ExportOptions{Format: output.Format("xml"), Logger: opts.Logger})
	require.ErrorIs(t, err, output.ErrUnsupportedFormat)

	entries, err := os.ReadDir(filepath.Dir(doc.Path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "book.xlsx", entries[0].Name())
}

func TestExportPath(t *testing.T) {
	doc := &models.Document{Name: "report", Path: filepath.Join("data", "report.xls")}

	assert.Equal(t, filepath.Join("data", "report.json"), ExportPath(doc, output.JSON))
	assert.Equal(t, filepath.Join("data", "report.toon"), ExportPath(doc, output.TOON))
}

func TestLoader_Export(t *testing.T) {
	opts, _ := testLogger()
	l := NewLoader(writeTwoSheetBook(t, t.TempDir()), opts)

	dst, err := l.Export(ExportOptions{Logger: opts.Logger})
	require.NoError(t, err)
	assert.FileExists(t, dst)
}
