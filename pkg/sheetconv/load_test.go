package sheetconv

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetconv/pkg/sheetconv/models"
	"github.com/ukaji3/sheetconv/pkg/sheetconv/output"
	"github.com/xuri/excelize/v2"
)

// testLogger returns options whose logger writes into the returned buffer.
func testLogger() (Options, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return Options{Logger: log}, &buf
}

// writeTwoSheetBook saves a workbook with a People sheet and a Notes sheet.
func writeTwoSheetBook(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "People"))
	f.SetCellValue("People", "A1", "id")
	f.SetCellValue("People", "B1", "name")
	f.SetCellValue("People", "A2", 1)
	f.SetCellValue("People", "B2", "Alice")
	f.SetCellValue("People", "A3", 2)
	f.SetCellValue("People", "B3", "Zoë")

	_, err := f.NewSheet("Notes")
	require.NoError(t, err)
	f.SetCellValue("Notes", "A1", "note")
	f.SetCellValue("Notes", "B1", "author")
	f.SetCellValue("Notes", "A2", "short row")

	path := filepath.Join(dir, "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoad(t *testing.T) {
	path := writeTwoSheetBook(t, t.TempDir())
	opts, logs := testLogger()

	doc, err := Load(path, opts)
	require.NoError(t, err)

	assert.True(t, doc.Loaded)
	assert.Equal(t, "book", doc.Name)
	assert.Equal(t, path, doc.Path)
	require.Len(t, doc.Sheets, 2)

	people := doc.Sheets[0]
	assert.Equal(t, "People", people.Name)
	assert.Equal(t, []models.Value{models.Text("id"), models.Text("name")}, people.Headers)
	require.Len(t, people.Records, 2)
	v, _ := people.Records[0].Get("id")
	assert.Equal(t, models.Number(1), v)
	v, _ = people.Records[0].Get("name")
	assert.Equal(t, models.Text("Alice"), v)
	v, _ = people.Records[1].Get("name")
	assert.Equal(t, models.Text("Zoë"), v)

	notes := doc.Sheets[1]
	assert.Equal(t, "Notes", notes.Name)
	require.Len(t, notes.Records, 1)
	author, ok := notes.Records[0].Get("author")
	require.True(t, ok)
	assert.True(t, author.IsNull())

	assert.Contains(t, logs.String(), "loading workbook")
	assert.Contains(t, logs.String(), "sheets=2")
	assert.Contains(t, logs.String(), "workbook loaded")
	assert.Contains(t, logs.String(), "logger=sheetconv")
}

// copyFixture copies a file from testdata into dir.
func copyFixture(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad_XLS(t *testing.T) {
	dir := t.TempDir()
	path := copyFixture(t, dir, "people.xls")
	opts, logs := testLogger()

	doc, err := Load(path, opts)
	require.NoError(t, err)

	assert.True(t, doc.Loaded)
	assert.Equal(t, "people", doc.Name)
	require.Len(t, doc.Sheets, 2)
	assert.Contains(t, logs.String(), "format=xls")

	people := doc.Sheets[0]
	assert.Equal(t, "People", people.Name)
	assert.Equal(t, []models.Value{
		models.Text("id"), models.Text("name"), models.Text("email"), models.Text("joined"),
	}, people.Headers)
	require.Len(t, people.Records, 3)
	for _, r := range people.Records {
		assert.Equal(t, []string{"id", "name", "email", "joined"}, r.Keys())
	}
	v, _ := people.Records[0].Get("id")
	assert.Equal(t, 1.0, v.Float())
	v, _ = people.Records[0].Get("joined")
	require.Equal(t, models.KindTime, v.Kind())
	assert.Equal(t, "2024-01-15", v.Timestamp().Format(time.DateOnly))
	v, _ = people.Records[1].Get("email")
	assert.True(t, v.IsNull())

	notes := doc.Sheets[1]
	assert.Equal(t, []models.Value{models.Text("note"), models.Text("author")}, notes.Headers)
	require.Len(t, notes.Records, 1)
	v, _ = notes.Records[0].Get("author")
	assert.True(t, v.IsNull())

	out, err := Export(doc, ExportOptions{Format: output.JSON, Logger: opts.Logger})
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"email":null`)
	assert.Contains(t, string(data), `"author":null`)
}

func TestLoad_UnsupportedPaths(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,b\n1,2\n"), 0o644))
	dirWithExt := filepath.Join(dir, "folder.xlsx")
	require.NoError(t, os.Mkdir(dirWithExt, 0o755))

	tests := map[string]struct {
		path    string
		wantErr error
	}{
		"missing file":    {path: filepath.Join(dir, "missing.xlsx"), wantErr: ErrFileNotFound},
		"directory":       {path: dirWithExt, wantErr: ErrNotRegularFile},
		"wrong extension": {path: csvPath, wantErr: ErrUnsupportedExtension},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts, logs := testLogger()

			doc, err := Load(tt.path, opts)
			require.Error(t, err)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsUnsupportedPath(err))
			assert.False(t, IsParseError(err))
			require.NotNil(t, doc)
			assert.False(t, doc.Loaded)
			assert.Empty(t, doc.Sheets)
			assert.Contains(t, logs.String(), "level=ERROR")
			assert.Contains(t, logs.String(), "load failed")
		})
	}
}

func TestLoad_CaseSensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	src := writeTwoSheetBook(t, dir)
	upper := filepath.Join(dir, "BOOK.XLSX")
	require.NoError(t, os.Rename(src, upper))
	opts, _ := testLogger()

	doc, err := Load(upper, opts)

	assert.ErrorIs(t, err, ErrUnsupportedExtension)
	assert.False(t, doc.Loaded)
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"corrupt.xlsx", "corrupt.xls"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
			opts, _ := testLogger()

			doc, err := Load(path, opts)

			require.Error(t, err)
			assert.True(t, IsParseError(err))
			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, path, le.Path)
			assert.Equal(t, ReasonParse, le.Reason)
			assert.False(t, doc.Loaded)
			assert.Empty(t, doc.Sheets)
		})
	}
}

func TestNewLoader(t *testing.T) {
	dir := t.TempDir()
	opts, _ := testLogger()

	ok := NewLoader(writeTwoSheetBook(t, dir), opts)
	assert.True(t, ok.Loaded())
	assert.NoError(t, ok.Err())
	assert.Len(t, ok.Document().Sheets, 2)

	bad := NewLoader(filepath.Join(dir, "nope.xls"), opts)
	assert.False(t, bad.Loaded())
	assert.ErrorIs(t, bad.Err(), ErrFileNotFound)
	assert.NotNil(t, bad.Document())
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"book.xlsx", "book"},
		{"/data/2024.report.xls", "2024.report"},
		{"dir/noext", "noext"},
	}

	for _, tt := range tests {
		if got := displayName(tt.path); got != tt.expected {
			t.Errorf("displayName(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}

func TestLoadError(t *testing.T) {
	err := NewLoadError("a.xlsx", ReasonParse, assert.AnError)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "a.xlsx")
	assert.Contains(t, err.Error(), "parse")
}
