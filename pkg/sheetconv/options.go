// Package sheetconv loads spreadsheet workbooks into header-keyed records
// and writes them out as structured text.
package sheetconv

import (
	"log/slog"

	"github.com/ukaji3/sheetconv/pkg/sheetconv/output"
)

// LoggerName is attached to every log record emitted by this package.
const LoggerName = "sheetconv"

// Options configures loading.
type Options struct {
	// Logger receives load progress and failures. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	return namedLogger(o.Logger)
}

// ExportOptions configures Export.
type ExportOptions struct {
	// Format selects the output encoding. Empty means JSON.
	Format output.Format
	// Pretty indents the output where the format supports it.
	Pretty bool
	// Logger receives export results. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultExportOptions returns default export options.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Format: output.JSON,
	}
}

func (o ExportOptions) format() output.Format {
	if o.Format == "" {
		return output.JSON
	}
	return o.Format
}

func (o ExportOptions) logger() *slog.Logger {
	return namedLogger(o.Logger)
}

func namedLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With("logger", LoggerName)
}
