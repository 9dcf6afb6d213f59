// Package output serializes loaded documents.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/sheetconv/pkg/sheetconv/models"
)

// ErrUnsupportedFormat indicates an unknown output format name.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is a structured text encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOON Format = "toon"
)

var formats = []Format{JSON, YAML, TOON}

// Formats returns all supported formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name, ignoring case and surrounding space.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Ext returns the file extension for f, without the leading dot.
func (f Format) Ext() string { return string(f) }

// Write encodes doc to w in format f.
func Write(w io.Writer, doc *models.Document, f Format, pretty bool) error {
	switch f {
	case JSON:
		return writeJSON(w, doc, pretty)
	case YAML:
		return writeYAML(w, doc)
	case TOON:
		return writeTOON(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// Marshal encodes doc in format f.
func Marshal(doc *models.Document, f Format, pretty bool) ([]byte, error) {
	var sb strings.Builder
	if err := Write(&sb, doc, f, pretty); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
