package output

import (
	"encoding/json"
	"io"

	"github.com/ukaji3/sheetconv/pkg/sheetconv/models"
)

func writeJSON(w io.Writer, doc *models.Document, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}
