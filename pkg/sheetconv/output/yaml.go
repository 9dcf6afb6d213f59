package output

import (
	"io"

	"github.com/ukaji3/sheetconv/pkg/sheetconv/models"
	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, doc *models.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
