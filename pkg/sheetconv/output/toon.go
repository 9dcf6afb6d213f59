package output

import (
	"bytes"
	"encoding/json"
	"io"

	toon "github.com/mateuszkardas/toon-go"
	"github.com/ukaji3/sheetconv/pkg/sheetconv/models"
)

// writeTOON encodes the generic tree of doc. Record key order is not
// preserved; uniform record arrays render as TOON tables.
func writeTOON(w io.Writer, doc *models.Document) error {
	tree, err := genericTree(doc)
	if err != nil {
		return err
	}
	s, err := toon.Marshal(tree, nil)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	if len(s) > 0 && s[len(s)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// genericTree converts doc to maps, slices and scalars via its JSON form.
func genericTree(doc *models.Document) (map[string]interface{}, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, doc, false); err != nil {
		return nil, err
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &tree); err != nil {
		return nil, err
	}
	return tree, nil
}
