package models

// Document is a loaded spreadsheet file.
type Document struct {
	// Name is the file name without its extension.
	Name string `json:"name" yaml:"name"`
	// Path is the source path as given to the loader.
	Path string `json:"path" yaml:"path"`
	// Sheets holds the worksheets in workbook order.
	Sheets []Sheet `json:"sheets" yaml:"sheets"`
	// Loaded is true iff at least one sheet was read.
	Loaded bool `json:"-" yaml:"-"`
}
