package models

// Sheet is one worksheet of a loaded document.
type Sheet struct {
	// Name is the worksheet name.
	Name string `json:"name" yaml:"name"`
	// Headers holds the values of the first row, in column order.
	Headers []Value `json:"headers" yaml:"headers"`
	// Records holds every row after the first, keyed by Headers.
	Records []Record `json:"records" yaml:"records"`
}

// NewSheet builds a sheet from raw rows. The first row becomes the
// headers and each following row becomes a record.
func NewSheet(name string, rows [][]Value) Sheet {
	s := Sheet{
		Name:    name,
		Headers: []Value{},
		Records: []Record{},
	}
	if len(rows) == 0 {
		return s
	}
	s.Headers = append(s.Headers, rows[0]...)
	for _, row := range rows[1:] {
		s.Records = append(s.Records, NewRecord(s.Headers, row))
	}
	return s
}
