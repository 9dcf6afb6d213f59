// Package models defines data structures for loaded spreadsheets.
package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNull is an empty or blank cell.
	KindNull Kind = iota
	// KindText is a string cell, including error literals such as #N/A.
	KindText
	// KindNumber is a numeric cell.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindTime is a numeric cell formatted as a date or time.
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value is a single cell value. The zero Value is null.
type Value struct {
	kind Kind
	text string
	num  float64
	b    bool
	t    time.Time
}

// Null returns the null value.
func Null() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Time returns a date/time value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the text of a KindText value and "" otherwise.
func (v Value) Str() string { return v.text }

// Float returns the number of a KindNumber value and 0 otherwise.
func (v Value) Float() float64 { return v.num }

// Boolean returns the flag of a KindBool value and false otherwise.
func (v Value) Boolean() bool { return v.b }

// Timestamp returns the time of a KindTime value and the zero time otherwise.
func (v Value) Timestamp() time.Time { return v.t }

// Interface returns v as a plain Go value: nil, string, float64, bool or time.Time.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindTime:
		return v.t
	default:
		return nil
	}
}

// Key returns the label used when v is a header, i.e. a record key.
func (v Value) Key() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTime:
		return v.t.Format(time.RFC3339)
	default:
		return "null"
	}
}

// String implements fmt.Stringer.
func (v Value) String() string { return v.Key() }

// MarshalJSON encodes v using the native JSON scalar for its kind.
// Times are written as RFC 3339 strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return marshalNoEscape(v.text)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindTime:
		return json.Marshal(v.t.Format(time.RFC3339))
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes JSON scalars. Strings always decode as text, so a
// time written by MarshalJSON reads back as its RFC 3339 text.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Null()
	case string:
		*v = Text(x)
	case float64:
		*v = Number(x)
	case bool:
		*v = Bool(x)
	default:
		return &json.UnmarshalTypeError{Value: string(data), Type: valueType}
	}
	return nil
}

// MarshalYAML encodes v using the native YAML scalar for its kind.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}
