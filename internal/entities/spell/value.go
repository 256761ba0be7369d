package spell

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Value is a loosely typed scalar from a spell document. Wizard-authored
// spells store counts, durations and magnitudes either as numbers or as
// strings ("3", "2d6", "instant"), so Value keeps both readings.
type Value struct {
	Number  float64
	Formula string
	set     bool
}

// Num returns a numeric Value
func Num(n float64) Value {
	return Value{Number: n, set: true}
}

// Text returns a Value holding a string. Numeric strings are read as numbers.
func Text(s string) Value {
	v := Value{}
	v.setString(s)
	return v
}

// IsSet reports whether the field was present in the document
func (v Value) IsSet() bool {
	return v.set
}

// IsFormula reports whether the value is a non-numeric string such as a
// dice formula
func (v Value) IsFormula() bool {
	return v.set && v.Formula != ""
}

// IsZero reports whether the value is missing or numerically zero
func (v Value) IsZero() bool {
	return !v.set || (v.Formula == "" && v.Number == 0)
}

// IntOr returns the integer value, or def when the value is missing, zero or
// not numeric.
func (v Value) IntOr(def int) int {
	if v.IsZero() || v.IsFormula() {
		return def
	}
	return int(v.Number)
}

// FloatOr returns the numeric value, or def when the value is missing, zero
// or not numeric.
func (v Value) FloatOr(def float64) float64 {
	if v.IsZero() || v.IsFormula() {
		return def
	}
	return v.Number
}

// StringOr returns the display form of the value, or def when it is missing
// or zero.
func (v Value) StringOr(def string) string {
	if v.IsZero() {
		return def
	}
	return v.String()
}

// String returns the value as it should be displayed
func (v Value) String() string {
	if !v.set {
		return ""
	}
	if v.Formula != "" {
		return v.Formula
	}
	return strconv.FormatFloat(v.Number, 'f', -1, 64)
}

// UnmarshalJSON accepts numbers, strings, booleans and null
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*v = Value{}

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v.setString(s)
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		v.Number = n
		v.set = true
	}
	return nil
}

// MarshalJSON writes numbers as JSON numbers and formulas as strings
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	if v.Formula != "" {
		return json.Marshal(v.Formula)
	}
	return json.Marshal(v.Number)
}

func (v *Value) setString(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	v.set = true
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		v.Number = n
		return
	}
	v.Formula = s
}
