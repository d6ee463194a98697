// Package models defines the value types shared by the sheet and its parsers.
package models

import (
	"strconv"

	gojson "github.com/goccy/go-json"
)

// Kind identifies which variant a Cell holds.
type Kind uint8

const (
	// KindNull is an empty field.
	KindNull Kind = iota
	// KindString holds arbitrary text.
	KindString
	// KindBool holds the literals true and false.
	KindBool
	// KindInt holds a 64-bit signed integer.
	KindInt
	// KindFloat holds a 64-bit IEEE-754 float.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Cell is a single typed table value. The zero Cell is Null.
// Cells are compared by value, so they can be used as map keys.
type Cell struct {
	kind Kind
	s    string
	b    bool
	i    int64
	f    float64
}

// Null returns the Null cell.
func Null() Cell { return Cell{} }

// NewString returns a String cell.
func NewString(s string) Cell { return Cell{kind: KindString, s: s} }

// NewBool returns a Bool cell.
func NewBool(b bool) Cell { return Cell{kind: KindBool, b: b} }

// NewInt returns an Int cell.
func NewInt(i int64) Cell { return Cell{kind: KindInt, i: i} }

// NewFloat returns a Float cell.
func NewFloat(f float64) Cell { return Cell{kind: KindFloat, f: f} }

// Kind returns the variant held by c.
func (c Cell) Kind() Kind { return c.kind }

// IsNull reports whether c is Null.
func (c Cell) IsNull() bool { return c.kind == KindNull }

// AsString returns the text of a String cell.
func (c Cell) AsString() (string, bool) {
	return c.s, c.kind == KindString
}

// AsBool returns the value of a Bool cell.
func (c Cell) AsBool() (bool, bool) {
	return c.b, c.kind == KindBool
}

// AsInt returns the value of an Int cell.
func (c Cell) AsInt() (int64, bool) {
	return c.i, c.kind == KindInt
}

// AsFloat returns the value of a Float cell, widening Int cells.
func (c Cell) AsFloat() (float64, bool) {
	switch c.kind {
	case KindFloat:
		return c.f, true
	case KindInt:
		return float64(c.i), true
	default:
		return 0, false
	}
}

// Value returns the cell as a native Go value: nil, string, bool, int64 or float64.
func (c Cell) Value() interface{} {
	switch c.kind {
	case KindString:
		return c.s
	case KindBool:
		return c.b
	case KindInt:
		return c.i
	case KindFloat:
		return c.f
	default:
		return nil
	}
}

// Equal reports whether c and other hold the same variant and the same value.
// Cells of different kinds are never equal, so Int(1) != Float(1).
func (c Cell) Equal(other Cell) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case KindString:
		return c.s == other.s
	case KindBool:
		return c.b == other.b
	case KindInt:
		return c.i == other.i
	case KindFloat:
		return c.f == other.f
	default:
		return true
	}
}

// Compare orders cells by kind first, then by value within a kind.
// It returns -1, 0 or +1. NaN floats compare equal to every float.
func (c Cell) Compare(other Cell) int {
	if c.kind != other.kind {
		if c.kind < other.kind {
			return -1
		}
		return 1
	}
	switch c.kind {
	case KindString:
		switch {
		case c.s < other.s:
			return -1
		case c.s > other.s:
			return 1
		}
	case KindBool:
		if c.b != other.b {
			if !c.b {
				return -1
			}
			return 1
		}
	case KindInt:
		switch {
		case c.i < other.i:
			return -1
		case c.i > other.i:
			return 1
		}
	case KindFloat:
		switch {
		case c.f < other.f:
			return -1
		case c.f > other.f:
			return 1
		}
	}
	return 0
}

// String renders the cell the way it is written to delimited text.
// Null renders as the empty string.
func (c Cell) String() string {
	switch c.kind {
	case KindString:
		return c.s
	case KindBool:
		return strconv.FormatBool(c.b)
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return strconv.FormatFloat(c.f, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON encodes the cell as its native JSON value.
func (c Cell) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(c.Value())
}
