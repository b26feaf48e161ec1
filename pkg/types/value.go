package types

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies the dynamic type held by a Value
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueInt
	ValueFloat
)

// String returns the lowercase name of the value kind
func (k ValueKind) String() string {
	switch k {
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	default:
		return "string"
	}
}

// Value is a single element flowing through a pipeline. Input lines start
// as strings; conversion stages turn them into numbers.
type Value struct {
	kind ValueKind
	str  string
	i    int64
	f    float64
}

// StringValue wraps a string
func StringValue(s string) Value {
	return Value{kind: ValueString, str: s}
}

// IntValue wraps an integer
func IntValue(i int64) Value {
	return Value{kind: ValueInt, i: i}
}

// FloatValue wraps a float
func FloatValue(f float64) Value {
	return Value{kind: ValueFloat, f: f}
}

// Kind returns the dynamic type of the value
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNumeric reports whether the value is an int or a float
func (v Value) IsNumeric() bool {
	return v.kind == ValueInt || v.kind == ValueFloat
}

// Int returns the integer held by v. ok is false unless v is an int.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == ValueInt
}

// Float returns v as a float64. Ints are widened; ok is false for strings.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case ValueInt:
		return float64(v.i), true
	case ValueFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// String renders the value the way it is printed on standard output.
// Integral floats keep a trailing ".0" so they stay recognisable as floats.
func (v Value) String() string {
	switch v.kind {
	case ValueInt:
		return strconv.FormatInt(v.i, 10)
	case ValueFloat:
		return formatFloat(v.f)
	default:
		return v.str
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
