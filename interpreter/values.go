package interpreter

import (
	"math"
	"strconv"
	"strings"
)

// Value is a runtime value: a Scalar or a List.
type Value interface {
	String() string
	value()
}

type Scalar float64

// List may nest to any depth. Arithmetic requires matching lengths
// level by level; nothing else about its shape is enforced.
type List []Value

func (Scalar) value() {}
func (List) value()   {}

func (s Scalar) String() string {
	return FormatFloat(float64(s))
}

func (l List) String() string {
	parts := make([]string, 0, len(l))
	for _, v := range l {
		parts = append(parts, v.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatFloat renders f in plain decimal notation with at least one
// fractional digit, e.g. 14.0 or 0.1.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// mapScalar applies f to every scalar in v, keeping the list structure.
func mapScalar(v Value, f func(float64) float64) Value {
	switch v := v.(type) {
	case Scalar:
		return Scalar(f(float64(v)))
	case List:
		out := make(List, len(v))
		for i, elem := range v {
			out[i] = mapScalar(elem, f)
		}
		return out
	}
	panic("unreachable value type")
}
