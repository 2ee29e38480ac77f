package types

import (
	"math"
	"slices"
)

const (
	PI  = "PI"
	TAU = "TAU"
	GLR = "GLR"

	SIN = "sin"
	COS = "cos"
	TAN = "tan"
)

// GoldenRatio is (1 + sqrt 5) / 2.
const GoldenRatio = 1.618033988749894

var reservedConsts = map[string]float64{
	PI:  math.Pi,
	TAU: 2 * math.Pi,
	GLR: GoldenRatio,
}

var builtinFuncs = map[string]func(float64) float64{
	SIN: math.Sin,
	COS: math.Cos,
	TAN: math.Tan,
}

// Const returns the value of a reserved constant.
func Const(name string) (float64, bool) {
	v, ok := reservedConsts[name]
	return v, ok
}

// IsReservedConst reports whether name is one of the built-in constants.
func IsReservedConst(name string) bool {
	_, ok := reservedConsts[name]
	return ok
}

// BuiltinFunc returns the scalar function behind a built-in name.
func BuiltinFunc(name string) (func(float64) float64, bool) {
	f, ok := builtinFuncs[name]
	return f, ok
}

func IsBuiltinFunc(name string) bool {
	_, ok := builtinFuncs[name]
	return ok
}

// ReservedNames returns every constant and built-in function name, sorted.
func ReservedNames() []string {
	names := make([]string, 0, len(reservedConsts)+len(builtinFuncs))
	for n := range reservedConsts {
		names = append(names, n)
	}
	for n := range builtinFuncs {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
