package interpreter

import (
	"fmt"
	"math"

	"github.com/thiremani/numel/token"
)

// opFunc applies a binary operator to two scalars.
type opFunc func(left, right float64) float64

// defaultOps maps operator symbols to their scalar implementation.
// Division by zero follows IEEE 754 and is not an error.
var defaultOps = map[string]opFunc{
	token.SYM_ADD: func(left, right float64) float64 { return left + right },
	token.SYM_SUB: func(left, right float64) float64 { return left - right },
	token.SYM_MUL: func(left, right float64) float64 { return left * right },
	token.SYM_QUO: func(left, right float64) float64 { return left / right },
	token.SYM_POW: math.Pow,
}

// Apply evaluates left <op> right with broadcasting: two lists combine
// elementwise and must have equal lengths, a scalar combines with every
// element of a list, recursively through nested lists.
func Apply(op token.Token, left, right Value) (Value, error) {
	fn, ok := defaultOps[op.Literal]
	if !ok {
		panic(fmt.Sprintf("unsupported operator %q", op.Literal))
	}
	return broadcast(fn, op, left, right)
}

func broadcast(fn opFunc, op token.Token, left, right Value) (Value, error) {
	switch l := left.(type) {
	case Scalar:
		switch r := right.(type) {
		case Scalar:
			return Scalar(fn(float64(l), float64(r))), nil
		case List:
			out := make(List, len(r))
			for i, elem := range r {
				v, err := broadcast(fn, op, l, elem)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return out, nil
		}
	case List:
		if r, ok := right.(List); ok && len(l) != len(r) {
			return nil, newError(InvalidListLength, op, "", "%d != %d", len(l), len(r))
		}
		out := make(List, len(l))
		for i, elem := range l {
			rhs := right
			if r, ok := right.(List); ok {
				rhs = r[i]
			}
			v, err := broadcast(fn, op, elem, rhs)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	panic("unreachable value type")
}
