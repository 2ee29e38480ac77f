package interpreter

import (
	"github.com/thiremani/numel/ast"
)

// execFrom runs a counted range loop. Bounds and step are evaluated once.
// The loop variable advances by repeated addition of step, so a
// fractional step may stop short of max by a rounding error.
func (in *Interpreter) execFrom(s *ast.FromStatement) error {
	start, err := in.evalScalar(s.Start)
	if err != nil {
		return err
	}
	stop, err := in.evalScalar(s.Stop)
	if err != nil {
		return err
	}
	step, err := in.evalScalar(s.Step)
	if err != nil {
		return err
	}

	in.ns.PushFrame(LoopScope)
	defer in.ns.PopFrame()
	if err := in.bind(s.Iter, start); err != nil {
		return err
	}

	for i := start; i <= stop; i += step {
		in.ns.Set(s.Iter.Value, &Symbol{Val: i})
		if _, err := in.execBlock(s.Body, BlockScope); err != nil {
			return err
		}
	}
	return nil
}

// execFor seeds the loop variable with the first element, then for each
// later element runs the body and moves the variable to that element.
// The body runs once fewer than the list has elements.
func (in *Interpreter) execFor(s *ast.ForStatement) error {
	v, err := in.Evaluate(s.List)
	if err != nil {
		return err
	}
	list, ok := v.(List)
	if !ok {
		return newError(ExpectedList, s.List.Tok(), "", "for-loop over %s", v)
	}
	if len(list) == 0 {
		return newError(EmptyList, s.List.Tok(), "", "")
	}

	in.ns.PushFrame(LoopScope)
	defer in.ns.PopFrame()
	if err := in.bind(s.Iter, list[0]); err != nil {
		return err
	}

	for _, elem := range list[1:] {
		if _, err := in.execBlock(s.Body, BlockScope); err != nil {
			return err
		}
		in.ns.Set(s.Iter.Value, &Symbol{Val: elem})
	}
	return nil
}

func (in *Interpreter) evalScalar(expr ast.Expression) (Scalar, error) {
	v, err := in.Evaluate(expr)
	if err != nil {
		return 0, err
	}
	sc, ok := v.(Scalar)
	if !ok {
		return 0, newError(ExpectedScalar, expr.Tok(), "", "loop bound is %s", v)
	}
	return sc, nil
}
