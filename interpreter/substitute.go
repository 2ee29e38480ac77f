package interpreter

import (
	"fmt"

	"github.com/thiremani/numel/ast"
)

// substitute copies expr, replacing each identifier named in args with
// the caller's unevaluated argument expression. Inserted arguments are
// not substituted again. Any other identifier must already resolve.
func (in *Interpreter) substitute(expr ast.Expression, args map[string]ast.Expression) (ast.Expression, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		if arg, ok := args[e.Value]; ok {
			return arg, nil
		}
		if _, ok := in.lookupVariable(e.Value); ok {
			return e, nil
		}
		return nil, newError(UndefinedVariable, e.Token, e.Value, "")

	case *ast.FloatLiteral, *ast.NegFloatLiteral:
		return e, nil

	case *ast.InfixExpression:
		left, err := in.substitute(e.Left, args)
		if err != nil {
			return nil, err
		}
		right, err := in.substitute(e.Right, args)
		if err != nil {
			return nil, err
		}
		return &ast.InfixExpression{
			Token:    e.Token,
			Left:     left,
			Operator: e.Operator,
			Right:    right,
		}, nil

	case *ast.CallExpression:
		callArgs, err := in.substituteAll(e.Arguments, args)
		if err != nil {
			return nil, err
		}
		return &ast.CallExpression{
			Token:     e.Token,
			Function:  e.Function,
			Arguments: callArgs,
		}, nil

	case *ast.ListLiteral:
		elems, err := in.substituteAll(e.Elements, args)
		if err != nil {
			return nil, err
		}
		return &ast.ListLiteral{Token: e.Token, Elements: elems}, nil
	}
	panic(fmt.Sprintf("cannot substitute into %T", expr))
}

func (in *Interpreter) substituteAll(exprs []ast.Expression, args map[string]ast.Expression) ([]ast.Expression, error) {
	out := make([]ast.Expression, len(exprs))
	for i, expr := range exprs {
		e, err := in.substitute(expr, args)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
