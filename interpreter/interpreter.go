package interpreter

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/thiremani/numel/ast"
	"github.com/thiremani/numel/token"
	"github.com/thiremani/numel/types"
)

// Function is a user function. Calls substitute argument expressions
// for Params in Body; nothing is evaluated ahead of time.
type Function struct {
	Name   string
	Params []string
	Body   ast.Expression
}

// Symbol is a namespace entry: exactly one of Val and Func is set.
type Symbol struct {
	Val  Value
	Func *Function
}

type Interpreter struct {
	out     io.Writer
	ns      *Namespace[*Symbol]
	session bool // a persistent top-level frame is open
}

// New returns an interpreter that prints to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		out: out,
		ns:  NewNamespace[*Symbol](),
	}
}

// Interpret executes program as one top-level block and removes all of
// its names afterwards.
func (in *Interpreter) Interpret(program *ast.Program) error {
	_, err := in.execBlock(program.Statements, ProgramScope)
	return err
}

// Eval executes program in a top-level frame that outlives the call, so
// later calls see its declarations. Close drops that frame.
func (in *Interpreter) Eval(program *ast.Program) error {
	if !in.session {
		in.ns.PushFrame(ProgramScope)
		in.session = true
	}
	return in.execute(program.Statements)
}

func (in *Interpreter) Close() {
	if in.session {
		in.ns.PopFrame()
		in.session = false
	}
}

// Defined reports whether name is bound to a variable or function.
func (in *Interpreter) Defined(name string) bool {
	return in.ns.Has(name)
}

// Names returns every bound variable and function name, sorted.
func (in *Interpreter) Names() []string {
	names := make([]string, 0, len(in.ns.Elems))
	for name := range in.ns.Elems {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// execBlock runs stmts in a fresh frame and returns the names it introduced.
func (in *Interpreter) execBlock(stmts []ast.Statement, sk ScopeKind) (names []string, err error) {
	in.ns.PushFrame(sk)
	defer func() {
		names = in.ns.PopFrame()
	}()
	err = in.execute(stmts)
	return
}

func (in *Interpreter) execute(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		var err error
		switch s := stmt.(type) {
		case *ast.LetStatement:
			err = in.execLet(s)
		case *ast.FuncStatement:
			err = in.execFunc(s)
		case *ast.PrintStatement:
			err = in.execPrint(s)
		case *ast.BlockStatement:
			_, err = in.execBlock(s.Statements, BlockScope)
		case *ast.FromStatement:
			err = in.execFrom(s)
		case *ast.ForStatement:
			err = in.execFor(s)
		case *ast.DestructureStatement:
			err = in.execDestructure(s)
		default:
			panic(fmt.Sprintf("unsupported statement %T", stmt))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// declared reports whether name is taken by a constant, a built-in
// function or any live binding.
func (in *Interpreter) declared(name string) bool {
	return types.IsReservedConst(name) || types.IsBuiltinFunc(name) || in.ns.Has(name)
}

// bind introduces a new variable in the innermost frame.
func (in *Interpreter) bind(ident *ast.Identifier, v Value) error {
	if in.declared(ident.Value) {
		return newError(Redeclaration, ident.Token, ident.Value, "")
	}
	in.ns.Put(ident.Value, &Symbol{Val: v})
	return nil
}

func (in *Interpreter) execLet(s *ast.LetStatement) error {
	if in.declared(s.Name.Value) {
		return newError(Redeclaration, s.Name.Token, s.Name.Value, "")
	}
	v, err := in.Evaluate(s.Value)
	if err != nil {
		return err
	}
	return in.bind(s.Name, v)
}

func (in *Interpreter) execFunc(s *ast.FuncStatement) error {
	if in.declared(s.Name.Value) {
		return newError(Redeclaration, s.Name.Token, s.Name.Value, "")
	}

	fn := &Function{
		Name:   s.Name.Value,
		Params: make([]string, 0, len(s.Parameters)),
		Body:   s.Body,
	}
	seen := make(map[string]bool, len(s.Parameters))
	for _, p := range s.Parameters {
		if seen[p.Value] {
			return newError(Redeclaration, p.Token, p.Value, "duplicate parameter of %q", fn.Name)
		}
		seen[p.Value] = true
		fn.Params = append(fn.Params, p.Value)
	}

	in.ns.Put(fn.Name, &Symbol{Func: fn})
	return nil
}

func (in *Interpreter) execPrint(s *ast.PrintStatement) error {
	v, err := in.Evaluate(s.Expression)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(in.out, v.String()); err != nil {
		return fmt.Errorf("%s: print: %w", s.Token.Loc(), err)
	}
	return nil
}

// execDestructure binds [a, b, ...] = [x, y, ...] pairwise, left to
// right. Bindings made before a failing pair are kept.
func (in *Interpreter) execDestructure(s *ast.DestructureStatement) error {
	names, ok := s.Names.(*ast.ListLiteral)
	if !ok {
		return newError(ExpectedList, s.Names.Tok(), "", "left side of destructuring is %s", s.Names)
	}
	values, ok := s.Value.(*ast.ListLiteral)
	if !ok {
		return newError(ExpectedList, s.Value.Tok(), "", "right side of destructuring is %s", s.Value)
	}
	if len(names.Elements) != len(values.Elements) {
		return newError(InvalidListLength, s.Token, "", "%d names for %d values", len(names.Elements), len(values.Elements))
	}

	for i, elem := range names.Elements {
		ident, ok := elem.(*ast.Identifier)
		if !ok {
			return newError(ExpectedIdentifier, elem.Tok(), "", "got %s", elem)
		}
		if in.declared(ident.Value) {
			return newError(Redeclaration, ident.Token, ident.Value, "")
		}
		v, err := in.Evaluate(values.Elements[i])
		if err != nil {
			return err
		}
		if err := in.bind(ident, v); err != nil {
			return err
		}
	}
	return nil
}

// lookupVariable resolves name to a constant or a variable.
func (in *Interpreter) lookupVariable(name string) (Value, bool) {
	if c, ok := types.Const(name); ok {
		return Scalar(c), true
	}
	if sym, ok := in.ns.Get(name); ok && sym.Val != nil {
		return sym.Val, true
	}
	return nil, false
}

// Evaluate computes the value of expr against the current namespace.
func (in *Interpreter) Evaluate(expr ast.Expression) (Value, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		if v, ok := in.lookupVariable(e.Value); ok {
			return v, nil
		}
		return nil, newError(UndefinedVariable, e.Token, e.Value, "")

	case *ast.FloatLiteral:
		f, err := parseFloat(e.Token, e.Value)
		if err != nil {
			return nil, err
		}
		return Scalar(f), nil

	case *ast.NegFloatLiteral:
		f, err := parseFloat(e.Token, e.Value)
		if err != nil {
			return nil, err
		}
		return Scalar(-f), nil

	case *ast.InfixExpression:
		left, err := in.Evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := in.Evaluate(e.Right)
		if err != nil {
			return nil, err
		}
		return Apply(e.Token, left, right)

	case *ast.ListLiteral:
		out := make(List, len(e.Elements))
		for i, elem := range e.Elements {
			v, err := in.Evaluate(elem)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case *ast.CallExpression:
		return in.call(e)
	}
	panic(fmt.Sprintf("unsupported expression %T", expr))
}

func parseFloat(tok token.Token, lit string) (float64, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, &token.CompileError{Token: tok, Msg: fmt.Sprintf("invalid float literal %q", lit)}
	}
	return f, nil
}

func (in *Interpreter) call(e *ast.CallExpression) (Value, error) {
	name := e.Function.Value

	if f, ok := types.BuiltinFunc(name); ok {
		if len(e.Arguments) != 1 {
			return nil, newError(InvalidArguments, e.Token, name, "expected 1 argument, got %d", len(e.Arguments))
		}
		arg, err := in.Evaluate(e.Arguments[0])
		if err != nil {
			return nil, err
		}
		return mapScalar(arg, f), nil
	}

	sym, ok := in.ns.Get(name)
	if !ok || sym.Func == nil {
		return nil, newError(UndefinedFunction, e.Token, name, "")
	}
	fn := sym.Func
	if len(e.Arguments) != len(fn.Params) {
		return nil, newError(InvalidArguments, e.Token, name, "expected %d arguments, got %d", len(fn.Params), len(e.Arguments))
	}

	args := make(map[string]ast.Expression, len(fn.Params))
	for i, p := range fn.Params {
		args[p] = e.Arguments[i]
	}
	body, err := in.substitute(fn.Body, args)
	if err != nil {
		return nil, err
	}
	return in.Evaluate(body)
}
