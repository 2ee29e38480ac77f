package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thiremani/numel/ast"
	"github.com/thiremani/numel/lexer"
)

func mustParse(t *testing.T, name, src string) *ast.Program {
	t.Helper()
	program, err := NewScriptParser(lexer.New(name, src)).Parse()
	require.NoError(t, err, "unexpected parse error for input %q", src)
	return program
}

func parseErr(t *testing.T, name, src string) *ParseError {
	t.Helper()
	_, err := NewScriptParser(lexer.New(name, src)).Parse()
	require.Error(t, err, "expected a parse error for input %q", src)
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected *ParseError, got %T (%v)", err, err)
	return pe
}

// parseOneExpr parses src as a single print statement and returns its expression.
func parseOneExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	prog := mustParse(t, "test", src)
	require.Len(t, prog.Statements, 1)
	ps, ok := prog.Statements[0].(*ast.PrintStatement)
	require.True(t, ok, "expected print statement, got %T", prog.Statements[0])
	return ps.Expression
}

func testIdentifier(t *testing.T, exp ast.Expression, value string) bool {
	ident, ok := exp.(*ast.Identifier)
	if !ok {
		t.Errorf("exp not *ast.Identifier. got=%T", exp)
		return false
	}

	if ident.Value != value {
		t.Errorf("ident.Value not %s. got=%s", value, ident.Value)
		return false
	}

	if ident.Tok().Literal != value {
		t.Errorf("ident.TokenLiteral not %s. got=%s", value,
			ident.Tok().Literal)
		return false
	}

	return true
}

func testFloatLiteral(t *testing.T, exp ast.Expression, expected string) bool {
	fl, ok := exp.(*ast.FloatLiteral)
	if !ok {
		t.Errorf("expected *ast.FloatLiteral, got %T", exp)
		return false
	}
	if fl.Value != expected {
		t.Errorf("expected float %s, got %s", expected, fl.Value)
		return false
	}
	return true
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2 + 3 * 4", "(2.0 + (3.0 * 4.0))"},
		{"2 * 3 + 4", "((2.0 * 3.0) + 4.0)"},
		{"a - b - c", "((a - b) - c)"},
		{"a / b / c", "((a / b) / c)"},
		{"2 ^ 3 ^ 2", "((2.0 ^ 3.0) ^ 2.0)"},
		{"a * b ^ 2", "(a * (b ^ 2.0))"},
		{"a ^ 2 * b", "((a ^ 2.0) * b)"},
		{"(a + b) * c", "((a + b) * c)"},
		{"a + (b * c)", "(a + (b * c))"},
		{"x * -1.5", "(x * -1.5)"},
		{"f(a + b, 2) * 3", "(f((a + b), 2.0) * 3.0)"},
		{"[1, [2, 3]] + 1", "([1.0, [2.0, 3.0]] + 1.0)"},
		{"sin()", "sin()"},
		{"[]", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			exp := parseOneExpr(t, tt.input)
			require.Equal(t, tt.expected, exp.String())
		})
	}
}

func TestNegativeLiteral(t *testing.T) {
	prog := mustParse(t, "neg", "x = -.25")
	require.Len(t, prog.Statements, 1)
	let, ok := prog.Statements[0].(*ast.LetStatement)
	require.True(t, ok, "expected *ast.LetStatement, got %T", prog.Statements[0])
	neg, ok := let.Value.(*ast.NegFloatLiteral)
	require.True(t, ok, "expected *ast.NegFloatLiteral, got %T", let.Value)
	require.Equal(t, "0.25", neg.Value)
	require.Equal(t, "-", neg.Token.Literal)

	pe := parseErr(t, "neg", "-1.0")
	require.Equal(t, UnexpectedToken, pe.Kind)

	pe = parseErr(t, "neg", "y = -x")
	require.Equal(t, MissingLiteral, pe.Kind)
	require.Equal(t, "neg:1:5: missing literal after '-'", pe.Error())
}

func TestListLiteral(t *testing.T) {
	exp := parseOneExpr(t, "[1, x, [2, -3]]")
	list, ok := exp.(*ast.ListLiteral)
	require.True(t, ok, "expected *ast.ListLiteral, got %T", exp)
	require.Len(t, list.Elements, 3)
	testFloatLiteral(t, list.Elements[0], "1.0")
	testIdentifier(t, list.Elements[1], "x")

	inner, ok := list.Elements[2].(*ast.ListLiteral)
	require.True(t, ok)
	require.Len(t, inner.Elements, 2)
	require.IsType(t, &ast.NegFloatLiteral{}, inner.Elements[1])
}

func TestCallArguments(t *testing.T) {
	exp := parseOneExpr(t, "area(r, 2 * h)")
	call, ok := exp.(*ast.CallExpression)
	require.True(t, ok, "expected *ast.CallExpression, got %T", exp)
	require.Equal(t, "area", call.Function.Value)
	require.Len(t, call.Arguments, 2)
	testIdentifier(t, call.Arguments[0], "r")
	require.Equal(t, "(2.0 * h)", call.Arguments[1].String())
}

func TestMalformedCallArguments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"missing comma", "f(1 2)", ExpectedGot},
		{"missing closing paren", "f(1, 2", EOF},
		{"missing closing bracket", "x = [1, 2", EOF},
		{"trailing comma", "f(1, )", UnexpectedToken},
		{"unclosed group", "(1 + 2", EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := parseErr(t, "malformed_test", tt.input)
			require.Equal(t, tt.kind, pe.Kind, "error: %v", pe)
		})
	}
}

func TestStatementDispatch(t *testing.T) {
	input := `x = 1
f(a, b) = a * b
f(x, 2)
3
(x)
[p, q] = [1, 2]
[x, 2]
{
    y = 2
}
# trailing comment = with an equals sign`

	prog := mustParse(t, "dispatch", input)
	require.Len(t, prog.Statements, 8)

	require.IsType(t, &ast.LetStatement{}, prog.Statements[0])
	fn, ok := prog.Statements[1].(*ast.FuncStatement)
	require.True(t, ok, "expected *ast.FuncStatement, got %T", prog.Statements[1])
	require.Equal(t, "f", fn.Name.Value)
	require.Len(t, fn.Parameters, 2)
	require.Equal(t, "(a * b)", fn.Body.String())

	require.IsType(t, &ast.PrintStatement{}, prog.Statements[2])
	require.IsType(t, &ast.PrintStatement{}, prog.Statements[3])
	require.IsType(t, &ast.PrintStatement{}, prog.Statements[4])

	ds, ok := prog.Statements[5].(*ast.DestructureStatement)
	require.True(t, ok, "expected *ast.DestructureStatement, got %T", prog.Statements[5])
	require.Equal(t, "[p, q] = [1.0, 2.0]", ds.String())

	require.IsType(t, &ast.PrintStatement{}, prog.Statements[6])
	block, ok := prog.Statements[7].(*ast.BlockStatement)
	require.True(t, ok)
	require.Len(t, block.Statements, 1)
}

func TestFromStatement(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expStr string
	}{
		{
			name:   "with step",
			input:  "from 0 to 3 as i with step 1.5 { i }",
			expStr: "from 0.0 to 3.0 as i with step 1.5 {\ni\n}",
		},
		{
			name:   "default step",
			input:  "from a to b + 1 as k {\n  k\n}",
			expStr: "from a to (b + 1.0) as k with step 1.0 {\nk\n}",
		},
		{
			name:   "brace on next line",
			input:  "from 1 to 2 as j\n{\n}",
			expStr: "from 1.0 to 2.0 as j with step 1.0 {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := mustParse(t, "from", tt.input)
			require.Len(t, prog.Statements, 1)
			stmt, ok := prog.Statements[0].(*ast.FromStatement)
			require.True(t, ok, "expected *ast.FromStatement, got %T", prog.Statements[0])
			require.Equal(t, tt.expStr, stmt.String())
		})
	}
}

func TestFromStatementErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     ErrorKind
		expected string
	}{
		{"missing to", "from 0 as i { }", ExpectedGot, `"to"`},
		{"missing as", "from 0 to 3 i { }", ExpectedGot, `"as"`},
		{"missing step", "from 0 to 3 as i with 2 { }", ExpectedGot, `"step"`},
		{"loop variable not ident", "from 0 to 3 as 4 { }", Expected, "loop variable"},
		{"unclosed body", "from 0 to 3 as i { i", EOF, `"}"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := parseErr(t, "from", tt.input)
			require.Equal(t, tt.kind, pe.Kind, "error: %v", pe)
			require.Equal(t, tt.expected, pe.Expected)
		})
	}
}

func TestForStatement(t *testing.T) {
	prog := mustParse(t, "for", "for v in [1, 2] {\n  v * 2\n}")
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ast.ForStatement)
	require.True(t, ok, "expected *ast.ForStatement, got %T", prog.Statements[0])
	testIdentifier(t, stmt.Iter, "v")
	require.Equal(t, "[1.0, 2.0]", stmt.List.String())
	require.Len(t, stmt.Body, 1)

	pe := parseErr(t, "for", "for v of xs { }")
	require.Equal(t, ExpectedGot, pe.Kind)
	require.Equal(t, `"in"`, pe.Expected)
}

func TestUnexpectedTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
		msg   string
	}{
		{"unknown character", "x = 1 $ 2", UnexpectedToken, `unexpected_test:1:7: unexpected token "$"`},
		{"stray keyword", "to", UnexpectedKeyword, `unexpected_test:1:1: unexpected keyword "to"`},
		{"keyword in expression", "x = as", UnexpectedKeyword, `unexpected_test:1:5: unexpected keyword "as"`},
		{"closing brace", "}", UnexpectedToken, `unexpected_test:1:1: unexpected token "}"`},
		{"dangling operator", "x = 1 +", EOF, `unexpected_test:1:8: unexpected end of tokens`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := parseErr(t, "unexpected_test", tt.input)
			require.Equal(t, tt.kind, pe.Kind)
			require.Equal(t, tt.msg, pe.Error())
		})
	}
}

func TestIsIncomplete(t *testing.T) {
	_, err := ParseSource("repl", "from 0 to 2 as i {\n i")
	require.True(t, IsIncomplete(err))

	_, err = ParseSource("repl", "x = [1,")
	require.True(t, IsIncomplete(err))

	_, err = ParseSource("repl", "x = $")
	require.Error(t, err)
	require.False(t, IsIncomplete(err))
}

func TestNewAddsEOF(t *testing.T) {
	toks, err := lexer.New("noeof", "1 + 2").Tokenize()
	require.NoError(t, err)

	prog, err := New(toks[:len(toks)-1]).ParseProgram()
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)

	prog, err = New(nil).ParseProgram()
	require.NoError(t, err)
	require.Empty(t, prog.Statements)
}
