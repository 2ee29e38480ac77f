package parser

import (
	"errors"
	"fmt"

	"github.com/thiremani/numel/ast"
	"github.com/thiremani/numel/token"
)

const (
	_ int = iota
	LOWEST
	SUM     // + or -
	PRODUCT // * or /
	POWER   // ^
)

var precedences = map[token.TokenType]int{
	token.ADD: SUM,
	token.SUB: SUM,
	token.MUL: PRODUCT,
	token.QUO: PRODUCT,
	token.POW: POWER,
}

type ErrorKind int

const (
	EOF ErrorKind = iota
	MissingLiteral
	UnexpectedToken
	UnexpectedKeyword
	Expected
	ExpectedGot
)

// ParseError is the first syntax error found. Token is the offending
// token; Expected names what should have been there, when known.
type ParseError struct {
	Kind     ErrorKind
	Token    token.Token
	Expected string
}

func (pe *ParseError) Error() string {
	var msg string
	switch pe.Kind {
	case EOF:
		msg = "unexpected end of tokens"
		if pe.Expected != "" {
			msg += fmt.Sprintf(", expected %s", pe.Expected)
		}
	case MissingLiteral:
		msg = "missing literal after '-'"
	case UnexpectedToken:
		msg = fmt.Sprintf("unexpected token %q", pe.Token.Literal)
	case UnexpectedKeyword:
		msg = fmt.Sprintf("unexpected keyword %q", pe.Token.Literal)
	case Expected:
		msg = fmt.Sprintf("expected %s", pe.Expected)
	case ExpectedGot:
		msg = fmt.Sprintf("expected %s, got %q", pe.Expected, pe.Token.Literal)
	default:
		msg = "syntax error"
	}
	return fmt.Sprintf("%s: %s", pe.Token.Loc(), msg)
}

// IsIncomplete reports whether err only says the input ended too early.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == EOF
}

type Parser struct {
	tokens []token.Token
	pos    int
}

// New returns a parser over tokens. A missing trailing EOF token is added.
func New(tokens []token.Token) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Type != token.EOF {
		eof := token.Token{Type: token.EOF}
		if n > 0 {
			eof.FileName = tokens[n-1].FileName
			eof.Line = tokens[n-1].Line
			eof.Column = tokens[n-1].Column + len([]rune(tokens[n-1].Literal))
		}
		tokens = append(tokens[:n:n], eof)
	}
	return &Parser{tokens: tokens}
}

func (p *Parser) curToken() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekToken() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken().Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken().Type == t
}

// expect consumes the current token if it has type t.
func (p *Parser) expect(t token.TokenType) error {
	if p.curTokenIs(t) {
		p.nextToken()
		return nil
	}
	return p.expectedError(fmt.Sprintf("%q", t.String()))
}

func (p *Parser) expectedError(what string) error {
	cur := p.curToken()
	if cur.Type == token.EOF {
		return &ParseError{Kind: EOF, Token: cur, Expected: what}
	}
	return &ParseError{Kind: ExpectedGot, Token: cur, Expected: what}
}

func (p *Parser) unexpectedError() error {
	cur := p.curToken()
	switch {
	case cur.Type == token.EOF:
		return &ParseError{Kind: EOF, Token: cur}
	case cur.IsKeyword():
		return &ParseError{Kind: UnexpectedKeyword, Token: cur}
	default:
		return &ParseError{Kind: UnexpectedToken, Token: cur}
	}
}

// lineContainsAssign scans from the current token to the end of the
// line and reports whether an '=' appears.
func (p *Parser) lineContainsAssign() bool {
	for i := p.pos; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case token.ASSIGN:
			return true
		case token.NEWLINE, token.EOF:
			return false
		}
	}
	return false
}

func (p *Parser) skipComment() {
	for !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}
	program.Statements = []ast.Statement{}

	for !p.curTokenIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}

	return program, nil
}

// parseStatement returns a nil statement for newlines and comments.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken().Type {
	case token.NEWLINE:
		p.nextToken()
		return nil, nil
	case token.COMMENT:
		p.skipComment()
		return nil, nil
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseLetStatement()
		}
		if p.peekTokenIs(token.LPAREN) && p.lineContainsAssign() {
			return p.parseFuncStatement()
		}
		return p.parsePrintStatement()
	case token.FLOAT, token.LPAREN:
		return p.parsePrintStatement()
	case token.LBRACK:
		if p.lineContainsAssign() {
			return p.parseDestructureStatement()
		}
		return p.parsePrintStatement()
	case token.FROM:
		return p.parseFromStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.LBRACE:
		tok := p.curToken()
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{Token: tok, Statements: body}, nil
	}
	return nil, p.unexpectedError()
}

func (p *Parser) parseIdentifier(what string) (*ast.Identifier, error) {
	if !p.curTokenIs(token.IDENT) {
		if p.curTokenIs(token.EOF) {
			return nil, &ParseError{Kind: EOF, Token: p.curToken(), Expected: what}
		}
		return nil, &ParseError{Kind: Expected, Token: p.curToken(), Expected: what}
	}
	ident := &ast.Identifier{Token: p.curToken(), Value: p.curToken().Literal}
	p.nextToken()
	return ident, nil
}

func (p *Parser) parseLetStatement() (ast.Statement, error) {
	name, err := p.parseIdentifier("variable name")
	if err != nil {
		return nil, err
	}
	stmt := &ast.LetStatement{Token: p.curToken(), Name: name}
	if err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	if stmt.Value, err = p.parseExpression(LOWEST); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseFuncStatement() (ast.Statement, error) {
	stmt := &ast.FuncStatement{Token: p.curToken()}
	var err error
	if stmt.Name, err = p.parseIdentifier("function name"); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	stmt.Parameters = []*ast.Identifier{}
	for !p.curTokenIs(token.RPAREN) {
		if len(stmt.Parameters) > 0 {
			if err := p.expect(token.COMMA); err != nil {
				return nil, err
			}
		}
		param, err := p.parseIdentifier("parameter name")
		if err != nil {
			return nil, err
		}
		stmt.Parameters = append(stmt.Parameters, param)
	}
	p.nextToken()

	if err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	if stmt.Body, err = p.parseExpression(LOWEST); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseDestructureStatement() (ast.Statement, error) {
	names, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	stmt := &ast.DestructureStatement{Token: p.curToken(), Names: names}
	if err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	if stmt.Value, err = p.parseExpression(LOWEST); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parsePrintStatement() (ast.Statement, error) {
	stmt := &ast.PrintStatement{Token: p.curToken()}
	var err error
	if stmt.Expression, err = p.parseExpression(LOWEST); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseFromStatement parses
// from <expr> to <expr> as <ident> [with step <expr>] { <statements> }
func (p *Parser) parseFromStatement() (ast.Statement, error) {
	stmt := &ast.FromStatement{Token: p.curToken()}
	p.nextToken()

	var err error
	if stmt.Start, err = p.parseExpression(LOWEST); err != nil {
		return nil, err
	}
	if err := p.expect(token.TO); err != nil {
		return nil, err
	}
	if stmt.Stop, err = p.parseExpression(LOWEST); err != nil {
		return nil, err
	}
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	if stmt.Iter, err = p.parseIdentifier("loop variable"); err != nil {
		return nil, err
	}

	if p.curTokenIs(token.WITH) {
		p.nextToken()
		if err := p.expect(token.STEP); err != nil {
			return nil, err
		}
		if stmt.Step, err = p.parseExpression(LOWEST); err != nil {
			return nil, err
		}
	} else {
		stepTok := stmt.Iter.Token
		stepTok.Type = token.FLOAT
		stepTok.Literal = "1.0"
		stmt.Step = &ast.FloatLiteral{Token: stepTok, Value: stepTok.Literal}
	}

	if stmt.Body, err = p.parseBody(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseForStatement parses for <ident> in <expr> { <statements> }
func (p *Parser) parseForStatement() (ast.Statement, error) {
	stmt := &ast.ForStatement{Token: p.curToken()}
	p.nextToken()

	var err error
	if stmt.Iter, err = p.parseIdentifier("loop variable"); err != nil {
		return nil, err
	}
	if err := p.expect(token.IN); err != nil {
		return nil, err
	}
	if stmt.List, err = p.parseExpression(LOWEST); err != nil {
		return nil, err
	}
	if stmt.Body, err = p.parseBody(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseBody parses { <statements> }. Newlines may precede the brace.
func (p *Parser) parseBody() ([]ast.Statement, error) {
	p.skipNewlines()
	if err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	body := []ast.Statement{}
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			return nil, &ParseError{Kind: EOF, Token: p.curToken(), Expected: `"}"`}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	p.nextToken()
	return body, nil
}

// parseExpression is precedence climbing: an operator binds only if its
// precedence is at least the given one, and its right operand must bind
// strictly tighter, so every operator is left associative.
func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.curToken()
		prec, ok := precedences[op.Type]
		if !ok || prec < precedence {
			return left, nil
		}
		p.nextToken()

		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.InfixExpression{
			Token:    op,
			Left:     left,
			Operator: op.Literal,
			Right:    right,
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	cur := p.curToken()
	switch cur.Type {
	case token.FLOAT:
		p.nextToken()
		return &ast.FloatLiteral{Token: cur, Value: cur.Literal}, nil
	case token.IDENT:
		if p.peekTokenIs(token.LPAREN) {
			return p.parseCallExpression()
		}
		p.nextToken()
		return &ast.Identifier{Token: cur, Value: cur.Literal}, nil
	case token.SUB:
		if !p.peekTokenIs(token.FLOAT) {
			return nil, &ParseError{Kind: MissingLiteral, Token: cur}
		}
		p.nextToken()
		lit := p.curToken().Literal
		p.nextToken()
		return &ast.NegFloatLiteral{Token: cur, Value: lit}, nil
	case token.LPAREN:
		return p.parseGroupedExpression()
	case token.LBRACK:
		return p.parseListLiteral()
	}
	return nil, p.unexpectedError()
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.nextToken()
	p.skipNewlines()

	exp, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return exp, nil
}

func (p *Parser) parseCallExpression() (ast.Expression, error) {
	cur := p.curToken()
	exp := &ast.CallExpression{
		Token:    cur,
		Function: &ast.Identifier{Token: cur, Value: cur.Literal},
	}
	p.nextToken()
	p.nextToken()

	var err error
	if exp.Arguments, err = p.parseExpressionList(token.RPAREN); err != nil {
		return nil, err
	}
	return exp, nil
}

func (p *Parser) parseListLiteral() (ast.Expression, error) {
	list := &ast.ListLiteral{Token: p.curToken()}
	p.nextToken()

	var err error
	if list.Elements, err = p.parseExpressionList(token.RBRACK); err != nil {
		return nil, err
	}
	return list, nil
}

// parseExpressionList reads comma separated expressions up to and
// including end. A comma is consumed only before a following element.
func (p *Parser) parseExpressionList(end token.TokenType) ([]ast.Expression, error) {
	list := []ast.Expression{}

	p.skipNewlines()
	for !p.curTokenIs(end) {
		if len(list) > 0 {
			if err := p.expect(token.COMMA); err != nil {
				return nil, err
			}
			p.skipNewlines()
		}
		exp, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		list = append(list, exp)
		p.skipNewlines()
	}
	p.nextToken()

	return list, nil
}
