package ast

import (
	"bytes"
	"strings"

	"github.com/thiremani/numel/token"
)

// The base Node interface
type Node interface {
	Tok() token.Token
	String() string
}

// All statement nodes implement this
type Statement interface {
	Node
	statementNode()
}

// All expression nodes implement this
type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Statements []Statement
}

func (p *Program) Tok() token.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].Tok()
	}
	return token.Token{
		Type:    token.EOF,
		Literal: "",
	}
}

func (p *Program) String() string {
	return printStmts(p.Statements)
}

func printVec(a []Expression) string {
	parts := make([]string, 0, len(a))
	for _, e := range a {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}

func printStmts(stmts []Statement) string {
	parts := make([]string, 0, len(stmts))
	for _, s := range stmts {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "\n")
}

func printBody(stmts []Statement) string {
	var out bytes.Buffer
	out.WriteString("{")
	if len(stmts) > 0 {
		out.WriteString("\n")
		out.WriteString(printStmts(stmts))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// Statements

// LetStatement declares a single variable.
type LetStatement struct {
	Token token.Token // the token.ASSIGN token
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) statementNode()   {}
func (ls *LetStatement) Tok() token.Token { return ls.Token }
func (ls *LetStatement) String() string {
	return ls.Name.String() + " = " + ls.Value.String()
}

// FuncStatement declares a function with an expression body.
type FuncStatement struct {
	Token      token.Token // the function name
	Name       *Identifier
	Parameters []*Identifier
	Body       Expression
}

func (fs *FuncStatement) statementNode()   {}
func (fs *FuncStatement) Tok() token.Token { return fs.Token }
func (fs *FuncStatement) String() string {
	params := make([]string, 0, len(fs.Parameters))
	for _, p := range fs.Parameters {
		params = append(params, p.String())
	}
	return fs.Name.String() + "(" + strings.Join(params, ", ") + ") = " + fs.Body.String()
}

type PrintStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (ps *PrintStatement) statementNode()   {}
func (ps *PrintStatement) Tok() token.Token { return ps.Token }
func (ps *PrintStatement) String() string   { return ps.Expression.String() }

// FromStatement is the counted range loop:
// from <Start> to <Stop> as <Iter> [with step <Step>] { <Body> }
type FromStatement struct {
	Token token.Token // the token.FROM token
	Start Expression
	Stop  Expression
	Iter  *Identifier
	Step  Expression
	Body  []Statement
}

func (fs *FromStatement) statementNode()   {}
func (fs *FromStatement) Tok() token.Token { return fs.Token }
func (fs *FromStatement) String() string {
	var out bytes.Buffer
	out.WriteString("from " + fs.Start.String())
	out.WriteString(" to " + fs.Stop.String())
	out.WriteString(" as " + fs.Iter.String())
	out.WriteString(" with step " + fs.Step.String() + " ")
	out.WriteString(printBody(fs.Body))
	return out.String()
}

// ForStatement iterates a list: for <Iter> in <List> { <Body> }
type ForStatement struct {
	Token token.Token // the token.FOR token
	Iter  *Identifier
	List  Expression
	Body  []Statement
}

func (fs *ForStatement) statementNode()   {}
func (fs *ForStatement) Tok() token.Token { return fs.Token }
func (fs *ForStatement) String() string {
	return "for " + fs.Iter.String() + " in " + fs.List.String() + " " + printBody(fs.Body)
}

type BlockStatement struct {
	Token      token.Token // the { token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()   {}
func (bs *BlockStatement) Tok() token.Token { return bs.Token }
func (bs *BlockStatement) String() string   { return printBody(bs.Statements) }

// DestructureStatement binds list elements positionally: [a, b] = [1, 2]
type DestructureStatement struct {
	Token token.Token // the token.ASSIGN token
	Names Expression  // a list of identifiers
	Value Expression
}

func (ds *DestructureStatement) statementNode()   {}
func (ds *DestructureStatement) Tok() token.Token { return ds.Token }
func (ds *DestructureStatement) String() string {
	return ds.Names.String() + " = " + ds.Value.String()
}

// Expressions
type Identifier struct {
	Token token.Token // the token.IDENT token
	Value string
}

func (i *Identifier) expressionNode()  {}
func (i *Identifier) Tok() token.Token { return i.Token }
func (i *Identifier) String() string   { return i.Value }

// FloatLiteral keeps the lexer's canonical decimal text.
type FloatLiteral struct {
	Token token.Token
	Value string
}

func (fl *FloatLiteral) expressionNode()  {}
func (fl *FloatLiteral) Tok() token.Token { return fl.Token }
func (fl *FloatLiteral) String() string   { return fl.Value }

// NegFloatLiteral is a float literal directly preceded by a minus sign.
type NegFloatLiteral struct {
	Token token.Token // the token.SUB token
	Value string
}

func (nl *NegFloatLiteral) expressionNode()  {}
func (nl *NegFloatLiteral) Tok() token.Token { return nl.Token }
func (nl *NegFloatLiteral) String() string   { return "-" + nl.Value }

type InfixExpression struct {
	Token    token.Token // The operator token, e.g. +
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()  {}
func (ie *InfixExpression) Tok() token.Token { return ie.Token }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" " + ie.Operator + " ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")

	return out.String()
}

type CallExpression struct {
	Token     token.Token // the function name
	Function  *Identifier
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()  {}
func (ce *CallExpression) Tok() token.Token { return ce.Token }
func (ce *CallExpression) String() string {
	return ce.Function.String() + "(" + printVec(ce.Arguments) + ")"
}

type ListLiteral struct {
	Token    token.Token // the [ token
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()  {}
func (ll *ListLiteral) Tok() token.Token { return ll.Token }
func (ll *ListLiteral) String() string   { return "[" + printVec(ll.Elements) + "]" }
