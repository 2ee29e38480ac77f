package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	ILLEGAL TokenType = iota // any character no other rule matches
	EOF
	COMMENT // #
	NEWLINE

	literal_beg
	IDENT // add, foobar, x, y, ...
	FLOAT // 123.45
	literal_end

	operator_beg
	ASSIGN // =

	ADD // +
	SUB // -
	MUL // *
	QUO // /
	POW // ^

	LPAREN // (
	LBRACK // [
	LBRACE // {
	COMMA  // ,

	RPAREN // )
	RBRACK // ]
	RBRACE // }
	operator_end

	keyword_beg
	FROM
	TO
	AS
	WITH
	STEP
	FOR
	IN
	keyword_end
)

const (
	SYM_ADD = "+"
	SYM_SUB = "-"
	SYM_MUL = "*"
	SYM_QUO = "/"
	SYM_POW = "^"
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",

	EOF:     "EOF",
	COMMENT: "COMMENT",
	NEWLINE: "NEWLINE",

	IDENT: "IDENT",
	FLOAT: "FLOAT",

	ASSIGN: "=",

	ADD: SYM_ADD,
	SUB: SYM_SUB,
	MUL: SYM_MUL,
	QUO: SYM_QUO,
	POW: SYM_POW,

	LPAREN: "(",
	LBRACK: "[",
	LBRACE: "{",
	COMMA:  ",",

	RPAREN: ")",
	RBRACK: "]",
	RBRACE: "}",

	FROM: "from",
	TO:   "to",
	AS:   "as",
	WITH: "with",
	STEP: "step",
	FOR:  "for",
	IN:   "in",
}

// Symbols maps every single character token to its type.
var Symbols = map[rune]TokenType{
	'=': ASSIGN,
	'+': ADD,
	'-': SUB,
	'*': MUL,
	'/': QUO,
	'^': POW,
	'(': LPAREN,
	')': RPAREN,
	'[': LBRACK,
	']': RBRACK,
	'{': LBRACE,
	'}': RBRACE,
	',': COMMA,
	'#': COMMENT,
}

var keywords map[string]TokenType

func init() {
	keywords = make(map[string]TokenType, keyword_end-(keyword_beg+1))
	for i := keyword_beg + 1; i < keyword_end; i++ {
		keywords[tokens[i]] = i
	}
}

// LookupIdent classifies ident as a keyword or a plain identifier.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the keyword literals in declaration order.
func Keywords() []string {
	kws := make([]string, 0, len(keywords))
	for i := keyword_beg + 1; i < keyword_end; i++ {
		kws = append(kws, tokens[i])
	}
	return kws
}

type Token struct {
	Type     TokenType
	Literal  string
	FileName string
	Line     int // 1-based
	Column   int // 1-based
}

func (t Token) IsKeyword() bool {
	return keyword_beg < t.Type && t.Type < keyword_end
}

func (t Token) IsLiteral() bool {
	return literal_beg < t.Type && t.Type < literal_end
}

func (t Token) IsOperator() bool {
	return operator_beg < t.Type && t.Type < operator_end
}

// Loc renders the token position as file:line:column.
func (t Token) Loc() string {
	return fmt.Sprintf("%s:%d:%d", t.FileName, t.Line, t.Column)
}

func (t Token) String() string {
	return t.Type.String()
}

func (tokenType TokenType) String() string {
	s := ""
	if 0 <= tokenType && tokenType < TokenType(len(tokens)) {
		s = tokens[tokenType]
	}

	if s == "" {
		s = "token(" + strconv.Itoa(int(tokenType)) + ")"
	}

	return s
}

// CompileError is a diagnostic anchored at a source token.
type CompileError struct {
	Token Token
	Msg   string
}

func (ce *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", ce.Token.Loc(), ce.Msg)
}
