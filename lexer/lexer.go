package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/thiremani/numel/token"
)

type LexErrorKind int

const (
	MultipleDecimalPoints LexErrorKind = iota
	UnexpectedEOF
)

// LexError reports a scan failure at the start of the offending token.
type LexError struct {
	Kind  LexErrorKind
	Token token.Token
}

func (le *LexError) Error() string {
	var msg string
	switch le.Kind {
	case MultipleDecimalPoints:
		msg = fmt.Sprintf("multiple decimal points in number %q", le.Token.Literal)
	case UnexpectedEOF:
		msg = "unexpected end of input"
	default:
		msg = "lexical error"
	}
	return fmt.Sprintf("%s: %s", le.Token.Loc(), msg)
}

type Lexer struct {
	FileName     string
	input        []rune
	position     int  // current position in input (points to current rune)
	readPosition int  // current reading position in input (after current rune)
	curr         rune // current rune under examination
	line         int  // line of curr, 1-based
	column       int  // column of curr, 1-based
	done         bool // EOF has been emitted
}

func New(fileName, input string) *Lexer {
	l := &Lexer{
		FileName: fileName,
		input:    []rune(input),
		line:     1,
	}
	l.readRune()
	return l
}

// Tokenize scans the whole input. The result always ends with an EOF token.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	toks := []token.Token{}
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	tok := l.newToken(token.ILLEGAL, "")
	if l.atEnd() {
		if l.done {
			return tok, &LexError{Kind: UnexpectedEOF, Token: tok}
		}
		l.done = true
		tok.Type = token.EOF
		return tok, nil
	}

	switch {
	case l.curr == '\n':
		tok.Type = token.NEWLINE
		tok.Literal = "\n"
	case IsLetter(l.curr):
		tok.Literal = l.readIdentifier()
		tok.Type = token.LookupIdent(tok.Literal)
		return tok, nil
	case isDigit(l.curr) || l.curr == '.':
		tok.Type = token.FLOAT
		lit, ok := l.readNumber()
		tok.Literal = lit
		if !ok {
			return tok, &LexError{Kind: MultipleDecimalPoints, Token: tok}
		}
		return tok, nil
	default:
		if tt, ok := token.Symbols[l.curr]; ok {
			tok.Type = tt
		}
		// unknown characters stay ILLEGAL; the parser rejects them
		tok.Literal = string(l.curr)
	}

	l.readRune()
	return tok, nil
}

func (l *Lexer) newToken(tokenType token.TokenType, literal string) token.Token {
	return token.Token{
		Type:     tokenType,
		Literal:  literal,
		FileName: l.FileName,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && l.curr != '\n' && unicode.IsSpace(l.curr) {
		l.readRune()
	}
}

func (l *Lexer) readRune() {
	if l.curr == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.curr = 0
	} else {
		l.curr = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for !l.atEnd() && IsLetterOrDigit(l.curr) {
		l.readRune()
	}
	return string(l.input[position:l.position])
}

// readNumber returns the literal in canonical dotted form: digit group
// separators are dropped, a leading '.' becomes "0." and a missing
// fractional part becomes ".0". It reports false on a second '.'.
func (l *Lexer) readNumber() (string, bool) {
	var b strings.Builder
	period := false
	if l.curr == '.' {
		b.WriteString("0.")
		period = true
		l.readRune()
	}

	for !l.atEnd() && (isDigit(l.curr) || l.curr == '.' || l.curr == '_') {
		switch l.curr {
		case '_':
		case '.':
			if period {
				b.WriteRune(l.curr)
				return b.String(), false
			}
			period = true
			b.WriteRune(l.curr)
		default:
			b.WriteRune(l.curr)
		}
		l.readRune()
	}

	lit := b.String()
	if !period {
		return lit + ".0", true
	}
	if strings.HasSuffix(lit, ".") {
		return lit + "0", true
	}
	return lit, true
}

func IsLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func IsLetterOrDigit(ch rune) bool {
	return IsLetter(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
