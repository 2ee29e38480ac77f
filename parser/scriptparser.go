package parser

import (
	"github.com/thiremani/numel/ast"
	"github.com/thiremani/numel/lexer"
)

// ScriptParser runs the lexer to completion and parses the result.
type ScriptParser struct {
	l *lexer.Lexer
}

func NewScriptParser(l *lexer.Lexer) *ScriptParser {
	return &ScriptParser{
		l: l,
	}
}

func (sp *ScriptParser) Parse() (*ast.Program, error) {
	toks, err := sp.l.Tokenize()
	if err != nil {
		return nil, err
	}
	return New(toks).ParseProgram()
}

// ParseSource lexes and parses src, labelling locations with fileName.
func ParseSource(fileName, src string) (*ast.Program, error) {
	return NewScriptParser(lexer.New(fileName, src)).Parse()
}
