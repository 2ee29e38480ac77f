package interpreter

import (
	"fmt"

	"github.com/thiremani/numel/token"
)

type RuntimeErrorKind int

const (
	UndefinedVariable RuntimeErrorKind = iota
	UndefinedFunction
	InvalidArguments
	InvalidListLength
	Redeclaration
	ExpectedList
	ExpectedScalar
	ExpectedIdentifier
	EmptyList
)

var kindMessages = [...]string{
	UndefinedVariable:  "undefined variable",
	UndefinedFunction:  "undefined function",
	InvalidArguments:   "invalid arguments for function",
	InvalidListLength:  "lists must be the same length",
	Redeclaration:      "redeclaration of",
	ExpectedList:       "expected a list",
	ExpectedScalar:     "expected a scalar",
	ExpectedIdentifier: "expected an identifier",
	EmptyList:          "empty list in for-loop",
}

func (k RuntimeErrorKind) String() string {
	if 0 <= k && int(k) < len(kindMessages) {
		return kindMessages[k]
	}
	return fmt.Sprintf("RuntimeErrorKind(%d)", int(k))
}

// RuntimeError is the first evaluation failure. Name is the variable or
// function involved, if any; Msg adds detail.
type RuntimeError struct {
	Kind  RuntimeErrorKind
	Name  string
	Token token.Token
	Msg   string
}

func (re *RuntimeError) Error() string {
	msg := re.Kind.String()
	if re.Name != "" {
		msg += fmt.Sprintf(" %q", re.Name)
	}
	if re.Msg != "" {
		msg += ": " + re.Msg
	}
	return fmt.Sprintf("%s: %s", re.Token.Loc(), msg)
}

func newError(kind RuntimeErrorKind, tok token.Token, name, format string, args ...any) *RuntimeError {
	return &RuntimeError{
		Kind:  kind,
		Name:  name,
		Token: tok,
		Msg:   fmt.Sprintf(format, args...),
	}
}
