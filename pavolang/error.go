package pavolang

import (
	"errors"
	"fmt"
	"strings"
)

type LexicalError struct {
	Pos Pos
	Msg string
}

func (e *LexicalError) Error() string {
	return formatPosError("Lexical", e.Pos, e.Msg)
}

type SyntaxError struct {
	Pos Pos
	Msg string
	// AtEOF is set when the parser ran out of input, so more text could fix it.
	AtEOF bool
}

func (e *SyntaxError) Error() string {
	return formatPosError("Syntax", e.Pos, e.Msg)
}

func formatPosError(category string, pos Pos, msg string) string {
	s := fmt.Sprintf("%s error at line %d, column %d", category, pos.Line, pos.Column)
	if msg != "" {
		s += ": " + msg
	}
	return s
}

var (
	ErrUndefinedVariable  = errors.New("undefined variable")
	ErrUndeclaredReassign = errors.New("cannot reassign undeclared variable")
	ErrRedeclared         = errors.New("variable is declared already")
	ErrTooManyVariables   = errors.New("too many variables")
	ErrIntegerOverflow    = errors.New("integer overflow")
	ErrUnknownOperator    = errors.New("unknown operator")
)

type SemanticError struct {
	Err     error
	Subject string // variable name, operator or operands; may be empty
	Pos     Pos
}

func (e *SemanticError) Error() string {
	if e.Subject == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Subject
}

func (e *SemanticError) Unwrap() error {
	return e.Err
}

// withPos fills the position of a semantic error raised below the evaluator.
func withPos(err error, pos Pos) error {
	var semErr *SemanticError
	if errors.As(err, &semErr) && semErr.Pos == (Pos{}) {
		semErr.Pos = pos
	}
	return err
}

// ErrorPos reports where err happened, if it carries a position.
func ErrorPos(err error) (Pos, bool) {
	var lexErr *LexicalError
	if errors.As(err, &lexErr) {
		return lexErr.Pos, true
	}
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Pos, true
	}
	var semErr *SemanticError
	if errors.As(err, &semErr) && semErr.Pos != (Pos{}) {
		return semErr.Pos, true
	}
	return Pos{}, false
}

// Excerpt renders err followed by the offending source line and a caret.
func Excerpt(err error, src *Source) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	pos, ok := ErrorPos(err)
	if !ok || src == nil {
		return sb.String()
	}
	line, ok := src.Line(pos.Line)
	if !ok {
		return sb.String()
	}

	if src.Name != "" {
		fmt.Fprintf(&sb, "--> %s:%d:%d\n", src.Name, pos.Line, pos.Column)
	}
	sb.WriteString(line)
	sb.WriteString("\n")
	for i := 0; i < pos.Column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}
