package pavolang

import (
	"errors"
	"fmt"
	"testing"
)

func TestExcerpt(t *testing.T) {
	src := NewSource("prog.pavo", "let x := 1;\n\tprint x @;\n")
	err := NewInterpreter(Options{Stdout: new(nopWriter)}).Exec(src)
	got := Excerpt(err, src)
	expected := "Lexical error at line 2, column 10: unexpected character '@'\n" +
		"--> prog.pavo:2:10\n" +
		"\tprint x @;\n" +
		"\t        ^\n"
	if got != expected {
		t.Fatalf("got\n%s", got)
	}
}

func TestExcerptWithoutPosition(t *testing.T) {
	err := errors.New("boom")
	if got := Excerpt(err, NewSource("", "x")); got != "boom\n" {
		t.Fatalf("got %q", got)
	}
}

func TestErrorPos(t *testing.T) {
	wrapped := fmt.Errorf("run: %w", &SyntaxError{Pos: Pos{3, 4}})
	pos, ok := ErrorPos(wrapped)
	if !ok || pos != (Pos{3, 4}) {
		t.Fatalf("got %v %v", pos, ok)
	}
	if _, ok := ErrorPos(&SemanticError{Err: ErrTooManyVariables}); ok {
		t.Fatal()
	}
}

func TestSemanticErrorMessage(t *testing.T) {
	err := &SemanticError{Err: ErrUnknownOperator}
	if err.Error() != "unknown operator" {
		t.Fatalf("got %v", err)
	}
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
