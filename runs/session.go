package runs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/pavo/logs"
	"github.com/reusee/pavo/pavolang"
)

// Session executes interactive input against one variable table.
type Session struct {
	ctx     context.Context
	interp  *pavolang.Interpreter
	pending strings.Builder
	inputs  int
	last    *pavolang.Source
}

type NewSession func(ctx context.Context) *Session

func (Module) NewSession(
	newSpan logs.NewSpan,
	newInterpreter NewInterpreter,
) NewSession {
	return func(ctx context.Context) *Session {
		ctx, _ = newSpan(ctx, "repl", "")
		return &Session{
			ctx:    ctx,
			interp: newInterpreter(ctx),
		}
	}
}

// Feed buffers a line and executes the buffer once it no longer ends inside
// a statement. It reports whether more input is needed.
func (s *Session) Feed(line string) (more bool, err error) {
	s.pending.WriteString(line)
	s.pending.WriteString("\n")
	content := s.pending.String()

	if _, err := pavolang.Parse(content); err != nil {
		var synErr *pavolang.SyntaxError
		if errors.As(err, &synErr) && synErr.AtEOF {
			return true, nil
		}
	}

	s.pending.Reset()
	s.inputs++
	s.last = pavolang.NewSource(fmt.Sprintf("<input %d>", s.inputs), content)
	return false, s.interp.Exec(s.last)
}

// Pending reports whether an incomplete statement is buffered.
func (s *Session) Pending() bool {
	return s.pending.Len() > 0
}

// Discard drops the buffered incomplete statement.
func (s *Session) Discard() {
	s.pending.Reset()
}

// Reset forgets every variable and any buffered input.
func (s *Session) Reset() {
	s.pending.Reset()
	s.interp.Env().Reset()
}

// Excerpt renders err against the input that produced it.
func (s *Session) Excerpt(err error) string {
	return pavolang.Excerpt(err, s.last)
}

func (s *Session) Env() *pavolang.Env {
	return s.interp.Env()
}

func (s *Session) Context() context.Context {
	return s.ctx
}
