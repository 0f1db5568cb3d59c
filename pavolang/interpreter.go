package pavolang

import (
	"io"
	"log/slog"
	"os"
)

// Interpreter owns all state of a run: the variable table, the output and
// the lexer and parser created by Exec. Interpreters share nothing.
type Interpreter struct {
	env      *Env
	stdout   io.Writer
	logger   *slog.Logger
	overflow OverflowMode
	trace    bool
}

func NewInterpreter(opts Options) *Interpreter {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Interpreter{
		env:      NewEnv(opts.MaxVariables),
		stdout:   stdout,
		logger:   logger,
		overflow: opts.Overflow,
		trace:    opts.Trace,
	}
}

func (i *Interpreter) Env() *Env {
	return i.env
}

// Exec parses and executes src one top-level statement at a time. The
// first error stops it; output written before that stays written.
func (i *Interpreter) Exec(src *Source) error {
	parser, err := NewParser(NewLexer(src.Content))
	if err != nil {
		return err
	}

	for {
		node, err := parser.Next()
		if err != nil {
			return err
		}
		if node == nil {
			return nil
		}

		pos := node.Position()
		if i.trace {
			i.logger.Debug("statement",
				"source", src.Name,
				"line", pos.Line,
				"column", pos.Column,
				"node", Dump(node),
			)
		}

		res, err := i.eval(node)
		if err != nil {
			return err
		}
		if res.Flow == FlowBreak {
			i.logger.Warn("break outside of loop",
				"source", src.Name,
				"line", pos.Line,
				"column", pos.Column,
			)
		}
	}
}

// Run executes a program with a fresh interpreter.
func Run(name string, content string, opts Options) error {
	return NewInterpreter(opts).Exec(NewSource(name, content))
}
