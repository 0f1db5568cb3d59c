package runs

import (
	"context"

	"github.com/reusee/pavo/logs"
	"github.com/reusee/pavo/pavoconfigs"
	"github.com/reusee/pavo/pavolang"
)

type NewInterpreter func(ctx context.Context) *pavolang.Interpreter

func (Module) NewInterpreter(
	stdout Stdout,
	logger logs.Logger,
	maxVariables pavoconfigs.MaxVariables,
	overflow pavoconfigs.Overflow,
	trace pavoconfigs.Trace,
) NewInterpreter {
	return func(ctx context.Context) *pavolang.Interpreter {
		l := logger
		if v := ctx.Value(logs.SpanKey); v != nil {
			l = l.With("logs.span", v.(logs.Span))
		}
		return pavolang.NewInterpreter(pavolang.Options{
			Stdout:       stdout,
			Logger:       l,
			MaxVariables: int(maxVariables),
			Overflow:     overflow,
			Trace:        bool(trace),
		})
	}
}
