package runs

import (
	"context"
	"time"

	"github.com/reusee/pavo/cmds"
	"github.com/reusee/pavo/debugs"
	"github.com/reusee/pavo/logs"
	"github.com/reusee/pavo/pavolang"
)

var tapFlag = cmds.Switch("-tap")

// TapAfterRun opens the inspection REPL when a run ends, failed or not.
type TapAfterRun bool

func (Module) TapAfterRun() TapAfterRun {
	return TapAfterRun(*tapFlag)
}

type RunSource func(ctx context.Context, src *pavolang.Source) error

func (Module) RunSource(
	newSpan logs.NewSpan,
	newInterpreter NewInterpreter,
	logger logs.Logger,
	tapAfterRun TapAfterRun,
	tap debugs.Tap,
) RunSource {
	return func(ctx context.Context, src *pavolang.Source) error {
		if ctx.Value(logs.SpanKey) == nil {
			ctx, _ = newSpan(ctx, "run", "")
		}
		interp := newInterpreter(ctx)

		logger.DebugContext(ctx, "run start",
			"source", src.Name,
		)
		start := time.Now()
		err := interp.Exec(src)
		args := []any{
			"source", src.Name,
			"elapsed", time.Since(start),
			"variables", interp.Env().Len(),
		}
		if err != nil {
			args = append(args, "error", err)
		}
		logger.DebugContext(ctx, "run end", args...)

		if tapAfterRun {
			tap(ctx, src.Name, interp.Env())
		}
		return err
	}
}

type RunFile func(ctx context.Context, path string) error

func (Module) RunFile(
	newSpan logs.NewSpan,
	readSource ReadSource,
	runSource RunSource,
) RunFile {
	return func(ctx context.Context, path string) error {
		ctx, _ = newSpan(ctx, "run", "")
		src, err := readSource(ctx, path)
		if err != nil {
			return err
		}
		return runSource(ctx, src)
	}
}
