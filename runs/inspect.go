package runs

import (
	"context"
	"fmt"

	"github.com/reusee/pavo/logs"
	"github.com/reusee/pavo/pavolang"
)

// CheckFile parses a whole file without executing it.
type CheckFile func(ctx context.Context, path string) error

func (Module) CheckFile(
	newSpan logs.NewSpan,
	readSource ReadSource,
	logger logs.Logger,
) CheckFile {
	return func(ctx context.Context, path string) error {
		ctx, _ = newSpan(ctx, "check", "")
		src, err := readSource(ctx, path)
		if err != nil {
			return err
		}
		nodes, err := pavolang.Parse(src.Content)
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "check ok",
			"source", src.Name,
			"statements", len(nodes),
		)
		return nil
	}
}

// DumpTokens prints one token per line, end of input included.
type DumpTokens func(ctx context.Context, path string) error

func (Module) DumpTokens(
	newSpan logs.NewSpan,
	readSource ReadSource,
	stdout Stdout,
	logger logs.Logger,
) DumpTokens {
	return func(ctx context.Context, path string) error {
		ctx, _ = newSpan(ctx, "tokens", "")
		src, err := readSource(ctx, path)
		if err != nil {
			return err
		}
		for tok, err := range pavolang.NewLexer(src.Content).All() {
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(stdout, tok); err != nil {
				return ioError(ctx, logger, err)
			}
		}
		return nil
	}
}

// DumpAST prints each top-level statement as an s-expression.
type DumpAST func(ctx context.Context, path string) error

func (Module) DumpAST(
	newSpan logs.NewSpan,
	readSource ReadSource,
	stdout Stdout,
	logger logs.Logger,
) DumpAST {
	return func(ctx context.Context, path string) error {
		ctx, _ = newSpan(ctx, "ast", "")
		src, err := readSource(ctx, path)
		if err != nil {
			return err
		}
		nodes, err := pavolang.Parse(src.Content)
		if err != nil {
			return err
		}
		for _, node := range nodes {
			if _, err := fmt.Fprintln(stdout, pavolang.Dump(node)); err != nil {
				return ioError(ctx, logger, err)
			}
		}
		return nil
	}
}
