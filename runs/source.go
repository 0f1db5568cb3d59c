package runs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/pavo/logs"
	"github.com/reusee/pavo/pavoconfigs"
	"github.com/reusee/pavo/pavolang"
)

var ErrBadExtension = errors.New("bad file extension")

type ReadSource func(ctx context.Context, path string) (*pavolang.Source, error)

func (Module) ReadSource(
	ext pavoconfigs.SourceExtension,
	logger logs.Logger,
) ReadSource {
	return func(ctx context.Context, path string) (*pavolang.Source, error) {
		if ext != "" && !strings.HasSuffix(path, string(ext)) {
			return nil, fmt.Errorf("%w: %s: must be %s", ErrBadExtension, path, ext)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, ioError(ctx, logger, fmt.Errorf("could not open %s: %w", path, err))
		}
		return pavolang.NewSource(path, string(content)), nil
	}
}

// ioError logs err with its stack trace at debug level and returns it
// annotated with the span only.
func ioError(ctx context.Context, logger logs.Logger, err error) error {
	logger.DebugContext(ctx, "io error",
		"error", wrap(err),
	)
	return logs.WrapSpan(ctx, err)
}
