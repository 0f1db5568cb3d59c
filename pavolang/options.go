package pavolang

import (
	"fmt"
	"io"
	"log/slog"
)

type OverflowMode uint8

const (
	// OverflowError makes arithmetic overflow a fatal semantic error.
	OverflowError OverflowMode = iota
	// OverflowWrap wraps around in two's complement.
	OverflowWrap
)

func (m OverflowMode) String() string {
	switch m {
	case OverflowError:
		return "error"
	case OverflowWrap:
		return "wrap"
	}
	return fmt.Sprintf("OverflowMode(%d)", int(m))
}

func ParseOverflowMode(s string) (OverflowMode, error) {
	switch s {
	case "", "error":
		return OverflowError, nil
	case "wrap":
		return OverflowWrap, nil
	}
	return 0, fmt.Errorf("unknown overflow mode: %q", s)
}

type Options struct {
	Stdout       io.Writer    // if nil, default to os.Stdout
	Logger       *slog.Logger // if nil, logs are discarded
	MaxVariables int          // if zero, default to DefaultMaxVariables
	Overflow     OverflowMode
	Trace        bool // log every top-level statement at debug level
}
