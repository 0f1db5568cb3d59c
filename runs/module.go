package runs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/pavo/debugs"
	"github.com/reusee/pavo/logs"
	"github.com/reusee/pavo/pavoconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs pavoconfigs.Module
	Debugs  debugs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Stdout receives program output.
type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}
