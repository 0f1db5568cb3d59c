package logs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pavo/modes"
)

type Module struct {
	dscope.Module
	Modes modes.ModuleForProduction
}
