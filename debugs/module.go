package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pavo/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
