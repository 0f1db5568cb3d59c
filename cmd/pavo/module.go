package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pavo/runs"
)

type Module struct {
	dscope.Module
	Runs runs.Module
}
