package pavoconfigs

import (
	"strings"

	"github.com/reusee/pavo/cmds"
	"github.com/reusee/pavo/configs"
	"github.com/reusee/pavo/pavolang"
	"github.com/reusee/pavo/vars"
)

type MaxVariables int

var maxVariablesFlag = cmds.Var[int]("-max-variables")

func (Module) MaxVariables(
	loader configs.Loader,
) MaxVariables {
	return MaxVariables(vars.FirstNonZero(
		*maxVariablesFlag,
		configs.First[int](loader, "max_variables"),
		pavolang.DefaultMaxVariables,
	))
}

type Overflow = pavolang.OverflowMode

var overflowFlag *pavolang.OverflowMode

func init() {
	cmds.Define("-overflow", cmds.Func(func(s string) error {
		mode, err := pavolang.ParseOverflowMode(s)
		if err != nil {
			return err
		}
		overflowFlag = &mode
		return nil
	}).Desc("integer overflow policy: error or wrap"))
}

func (Module) Overflow(
	loader configs.Loader,
) Overflow {
	if overflowFlag != nil {
		return *overflowFlag
	}
	// the schema only admits valid names
	mode, err := pavolang.ParseOverflowMode(configs.First[string](loader, "overflow"))
	if err != nil {
		panic(err)
	}
	return mode
}

// SourceExtension is the required suffix of program files. Empty means any file is accepted.
type SourceExtension string

const DefaultSourceExtension = ".pavo"

var sourceExtensionFlag = cmds.Var[string]("-source-extension")

func (Module) SourceExtension(
	loader configs.Loader,
) SourceExtension {
	ext := vars.FirstNonZero(
		*sourceExtensionFlag,
		configs.First[string](loader, "source_extension"),
		DefaultSourceExtension,
	)
	if ext == "*" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return SourceExtension(ext)
}

type Trace bool

var traceFlag = cmds.Switch("-trace")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}
