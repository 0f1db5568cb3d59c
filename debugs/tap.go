package debugs

import (
	"context"
	"maps"

	"github.com/reusee/pavo/logs"
	"github.com/reusee/pavo/pavolang"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin over the variables of env.
type Tap func(ctx context.Context, what string, env *pavolang.Env)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, env *pavolang.Env) {
		logger.InfoContext(ctx, "tap: "+what,
			"variables", env.Len(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, tapGlobals(env))
	}
}

// tapGlobals binds every variable by name, plus helpers. Helpers win over
// variables of the same name; get() still reaches those.
func tapGlobals(env *pavolang.Env) starlark.StringDict {
	globals := make(starlark.StringDict)
	for name, value := range env.All() {
		globals[name] = starlark.MakeInt(value)
	}
	maps.Copy(globals, starlark.StringDict{
		"get": toStarlarkValue(func(name string) int {
			value, _ := env.Get(name)
			return value
		}),
		"has": toStarlarkValue(env.Has),
		"vars": starlark.NewBuiltin("vars", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return toStarlarkValue(maps.Collect(env.All())), nil
		}),
	})
	return globals
}
