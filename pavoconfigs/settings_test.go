package pavoconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pavo/cmds"
	"github.com/reusee/pavo/configs"
	"github.com/reusee/pavo/modes"
	"github.com/reusee/pavo/pavolang"
)

func testScope(t *testing.T, content string) dscope.Scope {
	var paths []string
	if content != "" {
		path := filepath.Join(t.TempDir(), "pavo.cue")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	loader := configs.NewLoader(paths, schema)
	return dscope.New(new(Module)).Fork(
		modes.ForTest(t),
		func() configs.Loader {
			return loader
		},
	)
}

func TestDefaults(t *testing.T) {
	testScope(t, "").Call(func(
		maxVariables MaxVariables,
		overflow Overflow,
		ext SourceExtension,
		trace Trace,
	) {
		if maxVariables != pavolang.DefaultMaxVariables {
			t.Fatalf("got %v", maxVariables)
		}
		if overflow != pavolang.OverflowError {
			t.Fatalf("got %v", overflow)
		}
		if ext != ".pavo" {
			t.Fatalf("got %v", ext)
		}
		if trace {
			t.Fatal()
		}
	})
}

func TestConfigFile(t *testing.T) {
	testScope(t, `
max_variables: 8
overflow: "wrap"
source_extension: "pv"
trace: true
`).Call(func(
		maxVariables MaxVariables,
		overflow Overflow,
		ext SourceExtension,
		trace Trace,
	) {
		if maxVariables != 8 {
			t.Fatalf("got %v", maxVariables)
		}
		if overflow != pavolang.OverflowWrap {
			t.Fatalf("got %v", overflow)
		}
		if ext != ".pv" {
			t.Fatalf("got %v", ext)
		}
		if !trace {
			t.Fatal()
		}
	})
}

func TestAnyExtension(t *testing.T) {
	testScope(t, `source_extension: "*"`).Call(func(
		ext SourceExtension,
	) {
		if ext != "" {
			t.Fatalf("got %q", ext)
		}
	})
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{
		"-max-variables", "3",
		"-overflow", "error",
	})
	t.Cleanup(func() {
		cmds.GlobalExecutor.MustExecute([]string{"-max-variables."})
		overflowFlag = nil
	})

	testScope(t, `
max_variables: 8
overflow: "wrap"
`).Call(func(
		maxVariables MaxVariables,
		overflow Overflow,
	) {
		if maxVariables != 3 {
			t.Fatalf("got %v", maxVariables)
		}
		if overflow != pavolang.OverflowError {
			t.Fatalf("got %v", overflow)
		}
	})
}

func TestBadOverflowFlag(t *testing.T) {
	err := cmds.Execute([]string{"-overflow", "saturate"})
	if err == nil {
		t.Fatal("should error")
	}
	if overflowFlag != nil {
		t.Fatal()
	}
}

func TestConfigFileSchema(t *testing.T) {
	scope := testScope(t, `overflow: "saturate"`)
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	scope.Call(func(
		overflow Overflow,
	) {
	})
}
