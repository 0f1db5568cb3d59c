package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(strings.Builder)
	executor.SetOutput(buf)
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(string) {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()

	out := buf.String()
	for _, expected := range []string{
		"foo\tFOO\n",
		"  bar\tBAR\n",
		"  baz\tBAZ\n",
		"    qux <arg>\tQUX\n",
		"print this usage",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("missing %q in:\n%s", expected, out)
		}
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("aliases should be folded:\n%s", out)
	}
}
