package cmds

import (
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVarInt")
	b := Var[string]("TestVarString")
	GlobalExecutor.MustExecute([]string{
		"TestVarInt", "42",
		"TestVarString", "bar",
	})
	if *a != 42 {
		t.Fatalf("got %v", *a)
	}
	if *b != "bar" {
		t.Fatalf("got %v", *b)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVarInt.",
	})
	if *a != 0 {
		t.Fatalf("got %v", *a)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	if err := Execute([]string{
		"TestSwitch",
	}); err != nil {
		t.Fatal(err)
	}
	if !*foo {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal()
	}
}

func TestTypedVar(t *testing.T) {
	type Mode string
	v := Var[Mode]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "wrap",
	})
	if *v != "wrap" {
		t.Fatalf("got %v", *v)
	}
	if _, ok := Arity("TestTypedVar."); !ok {
		t.Fatal()
	}
}
