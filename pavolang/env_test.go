package pavolang

import (
	"errors"
	"fmt"
	"testing"
)

func TestEnv(t *testing.T) {
	env := NewEnv(0)

	if _, err := env.Get("x"); !errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("got %v", err)
	}
	if err := env.Set("x", 1); err != nil {
		t.Fatal(err)
	}
	if err := env.Set("y", 2); err != nil {
		t.Fatal(err)
	}
	if err := env.Set("x", 3); err != nil {
		t.Fatal(err)
	}
	if v, err := env.Get("x"); err != nil || v != 3 {
		t.Fatalf("got %v %v", v, err)
	}
	if !env.Has("y") || env.Has("z") {
		t.Fatal()
	}
	if env.Len() != 2 {
		t.Fatalf("got %v", env.Len())
	}

	var pairs []string
	for name, value := range env.All() {
		pairs = append(pairs, fmt.Sprintf("%s=%d", name, value))
	}
	if str := fmt.Sprint(pairs); str != "[x=3 y=2]" {
		t.Fatalf("got %s", str)
	}

	env.Reset()
	if env.Len() != 0 || env.Has("x") {
		t.Fatal()
	}
}

func TestEnvUndefinedMessage(t *testing.T) {
	_, err := NewEnv(0).Get("y")
	if err.Error() != "undefined variable: y" {
		t.Fatalf("got %v", err)
	}
}

func TestEnvTooManyVariables(t *testing.T) {
	env := NewEnv(2)
	if err := env.Set("a", 1); err != nil {
		t.Fatal(err)
	}
	if err := env.Set("b", 1); err != nil {
		t.Fatal(err)
	}
	// updates never count against the limit
	if err := env.Set("a", 2); err != nil {
		t.Fatal(err)
	}
	err := env.Set("c", 1)
	if !errors.Is(err, ErrTooManyVariables) {
		t.Fatalf("got %v", err)
	}
	if env.Has("c") {
		t.Fatal()
	}
}

func TestEnvDefaultLimit(t *testing.T) {
	env := NewEnv(0)
	for i := range DefaultMaxVariables {
		if err := env.Set(fmt.Sprintf("v%d", i), i); err != nil {
			t.Fatal(err)
		}
	}
	if err := env.Set("one_more", 1); !errors.Is(err, ErrTooManyVariables) {
		t.Fatalf("got %v", err)
	}
}
