package pavolang

import (
	"iter"
	"strconv"
)

type VarKind uint8

const (
	VarUnknown VarKind = iota
	VarInteger
)

type Entry struct {
	Name  string
	Kind  VarKind
	Value int
}

const DefaultMaxVariables = 100

// Env is the flat variable table of one run. Names declared in nested
// blocks live here too; there is no shadowing.
type Env struct {
	entries []Entry
	max     int
}

func NewEnv(maxVariables int) *Env {
	if maxVariables <= 0 {
		maxVariables = DefaultMaxVariables
	}
	return &Env{
		max: maxVariables,
	}
}

func (e *Env) index(name string) int {
	for i, entry := range e.entries {
		if entry.Name == name {
			return i
		}
	}
	return -1
}

func (e *Env) Has(name string) bool {
	return e.index(name) >= 0
}

func (e *Env) Get(name string) (int, error) {
	i := e.index(name)
	if i < 0 {
		return 0, &SemanticError{
			Err:     ErrUndefinedVariable,
			Subject: name,
		}
	}
	return e.entries[i].Value, nil
}

// Set updates name in place, or appends it if it is new.
func (e *Env) Set(name string, value int) error {
	if i := e.index(name); i >= 0 {
		e.entries[i].Value = value
		e.entries[i].Kind = VarInteger
		return nil
	}
	if len(e.entries) >= e.max {
		return &SemanticError{
			Err:     ErrTooManyVariables,
			Subject: name + " (limit " + strconv.Itoa(e.max) + ")",
		}
	}
	e.entries = append(e.entries, Entry{
		Name:  name,
		Kind:  VarInteger,
		Value: value,
	})
	return nil
}

func (e *Env) Len() int {
	return len(e.entries)
}

// All yields variables in declaration order.
func (e *Env) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, entry := range e.entries {
			if !yield(entry.Name, entry.Value) {
				return
			}
		}
	}
}

func (e *Env) Reset() {
	e.entries = e.entries[:0]
}
