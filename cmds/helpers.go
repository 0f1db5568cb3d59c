package cmds

// Var defines a command that takes one argument and stores it.
// name followed by "." resets the value.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))
	return &value
}

func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}
