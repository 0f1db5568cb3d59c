package cmds

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}

func Arity(name string) (int, bool) {
	return GlobalExecutor.Arity(name)
}
