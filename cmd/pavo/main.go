package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/reusee/dscope"
	"github.com/reusee/pavo/cmds"
	"github.com/reusee/pavo/runs"
)

// task is set by the command word on the command line.
var task func(ctx context.Context, scope dscope.Scope) error

func init() {
	cmds.Define("run", cmds.Func(func(path string) {
		task = func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(runFile runs.RunFile) {
				err = runFile(ctx, path)
			})
			return
		}
	}).Desc("run a program"))

	cmds.Define("check", cmds.Func(func(path string) {
		task = func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(checkFile runs.CheckFile) {
				err = checkFile(ctx, path)
			})
			return
		}
	}).Desc("report the first lexical or syntax error without running"))

	cmds.Define("tokens", cmds.Func(func(path string) {
		task = func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(dumpTokens runs.DumpTokens) {
				err = dumpTokens(ctx, path)
			})
			return
		}
	}).Desc("print the token stream"))

	cmds.Define("ast", cmds.Func(func(path string) {
		task = func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(dumpAST runs.DumpAST) {
				err = dumpAST(ctx, path)
			})
			return
		}
	}).Desc("print top-level statements as s-expressions"))

	cmds.Define("repl", cmds.Func(func() {
		task = func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(newSession runs.NewSession) {
				err = runREPL(newSession(ctx))
			})
			return
		}
	}).Desc("interactive session"))
}

func main() {
	args := withImplicitRun(os.Args[1:])
	if err := cmds.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cmds.PrintUsage()
		os.Exit(1)
	}
	if task == nil {
		fmt.Fprintf(os.Stderr, "usage: %s <filename.pavo>\n", os.Args[0])
		cmds.PrintUsage()
		os.Exit(1)
	}

	scope := dscope.New(new(Module))
	if err := task(context.Background(), scope); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withImplicitRun inserts "run" before the first word that is neither a
// command nor an argument of one, so "pavo -trace prog.pavo" works.
func withImplicitRun(args []string) []string {
	for i := 0; i < len(args); {
		n, ok := cmds.Arity(args[i])
		if !ok {
			return slices.Insert(slices.Clone(args), i, "run")
		}
		i += 1 + n
	}
	return args
}
