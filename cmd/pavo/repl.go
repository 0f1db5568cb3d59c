package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/pavo/runs"
)

const (
	prompt         = "pavo> "
	continuePrompt = "....> "
	resetCommand   = ":reset"
)

func runREPL(session *runs.Session) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".pavo_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			// Ctrl-C drops the unfinished statement
			session.Discard()
			rl.SetPrompt(prompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) == resetCommand {
			session.Reset()
			rl.SetPrompt(prompt)
			continue
		}

		more, err := session.Feed(line)
		if err != nil {
			fmt.Fprint(rl.Stderr(), session.Excerpt(err))
		}
		if more {
			rl.SetPrompt(continuePrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}
}
