package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/tally-lang/tally/pkg/interpreter"
	"github.com/tally-lang/tally/pkg/parser"
)

const (
	historyFile = ".tally_history"
	promptMain  = ">> "
	banner      = "Tally REPL. Ctrl+C clears the line, Ctrl+D exits. Type :help for commands."
	helpText    = `
REPL commands:
  :help           Show this help
  :quit / :exit   Exit the REPL
  :env            List current bindings
  :reset          Discard all bindings
`
)

func runREPL() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Load history (best-effort).
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	interp := interpreter.New(os.Stdout)

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			// Ctrl+D or a closed terminal.
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			ln.AppendHistory(line)
			if done := handleReplCommand(interp, trimmed); done {
				break
			}
			continue
		}

		evalLine(interp, line)
		ln.AppendHistory(line)
	}

	// Persist history (best-effort).
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

// evalLine runs one line in the persistent session, echoing the value of
// every bare expression statement. A missing final semicolon is supplied so
// `1+2` works as naturally as `1+2;`.
func evalLine(interp *interpreter.Interpreter, line string) {
	src := strings.TrimSpace(line)
	if !strings.HasSuffix(src, ";") {
		src += ";"
	}
	program, err := parser.Parse(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, stmt := range program.Statements {
		val, err := interp.ExecStatement(stmt)
		if err != nil {
			fmt.Println(err)
			return
		}
		if val != nil {
			fmt.Println(val.String())
		}
	}
}

func handleReplCommand(interp *interpreter.Interpreter, line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case ":help":
		fmt.Print(helpText)
	case ":quit", ":exit":
		return true
	case ":reset":
		*interp = *interpreter.New(os.Stdout)
		fmt.Println("bindings cleared.")
	case ":env":
		env := interp.GlobalEnvironment()
		keys := env.Keys()
		if len(keys) == 0 {
			fmt.Println("(no bindings)")
			return false
		}
		for _, name := range keys {
			val, err := env.Get(name)
			if err != nil {
				continue
			}
			fmt.Printf("%s = %s (%s)\n", name, val.String(), val.Kind())
		}
	default:
		fmt.Println("unknown command. Type :help for help.")
	}
	return false
}
