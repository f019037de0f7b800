package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/tally-lang/tally/pkg/checker"
	"github.com/tally-lang/tally/pkg/interpreter"
	"github.com/tally-lang/tally/pkg/parser"
)

const cliToolVersion = "tally-cli 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		// With a terminal attached start the REPL, otherwise evaluate a
		// program piped through stdin.
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return runREPL()
		}
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
			return 1
		}
		return executeSource(string(src), runOptions{})
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runRun(args[1:])
	case "repl":
		return runREPL()
	case "fixtures":
		return runFixtures(args[1:])
	default:
		// `tally program.tly` behaves like `tally run program.tly`.
		return runRun(args)
	}
}

type runOptions struct {
	check  bool
	timing bool
}

func runRun(args []string) int {
	var opts runOptions
	var source, path string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-check", "--check":
			opts.check = true
		case "-timing", "--timing":
			opts.timing = true
		case "-e", "--eval":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "-e requires a source argument")
				return 2
			}
			i++
			source = args[i]
		default:
			if strings.HasPrefix(args[i], "-") {
				fmt.Fprintf(os.Stderr, "unknown flag %q\n", args[i])
				printUsage()
				return 2
			}
			if path != "" {
				fmt.Fprintf(os.Stderr, "unexpected argument %q\n", args[i])
				return 2
			}
			path = args[i]
		}
	}

	switch {
	case source != "" && path != "":
		fmt.Fprintln(os.Stderr, "cannot combine -e with a source file")
		return 2
	case source == "" && path == "":
		fmt.Fprintln(os.Stderr, "tally run requires a source file or -e")
		return 2
	case source == "":
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
			return 1
		}
		source = string(data)
	}
	return executeSource(source, opts)
}

func executeSource(source string, opts runOptions) int {
	program, err := parser.Parse(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	// Diagnostics are advisory; the program still runs.
	if opts.check {
		diags, err := checker.New().CheckProgram(program)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "check: %s\n", checker.Describe(d))
		}
	}

	start := time.Now()
	runErr := interpreter.New(os.Stdout).Run(program)
	if opts.timing {
		fmt.Fprintf(os.Stderr, "elapsed: %s\n", time.Since(start))
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "runtime error: %v\n", runErr)
		return 1
	}
	return 0
}

func runFixtures(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "tally fixtures requires exactly one directory")
		return 2
	}
	files, err := interpreter.FixtureFiles(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	var failures, cases int
	for _, path := range files {
		suite, err := interpreter.LoadFixtureSuite(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		for _, c := range suite.Cases {
			cases++
			problems := interpreter.CheckCase(c)
			if len(problems) == 0 {
				continue
			}
			failures++
			fmt.Fprintf(os.Stderr, "FAIL %s/%s\n", filepath.Base(path), c.Name)
			for _, problem := range problems {
				fmt.Fprintf(os.Stderr, "  %s\n", problem)
			}
		}
	}
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d cases failed\n", failures, cases)
		return 1
	}
	fmt.Fprintf(os.Stdout, "ok: %d cases across %d files\n", cases, len(files))
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  tally run [flags] <file.tly>")
	fmt.Fprintln(os.Stderr, "  tally run [flags] -e <source>")
	fmt.Fprintln(os.Stderr, "  tally <file.tly>")
	fmt.Fprintln(os.Stderr, "  tally repl")
	fmt.Fprintln(os.Stderr, "  tally fixtures <dir>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Run flags:")
	fmt.Fprintln(os.Stderr, "  -e CODE   evaluate the given source instead of a file")
	fmt.Fprintln(os.Stderr, "  -check    report static diagnostics to stderr before running")
	fmt.Fprintln(os.Stderr, "  -timing   report elapsed evaluation time to stderr")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "With no arguments tally starts a REPL when stdin is a terminal,")
	fmt.Fprintln(os.Stderr, "and otherwise evaluates the program piped through stdin.")
}
