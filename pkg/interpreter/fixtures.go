package interpreter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tally-lang/tally/pkg/parser"
	"github.com/tally-lang/tally/pkg/runtime"
)

// FixtureSuite is a YAML-described set of end-to-end programs paired with the
// output they must produce. Suites drive both the package tests and the
// `tally fixtures` subcommand.
type FixtureSuite struct {
	Path  string
	Cases []FixtureCase
}

// FixtureCase holds one source program and its expectations. Env lists
// variables bound before the program runs, which is the only way a fixture
// can observe non-f64 values.
type FixtureCase struct {
	Name   string                    `yaml:"name"`
	Env    map[string]FixtureBinding `yaml:"env"`
	Source string                    `yaml:"source"`
	Expect FixtureExpect             `yaml:"expect"`
}

// FixtureBinding describes a pre-bound variable. Value is given as a float
// and converted to the named kind with the usual truncating cast.
type FixtureBinding struct {
	Kind  string  `yaml:"kind"`
	Value float64 `yaml:"value"`
}

// FixtureExpect lists the exact stdout lines a case must print. When Error is
// set the run must fail with a message containing it, and Stdout then holds
// the lines printed before the failure.
type FixtureExpect struct {
	Stdout StdoutLines `yaml:"stdout"`
	Error  string      `yaml:"error"`
}

// StdoutLines decodes a YAML sequence of scalars as strings, so fixtures may
// write numeric lines without quoting them.
type StdoutLines []string

func (s *StdoutLines) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("stdout must be a sequence (line %d)", value.Line)
	}
	lines := make([]string, 0, len(value.Content))
	for _, item := range value.Content {
		if item.Kind != yaml.ScalarNode {
			return fmt.Errorf("stdout entries must be scalars (line %d)", item.Line)
		}
		lines = append(lines, item.Value)
	}
	*s = lines
	return nil
}

// ValidationError aggregates every problem found in a fixture file so authors
// can fix them in one pass.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fixtures: %s failed validation:", e.Path)
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type fixtureFile struct {
	Cases []FixtureCase `yaml:"cases"`
}

// LoadFixtureSuite reads and validates one fixture file. Unknown YAML fields
// are rejected so typos in expectations fail loudly instead of passing
// vacuously.
func LoadFixtureSuite(path string) (*FixtureSuite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw fixtureFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("fixtures: %s is empty", path)
		}
		return nil, fmt.Errorf("fixtures: parse %s: %w", path, err)
	}

	var issues []string
	if len(raw.Cases) == 0 {
		issues = append(issues, "no cases defined")
	}
	seen := make(map[string]bool, len(raw.Cases))
	for idx, c := range raw.Cases {
		label := c.Name
		if label == "" {
			label = fmt.Sprintf("case %d", idx)
			issues = append(issues, fmt.Sprintf("%s: missing name", label))
		}
		if seen[c.Name] && c.Name != "" {
			issues = append(issues, fmt.Sprintf("%s: duplicate name", label))
		}
		seen[c.Name] = true
		if strings.TrimSpace(c.Source) == "" {
			issues = append(issues, fmt.Sprintf("%s: missing source", label))
		}
		if len(c.Expect.Stdout) == 0 && c.Expect.Error == "" {
			issues = append(issues, fmt.Sprintf("%s: expects neither stdout nor an error", label))
		}
		for name, binding := range c.Env {
			if _, ok := runtime.KindFromName(binding.Kind); !ok {
				issues = append(issues, fmt.Sprintf("%s: env %q has unknown kind %q", label, name, binding.Kind))
			}
		}
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Path: path, Issues: issues}
	}
	return &FixtureSuite{Path: path, Cases: raw.Cases}, nil
}

// FixtureFiles lists the fixture files directly under dir, sorted by name.
func FixtureFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read %s: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("fixtures: no fixture files under %s", dir)
	}
	return files, nil
}

// RunCase parses and evaluates one case against a fresh interpreter,
// returning the stdout lines it printed and the parse or evaluation error.
func RunCase(c FixtureCase) ([]string, error) {
	program, err := parser.Parse(c.Source)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	interp := New(&buf)
	for name, binding := range c.Env {
		kind, ok := runtime.KindFromName(binding.Kind)
		if !ok {
			return nil, fmt.Errorf("fixtures: env %q has unknown kind %q", name, binding.Kind)
		}
		interp.GlobalEnvironment().Define(name, runtime.FromFloat64(kind, binding.Value))
	}
	runErr := interp.Run(program)
	return outputLines(&buf), runErr
}

// CheckCase runs a case and returns a description of every expectation it
// missed. An empty result means the case passed.
func CheckCase(c FixtureCase) []string {
	lines, err := RunCase(c)
	var problems []string
	if c.Expect.Error != "" {
		switch {
		case err == nil:
			problems = append(problems, fmt.Sprintf("expected error containing %q, run succeeded", c.Expect.Error))
		case !strings.Contains(err.Error(), c.Expect.Error):
			problems = append(problems, fmt.Sprintf("error %q does not contain %q", err.Error(), c.Expect.Error))
		}
	} else if err != nil {
		problems = append(problems, fmt.Sprintf("unexpected error: %v", err))
	}
	want := []string(c.Expect.Stdout)
	if len(lines) != len(want) {
		problems = append(problems, fmt.Sprintf("stdout %q, want %q", lines, want))
		return problems
	}
	for i := range lines {
		if lines[i] != want[i] {
			problems = append(problems, fmt.Sprintf("stdout[%d] = %q, want %q", i, lines[i], want[i]))
		}
	}
	return problems
}

func outputLines(buf *bytes.Buffer) []string {
	out := buf.String()
	if out == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}
