package interpreter

import (
	"fmt"
	"io"

	"github.com/tally-lang/tally/pkg/ast"
	"github.com/tally-lang/tally/pkg/runtime"
)

// Interpreter drives evaluation of Tally programs. It owns the single global
// environment for the run and writes print output to the injected sink.
type Interpreter struct {
	global *runtime.Environment
	out    io.Writer
}

// New returns an interpreter with an empty global environment that writes
// print output to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		global: runtime.NewEnvironment(),
		out:    out,
	}
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Run executes the program's statements in order. The first error aborts the
// run; statements after the failure point never execute.
func (i *Interpreter) Run(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if _, err := i.evaluateStatement(stmt, i.global); err != nil {
			return err
		}
	}
	return nil
}

// ExecStatement evaluates a single statement against the interpreter's
// environment. Expression statements return their value; let and print
// return nil. Bindings persist across calls, which is what the REPL needs.
func (i *Interpreter) ExecStatement(stmt ast.Statement) (runtime.Value, error) {
	return i.evaluateStatement(stmt, i.global)
}

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		// Evaluated for its side effects; the value is surfaced for the REPL
		// and otherwise discarded.
		return i.evaluateExpression(n.Expression, env)
	case *ast.LetStatement:
		// The declared kind annotation is not enforced; the binding keeps
		// whatever kind the initializer evaluated to.
		value, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		env.Define(n.Name, value)
		return nil, nil
	case *ast.PrintStatement:
		value, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintln(i.out, value.String()); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}
