package checker

import (
	"fmt"

	"github.com/tally-lang/tally/pkg/ast"
	"github.com/tally-lang/tally/pkg/runtime"
)

// Checker walks a program and records static findings without evaluating it.
// It never blocks a run; every diagnostic is advisory.
type Checker struct {
	vars map[string]runtime.Kind
}

// Diagnostic reports one static finding. Statement is the zero-based index of
// the statement it was found in.
type Diagnostic struct {
	Statement int
	Message   string
	Node      ast.Node
}

// kindUnknown marks expressions whose kind cannot be determined statically,
// such as references to bindings introduced by failed statements.
const kindUnknown = runtime.Kind(-1)

// New returns a checker instance.
func New() *Checker {
	return &Checker{vars: make(map[string]runtime.Kind)}
}

// CheckProgram analyzes every statement in order and returns the diagnostics
// found. Unlike evaluation, checking continues past errors so one pass
// reports everything.
func (c *Checker) CheckProgram(program *ast.Program) ([]Diagnostic, error) {
	if program == nil {
		return nil, fmt.Errorf("checker: program is nil")
	}
	// Reset bindings between runs.
	c.vars = make(map[string]runtime.Kind)
	var diagnostics []Diagnostic
	for idx, stmt := range program.Statements {
		diagnostics = append(diagnostics, c.checkStatement(idx, stmt)...)
	}
	return diagnostics, nil
}

// Describe renders a diagnostic with a 1-based statement number.
func Describe(d Diagnostic) string {
	return fmt.Sprintf("statement %d: %s", d.Statement+1, d.Message)
}

func (c *Checker) checkStatement(idx int, stmt ast.Statement) []Diagnostic {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		_, diags := c.inferExpression(idx, s.Expression)
		return diags
	case *ast.LetStatement:
		return c.checkLet(idx, s)
	case *ast.PrintStatement:
		_, diags := c.inferExpression(idx, s.Value)
		return diags
	default:
		return []Diagnostic{c.diag(idx, stmt, fmt.Sprintf("unsupported statement type: %s", stmt.NodeType()))}
	}
}

func (c *Checker) checkLet(idx int, s *ast.LetStatement) []Diagnostic {
	inferred, diags := c.inferExpression(idx, s.Value)
	declared, ok := runtime.KindFromName(s.DeclaredKind)
	switch {
	case !ok:
		diags = append(diags, c.diag(idx, s, fmt.Sprintf("let %s names unknown kind %q", s.Name, s.DeclaredKind)))
		c.vars[s.Name] = inferred
	case inferred == kindUnknown:
		// Trust the annotation when the initializer's kind is unknown.
		c.vars[s.Name] = declared
	case inferred != declared:
		diags = append(diags, c.diag(idx, s, fmt.Sprintf("let %s declares %s but its initializer evaluates to %s; annotations are not enforced", s.Name, declared, inferred)))
		c.vars[s.Name] = inferred
	default:
		c.vars[s.Name] = inferred
	}
	return diags
}

func (c *Checker) inferExpression(idx int, expr ast.Expression) (runtime.Kind, []Diagnostic) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return runtime.KindF64, nil
	case *ast.ConstantLiteral:
		return runtime.KindF64, nil
	case *ast.Identifier:
		kind, ok := c.vars[e.Name]
		if !ok {
			return kindUnknown, []Diagnostic{c.diag(idx, e, fmt.Sprintf("undefined variable %q", e.Name))}
		}
		return kind, nil
	case *ast.ParenExpression:
		return c.inferExpression(idx, e.Inner)
	case *ast.BinaryExpression:
		left, diags := c.inferExpression(idx, e.Left)
		right, rightDiags := c.inferExpression(idx, e.Right)
		diags = append(diags, rightDiags...)
		if left != kindUnknown && right != kindUnknown && left != right {
			diags = append(diags, c.diag(idx, e, fmt.Sprintf("operator %s mixes %s and %s", e.Operator, left, right)))
			return kindUnknown, diags
		}
		if left != kindUnknown {
			return left, diags
		}
		return right, diags
	case *ast.AssignmentExpression:
		kind, diags := c.inferExpression(idx, e.Value)
		c.vars[e.Name] = kind
		return kind, diags
	default:
		return kindUnknown, []Diagnostic{c.diag(idx, expr, fmt.Sprintf("unsupported expression type: %s", expr.NodeType()))}
	}
}

func (c *Checker) diag(idx int, node ast.Node, message string) Diagnostic {
	return Diagnostic{Statement: idx, Message: message, Node: node}
}
