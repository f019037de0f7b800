package interpreter

import (
	"fmt"
	"math"

	"github.com/tally-lang/tally/pkg/ast"
	"github.com/tally-lang/tally/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		// Literals always carry kind f64; the grammar has no way to spell
		// other kinds directly.
		return runtime.F64Value{Val: n.Value}, nil
	case *ast.ConstantLiteral:
		return evaluateConstant(n)
	case *ast.Identifier:
		return env.Get(n.Name)
	case *ast.ParenExpression:
		return i.evaluateExpression(n.Inner, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.AssignmentExpression:
		return i.evaluateAssignment(n, env)
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func evaluateConstant(node *ast.ConstantLiteral) (runtime.Value, error) {
	switch node.Name {
	case ast.ConstantPi:
		return runtime.F64Value{Val: math.Pi}, nil
	case ast.ConstantE:
		return runtime.F64Value{Val: math.E}, nil
	default:
		return nil, fmt.Errorf("unknown constant %q", node.Name)
	}
}

// evaluateBinaryExpression evaluates the left operand completely, including
// any nested side effects, before the right operand.
func (i *Interpreter) evaluateBinaryExpression(node *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(node.Right, env)
	if err != nil {
		return nil, err
	}
	switch node.Operator {
	case ast.OperatorAdd:
		return runtime.Add(left, right)
	case ast.OperatorSubtract:
		return runtime.Subtract(left, right)
	case ast.OperatorMultiply:
		return runtime.Multiply(left, right)
	case ast.OperatorDivide:
		return runtime.Divide(left, right)
	case ast.OperatorPower:
		return runtime.Power(left, right)
	default:
		return nil, fmt.Errorf("unsupported operator %q", node.Operator)
	}
}

// evaluateAssignment writes the evaluated value into the environment and
// yields that same value as the expression's result.
func (i *Interpreter) evaluateAssignment(node *ast.AssignmentExpression, env *runtime.Environment) (runtime.Value, error) {
	value, err := i.evaluateExpression(node.Value, env)
	if err != nil {
		return nil, err
	}
	env.Assign(node.Name, value)
	return value, nil
}
