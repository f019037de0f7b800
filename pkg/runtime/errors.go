package runtime

import "fmt"

// TypeMismatchError reports a binary operation over operands of differing
// kinds. Mixed-kind arithmetic is never coerced; it aborts the run.
type TypeMismatchError struct {
	Op    string
	Left  Kind
	Right Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Types %s and %s are not the same", e.Left, e.Right)
}

// UndefinedVariableError reports a lookup of a name with no prior binding.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'", e.Name)
}

// DivisionByZeroError reports integer division by zero. Floating-point
// division never errors; it follows IEEE 754.
type DivisionByZeroError struct {
	Kind Kind
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("Division by zero (%s)", e.Kind)
}
