package ast

// Terse builders used by tests across packages.

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Pi() *ConstantLiteral {
	return NewConstantLiteral(ConstantPi)
}

func E() *ConstantLiteral {
	return NewConstantLiteral(ConstantE)
}

func Paren(inner Expression) *ParenExpression {
	return NewParenExpression(inner)
}

func Bin(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Add(left, right Expression) *BinaryExpression {
	return NewBinaryExpression(OperatorAdd, left, right)
}

func Sub(left, right Expression) *BinaryExpression {
	return NewBinaryExpression(OperatorSubtract, left, right)
}

func Mul(left, right Expression) *BinaryExpression {
	return NewBinaryExpression(OperatorMultiply, left, right)
}

func Div(left, right Expression) *BinaryExpression {
	return NewBinaryExpression(OperatorDivide, left, right)
}

func Pow(left, right Expression) *BinaryExpression {
	return NewBinaryExpression(OperatorPower, left, right)
}

func Assign(name string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(name, value)
}

func ExprStmt(expression Expression) *ExpressionStatement {
	return NewExpressionStatement(expression)
}

func Let(name, declaredKind string, value Expression) *LetStatement {
	return NewLetStatement(name, declaredKind, value)
}

func Print(value Expression) *PrintStatement {
	return NewPrintStatement(value)
}

func Prog(statements ...Statement) *Program {
	return NewProgram(statements)
}
