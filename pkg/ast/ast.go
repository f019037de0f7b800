package ast

type NodeType string

const (
	NodeNumberLiteral        NodeType = "NumberLiteral"
	NodeConstantLiteral      NodeType = "ConstantLiteral"
	NodeIdentifier           NodeType = "Identifier"
	NodeParenExpression      NodeType = "ParenExpression"
	NodeBinaryExpression     NodeType = "BinaryExpression"
	NodeAssignmentExpression NodeType = "AssignmentExpression"
	NodeExpressionStatement  NodeType = "ExpressionStatement"
	NodeLetStatement         NodeType = "LetStatement"
	NodePrintStatement       NodeType = "PrintStatement"
	NodeProgram              NodeType = "Program"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Expressions

type NumberLiteral struct {
	nodeImpl
	expressionMarker

	Value float64 `json:"value"`
}

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

// Constant names a built-in mathematical constant.
type Constant string

const (
	ConstantPi Constant = "pi"
	ConstantE  Constant = "e"
)

type ConstantLiteral struct {
	nodeImpl
	expressionMarker

	Name Constant `json:"name"`
}

func NewConstantLiteral(name Constant) *ConstantLiteral {
	return &ConstantLiteral{nodeImpl: newNodeImpl(NodeConstantLiteral), Name: name}
}

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

type ParenExpression struct {
	nodeImpl
	expressionMarker

	Inner Expression `json:"inner"`
}

func NewParenExpression(inner Expression) *ParenExpression {
	return &ParenExpression{nodeImpl: newNodeImpl(NodeParenExpression), Inner: inner}
}

// BinaryOperator enumerates the arithmetic operators the grammar accepts.
type BinaryOperator string

const (
	OperatorAdd      BinaryOperator = "+"
	OperatorSubtract BinaryOperator = "-"
	OperatorMultiply BinaryOperator = "*"
	OperatorDivide   BinaryOperator = "/"
	OperatorPower    BinaryOperator = "^"
)

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

// AssignmentExpression writes to a variable and yields the assigned value.
// The grammar only allows plain identifiers as targets.
type AssignmentExpression struct {
	nodeImpl
	expressionMarker

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewAssignmentExpression(name string, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Name: name, Value: value}
}

// Statements

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expression Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expression}
}

// LetStatement binds the evaluated value under Name. DeclaredKind records the
// source annotation text; it is validated by the parser and inert at runtime.
type LetStatement struct {
	nodeImpl
	statementMarker

	Name         string     `json:"name"`
	DeclaredKind string     `json:"declaredKind"`
	Value        Expression `json:"value"`
}

func NewLetStatement(name, declaredKind string, value Expression) *LetStatement {
	return &LetStatement{nodeImpl: newNodeImpl(NodeLetStatement), Name: name, DeclaredKind: declaredKind, Value: value}
}

type PrintStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value"`
}

func NewPrintStatement(value Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Value: value}
}

type Program struct {
	nodeImpl

	Statements []Statement `json:"statements"`
}

func NewProgram(statements []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}
