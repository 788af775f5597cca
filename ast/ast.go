package ast

import "fmt"

// BinaryOperation is an infix arithmetic operator.
type BinaryOperation int

const (
	Addition BinaryOperation = iota
	Subtraction
	Multiplication
	Division
)

var binarySymbols = [...]string{
	Addition:       "+",
	Subtraction:    "-",
	Multiplication: "*",
	Division:       "/",
}

// String returns the operator's source symbol.
func (op BinaryOperation) String() string {
	if op >= 0 && int(op) < len(binarySymbols) {
		return binarySymbols[op]
	}
	return fmt.Sprintf("BinaryOperation(%d)", int(op))
}

// BinaryOperationFor maps an operator token kind to its BinaryOperation.
func BinaryOperationFor(kind TokenKind) (BinaryOperation, bool) {
	switch kind {
	case PunOperatorPlus:
		return Addition, true
	case PunOperatorMinus:
		return Subtraction, true
	case PunOperatorMultiply:
		return Multiplication, true
	case PunOperatorDivide:
		return Division, true
	}
	return 0, false
}

// UnaryOperation is a prefix arithmetic operator.
type UnaryOperation int

const (
	ArithmeticNegation UnaryOperation = iota
)

func (op UnaryOperation) String() string {
	if op == ArithmeticNegation {
		return "-"
	}
	return fmt.Sprintf("UnaryOperation(%d)", int(op))
}

// ValueNode is an expression in the syntax tree. Every node exclusively owns
// its children; the tree never shares subtrees.
//
//	ValueNode
//	  *Literal
//	  *UnaryExpression
//	  *BinaryExpression
type ValueNode interface {
	// String returns a compact, parenthesised rendering of the node.
	// It is for debugging and test output only.
	String() string
	valueNode()
}

// Literal wraps a numeric value.
type Literal struct {
	Value Value
}

func (n *Literal) valueNode()     {}
func (n *Literal) String() string { return n.Value.String() }

// UnaryExpression applies a prefix operator: -x
type UnaryExpression struct {
	Op    UnaryOperation
	Value ValueNode
}

func (n *UnaryExpression) valueNode() {}
func (n *UnaryExpression) String() string {
	return fmt.Sprintf("(%s%s)", n.Op, n.Value)
}

// BinaryExpression applies an infix operator: left op right
type BinaryExpression struct {
	Left  ValueNode
	Op    BinaryOperation
	Right ValueNode
}

func (n *BinaryExpression) valueNode() {}
func (n *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}
