// Package ast defines the expression tree produced by the parser and
// consumed by the evaluator, simplifier and solver.
package ast

import (
	"math/big"

	"github.com/computorv2/computorv2/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	GetToken() token.Token
	String() string
}

// Expression is any node that can appear where a value is expected.
type Expression interface {
	Node
	expressionNode()
}

// BinaryOp enumerates the binary operators of §3.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Pow    // also covers the MatMul semantic when both operands are matrices; see DESIGN.md
	MatMul // reserved for callers that already know they want the matrix product
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Pow, MatMul:
		return "^"
	default:
		return "?"
	}
}

// UnaryOp enumerates the unary prefix operators.
type UnaryOp int

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
)

// NumberLiteral is an exact rational literal such as 3 or 3.14.
type NumberLiteral struct {
	Token token.Token
	Value *big.Rat
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) GetToken() token.Token { return n.Token }
func (n *NumberLiteral) String() string        { return n.Value.RatString() }

// ImagUnit is the constant i.
type ImagUnit struct {
	Token token.Token
}

func (n *ImagUnit) expressionNode()      {}
func (n *ImagUnit) GetToken() token.Token { return n.Token }
func (n *ImagUnit) String() string        { return "i" }

// Identifier is a variable or function-name reference.
type Identifier struct {
	Token token.Token
	Name  string
}

func (n *Identifier) expressionNode()      {}
func (n *Identifier) GetToken() token.Token { return n.Token }
func (n *Identifier) String() string        { return n.Name }

// MatrixLiteral is a rectangular literal [[..];[..];...]. Rows have already
// been validated to be of equal length by the parser.
type MatrixLiteral struct {
	Token token.Token
	Rows  [][]Expression
}

func (n *MatrixLiteral) expressionNode()      {}
func (n *MatrixLiteral) GetToken() token.Token { return n.Token }
func (n *MatrixLiteral) String() string {
	s := "["
	for i, row := range n.Rows {
		if i > 0 {
			s += ";"
		}
		s += "["
		for j, e := range row {
			if j > 0 {
				s += ","
			}
			s += e.String()
		}
		s += "]"
	}
	return s + "]"
}

// CallExpression is a function application f(args...).
type CallExpression struct {
	Token token.Token
	Name  string
	Args  []Expression
}

func (n *CallExpression) expressionNode()      {}
func (n *CallExpression) GetToken() token.Token { return n.Token }
func (n *CallExpression) String() string {
	s := n.Name + "("
	for i, a := range n.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// UnaryExpression is a prefixed + or - applied to a child expression.
type UnaryExpression struct {
	Token token.Token
	Op    UnaryOp
	Child Expression
}

func (n *UnaryExpression) expressionNode()      {}
func (n *UnaryExpression) GetToken() token.Token { return n.Token }
func (n *UnaryExpression) String() string {
	if n.Op == UnaryMinus {
		return "-" + n.Child.String()
	}
	return "+" + n.Child.String()
}

// BinaryExpression is a two-operand arithmetic expression.
type BinaryExpression struct {
	Token token.Token
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (n *BinaryExpression) expressionNode()      {}
func (n *BinaryExpression) GetToken() token.Token { return n.Token }
func (n *BinaryExpression) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

// AssignTarget is either a bare identifier (variable assignment) or a call
// pattern f(x, y) with distinct identifier arguments (function definition).
type AssignTarget struct {
	Name   string
	Params []string // nil for a plain variable assignment
}

func (t AssignTarget) IsFunction() bool { return t.Params != nil }

// AssignStatement is `IDENT = EXPR` or `IDENT(params) = EXPR`.
type AssignStatement struct {
	Token  token.Token
	Target AssignTarget
	Value  Expression
}

func (n *AssignStatement) GetToken() token.Token { return n.Token }
func (n *AssignStatement) String() string {
	lhs := n.Target.Name
	if n.Target.IsFunction() {
		lhs += "("
		for i, p := range n.Target.Params {
			if i > 0 {
				lhs += ", "
			}
			lhs += p
		}
		lhs += ")"
	}
	return lhs + " = " + n.Value.String()
}

// QueryStatement is `LHS = RHS ?`, either an evaluation query (RHS absent,
// represented as a nil Rhs with Lhs holding the whole expression) or an
// equation to solve.
type QueryStatement struct {
	Token token.Token
	Lhs   Expression
	Rhs   Expression // nil for a plain `EXPR = ?` evaluation query
}

func (n *QueryStatement) GetToken() token.Token { return n.Token }
func (n *QueryStatement) String() string {
	if n.Rhs == nil {
		return n.Lhs.String() + " = ?"
	}
	return n.Lhs.String() + " = " + n.Rhs.String() + " ?"
}

// ExpressionStatement wraps a bare expression entered with no assignment or
// query suffix.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (n *ExpressionStatement) GetToken() token.Token { return n.Token }
func (n *ExpressionStatement) String() string         { return n.Expression.String() }

// Statement is the top-level node produced per input line.
type Statement interface {
	Node
}
