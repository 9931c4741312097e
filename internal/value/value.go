// Package value implements the runtime value tower: exact rationals,
// complex numbers lifted from rationals, rectangular matrices, stored
// function definitions, and the Symbolic escape hatch retained when a
// computation has free variables (see internal/symbolic for the polynomial
// representation it wraps).
package value

import (
	"fmt"

	"github.com/computorv2/computorv2/internal/ast"
)

// Kind tags the runtime variant of a Value, mirroring §3's Value variant.
type Kind int

const (
	KRational Kind = iota
	KComplex
	KMatrix
	KSymbolic
	KFunction
)

func (k Kind) String() string {
	switch k {
	case KRational:
		return "Rational"
	case KComplex:
		return "Complex"
	case KMatrix:
		return "Matrix"
	case KSymbolic:
		return "Symbolic"
	case KFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Value is the common interface satisfied by every runtime variant.
type Value interface {
	Kind() Kind
	String() string
}

// IsScalar reports whether v is a Rational or a Complex.
func IsScalar(v Value) bool {
	return v.Kind() == KRational || v.Kind() == KComplex
}

// SymbolicPoly is the minimal surface internal/symbolic's PolyExpr exposes
// to this package, kept narrow so that value does not need to import
// symbolic (symbolic imports value for scalar coefficients instead).
type SymbolicPoly interface {
	fmt.Stringer
	IsZero() bool
	// AsConstant returns the scalar value and true when the polynomial has
	// no remaining free variables.
	AsConstant() (Value, bool)
}

// Symbolic is retained by the evaluator when a computation still has free
// variables after substitution (§4.E).
type Symbolic struct {
	Poly SymbolicPoly
}

func (s *Symbolic) Kind() Kind     { return KSymbolic }
func (s *Symbolic) String() string { return s.Poly.String() }

// Function is a user-defined function: unevaluated body AST, late-bound
// against the environment at call time (§4.E, §9).
type Function struct {
	Name   string
	Params []string
	Body   ast.Expression
}

func (f *Function) Kind() Kind     { return KFunction }
func (f *Function) String() string { return fmt.Sprintf("<function %s/%d>", f.Name, len(f.Params)) }

// Error is the common error type returned by value-tower operations; the
// evaluator classifies it into the taxonomy of §7 by Kind.
type Error struct {
	Kind string // "MathError" or "TypeError"
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func mathErr(format string, a ...interface{}) *Error {
	return &Error{Kind: "MathError", Msg: fmt.Sprintf(format, a...)}
}

func typeErr(format string, a ...interface{}) *Error {
	return &Error{Kind: "TypeError", Msg: fmt.Sprintf(format, a...)}
}
