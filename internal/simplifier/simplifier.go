// Package simplifier canonicalises an arithmetic AST into the symbolic
// package's polynomial form, or collapses it to a concrete scalar Value
// when no free variable survives (§4.Q). It is shared by the evaluator
// (for any expression that still has unbound identifiers) and by the
// solver (which simplifies `lhs - rhs` before inspecting the result).
package simplifier

import (
	"github.com/computorv2/computorv2/internal/ast"
	"github.com/computorv2/computorv2/internal/symbolic"
	"github.com/computorv2/computorv2/internal/value"
)

// VarLookup resolves a bound identifier to its Value; ok is false for an
// identifier with no binding, which becomes a free polynomial variable.
type VarLookup func(name string) (value.Value, bool)

// CallEvaluator evaluates a function-call node to a concrete Value or a
// Symbolic Value; the simplifier does not know how to substitute
// user-defined function bodies or dispatch builtins itself, so it defers
// to the evaluator through this hook (§4.E owns that logic).
type CallEvaluator func(call *ast.CallExpression) (value.Value, error)

// Simplify walks expr in post-order, producing its canonical polynomial
// form. Callers that only need a concrete answer should follow up with
// ToValue.
func Simplify(expr ast.Expression, lookup VarLookup, callEval CallEvaluator) (*symbolic.Poly, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return symbolic.FromConstant(value.NewRational(n.Value)), nil

	case *ast.ImagUnit:
		return symbolic.FromConstant(value.NewComplex(value.RationalFromInt64(0), value.RationalFromInt64(1))), nil

	case *ast.Identifier:
		if v, ok := lookup(n.Name); ok {
			return scalarToPoly(v)
		}
		return symbolic.FromVariable(n.Name), nil

	case *ast.UnaryExpression:
		child, err := Simplify(n.Child, lookup, callEval)
		if err != nil {
			return nil, err
		}
		if n.Op == ast.UnaryPlus {
			return child, nil
		}
		return symbolic.Neg(child)

	case *ast.BinaryExpression:
		return simplifyBinary(n, lookup, callEval)

	case *ast.CallExpression:
		v, err := callEval(n)
		if err != nil {
			return nil, err
		}
		return scalarToPoly(v)

	default:
		return nil, &value.Error{Kind: "TypeError", Msg: "expression cannot appear in a polynomial context"}
	}
}

func simplifyBinary(n *ast.BinaryExpression, lookup VarLookup, callEval CallEvaluator) (*symbolic.Poly, error) {
	left, err := Simplify(n.Left, lookup, callEval)
	if err != nil {
		return nil, err
	}
	right, err := Simplify(n.Right, lookup, callEval)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case ast.Add:
		return symbolic.Add(left, right)
	case ast.Sub:
		return symbolic.Sub(left, right)
	case ast.Mul:
		return symbolic.Mul(left, right)
	case ast.Div:
		c, ok := right.AsConstant()
		if !ok {
			return nil, &value.Error{Kind: "MathError", Msg: "non-scalar division in symbolic context"}
		}
		if isZeroScalar(c) {
			return nil, &value.Error{Kind: "MathError", Msg: "division by zero"}
		}
		inv, err := value.Div(value.RationalFromInt64(1), c)
		if err != nil {
			return nil, err
		}
		return symbolic.Mul(left, symbolic.FromConstant(inv))
	case ast.Mod:
		lc, lok := left.AsConstant()
		rc, rok := right.AsConstant()
		if !lok || !rok {
			return nil, &value.Error{Kind: "TypeError", Msg: "%% requires scalar operands"}
		}
		lr, lok2 := lc.(*value.Rational)
		rr, rok2 := rc.(*value.Rational)
		if !lok2 || !rok2 {
			return nil, &value.Error{Kind: "TypeError", Msg: "%% is only defined for integer operands"}
		}
		m, err := value.EuclideanMod(lr, rr)
		if err != nil {
			return nil, err
		}
		return symbolic.FromConstant(m), nil
	case ast.Pow:
		c, ok := right.AsConstant()
		if !ok {
			return nil, &value.Error{Kind: "MathError", Msg: "symbolic exponent unsupported"}
		}
		r, ok := c.(*value.Rational)
		if !ok || !r.IsInteger() {
			return nil, &value.Error{Kind: "MathError", Msg: "exponent must be an integer; use a builtin (e.g. sqrt) for a fractional power"}
		}
		exp := r.V.Num().Int64()
		if exp < 0 {
			// A polynomial with a free variable has no monomial form for a
			// negative power; a constant base still has an exact answer via
			// the value tower's own inversion (Rational/Complex.PowInt).
			base, ok := left.AsConstant()
			if !ok {
				return nil, &value.Error{Kind: "MathError", Msg: "a negative exponent requires a constant base"}
			}
			v, err := value.PowScalar(base, exp)
			if err != nil {
				return nil, err
			}
			return symbolic.FromConstant(v), nil
		}
		return symbolic.PowInt(left, exp)
	default:
		return nil, &value.Error{Kind: "TypeError", Msg: "operator not supported in a polynomial context"}
	}
}

func scalarToPoly(v value.Value) (*symbolic.Poly, error) {
	switch x := v.(type) {
	case *value.Rational, *value.Complex:
		return symbolic.FromConstant(x), nil
	case *value.Symbolic:
		if p, ok := x.Poly.(*symbolic.Poly); ok {
			return p, nil
		}
		return nil, &value.Error{Kind: "TypeError", Msg: "unsupported symbolic value"}
	default:
		return nil, &value.Error{Kind: "TypeError", Msg: "a " + v.Kind().String() + " value cannot appear in a polynomial context"}
	}
}

func isZeroScalar(v value.Value) bool {
	switch x := v.(type) {
	case *value.Rational:
		return x.IsZero()
	case *value.Complex:
		return x.Re.IsZero() && x.Im.IsZero()
	default:
		return false
	}
}

// ToValue collapses p to a concrete Value when it has no free variables,
// otherwise wraps it as a Symbolic Value (§4.E).
func ToValue(p *symbolic.Poly) value.Value {
	if c, ok := p.AsConstant(); ok {
		return c
	}
	return &value.Symbolic{Poly: p}
}
