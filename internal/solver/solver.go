// Package solver implements §4.R: reducing a query `LHS = RHS ?` to a single
// polynomial and solving it when it is degree <= 2 in at most one free
// variable.
package solver

import (
	"fmt"

	"github.com/computorv2/computorv2/internal/ast"
	"github.com/computorv2/computorv2/internal/evaluator"
	"github.com/computorv2/computorv2/internal/symbolic"
	"github.com/computorv2/computorv2/internal/value"
)

// Error is the SolveError member of the §7 taxonomy.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

func solveErr(format string, a ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, a...)}
}

// Result is the outcome of solving a reduced polynomial equation.
type Result struct {
	// Variable is the sole free variable found in the equation, or "" if
	// the equation reduced to a constant identity.
	Variable string
	// Degree is the polynomial's degree in Variable: 0, 1 or 2.
	Degree int
	// Solutions holds the roots. A degree-2 result lists (-b + sqrt(D))/2a
	// first, then (-b - sqrt(D))/2a. For a degree-0 identity it is always
	// empty; check AllReals instead.
	Solutions []value.Value
	// AllReals is true for a degree-0 equation that holds for every x
	// (e.g. `0 = 0 ?`).
	AllReals bool
	// Discriminant is populated only for degree-2 equations. The formatter's
	// SolveResult does not print it.
	Discriminant value.Value
}

// Solve rewrites lhs - rhs, simplifies it against ev's environment, and
// solves the resulting polynomial. rhs may be nil, meaning the query was a
// bare evaluation `EXPR = ?` rather than an equation; that case belongs to
// the evaluator, not the solver, so callers must not invoke Solve then.
func Solve(lhs, rhs ast.Expression, ev *evaluator.Evaluator) (*Result, error) {
	diff := ast.Expression(&ast.BinaryExpression{Op: ast.Sub, Left: lhs, Right: rhs})
	poly, err := ev.Simplify(diff)
	if err != nil {
		return nil, err
	}

	vars := poly.Variables()
	if len(vars) > 1 {
		return nil, solveErr("cannot solve an equation with more than one free variable: %v", vars)
	}

	if len(vars) == 0 {
		c, _ := poly.AsConstant()
		if isZeroScalar(c) {
			return &Result{Degree: 0, AllReals: true}, nil
		}
		return &Result{Degree: 0}, nil
	}

	v := vars[0]
	if err := checkDegree(poly, v, 2); err != nil {
		return nil, err
	}

	a := poly.CoeffOfPower(v, 2)
	b := poly.CoeffOfPower(v, 1)
	c := poly.CoeffOfPower(v, 0)

	if isZeroScalar(a) {
		return solveLinear(v, b, c)
	}
	return solveQuadratic(v, a, b, c)
}

// checkDegree rejects a polynomial that has any term of degree above max
// once reduced to its single free variable (§4.R: "degree <= 2 or
// SolveError").
func checkDegree(poly *symbolic.Poly, varName string, max int) error {
	for _, t := range poly.Terms() {
		if t.Mono.Degree() > max {
			return solveErr("cannot solve an equation of degree higher than %d in %s", max, varName)
		}
	}
	return nil
}

func solveLinear(v string, b, c value.Value) (*Result, error) {
	if isZeroScalar(b) {
		if isZeroScalar(c) {
			return &Result{Variable: v, Degree: 0, AllReals: true}, nil
		}
		return &Result{Variable: v, Degree: 0}, nil
	}
	negB, err := value.Neg(c)
	if err != nil {
		return nil, err
	}
	root, err := value.Div(negB, b)
	if err != nil {
		return nil, err
	}
	return &Result{Variable: v, Degree: 1, Solutions: []value.Value{root}}, nil
}

// solveQuadratic applies the standard formula x = (-b +- sqrt(D)) / 2a,
// reusing the evaluator's sqrt builtin so a perfect-square discriminant
// yields exact rational or Gaussian-rational roots instead of a decimal
// approximation (§4.B, §4.R).
func solveQuadratic(v string, a, b, c value.Value) (*Result, error) {
	b2, err := value.Mul(b, b)
	if err != nil {
		return nil, err
	}
	fourAC, err := value.Mul(value.RationalFromInt64(4), mustMul(a, c))
	if err != nil {
		return nil, err
	}
	disc, err := value.Sub(b2, fourAC)
	if err != nil {
		return nil, err
	}

	sqrtD, err := evaluator.Builtins["sqrt"].Fn([]value.Value{disc})
	if err != nil {
		return nil, err
	}

	twoA, err := value.Mul(value.RationalFromInt64(2), a)
	if err != nil {
		return nil, err
	}
	negB, err := value.Neg(b)
	if err != nil {
		return nil, err
	}

	num1, err := value.Add(negB, sqrtD)
	if err != nil {
		return nil, err
	}
	x1, err := value.Div(num1, twoA)
	if err != nil {
		return nil, err
	}

	if isZeroScalar(disc) {
		return &Result{Variable: v, Degree: 2, Solutions: []value.Value{x1}, Discriminant: disc}, nil
	}

	negSqrtD, err := value.Neg(sqrtD)
	if err != nil {
		return nil, err
	}
	num2, err := value.Add(negB, negSqrtD)
	if err != nil {
		return nil, err
	}
	x2, err := value.Div(num2, twoA)
	if err != nil {
		return nil, err
	}

	return &Result{Variable: v, Degree: 2, Solutions: []value.Value{x1, x2}, Discriminant: disc}, nil
}

func mustMul(a, b value.Value) value.Value {
	r, err := value.Mul(a, b)
	if err != nil {
		// a and c are both scalar polynomial coefficients (Rational or
		// Complex), a combination value.Mul always accepts.
		panic(err)
	}
	return r
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
