package solver

import (
	"math/big"
	"testing"

	"github.com/computorv2/computorv2/internal/ast"
	"github.com/computorv2/computorv2/internal/evaluator"
	"github.com/computorv2/computorv2/internal/value"
)

func num(n int64) *ast.NumberLiteral {
	return &ast.NumberLiteral{Value: new(big.Rat).SetInt64(n)}
}

func ident(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func bin(op ast.BinaryOp, l, r ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Op: op, Left: l, Right: r}
}

func newEvaluator() *evaluator.Evaluator {
	return evaluator.New(evaluator.NewEnvironment())
}

func rat(t *testing.T, v value.Value) *big.Rat {
	t.Helper()
	r, ok := v.(*value.Rational)
	if !ok {
		t.Fatalf("expected *value.Rational, got %T", v)
	}
	return r.V
}

// x^2 - 5*x + 6 = 0  -> roots 2 and 3
func TestSolveQuadraticTwoRealRoots(t *testing.T) {
	lhs := bin(ast.Add,
		bin(ast.Sub, bin(ast.Pow, ident("x"), num(2)), bin(ast.Mul, num(5), ident("x"))),
		num(6))
	rhs := num(0)

	res, err := Solve(lhs, rhs, newEvaluator())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Degree != 2 || len(res.Solutions) != 2 {
		t.Fatalf("expected 2 roots, got %+v", res)
	}
	r1, r2 := rat(t, res.Solutions[0]), rat(t, res.Solutions[1])
	want := map[string]bool{"2/1": false, "3/1": false}
	for _, r := range []*big.Rat{r1, r2} {
		key := r.RatString()
		if _, ok := want[key]; !ok {
			t.Fatalf("unexpected root %s", key)
		}
		want[key] = true
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("missing expected root %s", k)
		}
	}
}

// x^2 + 1 = 0 -> complex roots +-i
func TestSolveQuadraticComplexRoots(t *testing.T) {
	lhs := bin(ast.Add, bin(ast.Pow, ident("x"), num(2)), num(1))
	rhs := num(0)

	res, err := Solve(lhs, rhs, newEvaluator())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Degree != 2 || len(res.Solutions) != 2 {
		t.Fatalf("expected 2 roots, got %+v", res)
	}
	for _, s := range res.Solutions {
		c, ok := s.(*value.Complex)
		if !ok {
			t.Fatalf("expected complex root, got %T", s)
		}
		if !c.Re.IsZero() {
			t.Errorf("expected zero real part, got %s", c.Re.String())
		}
	}
}

// 2*x + 4 = 0 -> x = -2
func TestSolveLinear(t *testing.T) {
	lhs := bin(ast.Add, bin(ast.Mul, num(2), ident("x")), num(4))
	rhs := num(0)

	res, err := Solve(lhs, rhs, newEvaluator())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Degree != 1 || len(res.Solutions) != 1 {
		t.Fatalf("expected 1 root, got %+v", res)
	}
	if got := rat(t, res.Solutions[0]).RatString(); got != "-2" {
		t.Errorf("x = %s, want -2", got)
	}
}

// 0 = 0 -> identity, true for every x
func TestSolveIdentity(t *testing.T) {
	res, err := Solve(num(0), num(0), newEvaluator())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.AllReals {
		t.Errorf("expected AllReals identity, got %+v", res)
	}
}

// 0 = 1 -> no solution
func TestSolveContradiction(t *testing.T) {
	res, err := Solve(num(0), num(1), newEvaluator())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AllReals || len(res.Solutions) != 0 {
		t.Errorf("expected no solution, got %+v", res)
	}
}

// x^3 = 0 is beyond degree 2 and must be rejected as a SolveError.
func TestSolveRejectsDegreeAboveTwo(t *testing.T) {
	lhs := bin(ast.Pow, ident("x"), num(3))
	_, err := Solve(lhs, num(0), newEvaluator())
	if err == nil {
		t.Fatal("expected a SolveError, got nil")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("expected *solver.Error, got %T", err)
	}
}

// x*y = 0 has two free variables and cannot be solved.
func TestSolveRejectsMultivariate(t *testing.T) {
	lhs := bin(ast.Mul, ident("x"), ident("y"))
	_, err := Solve(lhs, num(0), newEvaluator())
	if err == nil {
		t.Fatal("expected a SolveError, got nil")
	}
}
