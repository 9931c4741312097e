package formatter

import (
	"math/big"
	"testing"

	"github.com/computorv2/computorv2/internal/solver"
	"github.com/computorv2/computorv2/internal/symbolic"
	"github.com/computorv2/computorv2/internal/value"
)

func ratN(n, d int64) *value.Rational {
	return value.NewRational(big.NewRat(n, d))
}

func TestRationalFormatting(t *testing.T) {
	f := New(DefaultPrecision)
	cases := []struct {
		r    *value.Rational
		want string
	}{
		{ratN(14, 1), "14"},
		{ratN(3, 4), "3/4"},
		{ratN(-2, 1), "-2"},
	}
	for _, c := range cases {
		if got := f.Rational(c.r); got != c.want {
			t.Errorf("Rational(%v) = %q, want %q", c.r.V, got, c.want)
		}
	}
}

func TestRationalApproxUsesConfiguredPrecision(t *testing.T) {
	r := &value.Rational{V: big.NewRat(1, 3), Approx: true}
	coarse := New(2).Rational(r)
	fine := New(6).Rational(r)
	if len(fine) <= len(coarse) {
		t.Errorf("New(6).Rational = %q, New(2).Rational = %q; expected the higher-precision rendering to be longer", fine, coarse)
	}
}

func TestComplexFormatting(t *testing.T) {
	f := New(DefaultPrecision)
	cases := []struct {
		c    *value.Complex
		want string
	}{
		{&value.Complex{Re: ratN(3, 1), Im: ratN(-2, 1)}, "3 - 2i"},
		{&value.Complex{Re: ratN(0, 1), Im: ratN(5, 1)}, "5i"},
		{&value.Complex{Re: ratN(0, 1), Im: ratN(1, 1)}, "i"},
		{&value.Complex{Re: ratN(0, 1), Im: ratN(-1, 1)}, "-i"},
		{&value.Complex{Re: ratN(4, 1), Im: ratN(6, 1)}, "4 + 6i"},
	}
	for _, c := range cases {
		if got := f.Complex(c.c); got != c.want {
			t.Errorf("Complex(%+v) = %q, want %q", c.c, got, c.want)
		}
	}
}

func TestPolyFormatting(t *testing.T) {
	// 4*x^2 + 1
	p := symbolic.FromConstant(value.RationalFromInt64(1))
	x2, err := symbolic.Mul(symbolic.FromVariable("x"), symbolic.FromVariable("x"))
	if err != nil {
		t.Fatal(err)
	}
	fourX2, err := symbolic.Mul(symbolic.FromConstant(value.RationalFromInt64(4)), x2)
	if err != nil {
		t.Fatal(err)
	}
	p, err = symbolic.Add(fourX2, p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := New(DefaultPrecision).Poly(p), "4 * x^2 + 1"; got != want {
		t.Errorf("Poly = %q, want %q", got, want)
	}
}

func TestMatrixFormatting(t *testing.T) {
	m := value.NewMatrix(2, 2, []value.Value{
		value.RationalFromInt64(1), value.RationalFromInt64(2),
		value.RationalFromInt64(3), value.RationalFromInt64(4),
	})
	if got, want := New(DefaultPrecision).Matrix(m), "[[1,2];[3,4]]"; got != want {
		t.Errorf("Matrix = %q, want %q", got, want)
	}
}

func TestSolveResultFormatting(t *testing.T) {
	res := &solver.Result{
		Variable:  "x",
		Degree:    2,
		Solutions: []value.Value{ratN(2, 1), ratN(-2, 1)},
	}
	if got, want := New(DefaultPrecision).SolveResult(res), "x = 2, x = -2"; got != want {
		t.Errorf("SolveResult = %q, want %q", got, want)
	}
}

func TestSolveResultAllReals(t *testing.T) {
	res := &solver.Result{Degree: 0, AllReals: true}
	if got, want := New(DefaultPrecision).SolveResult(res), "all real numbers"; got != want {
		t.Errorf("SolveResult = %q, want %q", got, want)
	}
}
