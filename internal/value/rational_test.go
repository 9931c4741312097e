package value

import (
	"math/big"
	"testing"
)

func TestRationalArithmeticNormalises(t *testing.T) {
	a := NewRational(big.NewRat(1, 2))
	b := NewRational(big.NewRat(1, 3))
	sum := a.AddR(b)
	if got, want := sum.V.RatString(), "5/6"; got != want {
		t.Errorf("1/2 + 1/3 = %s, want %s", got, want)
	}
}

func TestRationalDivByZero(t *testing.T) {
	a := RationalFromInt64(1)
	zero := RationalFromInt64(0)
	if _, err := a.DivR(zero); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestRationalPowIntNegative(t *testing.T) {
	r := NewRational(big.NewRat(2, 1))
	got, err := r.PowInt(-2)
	if err != nil {
		t.Fatal(err)
	}
	if want := big.NewRat(1, 4); got.V.Cmp(want) != 0 {
		t.Errorf("2^-2 = %s, want 1/4", got.V.RatString())
	}
}

func TestIsPerfectSquare(t *testing.T) {
	cases := []struct {
		r    *Rational
		want bool
	}{
		{NewRational(big.NewRat(4, 1)), true},
		{NewRational(big.NewRat(1, 4)), true},
		{NewRational(big.NewRat(2, 1)), false},
		{NewRational(big.NewRat(-4, 1)), false},
	}
	for _, c := range cases {
		if got := c.r.IsPerfectSquare(); got != c.want {
			t.Errorf("IsPerfectSquare(%s) = %v, want %v", c.r.V.RatString(), got, c.want)
		}
	}
}

func TestEuclideanMod(t *testing.T) {
	m, err := EuclideanMod(RationalFromInt64(-7), RationalFromInt64(3))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.V.RatString(); got != "2" {
		t.Errorf("-7 mod 3 = %s, want 2", got)
	}
}

func TestEuclideanModNegativeDivisor(t *testing.T) {
	m, err := EuclideanMod(RationalFromInt64(5), RationalFromInt64(-3))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.V.RatString(); got != "2" {
		t.Errorf("5 mod -3 = %s, want 2 (Euclidean remainder stays non-negative)", got)
	}
}

func TestEuclideanModRejectsNonInteger(t *testing.T) {
	_, err := EuclideanMod(NewRational(big.NewRat(1, 2)), RationalFromInt64(3))
	if err == nil {
		t.Fatal("expected a TypeError for a non-integer operand")
	}
}

func TestApproxPropagatesThroughArithmetic(t *testing.T) {
	approx := RationalFromFloat64(1.5)
	exact := RationalFromInt64(1)
	if !approx.AddR(exact).Approx {
		t.Error("adding an exact rational to an approx one should stay approx")
	}
	if !approx.NegR().Approx {
		t.Error("negating an approx rational should stay approx")
	}
}
