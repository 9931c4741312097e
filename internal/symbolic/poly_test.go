package symbolic

import (
	"testing"

	"github.com/computorv2/computorv2/internal/value"
)

func TestAddMergesLikeTerms(t *testing.T) {
	x := FromVariable("x")
	sum, err := Add(x, x)
	if err != nil {
		t.Fatal(err)
	}
	if got := sum.CoeffOfPower("x", 1); !got.(*value.Rational).Equal(value.RationalFromInt64(2)) {
		t.Errorf("x+x coefficient = %v, want 2", got)
	}
}

func TestMulDistributesAndAddsExponents(t *testing.T) {
	x := FromVariable("x")
	x2, err := Mul(x, x)
	if err != nil {
		t.Fatal(err)
	}
	if got := x2.CoeffOfPower("x", 2); !got.(*value.Rational).Equal(value.RationalFromInt64(1)) {
		t.Errorf("x*x coefficient of x^2 = %v, want 1", got)
	}
}

func TestPowIntBinomialExpansion(t *testing.T) {
	// (1+x)^3 = 1 + 3x + 3x^2 + x^3
	one := FromConstant(value.RationalFromInt64(1))
	x := FromVariable("x")
	onePlusX, err := Add(one, x)
	if err != nil {
		t.Fatal(err)
	}
	cubed, err := PowInt(onePlusX, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, 3, 3, 1}
	for exp, w := range want {
		got := cubed.CoeffOfPower("x", exp)
		if !got.(*value.Rational).Equal(value.RationalFromInt64(w)) {
			t.Errorf("coefficient of x^%d = %v, want %d", exp, got, w)
		}
	}
}

func TestSubNegatesRightOperand(t *testing.T) {
	x := FromVariable("x")
	diff, err := Sub(x, x)
	if err != nil {
		t.Fatal(err)
	}
	if !diff.IsZero() {
		t.Errorf("x-x should be the zero polynomial, got %s", diff.String())
	}
}

func TestAsConstantOnlyForConstantPoly(t *testing.T) {
	x := FromVariable("x")
	if _, ok := x.AsConstant(); ok {
		t.Error("a free-variable polynomial must not report AsConstant")
	}
	c := FromConstant(value.RationalFromInt64(7))
	v, ok := c.AsConstant()
	if !ok || !v.(*value.Rational).Equal(value.RationalFromInt64(7)) {
		t.Errorf("AsConstant() = %v, %v, want 7, true", v, ok)
	}
}

func TestVariablesReportsFreeNames(t *testing.T) {
	x := FromVariable("x")
	y := FromVariable("y")
	xy, err := Mul(x, y)
	if err != nil {
		t.Fatal(err)
	}
	vars := xy.Variables()
	if len(vars) != 2 || vars[0] != "x" || vars[1] != "y" {
		t.Errorf("Variables() = %v, want [x y]", vars)
	}
}
