package value

import (
	"math/big"
	"testing"
)

func c(re, im int64) *Complex {
	return &Complex{Re: RationalFromInt64(re), Im: RationalFromInt64(im)}
}

func TestNewComplexCollapsesZeroImaginary(t *testing.T) {
	v := NewComplex(RationalFromInt64(5), RationalFromInt64(0))
	if _, ok := v.(*Rational); !ok {
		t.Fatalf("expected a collapsed Rational, got %T", v)
	}
}

func TestComplexMulGauss(t *testing.T) {
	// (3+2i)(1+4i) = 3 + 12i + 2i - 8 = -5 + 14i
	got := c(3, 2).MulC(c(1, 4))
	want := c(-5, 14)
	cc, ok := got.(*Complex)
	if !ok {
		t.Fatalf("expected *Complex, got %T", got)
	}
	if !cc.Re.Equal(want.Re) || !cc.Im.Equal(want.Im) {
		t.Errorf("(3+2i)(1+4i) = %s + %si, want %s + %si",
			cc.Re.String(), cc.Im.String(), want.Re.String(), want.Im.String())
	}
}

func TestComplexIUnitSquared(t *testing.T) {
	i := c(0, 1)
	got := i.MulC(i)
	r, ok := got.(*Rational)
	if !ok {
		t.Fatalf("i*i should collapse to a Rational, got %T", got)
	}
	if !r.Equal(RationalFromInt64(-1)) {
		t.Errorf("i*i = %s, want -1", r.String())
	}
}

func TestComplexDivByConjugate(t *testing.T) {
	got, err := c(1, 1).DivC(c(1, -1))
	if err != nil {
		t.Fatal(err)
	}
	// (1+i)/(1-i) = i
	cc, ok := got.(*Complex)
	if !ok {
		t.Fatalf("expected *Complex, got %T", got)
	}
	if !cc.Re.IsZero() || !cc.Im.Equal(RationalFromInt64(1)) {
		t.Errorf("(1+i)/(1-i) = %s + %si, want 0 + 1i", cc.Re.String(), cc.Im.String())
	}
}

func TestComplexPowIntRepeatedSquaring(t *testing.T) {
	got, err := c(0, 1).PowInt(4)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := got.(*Rational)
	if !ok || !r.Equal(RationalFromInt64(1)) {
		t.Errorf("i^4 = %v, want 1", got)
	}
}

func TestComplexPowIntNegativeOne(t *testing.T) {
	got, err := c(0, 1).PowInt(-1)
	if err != nil {
		t.Fatal(err)
	}
	cc, ok := got.(*Complex)
	if !ok || !cc.Re.IsZero() || !cc.Im.Equal(RationalFromInt64(-1)) {
		t.Errorf("i^-1 = %v, want -i", got)
	}
}

func TestComplexPowIntNegativeCollapsesToRational(t *testing.T) {
	// (1+i)^-4 = 1/(1+i)^4 = 1/-4 = -1/4
	got, err := c(1, 1).PowInt(-4)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := got.(*Rational)
	if !ok || !r.Equal(NewRational(big.NewRat(-1, 4))) {
		t.Errorf("(1+i)^-4 = %v, want -1/4", got)
	}
}
