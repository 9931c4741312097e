package value

import "math/big"

// Complex is re + im*i with the invariant im != 0; a zero imaginary part
// must collapse to a *Rational instead (§3). Use NewComplex to enforce it.
type Complex struct {
	Re, Im *Rational
}

// NewComplex collapses to a Rational when the imaginary part is zero,
// preserving the invariant at every construction site.
func NewComplex(re, im *Rational) Value {
	if im.IsZero() {
		return re
	}
	return &Complex{Re: re, Im: im}
}

func (c *Complex) Kind() Kind { return KComplex }

func (c *Complex) String() string { return "" } // formatting lives in internal/formatter

func (c *Complex) AddC(o *Complex) Value {
	return NewComplex(c.Re.AddR(o.Re), c.Im.AddR(o.Im))
}

func (c *Complex) SubC(o *Complex) Value {
	return NewComplex(c.Re.SubR(o.Re), c.Im.SubR(o.Im))
}

// MulC multiplies using the Gauss three-multiplication identity (§4.V):
// (a+bi)(c+di) = (ac-bd) + (ad+bc)i computed with 3 rational multiplies
// instead of the naive 4.
func (c *Complex) MulC(o *Complex) Value {
	a, b, cc, d := c.Re, c.Im, o.Re, o.Im
	k1 := cc.MulR(a.AddR(b))
	k2 := a.MulR(d.SubR(cc))
	k3 := b.MulR(cc.AddR(d))
	re := k1.SubR(k3)
	im := k1.AddR(k2)
	return NewComplex(re, im)
}

func (c *Complex) Neg() Value { return NewComplex(c.Re.NegR(), c.Im.NegR()) }

// Conj returns the complex conjugate.
func (c *Complex) Conj() *Complex { return &Complex{Re: c.Re, Im: c.Im.NegR()} }

// NormSquared returns re^2 + im^2, exact since it stays rational.
func (c *Complex) NormSquared() *Rational { return c.Re.MulR(c.Re).AddR(c.Im.MulR(c.Im)) }

// DivC divides two complex numbers via multiply-by-conjugate-over-norm.
func (c *Complex) DivC(o *Complex) (Value, error) {
	norm := o.NormSquared()
	if norm.IsZero() {
		return nil, mathErr("division by zero")
	}
	numer := c.MulC(o.Conj())
	return scaleByInverseNorm(numer, norm)
}

func scaleByInverseNorm(v Value, norm *Rational) (Value, error) {
	switch n := v.(type) {
	case *Rational:
		q, err := n.DivR(norm)
		return q, err
	case *Complex:
		re, err := n.Re.DivR(norm)
		if err != nil {
			return nil, err
		}
		im, err := n.Im.DivR(norm)
		if err != nil {
			return nil, err
		}
		return NewComplex(re, im), nil
	default:
		return nil, typeErr("unsupported operand in complex division")
	}
}

// PowInt raises c to a non-negative integer power via repeated squaring, or
// to a negative integer power via conjugate-over-norm (§4.V): c^n = 1/z with
// z = c^|n|, and 1/z = conj(z) / |z|^2 with |z|^2 = |c|^(2|n|) =
// (c.NormSquared())^|n|.
func (c *Complex) PowInt(n int64) (Value, error) {
	if n == 0 {
		return RationalFromInt64(1), nil
	}
	if n < 0 {
		pos, err := c.PowInt(-n)
		if err != nil {
			return nil, err
		}
		denom, err := c.NormSquared().PowInt(-n)
		if err != nil {
			return nil, err
		}
		return scaleByInverseNorm(conjScalar(pos), denom)
	}
	var result Value = RationalFromInt64(1)
	base := Value(c)
	for n > 0 {
		if n&1 == 1 {
			result = mulScalar(result, base)
		}
		base = mulScalar(base, base)
		n >>= 1
	}
	return result, nil
}

// conjScalar conjugates a scalar Value; a Rational is its own conjugate.
func conjScalar(v Value) Value {
	if c, ok := v.(*Complex); ok {
		return c.Conj()
	}
	return v
}

// mulScalar multiplies two scalar (Rational or Complex) values, used
// internally by PowInt's repeated squaring.
func mulScalar(a, b Value) Value {
	switch x := a.(type) {
	case *Rational:
		switch y := b.(type) {
		case *Rational:
			return x.MulR(y)
		case *Complex:
			return NewComplex(x.MulR(y.Re), x.MulR(y.Im))
		}
	case *Complex:
		switch y := b.(type) {
		case *Rational:
			return NewComplex(x.Re.MulR(y), x.Im.MulR(y))
		case *Complex:
			return x.MulC(y)
		}
	}
	return nil
}

// SqrtBig returns the big.Int integer square root (the floor of the exact
// root). The builtin sqrt's perfect-square path uses Rational.SqrtExact.
func SqrtBig(n *big.Int) *big.Int { return new(big.Int).Sqrt(n) }
