package value

import "math/big"

// Rational is an exact p/q value; math/big.Rat already maintains the
// gcd(p,q)=1, q>0 normal form of §3.
type Rational struct {
	V *big.Rat
	// Approx marks a value that is a floating-point approximation of an
	// irrational result (e.g. sqrt of a non-perfect-square), so the
	// formatter renders it as a decimal rather than a p/q fraction.
	Approx bool
}

func NewRational(v *big.Rat) *Rational { return &Rational{V: v} }

func NewApproxRational(v *big.Rat) *Rational { return &Rational{V: v, Approx: true} }

func RationalFromInt64(n int64) *Rational {
	return &Rational{V: new(big.Rat).SetInt64(n)}
}

// RationalFromFloat64 approximates f as a Rational, flagged Approx so the
// formatter prints a decimal instead of a reduced fraction.
func RationalFromFloat64(f float64) *Rational {
	r := new(big.Rat)
	r.SetFloat64(f)
	return NewApproxRational(r)
}

func (r *Rational) Kind() Kind     { return KRational }
func (r *Rational) String() string { return r.V.RatString() }

func (r *Rational) IsZero() bool { return r.V.Sign() == 0 }
func (r *Rational) IsNegative() bool { return r.V.Sign() < 0 }

// IsInteger reports whether the rational has denominator 1.
func (r *Rational) IsInteger() bool { return r.V.IsInt() }

// Arithmetic propagates Approx: a value derived from an approximated
// operand is itself an approximation, so the formatter keeps rendering it
// as a decimal rather than a misleadingly precise-looking fraction.

func (r *Rational) AddR(o *Rational) *Rational {
	return &Rational{V: new(big.Rat).Add(r.V, o.V), Approx: r.Approx || o.Approx}
}
func (r *Rational) SubR(o *Rational) *Rational {
	return &Rational{V: new(big.Rat).Sub(r.V, o.V), Approx: r.Approx || o.Approx}
}
func (r *Rational) MulR(o *Rational) *Rational {
	return &Rational{V: new(big.Rat).Mul(r.V, o.V), Approx: r.Approx || o.Approx}
}
func (r *Rational) NegR() *Rational {
	return &Rational{V: new(big.Rat).Neg(r.V), Approx: r.Approx}
}

func (r *Rational) DivR(o *Rational) (*Rational, error) {
	if o.IsZero() {
		return nil, mathErr("division by zero")
	}
	return &Rational{V: new(big.Rat).Quo(r.V, o.V), Approx: r.Approx || o.Approx}, nil
}

func (r *Rational) Equal(o *Rational) bool { return r.V.Cmp(o.V) == 0 }
func (r *Rational) Cmp(o *Rational) int    { return r.V.Cmp(o.V) }

// PowInt raises r to an integer power, using fast exponentiation for
// non-negative exponents and inversion for negative ones (§4.V).
func (r *Rational) PowInt(n int64) (*Rational, error) {
	if n == 0 {
		return RationalFromInt64(1), nil
	}
	if n < 0 {
		if r.IsZero() {
			return nil, mathErr("division by zero")
		}
		inv, err := RationalFromInt64(1).DivR(r)
		if err != nil {
			return nil, err
		}
		return inv.PowInt(-n)
	}
	result := RationalFromInt64(1)
	base := r
	for n > 0 {
		if n&1 == 1 {
			result = result.MulR(base)
		}
		base = base.MulR(base)
		n >>= 1
	}
	return result, nil
}

// EuclideanMod computes the Euclidean remainder of two integer rationals
// (§4.P: % is rejected for non-integer operands).
func EuclideanMod(a, b *Rational) (*Rational, error) {
	if !a.IsInteger() || !b.IsInteger() {
		return nil, typeErr("%% is only defined for integer operands")
	}
	if b.IsZero() {
		return nil, mathErr("division by zero")
	}
	ai := new(big.Int).Set(a.V.Num())
	bi := new(big.Int).Set(b.V.Num())
	m := new(big.Int).Mod(ai, bi) // Euclidean remainder: 0 <= m < |bi|, regardless of bi's sign
	return NewRational(new(big.Rat).SetInt(m)), nil
}

// IsPerfectSquare reports whether r = (p/q)^2 for some rational p/q, i.e.
// both numerator and denominator are perfect squares.
func (r *Rational) IsPerfectSquare() bool {
	if r.IsNegative() {
		return false
	}
	return isPerfectSquareInt(r.V.Num()) && isPerfectSquareInt(r.V.Denom())
}

func isPerfectSquareInt(n *big.Int) bool {
	if n.Sign() < 0 {
		return false
	}
	if n.Sign() == 0 {
		return true
	}
	root := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(root, root)
	return sq.Cmp(n) == 0
}

// SqrtExact returns the exact rational square root, valid only when
// IsPerfectSquare reports true.
func (r *Rational) SqrtExact() *Rational {
	num := new(big.Int).Sqrt(r.V.Num())
	den := new(big.Int).Sqrt(r.V.Denom())
	return NewRational(new(big.Rat).SetFrac(num, den))
}

// Float64 returns the nearest float64 approximation, used by the builtins'
// floating branch (§4.V) and by the formatter's decimal rendering of an
// Approx-flagged value.
func (r *Rational) Float64() float64 {
	f, _ := r.V.Float64()
	return f
}
