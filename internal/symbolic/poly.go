// Package symbolic implements the canonical polynomial representation used
// when evaluation leaves free variables: a map from monomial key to scalar
// coefficient, with no zero coefficients and no duplicate keys (§3).
package symbolic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/computorv2/computorv2/internal/value"
)

// VarPow is one (variable, positive exponent) pair within a monomial key.
type VarPow struct {
	Name string
	Exp  int
}

// Monomial is a sorted sequence of VarPow with strictly ascending variable
// names; the empty sequence is the constant monomial (§3).
type Monomial []VarPow

// Key renders the canonical string used as the map key and for ordering.
func (m Monomial) Key() string {
	parts := make([]string, len(m))
	for i, vp := range m {
		parts[i] = fmt.Sprintf("%s^%d", vp.Name, vp.Exp)
	}
	return strings.Join(parts, ",")
}

// Degree is the total degree (sum of exponents) of the monomial.
func (m Monomial) Degree() int {
	d := 0
	for _, vp := range m {
		d += vp.Exp
	}
	return d
}

func normalizeMonomial(raw []VarPow) Monomial {
	merged := make(map[string]int)
	for _, vp := range raw {
		merged[vp.Name] += vp.Exp
	}
	out := make(Monomial, 0, len(merged))
	for name, exp := range merged {
		if exp != 0 {
			out = append(out, VarPow{Name: name, Exp: exp})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func mulMonomial(a, b Monomial) Monomial {
	combined := make([]VarPow, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return normalizeMonomial(combined)
}

// Poly is the canonical polynomial: monomial key -> scalar coefficient.
// It satisfies value.SymbolicPoly.
type Poly struct {
	terms map[string]term
}

type term struct {
	mono  Monomial
	coeff value.Value
}

// Zero returns the polynomial with no terms.
func Zero() *Poly { return &Poly{terms: map[string]term{}} }

// FromConstant lifts a scalar value into a constant polynomial.
func FromConstant(c value.Value) *Poly {
	p := Zero()
	p.setTerm(Monomial{}, c)
	return p
}

// FromVariable builds the degree-1 polynomial for a single free variable,
// i.e. {(var^1): 1} (§4.Q).
func FromVariable(name string) *Poly {
	p := Zero()
	p.setTerm(Monomial{{Name: name, Exp: 1}}, value.RationalFromInt64(1))
	return p
}

func (p *Poly) setTerm(mono Monomial, coeff value.Value) {
	if isZeroCoeff(coeff) {
		delete(p.terms, mono.Key())
		return
	}
	p.terms[mono.Key()] = term{mono: mono, coeff: coeff}
}

func isZeroCoeff(v value.Value) bool {
	switch x := v.(type) {
	case *value.Rational:
		return x.IsZero()
	case *value.Complex:
		return x.Re.IsZero() && x.Im.IsZero()
	default:
		return false
	}
}

// IsZero reports whether the polynomial has no terms.
func (p *Poly) IsZero() bool { return len(p.terms) == 0 }

// AsConstant reports whether p has only the empty (constant) monomial.
func (p *Poly) AsConstant() (value.Value, bool) {
	if len(p.terms) == 0 {
		return value.RationalFromInt64(0), true
	}
	if len(p.terms) == 1 {
		if t, ok := p.terms[(Monomial{}).Key()]; ok {
			return t.coeff, true
		}
	}
	return nil, false
}

// Terms returns the polynomial's terms in canonical display order:
// descending total degree, then lexicographic on the monomial key (§4.F).
func (p *Poly) Terms() []struct {
	Mono  Monomial
	Coeff value.Value
} {
	out := make([]struct {
		Mono  Monomial
		Coeff value.Value
	}, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, struct {
			Mono  Monomial
			Coeff value.Value
		}{Mono: t.mono, Coeff: t.coeff})
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].Mono.Degree(), out[j].Mono.Degree()
		if di != dj {
			return di > dj
		}
		return out[i].Mono.Key() < out[j].Mono.Key()
	})
	return out
}

// Variables returns the set of free variable names appearing in p.
func (p *Poly) Variables() []string {
	seen := map[string]bool{}
	for _, t := range p.terms {
		for _, vp := range t.mono {
			seen[vp.Name] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CoeffOfPower returns the coefficient of varName^exp in a single-variable
// polynomial (0 if absent), used by the solver (§4.R).
func (p *Poly) CoeffOfPower(varName string, exp int) value.Value {
	var mono Monomial
	if exp > 0 {
		mono = Monomial{{Name: varName, Exp: exp}}
	}
	if t, ok := p.terms[mono.Key()]; ok {
		return t.coeff
	}
	return value.RationalFromInt64(0)
}

// Add merges two polynomials' coefficient maps, dropping zero results.
func Add(a, b *Poly) (*Poly, error) {
	out := Zero()
	for _, t := range a.terms {
		out.setTerm(t.mono, t.coeff)
	}
	for _, t := range b.terms {
		existing := out.terms[t.mono.Key()].coeff
		if existing == nil {
			existing = value.RationalFromInt64(0)
		}
		sum, err := value.Add(existing, t.coeff)
		if err != nil {
			return nil, err
		}
		out.setTerm(t.mono, sum)
	}
	return out, nil
}

// Sub computes a - b by negating b's coefficients and adding (§4.Q).
func Sub(a, b *Poly) (*Poly, error) {
	neg, err := Neg(b)
	if err != nil {
		return nil, err
	}
	return Add(a, neg)
}

// Neg negates every coefficient.
func Neg(p *Poly) (*Poly, error) {
	out := Zero()
	for _, t := range p.terms {
		n, err := value.Neg(t.coeff)
		if err != nil {
			return nil, err
		}
		out.setTerm(t.mono, n)
	}
	return out, nil
}

// Mul distributes pairwise and merges like monomials, adding exponents
// (§4.Q).
func Mul(a, b *Poly) (*Poly, error) {
	out := Zero()
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			mono := mulMonomial(ta.mono, tb.mono)
			coeff, err := value.Mul(ta.coeff, tb.coeff)
			if err != nil {
				return nil, err
			}
			existing := out.terms[mono.Key()].coeff
			if existing == nil {
				existing = value.RationalFromInt64(0)
			}
			sum, err := value.Add(existing, coeff)
			if err != nil {
				return nil, err
			}
			out.setTerm(mono, sum)
		}
	}
	return out, nil
}

// PowInt computes p^n for a non-negative integer n >= 1 via n-1
// multiplications by the product rule; p^0 = 1 (§4.Q).
func PowInt(p *Poly, n int64) (*Poly, error) {
	if n < 0 {
		return nil, &value.Error{Kind: "MathError", Msg: "symbolic exponent must be a non-negative integer"}
	}
	if n == 0 {
		return FromConstant(value.RationalFromInt64(1)), nil
	}
	result := p
	for i := int64(1); i < n; i++ {
		next, err := Mul(result, p)
		if err != nil {
			return nil, err
		}
		result = next
	}
	return result, nil
}

// String renders the polynomial via the canonical formatter-free fallback
// (internal/formatter.Poly provides the styled rendering used by the REPL).
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.Terms() {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%s*%v", t.Coeff.String(), t.Mono)
	}
	return b.String()
}
