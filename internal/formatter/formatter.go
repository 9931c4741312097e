// Package formatter renders a runtime Value (or a solved equation) into the
// canonical human-readable string described by §4.F. It is the last stage
// of the per-line pipeline; nothing downstream of it inspects a Value's
// structure again.
package formatter

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/computorv2/computorv2/internal/solver"
	"github.com/computorv2/computorv2/internal/symbolic"
	"github.com/computorv2/computorv2/internal/value"
)

// DefaultPrecision is used by callers (the tests) that have no
// config.Settings to thread through; it equals config.Default()'s Precision.
const DefaultPrecision = 10

// Formatter renders Values using a fixed decimal precision (§3 AMBIENT
// STACK / §4: ~/.computorv2.yaml's `precision` setting). A line is
// rendered by one Formatter built once at startup from config.Settings,
// the same way the Evaluator is built once from an Environment.
type Formatter struct {
	Precision int
}

// New creates a Formatter rendering Approx-flagged decimals to precision
// digits.
func New(precision int) *Formatter {
	return &Formatter{Precision: precision}
}

// Value renders any runtime Value in canonical form.
func (f *Formatter) Value(v value.Value) string {
	switch x := v.(type) {
	case *value.Rational:
		return f.Rational(x)
	case *value.Complex:
		return f.Complex(x)
	case *value.Matrix:
		return f.Matrix(x)
	case *value.Symbolic:
		if p, ok := x.Poly.(*symbolic.Poly); ok {
			return f.Poly(p)
		}
		return x.String()
	case *value.Function:
		return x.String()
	default:
		return v.String()
	}
}

// Rational renders p/q (or just p when q=1); an Approx-flagged rational
// (an irrational builtin result with no exact form) renders as a trimmed
// decimal instead of a reduced fraction (§4.B, §4.V).
func (f *Formatter) Rational(r *value.Rational) string {
	if r.Approx {
		return humanize.FtoaWithDigits(r.Float64(), f.Precision)
	}
	return r.V.RatString()
}

// Complex renders re + im*i with sign folding: a negative imaginary part
// prints as " - ", never " + -"; a pure imaginary part drops "re + "; the
// unit imaginary part drops the "1" coefficient (§4.F).
func (f *Formatter) Complex(c *value.Complex) string {
	var b strings.Builder
	hasRe := !c.Re.IsZero()
	if hasRe {
		b.WriteString(f.Rational(c.Re))
	}
	im := c.Im
	if hasRe {
		if im.IsNegative() {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		f.writeImagCoefficient(&b, absRational(im))
	} else {
		if im.IsNegative() {
			b.WriteString("-")
		}
		f.writeImagCoefficient(&b, absRational(im))
	}
	return b.String()
}

// writeImagCoefficient writes mag (a non-negative magnitude) followed by
// "i", eliding the "1" coefficient so the unit imaginary prints as "i"
// rather than "1i" (§4.F).
func (f *Formatter) writeImagCoefficient(b *strings.Builder, mag *value.Rational) {
	if isOneRational(mag) {
		b.WriteString("i")
		return
	}
	b.WriteString(f.Rational(mag))
	b.WriteString("i")
}

var oneRat = value.RationalFromInt64(1)

func isOneRational(r *value.Rational) bool {
	return !r.Approx && r.V.Cmp(oneRat.V) == 0
}

func absRational(r *value.Rational) *value.Rational {
	if r.IsNegative() {
		return r.NegR()
	}
	return r
}

// Matrix renders [[..];[..];…] with elements formatted recursively (§4.F).
func (f *Formatter) Matrix(m *value.Matrix) string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < m.Rows; i++ {
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString("[")
		for j := 0; j < m.Cols; j++ {
			if j > 0 {
				b.WriteString(",")
			}
			b.WriteString(f.Value(m.At(i, j)))
		}
		b.WriteString("]")
	}
	b.WriteString("]")
	return b.String()
}

// Poly renders a symbolic polynomial: terms sorted by descending total
// degree then lexicographically on the monomial key, with the coefficient
// 1 elided except on the constant monomial (§4.F).
func (f *Formatter) Poly(p *symbolic.Poly) string {
	terms := p.Terms()
	if len(terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range terms {
		sign, mag := splitSign(t.Coeff)
		if i == 0 {
			if sign < 0 {
				b.WriteString("-")
			}
		} else {
			if sign < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		}
		f.writeMonomialTerm(&b, mag, t.Mono)
	}
	return b.String()
}

// splitSign reports the sign (+1/-1) of a real coefficient for folding
// into the term separator, along with its sign-stripped magnitude. Complex
// coefficients have no total order, so they are always treated as
// non-negative and printed in full.
func splitSign(v value.Value) (int, value.Value) {
	r, ok := v.(*value.Rational)
	if !ok {
		return 1, v
	}
	if r.IsNegative() {
		return -1, r.NegR()
	}
	return 1, r
}

func (f *Formatter) writeMonomialTerm(b *strings.Builder, coeff value.Value, mono symbolic.Monomial) {
	isOne := false
	if r, ok := coeff.(*value.Rational); ok && isOneRational(r) {
		isOne = true
	}
	if len(mono) == 0 {
		b.WriteString(f.Value(coeff))
		return
	}
	if !isOne {
		b.WriteString(f.Value(coeff))
		b.WriteString(" * ")
	}
	for i, vp := range mono {
		if i > 0 {
			b.WriteString(" * ")
		}
		b.WriteString(vp.Name)
		if vp.Exp != 1 {
			fmt.Fprintf(b, "^%d", vp.Exp)
		}
	}
}

// SolveResult renders a solved equation's roots per §8's end-to-end
// examples: "x = -2", "x = 2, x = -2", or a prose report for degree-0
// outcomes.
func (f *Formatter) SolveResult(res *solver.Result) string {
	if res.Degree == 0 {
		if res.AllReals {
			return "all real numbers"
		}
		return "no solution"
	}
	parts := make([]string, len(res.Solutions))
	for i, s := range res.Solutions {
		parts[i] = fmt.Sprintf("%s = %s", varOr(res.Variable), f.Value(s))
	}
	return strings.Join(parts, ", ")
}

func varOr(name string) string {
	if name == "" {
		return "x"
	}
	return name
}
