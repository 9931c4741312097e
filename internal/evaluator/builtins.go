package evaluator

import (
	"math"
	"math/cmplx"

	"github.com/computorv2/computorv2/internal/value"
)

// Builtin is a fixed-arity named function dispatched on its argument
// kinds (§4.B).
type Builtin struct {
	Name  string
	Arity int
	Fn    func(args []value.Value) (value.Value, error)
}

// Builtins is the fixed registry of §4.B.
var Builtins = map[string]*Builtin{
	"sqrt":      {Name: "sqrt", Arity: 1, Fn: builtinSqrt},
	"abs":       {Name: "abs", Arity: 1, Fn: builtinAbs},
	"sin":       {Name: "sin", Arity: 1, Fn: realTrig(math.Sin)},
	"cos":       {Name: "cos", Arity: 1, Fn: realTrig(math.Cos)},
	"tan":       {Name: "tan", Arity: 1, Fn: realTrig(math.Tan)},
	"exp":       {Name: "exp", Arity: 1, Fn: builtinExp},
	"log":       {Name: "log", Arity: 1, Fn: builtinLog},
	"det":       {Name: "det", Arity: 1, Fn: builtinDet},
	"inv":       {Name: "inv", Arity: 1, Fn: builtinInv},
	"transpose": {Name: "transpose", Arity: 1, Fn: builtinTranspose},
}

func builtinSqrt(args []value.Value) (value.Value, error) {
	switch x := args[0].(type) {
	case *value.Rational:
		if !x.IsNegative() {
			if x.IsPerfectSquare() {
				return x.SqrtExact(), nil
			}
			return value.RationalFromFloat64(math.Sqrt(x.Float64())), nil
		}
		abs := x.NegR()
		if abs.IsPerfectSquare() {
			return value.NewComplex(value.RationalFromInt64(0), abs.SqrtExact()), nil
		}
		return value.NewComplex(value.RationalFromInt64(0), value.RationalFromFloat64(math.Sqrt(abs.Float64()))), nil

	case *value.Complex:
		c := cmplx.Sqrt(complexToC128(x))
		return c128ToValue(c), nil

	default:
		return nil, mathErr("sqrt is undefined for a %s value", args[0].Kind())
	}
}

func builtinAbs(args []value.Value) (value.Value, error) {
	switch x := args[0].(type) {
	case *value.Rational:
		if x.IsNegative() {
			return x.NegR(), nil
		}
		return x, nil
	case *value.Complex:
		norm := x.NormSquared()
		return builtinSqrt([]value.Value{norm})
	default:
		return nil, mathErr("abs is undefined for a %s value", args[0].Kind())
	}
}

func realTrig(fn func(float64) float64) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		f, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		return value.RationalFromFloat64(fn(f)), nil
	}
}

func builtinExp(args []value.Value) (value.Value, error) {
	switch x := args[0].(type) {
	case *value.Rational:
		return value.RationalFromFloat64(math.Exp(x.Float64())), nil
	case *value.Complex:
		return c128ToValue(cmplx.Exp(complexToC128(x))), nil
	default:
		return nil, mathErr("exp is undefined for a %s value", args[0].Kind())
	}
}

func builtinLog(args []value.Value) (value.Value, error) {
	switch x := args[0].(type) {
	case *value.Rational:
		if !x.IsNegative() && !x.IsZero() {
			return value.RationalFromFloat64(math.Log(x.Float64())), nil
		}
		if x.IsZero() {
			return nil, mathErr("log is undefined at 0")
		}
		return c128ToValue(cmplx.Log(complexToC128(&value.Complex{Re: x, Im: value.RationalFromInt64(0)}))), nil
	case *value.Complex:
		if x.Re.IsZero() && x.Im.IsZero() {
			return nil, mathErr("log is undefined at 0")
		}
		return c128ToValue(cmplx.Log(complexToC128(x))), nil
	default:
		return nil, mathErr("log is undefined for a %s value", args[0].Kind())
	}
}

func builtinDet(args []value.Value) (value.Value, error) {
	m, ok := args[0].(*value.Matrix)
	if !ok {
		return nil, typeErr("det expects a matrix, got %s", args[0].Kind())
	}
	d, err := m.Det()
	return d, wrapValueError(err)
}

func builtinInv(args []value.Value) (value.Value, error) {
	m, ok := args[0].(*value.Matrix)
	if !ok {
		return nil, typeErr("inv expects a matrix, got %s", args[0].Kind())
	}
	inv, err := m.Inv()
	if err != nil {
		return nil, wrapValueError(err)
	}
	return inv, nil
}

func builtinTranspose(args []value.Value) (value.Value, error) {
	m, ok := args[0].(*value.Matrix)
	if !ok {
		return nil, typeErr("transpose expects a matrix, got %s", args[0].Kind())
	}
	return m.Transpose(), nil
}

func toFloat(v value.Value) (float64, error) {
	r, ok := v.(*value.Rational)
	if !ok {
		return 0, typeErr("expected a scalar real value, got %s", v.Kind())
	}
	return r.Float64(), nil
}

func complexToC128(c *value.Complex) complex128 {
	return complex(c.Re.Float64(), c.Im.Float64())
}

func c128ToValue(c complex128) value.Value {
	re := value.RationalFromFloat64(real(c))
	im := value.RationalFromFloat64(imag(c))
	return value.NewComplex(re, im)
}
