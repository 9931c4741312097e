// Dispatch table for the five arithmetic binary operators plus unary
// negation, keyed on (op, left kind, right kind) per §4.V's design note.
package value

// Add implements +.
func Add(a, b Value) (Value, error) { return dispatch(a, b, "+") }

// Sub implements -.
func Sub(a, b Value) (Value, error) { return dispatch(a, b, "-") }

// Mul implements elementwise/scalar *.
func Mul(a, b Value) (Value, error) { return dispatch(a, b, "*") }

// Div implements /.
func Div(a, b Value) (Value, error) { return dispatch(a, b, "/") }

// Mod implements the Euclidean % (integers only, §4.P).
func Mod(a, b Value) (Value, error) { return dispatch(a, b, "%") }

// Neg implements unary negation.
func Neg(v Value) (Value, error) {
	switch x := v.(type) {
	case *Rational:
		return x.NegR(), nil
	case *Complex:
		return x.Neg(), nil
	case *Matrix:
		return x.ScaleBy(RationalFromInt64(-1))
	default:
		return nil, typeErr("cannot negate a %s value", v.Kind())
	}
}

func dispatch(a, b Value, op string) (Value, error) {
	switch x := a.(type) {
	case *Rational:
		switch y := b.(type) {
		case *Rational:
			return rationalOp(x, y, op)
		case *Complex:
			return complexOp(&Complex{Re: x, Im: RationalFromInt64(0)}, y, op)
		case *Matrix:
			return scalarMatrixOp(a, y, op, true)
		}
	case *Complex:
		switch y := b.(type) {
		case *Rational:
			return complexOp(x, &Complex{Re: y, Im: RationalFromInt64(0)}, op)
		case *Complex:
			return complexOp(x, y, op)
		case *Matrix:
			return scalarMatrixOp(a, y, op, true)
		}
	case *Matrix:
		switch y := b.(type) {
		case *Rational, *Complex:
			return scalarMatrixOp(b, x, op, false)
		case *Matrix:
			return matrixOp(x, y, op)
		}
	}
	return nil, typeErr("unsupported operands: %s %s %s", a.Kind(), op, b.Kind())
}

func rationalOp(x, y *Rational, op string) (Value, error) {
	switch op {
	case "+":
		return x.AddR(y), nil
	case "-":
		return x.SubR(y), nil
	case "*":
		return x.MulR(y), nil
	case "/":
		return x.DivR(y)
	case "%":
		return EuclideanMod(x, y)
	}
	return nil, typeErr("unsupported operator %s", op)
}

func complexOp(x, y *Complex, op string) (Value, error) {
	switch op {
	case "+":
		return x.AddC(y), nil
	case "-":
		return x.SubC(y), nil
	case "*":
		return x.MulC(y), nil
	case "/":
		return x.DivC(y)
	case "%":
		return nil, typeErr("%% is only defined for integer operands")
	}
	return nil, typeErr("unsupported operator %s", op)
}

// scalarMatrixOp handles a scalar combined with a matrix. Only scalar *
// matrix (broadcast) is defined; + - % across kinds are TypeErrors (§9).
func scalarMatrixOp(scalar Value, m *Matrix, op string, scalarOnLeft bool) (Value, error) {
	if op != "*" {
		return nil, typeErr("scalar %s matrix is not defined for operator %s", scalar.Kind(), op)
	}
	return m.ScaleBy(scalar)
}

func matrixOp(x, y *Matrix, op string) (Value, error) {
	switch op {
	case "+":
		return x.AddM(y)
	case "-":
		return x.SubM(y)
	case "*":
		return x.ElementwiseMul(y)
	case "/":
		return nil, typeErr("matrix / matrix is not defined")
	case "%":
		return nil, typeErr("%% is not defined for matrices")
	}
	return nil, typeErr("unsupported operator %s", op)
}

// MatMulValues implements the `^`-lexed matrix product semantic (§4.L's
// resolution recorded in DESIGN.md): Pow(Matrix, Matrix) means MatMul.
func MatMulValues(a, b Value) (Value, error) {
	am, ok := a.(*Matrix)
	if !ok {
		return nil, typeErr("matrix product requires two matrices, got %s", a.Kind())
	}
	bm, ok := b.(*Matrix)
	if !ok {
		return nil, typeErr("matrix product requires two matrices, got %s", b.Kind())
	}
	return am.MatMul(bm)
}

// PowScalar implements scalar exponentiation with an integer exponent; a
// non-integer exponent must be handled by a builtin (sqrt, etc.), never by
// the algebraic core (§4.V).
func PowScalar(base Value, exp int64) (Value, error) {
	switch b := base.(type) {
	case *Rational:
		return b.PowInt(exp)
	case *Complex:
		return b.PowInt(exp)
	default:
		return nil, typeErr("cannot raise a %s value to a power", base.Kind())
	}
}
