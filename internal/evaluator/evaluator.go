// Package evaluator binds an AST against an Environment of assigned
// values, stored function definitions and built-ins, producing a concrete
// Value or a residual Symbolic polynomial (§4.E).
package evaluator

import (
	"github.com/computorv2/computorv2/internal/ast"
	"github.com/computorv2/computorv2/internal/simplifier"
	"github.com/computorv2/computorv2/internal/symbolic"
	"github.com/computorv2/computorv2/internal/value"
)

// Evaluator drives evaluation of a single AST against an Environment.
type Evaluator struct {
	Env *Environment
}

// New creates an Evaluator over env.
func New(env *Environment) *Evaluator {
	return &Evaluator{Env: env}
}

// Eval evaluates any expression node. A leaf (literal, identifier) or a
// node with a free variable anywhere inside it is delegated to
// internal/simplifier, which lifts it into PolyExpr form. A
// Binary/UnaryExpression whose children both reduce to a concrete Value
// (rational, complex or matrix) is dispatched directly against the value
// tower instead — this is what lets `A+B`/`A**B` for two matrices reach
// `internal/value`'s arithmetic at all; the symbolic layer has no
// representation for a matrix (§4.E, §4.Q, §4.V).
func (ev *Evaluator) Eval(expr ast.Expression) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.MatrixLiteral:
		return ev.evalMatrix(n)

	case *ast.CallExpression:
		return ev.evalCall(n)

	case *ast.BinaryExpression:
		return ev.evalBinary(n)

	case *ast.UnaryExpression:
		return ev.evalUnary(n)

	default:
		poly, err := simplifier.Simplify(expr, ev.lookup, ev.evalCall)
		if err != nil {
			return nil, wrapValueError(err)
		}
		return simplifier.ToValue(poly), nil
	}
}

// evalBinary evaluates both operands; if either is still symbolic (has a
// free variable), the whole node is reduced through the simplifier so the
// result stays a PolyExpr. Otherwise both sides are concrete Values and
// dispatch directly to internal/value's operator table.
func (ev *Evaluator) evalBinary(n *ast.BinaryExpression) (value.Value, error) {
	left, err := ev.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.Eval(n.Right)
	if err != nil {
		return nil, err
	}
	if left.Kind() == value.KSymbolic || right.Kind() == value.KSymbolic {
		poly, err := simplifier.Simplify(n, ev.lookup, ev.evalCall)
		if err != nil {
			return nil, wrapValueError(err)
		}
		return simplifier.ToValue(poly), nil
	}

	switch n.Op {
	case ast.Add:
		v, err := value.Add(left, right)
		return v, wrapValueError(err)
	case ast.Sub:
		v, err := value.Sub(left, right)
		return v, wrapValueError(err)
	case ast.Mul:
		v, err := value.Mul(left, right)
		return v, wrapValueError(err)
	case ast.Div:
		v, err := value.Div(left, right)
		return v, wrapValueError(err)
	case ast.Mod:
		v, err := value.Mod(left, right)
		return v, wrapValueError(err)
	case ast.Pow:
		return ev.evalPow(left, right)
	case ast.MatMul:
		v, err := value.MatMulValues(left, right)
		return v, wrapValueError(err)
	default:
		return nil, typeErr("unsupported operator %s", n.Op)
	}
}

// evalPow dispatches `^` for two concrete operands: Pow(Matrix, Matrix)
// is the matrix product (§4.L's resolution, recorded in DESIGN.md);
// otherwise the exponent must be a real integer (possibly negative —
// Rational.PowInt and Complex.PowInt both invert), matching spec.md's
// "Rational ^ non-integer promotes to the floating branch only inside
// built-ins, never in the algebraic core."
func (ev *Evaluator) evalPow(left, right value.Value) (value.Value, error) {
	if _, ok := left.(*value.Matrix); ok {
		rm, ok := right.(*value.Matrix)
		if !ok {
			return nil, typeErr("a matrix can only be raised to a matrix power (the matrix product)")
		}
		v, err := value.MatMulValues(left, rm)
		return v, wrapValueError(err)
	}
	if _, ok := right.(*value.Matrix); ok {
		return nil, typeErr("a matrix exponent is not defined")
	}
	r, ok := right.(*value.Rational)
	if !ok || !r.IsInteger() {
		return nil, mathErr("exponent must be an integer; use a builtin (e.g. sqrt) for a fractional power")
	}
	v, err := value.PowScalar(left, r.V.Num().Int64())
	return v, wrapValueError(err)
}

// evalUnary mirrors evalBinary's concrete/symbolic split for the one
// unary operator that needs the value tower: negation of a matrix.
func (ev *Evaluator) evalUnary(n *ast.UnaryExpression) (value.Value, error) {
	child, err := ev.Eval(n.Child)
	if err != nil {
		return nil, err
	}
	if n.Op == ast.UnaryPlus {
		return child, nil
	}
	if child.Kind() == value.KSymbolic {
		poly, err := simplifier.Simplify(n, ev.lookup, ev.evalCall)
		if err != nil {
			return nil, wrapValueError(err)
		}
		return simplifier.ToValue(poly), nil
	}
	v, err := value.Neg(child)
	return v, wrapValueError(err)
}

// Simplify canonicalises expr to its polynomial form against this
// Evaluator's environment and call semantics. The solver uses it to reduce
// `lhs - rhs` before inspecting the result (§4.R).
func (ev *Evaluator) Simplify(expr ast.Expression) (*symbolic.Poly, error) {
	return simplifier.Simplify(expr, ev.lookup, ev.evalCall)
}

// lookup resolves a bare identifier to a bound Value for the simplifier. A
// name bound to a Function is not itself a variable — it only resolves
// through a CallExpression — so it is reported as unbound here, which
// evalCall's *ast.CallExpression path handles separately.
func (ev *Evaluator) lookup(name string) (value.Value, bool) {
	v, ok := ev.Env.Get(name)
	if !ok || v.Kind() == value.KFunction {
		return nil, false
	}
	return v, true
}

func (ev *Evaluator) evalMatrix(n *ast.MatrixLiteral) (value.Value, error) {
	rows := len(n.Rows)
	cols := 0
	if rows > 0 {
		cols = len(n.Rows[0])
	}
	data := make([]value.Value, 0, rows*cols)
	for _, row := range n.Rows {
		for _, cell := range row {
			v, err := ev.Eval(cell)
			if err != nil {
				return nil, err
			}
			if !value.IsScalar(v) {
				return nil, typeErr("matrix elements must be scalar, got %s", v.Kind())
			}
			data = append(data, v)
		}
	}
	return value.NewMatrix(rows, cols, data), nil
}

func (ev *Evaluator) evalCall(n *ast.CallExpression) (value.Value, error) {
	if bound, ok := ev.Env.Get(n.Name); ok {
		fn, ok := bound.(*value.Function)
		if !ok {
			return nil, typeErr("%q is not a function", n.Name)
		}
		return ev.evalUserCall(fn, n)
	}
	if b, ok := Builtins[n.Name]; ok {
		return ev.evalBuiltinCall(b, n)
	}
	return nil, nameErr("unknown function %q", n.Name)
}

// evalUserCall substitutes the call's unevaluated argument ASTs for the
// function's parameters directly into the body AST, then evaluates the
// result. This late binding is what makes `f(g(x)) = ?` expand symbolically
// instead of requiring g(x) to already be a concrete value (§4.E, §9).
func (ev *Evaluator) evalUserCall(fn *value.Function, call *ast.CallExpression) (value.Value, error) {
	if len(call.Args) != len(fn.Params) {
		return nil, arityErr("%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(call.Args))
	}
	subst := make(map[string]ast.Expression, len(fn.Params))
	for i, p := range fn.Params {
		subst[p] = call.Args[i]
	}
	body := substitute(fn.Body, subst)
	return ev.Eval(body)
}

func (ev *Evaluator) evalBuiltinCall(b *Builtin, call *ast.CallExpression) (value.Value, error) {
	if len(call.Args) != b.Arity {
		return nil, arityErr("%s expects %d argument(s), got %d", b.Name, b.Arity, len(call.Args))
	}
	args := make([]value.Value, len(call.Args))
	for i, a := range call.Args {
		v, err := ev.Eval(a)
		if err != nil {
			return nil, err
		}
		if v.Kind() == value.KSymbolic {
			return nil, mathErr("%s requires a concrete value, got a free variable", b.Name)
		}
		args[i] = v
	}
	return b.Fn(args)
}

// substitute returns a deep copy of expr with every Identifier matching a
// key of subst replaced by the corresponding expression. Safe without
// alpha-renaming because function parameters are plain identifiers and the
// language has no nested user-defined lambdas (§9).
func substitute(expr ast.Expression, subst map[string]ast.Expression) ast.Expression {
	switch n := expr.(type) {
	case *ast.NumberLiteral, *ast.ImagUnit:
		return expr
	case *ast.Identifier:
		if repl, ok := subst[n.Name]; ok {
			return repl
		}
		return n
	case *ast.UnaryExpression:
		return &ast.UnaryExpression{Token: n.Token, Op: n.Op, Child: substitute(n.Child, subst)}
	case *ast.BinaryExpression:
		return &ast.BinaryExpression{
			Token: n.Token, Op: n.Op,
			Left:  substitute(n.Left, subst),
			Right: substitute(n.Right, subst),
		}
	case *ast.CallExpression:
		args := make([]ast.Expression, len(n.Args))
		for i, a := range n.Args {
			args[i] = substitute(a, subst)
		}
		return &ast.CallExpression{Token: n.Token, Name: n.Name, Args: args}
	case *ast.MatrixLiteral:
		rows := make([][]ast.Expression, len(n.Rows))
		for i, row := range n.Rows {
			newRow := make([]ast.Expression, len(row))
			for j, e := range row {
				newRow[j] = substitute(e, subst)
			}
			rows[i] = newRow
		}
		return &ast.MatrixLiteral{Token: n.Token, Rows: rows}
	default:
		return expr
	}
}
