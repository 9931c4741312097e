// Package pipeline wires the lexer, parser, evaluator, solver and
// formatter into the single `process(line) -> printed_result` entry point
// described in §2 and §6. It is the only package the REPL and the one-shot
// CLI mode need to import to run a line to completion.
package pipeline

import (
	"fmt"

	"github.com/computorv2/computorv2/internal/ast"
	"github.com/computorv2/computorv2/internal/evaluator"
	"github.com/computorv2/computorv2/internal/formatter"
	"github.com/computorv2/computorv2/internal/parser"
	"github.com/computorv2/computorv2/internal/solver"
	"github.com/computorv2/computorv2/internal/value"
)

// Outcome is the printable result of processing one line. Assigning to a
// variable or defining a function produces an Outcome with an empty Text,
// matching the source's behaviour of staying silent on a bare binding
// (only `= ?` or `EXPR` echo a value).
type Outcome struct {
	Text   string
	Silent bool
}

// Run lexes, parses and executes a single input line against env,
// returning the text to print. A non-nil error is one of the §7 taxonomy
// members (LexError/ParseError/NameError/TypeError/MathError/SolveError/
// ArityError); the Environment is left untouched on error (§5, §7).
// fmtr renders the result at the caller's configured precision
// (~/.computorv2.yaml's `precision` setting, §3/§4).
func Run(line string, ev *evaluator.Evaluator, fmtr *formatter.Formatter) (Outcome, error) {
	stmt, err := parser.ParseLine(line)
	if err != nil {
		return Outcome{}, err
	}

	switch n := stmt.(type) {
	case *ast.AssignStatement:
		return runAssign(n, ev)
	case *ast.QueryStatement:
		return runQuery(n, ev, fmtr)
	case *ast.ExpressionStatement:
		v, err := ev.Eval(n.Expression)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Text: "= " + fmtr.Value(v)}, nil
	default:
		return Outcome{}, fmt.Errorf("unrecognised statement %T", stmt)
	}
}

func runAssign(n *ast.AssignStatement, ev *evaluator.Evaluator) (Outcome, error) {
	if n.Target.IsFunction() {
		fn := &value.Function{Name: n.Target.Name, Params: n.Target.Params, Body: n.Value}
		ev.Env.Set(n.Target.Name, fn)
		return Outcome{Silent: true}, nil
	}
	v, err := ev.Eval(n.Value)
	if err != nil {
		return Outcome{}, err
	}
	ev.Env.Set(n.Target.Name, v)
	return Outcome{Silent: true}, nil
}

func runQuery(n *ast.QueryStatement, ev *evaluator.Evaluator, fmtr *formatter.Formatter) (Outcome, error) {
	if n.Rhs == nil {
		v, err := ev.Eval(n.Lhs)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Text: "= " + fmtr.Value(v)}, nil
	}
	res, err := solver.Solve(n.Lhs, n.Rhs, ev)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Text: fmtr.SolveResult(res)}, nil
}
