package parser_test

import (
	"testing"

	"github.com/computorv2/computorv2/internal/ast"
	"github.com/computorv2/computorv2/internal/parser"
)

func TestParseStatementShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, stmt ast.Statement)
	}{
		{"expression", "2 + 3 * 4", func(t *testing.T, stmt ast.Statement) {
			if _, ok := stmt.(*ast.ExpressionStatement); !ok {
				t.Fatalf("got %T, want *ast.ExpressionStatement", stmt)
			}
		}},
		{"variable_assignment", "x = 5", func(t *testing.T, stmt ast.Statement) {
			as, ok := stmt.(*ast.AssignStatement)
			if !ok {
				t.Fatalf("got %T, want *ast.AssignStatement", stmt)
			}
			if as.Target.IsFunction() || as.Target.Name != "x" {
				t.Errorf("target = %+v", as.Target)
			}
		}},
		{"function_definition", "f(x) = x^2 + 1", func(t *testing.T, stmt ast.Statement) {
			as, ok := stmt.(*ast.AssignStatement)
			if !ok {
				t.Fatalf("got %T, want *ast.AssignStatement", stmt)
			}
			if !as.Target.IsFunction() || as.Target.Name != "f" || len(as.Target.Params) != 1 || as.Target.Params[0] != "x" {
				t.Errorf("target = %+v", as.Target)
			}
		}},
		{"evaluation_query", "f(3) = ?", func(t *testing.T, stmt ast.Statement) {
			q, ok := stmt.(*ast.QueryStatement)
			if !ok {
				t.Fatalf("got %T, want *ast.QueryStatement", stmt)
			}
			if q.Rhs != nil {
				t.Errorf("expected nil Rhs for evaluation query, got %v", q.Rhs)
			}
		}},
		{"equation_query", "x^2 - 4 = 0 ?", func(t *testing.T, stmt ast.Statement) {
			q, ok := stmt.(*ast.QueryStatement)
			if !ok {
				t.Fatalf("got %T, want *ast.QueryStatement", stmt)
			}
			if q.Rhs == nil {
				t.Errorf("expected non-nil Rhs for equation query")
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stmt, err := parser.ParseLine(tc.input)
			if err != nil {
				t.Fatalf("ParseLine(%q) error: %v", tc.input, err)
			}
			tc.check(t, stmt)
		})
	}
}

func TestPowerIsRightAssociative(t *testing.T) {
	stmt, err := parser.ParseLine("a ^ b ^ c")
	if err != nil {
		t.Fatal(err)
	}
	es := stmt.(*ast.ExpressionStatement)
	bin, ok := es.Expression.(*ast.BinaryExpression)
	if !ok || bin.Op != ast.Pow {
		t.Fatalf("top-level expr is %T, want Pow binary", es.Expression)
	}
	if _, ok := bin.Right.(*ast.BinaryExpression); !ok {
		t.Errorf("right child = %T, want nested Pow (right-associative)", bin.Right)
	}
	if _, ok := bin.Left.(*ast.Identifier); !ok {
		t.Errorf("left child = %T, want Identifier", bin.Left)
	}
}

func TestUnaryBindsWeakerThanPower(t *testing.T) {
	stmt, err := parser.ParseLine("-x^2")
	if err != nil {
		t.Fatal(err)
	}
	es := stmt.(*ast.ExpressionStatement)
	un, ok := es.Expression.(*ast.UnaryExpression)
	if !ok || un.Op != ast.UnaryMinus {
		t.Fatalf("top-level expr is %T, want UnaryExpression(-)", es.Expression)
	}
	if _, ok := un.Child.(*ast.BinaryExpression); !ok {
		t.Errorf("unary child = %T, want Pow binary (x^2)", un.Child)
	}
}

func TestImplicitMultiplicationRejected(t *testing.T) {
	if _, err := parser.ParseLine("2x"); err == nil {
		t.Fatal("expected parse error for implicit multiplication")
	}
}

func TestMismatchedMatrixRowsRejected(t *testing.T) {
	if _, err := parser.ParseLine("[[1,2];[3]]"); err == nil {
		t.Fatal("expected parse error for mismatched matrix row lengths")
	}
}

func TestFunctionDefinitionRejectsNonIdentifierParams(t *testing.T) {
	if _, err := parser.ParseLine("f(2) = x + 1"); err == nil {
		t.Fatal("expected error: f(2) is a call, not a valid assignment target")
	}
}
