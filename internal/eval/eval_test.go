package eval_test

import (
	"testing"

	"tally/internal/ast"
	"tally/internal/diag"
	"tally/internal/eval"
	"tally/internal/source"
)

func lit(exprs *ast.Exprs, v float64) ast.ExprID {
	return exprs.NewLiteral(source.Span{}, v)
}

func TestEvalLiteral(t *testing.T) {
	exprs := ast.NewExprs(0)
	root := lit(exprs, 7.5)

	v, d := eval.Eval(exprs, root)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if v != 7.5 {
		t.Errorf("got %v, want 7.5", v)
	}
}

func TestEvalBinaryOps(t *testing.T) {
	tests := []struct {
		name        string
		op          ast.BinaryOp
		left, right float64
		want        float64
	}{
		{"add", ast.OpAdd, 2, 3, 5},
		{"sub", ast.OpSub, 10, 4, 6},
		{"mul", ast.OpMul, 2.5, 4, 10},
		{"div", ast.OpDiv, 9, 2, 4.5},
		{"div by small nonzero", ast.OpDiv, 1, 0.5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exprs := ast.NewExprs(0)
			root := exprs.NewBinary(source.Span{}, tt.op, lit(exprs, tt.left), lit(exprs, tt.right))

			v, d := eval.Eval(exprs, root)
			if d != nil {
				t.Fatalf("unexpected diagnostic: %v", d)
			}
			if v != tt.want {
				t.Errorf("got %v, want %v", v, tt.want)
			}
		})
	}
}

func TestEvalNegation(t *testing.T) {
	exprs := ast.NewExprs(0)
	root := exprs.NewUnary(source.Span{}, exprs.NewUnary(source.Span{}, lit(exprs, 3)))

	v, d := eval.Eval(exprs, root)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if v != 3 {
		t.Errorf("double negation: got %v, want 3", v)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	exprs := ast.NewExprs(0)
	span := source.Span{Start: 2, End: 7}
	root := exprs.NewBinary(span, ast.OpDiv, lit(exprs, 5), lit(exprs, 0))

	_, d := eval.Eval(exprs, root)
	if d == nil {
		t.Fatal("expected a diagnostic")
	}
	if d.Code != diag.EvalDivisionByZero {
		t.Errorf("code: got %s, want %s", d.Code.ID(), diag.EvalDivisionByZero.ID())
	}
	if d.Primary != span {
		t.Errorf("span: got %s, want %s", d.Primary, span)
	}
}

func TestEvalZeroDividedIsFine(t *testing.T) {
	exprs := ast.NewExprs(0)
	root := exprs.NewBinary(source.Span{}, ast.OpDiv, lit(exprs, 0), lit(exprs, 4))

	v, d := eval.Eval(exprs, root)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if v != 0 {
		t.Errorf("got %v, want 0", v)
	}
}

func TestEvalDivisionByComputedZero(t *testing.T) {
	// 1 / (2 - 2): the check runs on the evaluated operand, not its shape.
	exprs := ast.NewExprs(0)
	denom := exprs.NewBinary(source.Span{}, ast.OpSub, lit(exprs, 2), lit(exprs, 2))
	root := exprs.NewBinary(source.Span{}, ast.OpDiv, lit(exprs, 1), denom)

	_, d := eval.Eval(exprs, root)
	if d == nil || d.Code != diag.EvalDivisionByZero {
		t.Fatalf("expected %s, got %v", diag.EvalDivisionByZero.ID(), d)
	}
}

func TestEvalLeftFailureWins(t *testing.T) {
	// (1/0) + (2/0): the left division fails first, so its span is reported.
	exprs := ast.NewExprs(0)
	leftSpan := source.Span{Start: 1, End: 4}
	left := exprs.NewBinary(leftSpan, ast.OpDiv, lit(exprs, 1), lit(exprs, 0))
	right := exprs.NewBinary(source.Span{Start: 9, End: 12}, ast.OpDiv, lit(exprs, 2), lit(exprs, 0))
	root := exprs.NewBinary(source.Span{Start: 0, End: 13}, ast.OpAdd, left, right)

	_, d := eval.Eval(exprs, root)
	if d == nil {
		t.Fatal("expected a diagnostic")
	}
	if d.Primary != leftSpan {
		t.Errorf("span: got %s, want left operand span %s", d.Primary, leftSpan)
	}
}
