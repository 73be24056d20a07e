package eval

import (
	"fmt"

	"tally/internal/ast"
	"tally/internal/diag"
)

// Eval walks the expression tree rooted at id and computes its value.
// It never mutates the arena; the only possible failure is division by an
// exact zero, reported with the span of the offending division. Because the
// node set is closed (literal, negate, the four binary ops), nothing outside
// plain arithmetic is reachable from here.
func Eval(exprs *ast.Exprs, id ast.ExprID) (float64, *diag.Diagnostic) {
	expr := exprs.Get(id)
	if expr == nil {
		panic(fmt.Sprintf("eval: no expression with id %d", id))
	}

	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := exprs.Literal(id)
		return lit.Value, nil

	case ast.ExprUnary:
		un, _ := exprs.Unary(id)
		v, d := Eval(exprs, un.Operand)
		if d != nil {
			return 0, d
		}
		return -v, nil

	case ast.ExprBinary:
		bin, _ := exprs.Binary(id)
		// Left before right, always both: evaluation order is part of the
		// contract even though operands are side-effect free.
		left, d := Eval(exprs, bin.Left)
		if d != nil {
			return 0, d
		}
		right, d := Eval(exprs, bin.Right)
		if d != nil {
			return 0, d
		}
		return applyBinary(exprs, id, bin.Op, left, right)
	}

	panic(fmt.Sprintf("eval: unhandled expression kind %s", expr.Kind))
}
