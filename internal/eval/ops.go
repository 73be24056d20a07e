package eval

import (
	"fmt"

	"tally/internal/ast"
	"tally/internal/diag"
)

// applyBinary computes one binary operation. Division checks the evaluated
// right operand against exactly 0.0; every other value, however small, goes
// through IEEE-754 division as-is.
func applyBinary(exprs *ast.Exprs, id ast.ExprID, op ast.BinaryOp, left, right float64) (float64, *diag.Diagnostic) {
	switch op {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpMul:
		return left * right, nil
	case ast.OpDiv:
		if right == 0.0 {
			span := exprs.Get(id).Span
			d := diag.NewError(diag.EvalDivisionByZero, span, "division by zero")
			return 0, &d
		}
		return left / right, nil
	}

	panic(fmt.Sprintf("eval: unhandled binary operator %s", op))
}
