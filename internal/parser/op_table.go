package parser

import (
	"tally/internal/ast"
	"tally/internal/token"
)

// Binary operator precedence; higher binds tighter. All four operators are
// left-associative.
const (
	precAdditive       = 1 // + -
	precMultiplicative = 2 // * /
)

// binaryPrec returns the precedence of a binary operator token, or -1 if the
// token is not a binary operator.
func binaryPrec(kind token.Kind) int {
	switch kind {
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash:
		return precMultiplicative
	default:
		return -1
	}
}

// tokenKindToBinaryOp maps an operator token to its AST operator.
func tokenKindToBinaryOp(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.Plus:
		return ast.OpAdd
	case token.Minus:
		return ast.OpSub
	case token.Star:
		return ast.OpMul
	case token.Slash:
		return ast.OpDiv
	default:
		panic("not a binary operator token: " + kind.String())
	}
}
