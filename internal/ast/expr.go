package ast

import (
	"tally/internal/source"
)

// ExprKind enumerates the closed set of expression shapes. No other kind is
// representable, which is what keeps evaluation restricted to arithmetic.
type ExprKind uint8

const (
	// ExprLit is a numeric literal.
	ExprLit ExprKind = iota
	// ExprUnary is unary negation.
	ExprUnary
	// ExprBinary is one of the four arithmetic binary operations.
	ExprBinary
)

func (k ExprKind) String() string {
	switch k {
	case ExprLit:
		return "Literal"
	case ExprUnary:
		return "Unary"
	case ExprBinary:
		return "Binary"
	}
	return "Unknown"
}

// BinaryOp enumerates the binary operators.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Expr is the arena header for one node; the payload lives in the per-kind
// arena selected by Kind.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitData is the payload of a literal node.
type ExprLitData struct {
	Value float64
}

// ExprUnaryData is the payload of a negation node.
type ExprUnaryData struct {
	Operand ExprID
}

// ExprBinaryData is the payload of a binary operation node.
type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}
