package ast

import (
	"tally/internal/source"
)

// Exprs manages allocation of expression nodes. Children are always
// allocated before their parents, so IDs grow from leaves to root and the
// tree cannot contain cycles.
type Exprs struct {
	Arena    *Arena[Expr]
	Literals *Arena[ExprLitData]
	Unaries  *Arena[ExprUnaryData]
	Binaries *Arena[ExprBinaryData]
}

// NewExprs creates an Exprs with per-kind arenas preallocated to capHint.
// If capHint is 0, a default capacity of 1<<6 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Literals: NewArena[ExprLitData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Len returns the number of allocated nodes.
func (e *Exprs) Len() uint32 {
	return e.Arena.Len()
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, value float64) ExprID {
	payload := e.Literals.Allocate(ExprLitData{Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal payload for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewUnary creates a new negation expression.
func (e *Exprs) NewUnary(span source.Span, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the negation payload for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary payload for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}
