package ast

// ExprID identifies an expression node inside an Exprs arena.
// The zero value means "no expression".
type ExprID uint32

// NoExprID is the absent-expression sentinel.
const NoExprID ExprID = 0

// PayloadID indexes into a per-kind payload arena.
type PayloadID uint32
