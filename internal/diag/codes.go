package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo        Code = 1000
	LexInvalidChar Code = 1001
	LexBadNumber   Code = 1002

	// Syntactic
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnbalancedParen Code = 2002
	SynEmptyExpression Code = 2003
	SynNestingTooDeep  Code = 2004

	// Evaluation
	EvalInfo           Code = 3000
	EvalDivisionByZero Code = 3001
)

// ID returns the stable string form of the code, e.g. "SYN2001".
func (c Code) ID() string {
	switch {
	case c >= 3000:
		return fmt.Sprintf("EVAL%04d", uint16(c))
	case c >= 2000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 1000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	default:
		return fmt.Sprintf("UNK%04d", uint16(c))
	}
}

// Stage names the pipeline stage a code belongs to.
func (c Code) Stage() string {
	switch {
	case c >= 3000:
		return "eval"
	case c >= 2000:
		return "parse"
	case c >= 1000:
		return "lex"
	default:
		return "unknown"
	}
}
