package lexer

import (
	"fmt"

	"tally/internal/diag"
	"tally/internal/token"
)

// scanNumber recognises lexemes of the form digit+ ('.' digit+)?.
// Any other shape involving '.' is a lexing failure reported here, never
// deferred to the parser: two decimal points, a trailing '.' with no digit,
// and a leading '.' all produce an Invalid token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// A number must begin with a digit.
	if lx.cursor.Peek() == '.' {
		dotAt := lx.cursor.Off
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexBadNumber, sp,
			fmt.Sprintf("malformed number: expected digit before '.' at position %d", dotAt))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.input.Snippet(sp)}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// Optional fraction: exactly one '.', which must be followed by a digit.
	if lx.cursor.Peek() == '.' {
		dotAt := lx.cursor.Off
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexBadNumber, sp,
				fmt.Sprintf("malformed number: expected digit after '.' at position %d", dotAt))
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.input.Snippet(sp)}
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// A second '.' immediately after the fraction is part of the same
	// malformed lexeme, not the start of a new token.
	if lx.cursor.Peek() == '.' {
		dotAt := lx.cursor.Off
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexBadNumber, sp,
			fmt.Sprintf("malformed number: unexpected '.' at position %d", dotAt))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.input.Snippet(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Number,
		Span: sp,
		Text: lx.input.Snippet(sp),
	}
}
