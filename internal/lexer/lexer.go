package lexer

import (
	"fmt"

	"tally/internal/diag"
	"tally/internal/source"
	"tally/internal/token"
)

// Lexer turns an expression input into a stream of tokens. It validates
// character-level legality only; structure is the parser's job.
type Lexer struct {
	input  *source.Input
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

func New(in *source.Input, opts Options) *Lexer {
	return &Lexer{
		input:  in,
		cursor: NewCursor(in),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isDec(ch) || ch == '.':
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// scanOperatorOrPunct handles the single-byte operators and parentheses.
// Anything else at this point is an invalid character.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: lx.input.Snippet(sp),
		}
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexInvalidChar, sp,
			fmt.Sprintf("invalid character %q at position %d", rune(ch), sp.Start))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.input.Snippet(sp)}
	}
}
