package parser

import (
	"fmt"

	"tally/internal/ast"
	"tally/internal/diag"
	"tally/internal/source"
	"tally/internal/token"
)

// DefaultMaxDepth bounds grouping/unary nesting so adversarial input cannot
// exhaust the call stack.
const DefaultMaxDepth = 1000

type Options struct {
	Reporter diag.Reporter
	// MaxDepth limits expression nesting; 0 means DefaultMaxDepth.
	MaxDepth uint
}

// Parser holds the state for parsing one token stream into one expression.
// The first error aborts the parse: a single expression has no synchronisation
// point to recover to.
type Parser struct {
	toks       []token.Token
	pos        int
	exprs      *ast.Exprs
	opts       Options
	depth      uint
	parenDepth int
}

// Parse consumes the whole token stream and returns the root expression.
// The stream must end with EOF (the lexer guarantees this). On failure the
// diagnostic goes to opts.Reporter and NoExprID is returned.
func Parse(toks []token.Token, exprs *ast.Exprs, opts Options) (ast.ExprID, bool) {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p := Parser{
		toks:  toks,
		exprs: exprs,
		opts:  opts,
	}

	if p.at(token.EOF) {
		p.err(diag.SynEmptyExpression, p.peek().Span, "empty expression")
		return ast.NoExprID, false
	}

	root, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	// The grammar must consume everything up to EOF. A stray ')' is an
	// imbalance; anything else is a trailing token.
	switch tok := p.peek(); tok.Kind {
	case token.EOF:
		return root, true
	case token.RParen:
		p.err(diag.SynUnbalancedParen, tok.Span,
			fmt.Sprintf("unbalanced parentheses: unmatched ')' at position %d", tok.Span.Start))
		return ast.NoExprID, false
	default:
		p.err(diag.SynUnexpectedToken, tok.Span,
			fmt.Sprintf("unexpected %s after expression", describe(tok)))
		return ast.NoExprID, false
	}
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		var end source.Span
		if n := len(p.toks); n > 0 {
			end = p.toks[n-1].Span
		}
		return token.Token{Kind: token.EOF, Span: source.Span{Start: end.End, End: end.End}}
	}
	return p.toks[p.pos]
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// enterDepth bumps the nesting counter, failing once the limit is hit.
func (p *Parser) enterDepth(sp source.Span) bool {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		p.err(diag.SynNestingTooDeep, sp,
			fmt.Sprintf("expression nesting exceeds the limit of %d", p.opts.MaxDepth))
		return false
	}
	return true
}

func (p *Parser) leaveDepth() {
	p.depth--
}

// describe renders a token for diagnostics.
func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of expression"
	}
	return fmt.Sprintf("token %q at position %d", tok.Text, tok.Span.Start)
}
