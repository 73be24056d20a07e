package parser

import (
	"fmt"
	"strconv"

	"tally/internal/ast"
	"tally/internal/diag"
	"tally/internal/token"
)

// parseExpr is the entry point for expression parsing.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr implements precedence climbing over the binary operators.
// minPrec is the minimum precedence accepted at this level; operator chains
// of equal precedence fold left-to-right.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		tok := p.peek()
		prec := binaryPrec(tok.Kind)
		if prec < 0 || prec < minPrec {
			break
		}

		opTok := p.advance()

		// prec+1 keeps same-precedence chains left-associative.
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}

		op := tokenKindToBinaryOp(opTok.Kind)
		leftSpan := p.exprs.Get(left).Span
		rightSpan := p.exprs.Get(right).Span
		left = p.exprs.NewBinary(leftSpan.Cover(rightSpan), op, left, right)
	}

	return left, true
}

// parseUnaryExpr handles prefix minus. It is right-recursive, so "--3"
// builds two nested negation nodes.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	if !p.at(token.Minus) {
		return p.parsePrimary()
	}

	opTok := p.advance()
	if !p.enterDepth(opTok.Span) {
		return ast.NoExprID, false
	}
	defer p.leaveDepth()

	operand, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	span := opTok.Span.Cover(p.exprs.Get(operand).Span)
	return p.exprs.NewUnary(span, operand), true
}

// parsePrimary handles the leaves of the grammar: a number literal or a
// parenthesised sub-expression.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.peek()

	switch tok.Kind {
	case token.Number:
		p.advance()
		value, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.err(diag.LexBadNumber, tok.Span,
				fmt.Sprintf("malformed number %q at position %d", tok.Text, tok.Span.Start))
			return ast.NoExprID, false
		}
		return p.exprs.NewLiteral(tok.Span, value), true

	case token.LParen:
		open := p.advance()
		if !p.enterDepth(open.Span) {
			return ast.NoExprID, false
		}
		defer p.leaveDepth()

		p.parenDepth++
		inner, ok := p.parseExpr()
		p.parenDepth--
		if !ok {
			return ast.NoExprID, false
		}

		switch closing := p.peek(); closing.Kind {
		case token.RParen:
			p.advance()
			return inner, true
		case token.EOF:
			p.err(diag.SynUnbalancedParen, open.Span,
				fmt.Sprintf("unbalanced parentheses: '(' at position %d is never closed", open.Span.Start))
			return ast.NoExprID, false
		default:
			p.err(diag.SynUnexpectedToken, closing.Span,
				fmt.Sprintf("unexpected %s: expected ')'", describe(closing)))
			return ast.NoExprID, false
		}

	case token.RParen:
		// A close paren where a factor is expected: stray at top level,
		// otherwise just a structural error inside a group.
		if p.parenDepth == 0 {
			p.err(diag.SynUnbalancedParen, tok.Span,
				fmt.Sprintf("unbalanced parentheses: unmatched ')' at position %d", tok.Span.Start))
		} else {
			p.err(diag.SynUnexpectedToken, tok.Span,
				fmt.Sprintf("unexpected %s: expected number or '('", describe(tok)))
		}
		return ast.NoExprID, false

	case token.EOF:
		if p.parenDepth > 0 {
			p.err(diag.SynUnbalancedParen, tok.Span, "unbalanced parentheses: expression ends inside a group")
		} else {
			p.err(diag.SynUnexpectedToken, tok.Span, "unexpected end of expression: expected number or '('")
		}
		return ast.NoExprID, false

	default:
		p.err(diag.SynUnexpectedToken, tok.Span,
			fmt.Sprintf("unexpected %s: expected number or '('", describe(tok)))
		return ast.NoExprID, false
	}
}
