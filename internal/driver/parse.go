package driver

import (
	"tally/internal/ast"
	"tally/internal/diag"
	"tally/internal/parser"
	"tally/internal/source"
	"tally/internal/token"
)

type ParseResult struct {
	Input  *source.Input
	Tokens []token.Token
	Exprs  *ast.Exprs
	Root   ast.ExprID
	Bag    *diag.Bag
}

// Parse runs lexing and parsing on one expression string. If lexing fails,
// the parser never runs and Root is NoExprID.
func Parse(expr string, opts Options) *ParseResult {
	opts = opts.withDefaults()

	tok := Tokenize(expr, opts)
	res := &ParseResult{
		Input:  tok.Input,
		Tokens: tok.Tokens,
		Exprs:  ast.NewExprs(0),
		Root:   ast.NoExprID,
		Bag:    tok.Bag,
	}
	if tok.Bag.HasErrors() {
		return res
	}

	phase := opts.Timer.Begin("parse")
	defer opts.Timer.End(phase)

	root, ok := parser.Parse(tok.Tokens, res.Exprs, parser.Options{
		Reporter: diag.BagReporter{Bag: tok.Bag},
		MaxDepth: opts.MaxDepth,
	})
	if ok {
		res.Root = root
	}
	return res
}
