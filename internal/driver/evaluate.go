package driver

import (
	"tally/internal/ast"
	"tally/internal/diag"
	"tally/internal/eval"
	"tally/internal/source"
	"tally/internal/token"
)

type EvalResult struct {
	Input  *source.Input
	Tokens []token.Token
	Exprs  *ast.Exprs
	Root   ast.ExprID
	Value  float64
	Bag    *diag.Bag
}

// Err returns the first error diagnostic, or nil when the run succeeded.
func (r *EvalResult) Err() error {
	if d, ok := r.Bag.First(); ok {
		return d
	}
	return nil
}

// Evaluate runs the full pipeline on one expression string. Each stage only
// runs if the previous one produced no errors; the bag holds the first
// failure otherwise.
func Evaluate(expr string, opts Options) *EvalResult {
	opts = opts.withDefaults()
	parsed := Parse(expr, opts)
	res := &EvalResult{
		Input:  parsed.Input,
		Tokens: parsed.Tokens,
		Exprs:  parsed.Exprs,
		Root:   parsed.Root,
		Bag:    parsed.Bag,
	}
	if parsed.Bag.HasErrors() || parsed.Root == ast.NoExprID {
		return res
	}

	phase := opts.Timer.Begin("eval")
	defer opts.Timer.End(phase)

	value, d := eval.Eval(parsed.Exprs, parsed.Root)
	if d != nil {
		res.Bag.Add(*d)
		return res
	}
	res.Value = value
	return res
}

// Process is the single entry point for callers that only need a number:
// it composes lexer, parser and evaluator and returns either the result or
// the first failure as a diag.Diagnostic error.
func Process(expr string) (float64, error) {
	res := Evaluate(expr, Options{})
	if err := res.Err(); err != nil {
		return 0, err
	}
	return res.Value, nil
}
