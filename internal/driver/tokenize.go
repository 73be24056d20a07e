package driver

import (
	"tally/internal/diag"
	"tally/internal/lexer"
	"tally/internal/source"
	"tally/internal/token"
)

type TokenizeResult struct {
	Input  *source.Input
	Tokens []token.Token
	Bag    *diag.Bag
}

// Tokenize runs the lexing stage on one expression string. Lexing stops at
// the first invalid token: character-level errors are not recoverable.
func Tokenize(expr string, opts Options) *TokenizeResult {
	opts = opts.withDefaults()

	phase := opts.Timer.Begin("lex")
	defer opts.Timer.End(phase)

	in := source.NewInput(expr)
	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(in, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			break
		}
	}

	return &TokenizeResult{
		Input:  in,
		Tokens: tokens,
		Bag:    bag,
	}
}
