package lexer

import (
	"tally/internal/diag"
	"tally/internal/source"
)

// Options configures a Lexer. The Reporter may be nil, in which case
// errors still produce Invalid tokens but are not recorded anywhere.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
