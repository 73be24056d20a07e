package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tally/internal/diag"
	"tally/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	codeColor = color.New(color.Faint)
)

// Pretty renders diagnostics in a human-readable form, expecting bag.Sort()
// to have been called for deterministic order. Each diagnostic prints as
//
//	ERROR [SYN2001]: unexpected token ")" at position 6
//	  (1 + 2))
//	         ^
//
// with the caret line underlining the primary span.
func Pretty(w io.Writer, bag *diag.Bag, in *source.Input, opts PrettyOpts) {
	for _, d := range bag.Items() {
		sev := d.Severity.String()
		code := "[" + d.Code.ID() + "]"
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
			code = codeColor.Sprint(code)
		}
		fmt.Fprintf(w, "%s %s: %s\n", sev, code, d.Message)

		if opts.ShowSource && in != nil && len(in.Content) > 0 {
			writeSourceLine(w, in, d.Primary)
		}
		for _, note := range d.Notes {
			fmt.Fprintf(w, "  note: %s\n", note.Msg)
			if opts.ShowSource && in != nil {
				writeSourceLine(w, in, note.Span)
			}
		}
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

// writeSourceLine prints the expression with a caret underline for the span.
// Expressions are single-line, so no line/column mapping is needed.
func writeSourceLine(w io.Writer, in *source.Input, sp source.Span) {
	line := in.String()
	fmt.Fprintf(w, "  %s\n", line)

	start := int(sp.Start)
	if start > len(line) {
		start = len(line)
	}
	width := int(sp.Len())
	if width < 1 {
		width = 1
	}
	if start+width > len(line)+1 {
		width = len(line) + 1 - start
	}
	underline := strings.Repeat("^", width)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", start), underline)
}
