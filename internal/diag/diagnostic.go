package diag

import (
	"fmt"

	"tally/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the structured finding produced by any pipeline stage.
// It carries enough detail for callers to render a position-qualified
// message without re-inspecting the input.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// Error implements the error interface so a Diagnostic can cross API
// boundaries as a regular Go error.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message)
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
		Notes:    nil,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
