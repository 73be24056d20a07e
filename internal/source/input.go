package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Input holds one expression string as bytes. All spans produced by the
// pipeline index into Content.
type Input struct {
	Content []byte
}

// NewInput wraps an expression string.
func NewInput(expr string) *Input {
	return &Input{Content: []byte(expr)}
}

// Len returns the input length in bytes.
func (in *Input) Len() uint32 {
	n, err := safecast.Conv[uint32](len(in.Content))
	if err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return n
}

// Snippet returns the substring covered by the span, clamped to the input.
func (in *Input) Snippet(sp Span) string {
	end := sp.End
	if end > in.Len() {
		end = in.Len()
	}
	if sp.Start >= end {
		return ""
	}
	return string(in.Content[sp.Start:end])
}

func (in *Input) String() string {
	return string(in.Content)
}
