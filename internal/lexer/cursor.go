package lexer

import (
	"tally/internal/source"
)

// Cursor is a byte position inside an Input.
type Cursor struct {
	Input *source.Input
	Off   uint32
}

// NewCursor creates a cursor at the start of the input.
func NewCursor(in *source.Input) Cursor {
	return Cursor{Input: in, Off: 0}
}

// EOF reports whether the cursor reached the end of the input.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Input.Len()
}

// Peek reads the current byte without consuming it, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Input.Content[c.Off]
}

// Peek2 reads the current and next byte; ok is false if fewer than two remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Input.Len() {
		return 0, 0, false
	}
	return c.Input.Content[c.Off], c.Input.Content[c.Off+1], true
}

// Bump consumes and returns the current byte, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Input.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Input.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Mark captures the current position so a Span can be built later.
type Mark uint32

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom builds the span covering everything read since the mark.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Start: uint32(m),
		End:   c.Off,
	}
}
