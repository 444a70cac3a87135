package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"radix/internal/source"
)

// Cursor is a byte position inside a single input line.
type Cursor struct {
	line []byte
	off  uint32
	// limit is the exclusive upper bound for off.
	limit uint32
}

// NewCursor creates a cursor over the provided line.
func NewCursor(line []byte) Cursor {
	limit, err := safecast.Conv[uint32](len(line))
	if err != nil {
		panic(fmt.Errorf("line length overflow: %w", err))
	}
	return Cursor{
		line:  line,
		off:   0,
		limit: limit,
	}
}

// EOF reports whether the cursor reached the end of the line.
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Peek reads the current byte if any, otherwise returns 0.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.line[c.off]
}

// Bump advances the cursor one byte and returns the byte read.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.line[c.off]
	c.off++
	return b
}

// Mark is a saved position used to build the Span of a scanned fragment.
type Mark uint32

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SpanFrom builds the Span of the fragment scanned since the mark.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Start: uint32(m),
		End:   c.off,
	}
}
