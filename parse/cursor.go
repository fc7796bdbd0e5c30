package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode controls how a Cursor treats whitespace.
type Mode int

const (
	// SkipAll silently skips whitespace before every character read.
	SkipAll Mode = iota
	// KeepAll returns whitespace verbatim.
	KeepAll
	// IndentSensitive measures leading-line whitespace as an indentation
	// depth instead of handing it out as characters. Whitespace elsewhere
	// on a line is skipped as in SkipAll.
	IndentSensitive
)

// Cursor is a read position over immutable input text. Copies are cheap
// and independent: the input is shared, the position is not. Whichever
// scope holds a Cursor is the only one that may advance it; speculative
// parsing clones the cursor and commits the clone's position on success.
type Cursor struct {
	input       string
	pos         Position
	mode        Mode
	indent      int
	atLineStart bool
}

// NewCursor returns a cursor at the start of input in SkipAll mode.
func NewCursor(input string) *Cursor {
	return &Cursor{
		input:       input,
		pos:         Position{Offset: 0, Line: 1, Column: 1},
		mode:        SkipAll,
		atLineStart: true,
	}
}

// Clone returns an independent cursor at the same position and mode.
func (c *Cursor) Clone() *Cursor {
	dup := *c
	return &dup
}

// Position returns the current read position.
func (c *Cursor) Position() Position {
	return c.pos
}

// Mode returns the current whitespace mode.
func (c *Cursor) Mode() Mode {
	return c.mode
}

// SetMode changes the whitespace mode in place.
func (c *Cursor) SetMode(m Mode) {
	c.mode = m
}

// IndentDepth returns the measured indentation of the current line.
// Only meaningful in IndentSensitive mode.
func (c *Cursor) IndentDepth() int {
	return c.indent
}

// AtEnd reports whether only insignificant whitespace remains.
func (c *Cursor) AtEnd() bool {
	look := *c
	look.skip()
	return look.pos.Offset >= len(look.input)
}

// Peek returns the next significant character without advancing.
func (c *Cursor) Peek() (rune, bool) {
	look := *c
	look.skip()
	r, size := look.peekRaw()
	return r, size > 0
}

// Next consumes and returns the next significant character.
func (c *Cursor) Next() (rune, bool) {
	c.skip()
	r, size := c.peekRaw()
	if size == 0 {
		return 0, false
	}
	c.bump(r, size)
	return r, true
}

// Seek moves the cursor back to a previously observed position. It is a
// rollback mechanism only: seeking forward past scanned input fails.
func (c *Cursor) Seek(p Position) error {
	if p.Offset > c.pos.Offset {
		return FatalAt("cannot seek forward past scanned input", c.pos)
	}
	if p.Offset < 0 {
		return FatalAt("cannot seek before start of input", c.pos)
	}
	c.pos = p
	c.resync()
	return nil
}

// commit adopts the position of a clone that was advanced speculatively.
// The mode stays the receiver's own.
func (c *Cursor) commit(from *Cursor) {
	c.pos = from.pos
	c.indent = from.indent
	c.atLineStart = from.atLineStart
}

func (c *Cursor) peekRaw() (rune, int) {
	if c.pos.Offset >= len(c.input) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(c.input[c.pos.Offset:])
}

func (c *Cursor) bump(r rune, size int) {
	c.pos.Offset += size
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 1
		c.atLineStart = true
		c.indent = 0
		return
	}
	c.pos.Column++
	if !unicode.IsSpace(r) {
		c.atLineStart = false
	}
}

// skip consumes whitespace according to the mode. In IndentSensitive mode
// leading-line whitespace is counted into the indent depth as it goes by.
func (c *Cursor) skip() {
	if c.mode == KeepAll {
		return
	}
	for {
		r, size := c.peekRaw()
		if size == 0 || !unicode.IsSpace(r) {
			return
		}
		if c.mode == IndentSensitive && c.atLineStart && r != '\n' {
			c.indent++
		}
		c.bump(r, size)
	}
}

// resync recomputes line-local state after a rollback.
func (c *Cursor) resync() {
	lineStart := strings.LastIndexByte(c.input[:c.pos.Offset], '\n') + 1
	depth := 0
	atStart := true
	for _, r := range c.input[lineStart:c.pos.Offset] {
		if unicode.IsSpace(r) {
			if atStart {
				depth++
			}
			continue
		}
		atStart = false
	}
	c.indent = depth
	c.atLineStart = atStart
}
