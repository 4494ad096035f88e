package autoprompt

import (
	"github.com/emirpasic/gods/v2/lists/arraylist"
	"github.com/rivo/uniseg"
)

// Cursor is an editable rune sequence with an insertion point.
//
// The insertion point is counted in runes and always stays within
// [0, Len()]. Runes are stored whole, so no edit can split a UTF-8 sequence,
// and DeleteLeft/MoveLeft/MoveRight step over complete grapheme clusters so a
// letter followed by a combining mark behaves as one character.
type Cursor struct {
	buf *arraylist.List[rune]
	pos int
}

// NewCursor creates an empty cursor.
func NewCursor() *Cursor {
	return &Cursor{buf: arraylist.New[rune]()}
}

// Insert inserts r at the insertion point and advances it by one.
func (c *Cursor) Insert(r rune) {
	c.buf.Insert(c.pos, r)
	c.pos++
}

// DeleteLeft removes the character immediately before the insertion point.
// It is a no-op at offset 0.
func (c *Cursor) DeleteLeft() {
	if c.pos == 0 {
		return
	}
	n := c.clusterBefore()
	for range n {
		c.pos--
		c.buf.Remove(c.pos)
	}
}

// DeleteRight removes the character under the insertion point.
func (c *Cursor) DeleteRight() {
	n := c.clusterAfter()
	for range n {
		c.buf.Remove(c.pos)
	}
}

// Extend appends s at the end of the buffer. An insertion point sitting at
// the end follows the appended text; any other position is kept.
func (c *Cursor) Extend(s string) {
	atEnd := c.pos == c.buf.Size()
	c.buf.Add([]rune(s)...)
	if atEnd {
		c.pos = c.buf.Size()
	}
}

// Set replaces the contents with s and moves the insertion point to the end.
func (c *Cursor) Set(s string) {
	c.Clear()
	c.Extend(s)
}

// Clear empties the buffer and resets the insertion point.
func (c *Cursor) Clear() {
	c.buf.Clear()
	c.pos = 0
}

// MoveLeft moves the insertion point one character to the left.
func (c *Cursor) MoveLeft() {
	c.pos -= c.clusterBefore()
}

// MoveRight moves the insertion point one character to the right.
func (c *Cursor) MoveRight() {
	c.pos += c.clusterAfter()
}

// MoveHome moves the insertion point to the start of the current line.
func (c *Cursor) MoveHome() {
	c.pos = c.lineStart(c.pos)
}

// MoveEnd moves the insertion point to the end of the current line.
func (c *Cursor) MoveEnd() {
	c.pos = c.lineEnd(c.pos)
}

// MoveUp moves the insertion point to the same column on the previous line,
// or to the end of that line when it is shorter. It is a no-op on the first
// line.
func (c *Cursor) MoveUp() {
	lineStart := c.lineStart(c.pos)
	if lineStart == 0 {
		return
	}

	column := c.pos - lineStart
	prevLineEnd := lineStart - 1 // the newline
	prevLineStart := c.lineStart(prevLineEnd)
	c.pos = min(prevLineStart+column, prevLineEnd)
}

// MoveDown moves the insertion point to the same column on the next line,
// or to the end of that line when it is shorter. It is a no-op on the last
// line.
func (c *Cursor) MoveDown() {
	lineEnd := c.lineEnd(c.pos)
	if lineEnd >= c.buf.Size() {
		return
	}

	column := c.pos - c.lineStart(c.pos)
	nextLineStart := lineEnd + 1
	c.pos = min(nextLineStart+column, c.lineEnd(nextLineStart))
}

// lineStart returns the offset of the first rune of the line containing pos.
func (c *Cursor) lineStart(pos int) int {
	for pos > 0 {
		if r, _ := c.buf.Get(pos - 1); r == '\n' {
			break
		}
		pos--
	}
	return pos
}

// lineEnd returns the offset of the newline ending the line containing pos,
// or Len() on the last line.
func (c *Cursor) lineEnd(pos int) int {
	for pos < c.buf.Size() {
		if r, _ := c.buf.Get(pos); r == '\n' {
			break
		}
		pos++
	}
	return pos
}

// SetPosition moves the insertion point to pos, clamped to [0, Len()].
func (c *Cursor) SetPosition(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > c.buf.Size() {
		pos = c.buf.Size()
	}
	c.pos = pos
}

// Position returns the insertion point in runes.
func (c *Cursor) Position() int {
	return c.pos
}

// Len returns the number of runes in the buffer.
func (c *Cursor) Len() int {
	return c.buf.Size()
}

// IsEmpty reports whether the buffer holds no text.
func (c *Cursor) IsEmpty() bool {
	return c.buf.Empty()
}

// Runes returns a copy of the buffer contents.
func (c *Cursor) Runes() []rune {
	return c.buf.Values()
}

// String returns the buffer contents.
func (c *Cursor) String() string {
	return string(c.buf.Values())
}

// Split returns the text before the insertion point, the character under it
// (empty at the end of the buffer) and the text after that character.
func (c *Cursor) Split() (before, at, after string) {
	runes := c.buf.Values()
	n := c.clusterAfter()
	return string(runes[:c.pos]), string(runes[c.pos : c.pos+n]), string(runes[c.pos+n:])
}

// clusterBefore returns the rune length of the grapheme cluster ending at the
// insertion point.
func (c *Cursor) clusterBefore() int {
	if c.pos == 0 {
		return 0
	}
	runes := c.buf.Values()
	g := uniseg.NewGraphemes(string(runes[:c.pos]))
	last := 1
	for g.Next() {
		last = len(g.Runes())
	}
	return last
}

// clusterAfter returns the rune length of the grapheme cluster starting at the
// insertion point.
func (c *Cursor) clusterAfter() int {
	if c.pos >= c.buf.Size() {
		return 0
	}
	runes := c.buf.Values()
	g := uniseg.NewGraphemes(string(runes[c.pos:]))
	if !g.Next() {
		return 1
	}
	return len(g.Runes())
}
