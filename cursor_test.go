package autoprompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cursorOf(s string) *Cursor {
	c := NewCursor()
	c.Extend(s)
	return c
}

func TestCursorInsert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial string
		pos     int
		insert  string
		want    string
		wantPos int
	}{
		{name: "into empty", initial: "", pos: 0, insert: "a", want: "a", wantPos: 1},
		{name: "at end", initial: "ab", pos: 2, insert: "c", want: "abc", wantPos: 3},
		{name: "at start", initial: "bc", pos: 0, insert: "a", want: "abc", wantPos: 1},
		{name: "in middle", initial: "ac", pos: 1, insert: "b", want: "abc", wantPos: 2},
		{name: "multibyte", initial: "日本", pos: 1, insert: "の", want: "日の本", wantPos: 2},
		{name: "newline", initial: "ab", pos: 1, insert: "\n", want: "a\nb", wantPos: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cursorOf(tt.initial)
			c.SetPosition(tt.pos)
			for _, r := range tt.insert {
				c.Insert(r)
			}
			assert.Equal(t, tt.want, c.String())
			assert.Equal(t, tt.wantPos, c.Position())
		})
	}
}

func TestCursorDeleteLeft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial string
		pos     int
		want    string
		wantPos int
	}{
		{name: "at start is a no-op", initial: "abc", pos: 0, want: "abc", wantPos: 0},
		{name: "at end", initial: "abc", pos: 3, want: "ab", wantPos: 2},
		{name: "in middle", initial: "abc", pos: 2, want: "ac", wantPos: 1},
		{name: "empty buffer", initial: "", pos: 0, want: "", wantPos: 0},
		{name: "multibyte", initial: "héllo", pos: 2, want: "hllo", wantPos: 1},
		{name: "combining mark removed with its base", initial: "ae\u0301", pos: 3, want: "a", wantPos: 1},
		{name: "emoji with skin tone", initial: "x\U0001F44D\U0001F3FD", pos: 3, want: "x", wantPos: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cursorOf(tt.initial)
			c.SetPosition(tt.pos)
			c.DeleteLeft()
			assert.Equal(t, tt.want, c.String())
			assert.Equal(t, tt.wantPos, c.Position())
		})
	}
}

func TestCursorDeleteRight(t *testing.T) {
	t.Parallel()

	c := cursorOf("abc")
	c.SetPosition(1)
	c.DeleteRight()
	assert.Equal(t, "ac", c.String())
	assert.Equal(t, 1, c.Position())

	c.SetPosition(c.Len())
	c.DeleteRight()
	assert.Equal(t, "ac", c.String(), "DeleteRight at the end is a no-op")
}

func TestCursorExtend(t *testing.T) {
	t.Parallel()

	t.Run("insertion point at end follows the text", func(t *testing.T) {
		t.Parallel()

		c := cursorOf("ru")
		c.Extend("st")
		assert.Equal(t, "rust", c.String())
		assert.Equal(t, 4, c.Position())
	})

	t.Run("insertion point elsewhere is kept", func(t *testing.T) {
		t.Parallel()

		c := cursorOf("ru")
		c.SetPosition(1)
		c.Extend("st")
		assert.Equal(t, "rust", c.String())
		assert.Equal(t, 1, c.Position())
	})

	t.Run("after clear", func(t *testing.T) {
		t.Parallel()

		c := cursorOf("anything")
		c.Clear()
		c.Extend("ruby")
		assert.Equal(t, "ruby", c.String())
		assert.Equal(t, 4, c.Position())
	})
}

func TestCursorSetAndClear(t *testing.T) {
	t.Parallel()

	c := cursorOf("hello")
	c.SetPosition(2)
	c.Set("bye")
	assert.Equal(t, "bye", c.String())
	assert.Equal(t, 3, c.Position())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Position())
}

func TestCursorMovement(t *testing.T) {
	t.Parallel()

	c := cursorOf("ab\ncd")
	assert.Equal(t, 5, c.Position())

	c.MoveHome()
	assert.Equal(t, 3, c.Position(), "Home stops at the start of the current line")
	c.MoveLeft()
	assert.Equal(t, 2, c.Position())
	c.MoveHome()
	assert.Equal(t, 0, c.Position())
	c.MoveLeft()
	assert.Equal(t, 0, c.Position(), "MoveLeft stops at 0")
	c.MoveEnd()
	assert.Equal(t, 2, c.Position(), "End stops before the newline")
	c.MoveRight()
	c.MoveEnd()
	assert.Equal(t, 5, c.Position())
	c.MoveRight()
	assert.Equal(t, 5, c.Position(), "MoveRight stops at Len")
}

func TestCursorVerticalMovement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		pos     int
		up      bool
		wantPos int
	}{
		{name: "up keeps the column", text: "abc\ndef", pos: 5, up: true, wantPos: 1},
		{name: "up clamps to a shorter line", text: "a\ndef", pos: 5, up: true, wantPos: 1},
		{name: "up to an empty line", text: "\nab", pos: 3, up: true, wantPos: 0},
		{name: "up on the first line is a no-op", text: "abc\ndef", pos: 2, up: true, wantPos: 2},
		{name: "up from a line start", text: "ab\ncd\nef", pos: 6, up: true, wantPos: 3},
		{name: "down keeps the column", text: "abc\ndef", pos: 1, wantPos: 5},
		{name: "down clamps to a shorter line", text: "abc\nd", pos: 3, wantPos: 5},
		{name: "down to an empty line", text: "ab\n\ncd", pos: 2, wantPos: 3},
		{name: "down on the last line is a no-op", text: "abc\ndef", pos: 6, wantPos: 6},
		{name: "single line", text: "abc", pos: 1, wantPos: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cursorOf(tt.text)
			c.SetPosition(tt.pos)
			if tt.up {
				c.MoveUp()
			} else {
				c.MoveDown()
			}
			assert.Equal(t, tt.wantPos, c.Position())
			assert.Equal(t, tt.text, c.String(), "moving never edits")
		})
	}
}

func TestCursorMoveOverGraphemeClusters(t *testing.T) {
	t.Parallel()

	c := cursorOf("e\u0301x")
	c.SetPosition(0)
	c.MoveRight()
	assert.Equal(t, 2, c.Position())
	c.MoveRight()
	assert.Equal(t, 3, c.Position())
	c.MoveLeft()
	c.MoveLeft()
	assert.Equal(t, 0, c.Position())
}

func TestCursorSetPositionClamps(t *testing.T) {
	t.Parallel()

	c := cursorOf("abc")
	c.SetPosition(-4)
	assert.Equal(t, 0, c.Position())
	c.SetPosition(42)
	assert.Equal(t, 3, c.Position())
}

func TestCursorSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		initial    string
		pos        int
		wantBefore string
		wantAt     string
		wantAfter  string
	}{
		{name: "empty", initial: "", pos: 0},
		{name: "at end", initial: "abc", pos: 3, wantBefore: "abc"},
		{name: "at start", initial: "abc", pos: 0, wantAt: "a", wantAfter: "bc"},
		{name: "middle", initial: "abc", pos: 1, wantBefore: "a", wantAt: "b", wantAfter: "c"},
		{name: "cluster under cursor", initial: "e\u0301!", pos: 0, wantAt: "e\u0301", wantAfter: "!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cursorOf(tt.initial)
			c.SetPosition(tt.pos)
			before, at, after := c.Split()
			assert.Equal(t, tt.wantBefore, before)
			assert.Equal(t, tt.wantAt, at)
			assert.Equal(t, tt.wantAfter, after)
		})
	}
}

func TestCursorRunesIsACopy(t *testing.T) {
	t.Parallel()

	c := cursorOf("abc")
	runes := c.Runes()
	runes[0] = 'z'
	assert.Equal(t, "abc", c.String())
}

// FuzzCursorOps applies an arbitrary sequence of edits and moves. Each byte of
// ops selects one operation and the runes of text feed the insertions.
func FuzzCursorOps(f *testing.F) {
	f.Add("ab\ncd", []byte{0, 0, 1, 3, 6, 0, 7, 2})
	f.Add("e\u0301\U0001F44D\U0001F3FD", []byte{0, 0, 0, 4, 1, 5, 2, 8})
	f.Add("日本\n語", []byte{0, 0, 0, 0, 6, 6, 1, 7, 3, 9})

	f.Fuzz(func(t *testing.T, text string, ops []byte) {
		if !utf8.ValidString(text) {
			t.Skip()
		}
		input := []rune(text)
		c := NewCursor()
		next := 0
		for _, op := range ops {
			switch op % 10 {
			case 0:
				if len(input) > 0 {
					c.Insert(input[next%len(input)])
					next++
				}
			case 1:
				c.DeleteLeft()
			case 2:
				c.DeleteRight()
			case 3:
				c.MoveLeft()
			case 4:
				c.MoveRight()
			case 5:
				c.MoveHome()
			case 6:
				c.MoveEnd()
			case 7:
				c.MoveUp()
			case 8:
				c.MoveDown()
			case 9:
				c.Insert('\n')
			}

			require.GreaterOrEqual(t, c.Position(), 0)
			require.LessOrEqual(t, c.Position(), c.Len())
			require.True(t, utf8.ValidString(c.String()))
			require.Equal(t, c.Len(), utf8.RuneCountInString(c.String()))

			before, at, after := c.Split()
			require.Equal(t, c.String(), before+at+after)
		}
	})
}

func FuzzCursorExtendRoundTrip(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add("e\u0301 日本 \U0001F44D\U0001F3FD")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) || strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
			t.Skip()
		}
		c := NewCursor()
		c.Extend(s)
		assert.Equal(t, s, c.String())
		assert.Equal(t, c.Len(), c.Position())
	})
}
