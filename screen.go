package autoprompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// screen redraws frames in place.
//
// Every frame replaces the previous one: the cursor moves back up over the
// rows the last frame used and the display is cleared to the end. Rows are
// counted by display width, so lines that wrap at the terminal width are
// cleared too.
type screen struct {
	output   io.Writer
	width    int // terminal columns, 0 disables wrap accounting
	lastRows int // rows written by the previous frame
}

func newScreen(output io.Writer, width int) *screen {
	return &screen{output: output, width: width}
}

// draw replaces the previous frame with frame.
func (s *screen) draw(frame string) error {
	var sb strings.Builder
	if s.lastRows > 0 {
		fmt.Fprintf(&sb, "\x1b[%dA", s.lastRows)
	}
	sb.WriteString("\r\x1b[J")
	// Raw mode does not translate newlines.
	sb.WriteString(strings.ReplaceAll(frame, "\n", "\r\n"))

	if _, err := io.WriteString(s.output, sb.String()); err != nil {
		return err
	}
	s.lastRows = s.rows(frame)
	return nil
}

// hideCursor hides the terminal cursor while the prompt is drawn.
func (s *screen) hideCursor() error {
	_, err := io.WriteString(s.output, "\x1b[?25l")
	return err
}

// showCursor restores the terminal cursor.
func (s *screen) showCursor() error {
	_, err := io.WriteString(s.output, "\x1b[?25h")
	return err
}

// rows counts the terminal rows frame occupies above the cursor once written.
func (s *screen) rows(frame string) int {
	lines := strings.Split(frame, "\n")
	// The last element is the partial line the cursor rests on.
	total := 0
	for _, line := range lines[:len(lines)-1] {
		total += s.lineRows(line)
	}
	if tail := lines[len(lines)-1]; tail != "" {
		total += s.lineRows(tail) - 1
	}
	return total
}

func (s *screen) lineRows(line string) int {
	width := runewidth.StringWidth(ansi.Strip(line))
	if s.width <= 0 || width <= s.width {
		return 1
	}
	return (width + s.width - 1) / s.width
}
