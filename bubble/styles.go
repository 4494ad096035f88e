package bubble

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nao1215/autoprompt"
)

// Styles is an autoprompt.Theme rendered with lipgloss.
//
// Pass it to the prompt with autoprompt.WithTheme. The zero value renders
// plain text.
type Styles struct {
	// Label is the style for the prompt label.
	Label lipgloss.Style
	// Text is the style for typed text.
	Text lipgloss.Style
	// Cursor is the style for the character under the insertion point.
	Cursor lipgloss.Style
	// Hint is the style for the placeholder shown while the input is empty.
	Hint lipgloss.Style
	// Help is the style for footer hints.
	Help lipgloss.Style
	// Error is the style for the error symbol and message.
	Error lipgloss.Style
	// Done is the style for the symbol of a submitted prompt.
	Done lipgloss.Style
	// Canceled is the style for the symbol of a cancelled prompt.
	Canceled lipgloss.Style
	// Candidate is the style for suggestions that are not highlighted.
	Candidate lipgloss.Style
	// SelectedCandidate is the style for the highlighted suggestion.
	SelectedCandidate lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles.
func DefaultStyles() *Styles {
	return &Styles{
		Label:             lipgloss.NewStyle().Bold(true),
		Text:              lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Cursor:            lipgloss.NewStyle().Reverse(true),
		Hint:              lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Help:              lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Error:             lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Done:              lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Canceled:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Candidate:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		SelectedCandidate: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	}
}

// Symbols drawn before the label.
const (
	symbolActive   = "?"
	symbolError    = "!"
	symbolDone     = "✓"
	symbolCanceled = "✗"
	symbolSelected = "›"
)

var _ autoprompt.Theme = (*Styles)(nil)

// Header renders the state symbol and the label.
func (s *Styles) Header(status autoprompt.Status, label string) string {
	var symbol string
	switch status.Kind {
	case autoprompt.StateError:
		symbol = s.Error.Render(symbolError)
	case autoprompt.StateSubmit:
		symbol = s.Done.Render(symbolDone)
	case autoprompt.StateCancel:
		symbol = s.Canceled.Render(symbolCanceled)
	default:
		symbol = s.Help.Render(symbolActive)
	}
	return symbol + " " + s.Label.Render(label) + "\n"
}

// Input renders the typed text indented below the label.
func (s *Styles) Input(status autoprompt.Status, text autoprompt.InputText) string {
	return s.body(status, s.Text, text)
}

// Placeholder renders the hint. Nothing is drawn once the prompt ended.
func (s *Styles) Placeholder(status autoprompt.Status, text autoprompt.InputText) string {
	if status.Kind == autoprompt.StateSubmit || status.Kind == autoprompt.StateCancel {
		return ""
	}
	return s.body(status, s.Hint, text)
}

// Footer renders the error message or the hint line.
func (s *Styles) Footer(status autoprompt.Status, message string) string {
	switch {
	case status.Kind == autoprompt.StateError:
		return "  " + s.Error.Render(status.Message) + "\n"
	case message == "":
		return ""
	default:
		return "  " + s.Help.Render(message) + "\n"
	}
}

// Suggestion renders one candidate.
func (s *Styles) Suggestion(_ autoprompt.Status, text string, highlighted bool) string {
	if highlighted {
		return "  " + s.SelectedCandidate.Render(symbolSelected+" "+text) + "\n"
	}
	return "    " + s.Candidate.Render(text) + "\n"
}

// body renders text line by line so lipgloss does not pad the lines into a
// block, drawing the insertion point while the prompt is active.
func (s *Styles) body(status autoprompt.Status, style lipgloss.Style, text autoprompt.InputText) string {
	active := status.Kind == autoprompt.StateActive || status.Kind == autoprompt.StateError

	var content string
	if active {
		cell, suffix := text.At, ""
		switch cell {
		case "":
			cell = " "
		case "\n":
			cell, suffix = " ", "\n"
		}
		content = renderLines(style, text.Before) + s.Cursor.Render(cell) + suffix + renderLines(style, text.After)
	} else {
		content = renderLines(style, text.String())
	}

	var sb strings.Builder
	for _, line := range strings.Split(content, "\n") {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderLines(style lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
