package autoprompt

// Theme turns the semantic pieces of a prompt into display strings.
//
// The prompt only supplies plain text, the current Status and highlight
// flags; every styling decision belongs to the Theme. A Theme must be a pure
// function of its arguments so rendering stays idempotent. Each method
// returns its piece including the trailing newline, or "" to omit it.
//
// *ColorScheme is the ANSI implementation used by the terminal host. The
// bubble sub-package provides a lipgloss-based implementation.
type Theme interface {
	// Header renders the prompt label.
	Header(status Status, label string) string
	// Input renders the buffer with the insertion point.
	Input(status Status, text InputText) string
	// Placeholder renders the hint shown while the buffer is empty.
	Placeholder(status Status, text InputText) string
	// Footer renders the hint line, or the error message in StateError.
	Footer(status Status, message string) string
	// Suggestion renders one candidate of the suggestion list.
	Suggestion(status Status, text string, highlighted bool) string
}

// InputText is buffer text split around the insertion point.
type InputText struct {
	Before string // text before the insertion point
	At     string // character under the insertion point, "" at the end
	After  string // text after At
}

// String returns the whole text.
func (t InputText) String() string {
	return t.Before + t.At + t.After
}

// inputTextOf splits the contents of c around its insertion point.
func inputTextOf(c *Cursor) InputText {
	before, at, after := c.Split()
	return InputText{Before: before, At: at, After: after}
}

// Footer messages supplied to Theme.Footer.
const (
	footerMultilineEditing = "[Esc](Preview)"
	footerMultilinePreview = "[Enter](Submit)"
	footerSuggestions      = "[Tab/↑/↓](Suggestions)"
)
