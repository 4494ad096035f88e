package autoprompt

import (
	"fmt"
	"strings"
)

// ColorScheme is the ANSI true-color Theme.
//
// The layout draws a gutter bar down the left edge, a state symbol before the
// label, and marks the highlighted suggestion with "▶". Colors follow the
// state: the bar turns to Error while an error is shown and to Submit or
// Cancel once the prompt has ended.
type ColorScheme struct {
	Name      string           `json:"name"`
	Bar       Color            `json:"bar"`
	Label     Color            `json:"label"`
	Text      Color            `json:"text"`
	Hint      Color            `json:"hint"`
	Help      Color            `json:"help"`
	Error     Color            `json:"error"`
	Submit    Color            `json:"submit"`
	Cancel    Color            `json:"cancel"`
	Candidate SuggestionColors `json:"candidate"`
	// NoColor renders the layout without any escape sequence.
	NoColor bool `json:"noColor"`
}

// SuggestionColors defines colors for completion suggestions.
type SuggestionColors struct {
	Text     Color `json:"text"`
	Selected Color `json:"selected"`
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with a cyan bar and white text.
var ThemeDefault = &ColorScheme{
	Name:   "default",
	Bar:    Color{R: 0, G: 255, B: 255},
	Label:  Color{R: 255, G: 255, B: 255, Bold: true},
	Text:   Color{R: 255, G: 255, B: 255},
	Hint:   Color{R: 128, G: 128, B: 128},
	Help:   Color{R: 128, G: 128, B: 128},
	Error:  Color{R: 255, G: 255, B: 0},
	Submit: Color{R: 0, G: 255, B: 0},
	Cancel: Color{R: 255, G: 0, B: 0},
	Candidate: SuggestionColors{
		Text:     Color{R: 200, G: 200, B: 200},
		Selected: Color{R: 0, G: 255, B: 255, Bold: true},
	},
}

// ThemeDark is a dark theme with light blue accents and off-white text.
var ThemeDark = &ColorScheme{
	Name:   "Dark",
	Bar:    Color{R: 102, G: 217, B: 239},
	Label:  Color{R: 248, G: 248, B: 242, Bold: true},
	Text:   Color{R: 248, G: 248, B: 242},
	Hint:   Color{R: 98, G: 114, B: 164},
	Help:   Color{R: 98, G: 114, B: 164},
	Error:  Color{R: 255, G: 184, B: 108},
	Submit: Color{R: 80, G: 250, B: 123},
	Cancel: Color{R: 255, G: 85, B: 85},
	Candidate: SuggestionColors{
		Text:     Color{R: 189, G: 147, B: 249},
		Selected: Color{R: 80, G: 250, B: 123, Bold: true},
	},
}

// ThemeAccessible is a colorblind-safe theme with high contrast.
var ThemeAccessible = &ColorScheme{
	Name:   "Accessible",
	Bar:    Color{R: 0, G: 114, B: 178, Bold: true},
	Label:  Color{R: 255, G: 255, B: 255, Bold: true},
	Text:   Color{R: 255, G: 255, B: 255},
	Hint:   Color{R: 204, G: 204, B: 204},
	Help:   Color{R: 204, G: 204, B: 204},
	Error:  Color{R: 240, G: 228, B: 66, Bold: true},
	Submit: Color{R: 0, G: 158, B: 115},
	Cancel: Color{R: 213, G: 94, B: 0},
	Candidate: SuggestionColors{
		Text:     Color{R: 255, G: 255, B: 255},
		Selected: Color{R: 230, G: 159, B: 0, Bold: true},
	},
}

// ThemeDracula is the Dracula color scheme.
var ThemeDracula = &ColorScheme{
	Name:   "Dracula",
	Bar:    Color{R: 255, G: 121, B: 198},
	Label:  Color{R: 248, G: 248, B: 242, Bold: true},
	Text:   Color{R: 248, G: 248, B: 242},
	Hint:   Color{R: 98, G: 114, B: 164},
	Help:   Color{R: 98, G: 114, B: 164},
	Error:  Color{R: 241, G: 250, B: 140},
	Submit: Color{R: 80, G: 250, B: 123},
	Cancel: Color{R: 255, G: 85, B: 85},
	Candidate: SuggestionColors{
		Text:     Color{R: 139, G: 233, B: 253},
		Selected: Color{R: 80, G: 250, B: 123, Bold: true},
	},
}

// ThemeMonokai is the Monokai color scheme.
var ThemeMonokai = &ColorScheme{
	Name:   "Monokai",
	Bar:    Color{R: 249, G: 38, B: 114},
	Label:  Color{R: 248, G: 248, B: 242, Bold: true},
	Text:   Color{R: 248, G: 248, B: 242},
	Hint:   Color{R: 117, G: 113, B: 94},
	Help:   Color{R: 117, G: 113, B: 94},
	Error:  Color{R: 253, G: 151, B: 31},
	Submit: Color{R: 166, G: 226, B: 46},
	Cancel: Color{R: 249, G: 38, B: 114},
	Candidate: SuggestionColors{
		Text:     Color{R: 166, G: 226, B: 46},
		Selected: Color{R: 102, G: 217, B: 239, Bold: true},
	},
}

// ThemePlain renders the same layout without colors. Use it when output is
// not a terminal.
var ThemePlain = &ColorScheme{
	Name:    "plain",
	NoColor: true,
}

// Symbols used by ColorScheme.
const (
	symbolBar       = "│"
	symbolBarEnd    = "└"
	symbolActive    = "◆"
	symbolError     = "▲"
	symbolSubmit    = "◇"
	symbolCancel    = "■"
	symbolHighlight = "▶"
)

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// paint wraps s in color c unless the scheme is colorless or s is empty.
func (cs *ColorScheme) paint(c Color, s string) string {
	if cs.NoColor || s == "" {
		return s
	}
	return c.ToANSI() + s + Reset()
}

// stateColor is the accent color for the bar and symbol of status.
func (cs *ColorScheme) stateColor(status Status) Color {
	switch status.Kind {
	case StateError:
		return cs.Error
	case StateSubmit:
		return cs.Submit
	case StateCancel:
		return cs.Cancel
	default:
		return cs.Bar
	}
}

func (cs *ColorScheme) bar(status Status) string {
	return cs.paint(cs.stateColor(status), symbolBar)
}

// Header renders the bar line followed by the state symbol and label.
func (cs *ColorScheme) Header(status Status, label string) string {
	symbol := symbolActive
	switch status.Kind {
	case StateError:
		symbol = symbolError
	case StateSubmit:
		symbol = symbolSubmit
	case StateCancel:
		symbol = symbolCancel
	}
	return cs.paint(cs.Bar, symbolBar) + "\n" +
		cs.paint(cs.stateColor(status), symbol) + "  " + cs.paint(cs.Label, label) + "\n"
}

// Input renders the buffer, one gutter line per text line. The insertion
// point is drawn as a reversed cell while the prompt is active.
func (cs *ColorScheme) Input(status Status, text InputText) string {
	return cs.gutter(status, cs.withCursor(status, cs.Text, text))
}

// Placeholder renders the hint in the placeholder color.
func (cs *ColorScheme) Placeholder(status Status, text InputText) string {
	if status.Kind == StateSubmit || status.Kind == StateCancel {
		// The hint is meaningless once the prompt ended.
		return cs.gutter(status, "")
	}
	return cs.gutter(status, cs.withCursor(status, cs.Hint, text))
}

// Footer renders the closing bar with message. In StateError the message is
// replaced by the error text.
func (cs *ColorScheme) Footer(status Status, message string) string {
	switch status.Kind {
	case StateError:
		return cs.paint(cs.Error, symbolBarEnd+"  "+status.Message) + "\n"
	case StateSubmit, StateCancel:
		return cs.bar(status) + "\n"
	}
	if message == "" {
		return cs.paint(cs.Bar, symbolBarEnd) + "\n"
	}
	return cs.paint(cs.Bar, symbolBarEnd) + "  " + cs.paint(cs.Help, message) + "\n"
}

// Suggestion renders one candidate below the footer.
func (cs *ColorScheme) Suggestion(_ Status, text string, highlighted bool) string {
	if highlighted {
		return "  " + cs.paint(cs.Candidate.Selected, symbolHighlight+" "+text) + "\n"
	}
	return "    " + cs.paint(cs.Candidate.Text, text) + "\n"
}

// withCursor paints text in c and marks the insertion point.
func (cs *ColorScheme) withCursor(status Status, c Color, text InputText) string {
	active := status.Kind == StateActive || status.Kind == StateError
	if !active || cs.NoColor {
		return cs.paintLines(c, text.String())
	}
	cell := text.At
	suffix := ""
	switch cell {
	case "":
		cell = " "
	case "\n":
		cell, suffix = " ", "\n"
	}
	return cs.paintLines(c, text.Before) + "\x1b[7m" + cell + "\x1b[27m" + suffix + cs.paintLines(c, text.After)
}

// paintLines paints every line of s separately so the gutter can be inserted
// between them.
func (cs *ColorScheme) paintLines(c Color, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = cs.paint(c, line)
	}
	return strings.Join(lines, "\n")
}

// gutter prefixes every line of s with the state bar.
func (cs *ColorScheme) gutter(status Status, s string) string {
	lines := strings.Split(s, "\n")
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(cs.bar(status))
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
