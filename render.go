package autoprompt

import (
	"strings"
)

// Render draws the prompt for state with the configured Theme.
//
// The frame is the header, the input line (or the placeholder when the
// buffer is empty), the footer and, while the prompt is active, the
// suggestions for the pinned or live query. Render does not change the
// prompt, so repeated calls for the same state return the same string.
func (in *Input[T]) Render(state State[T]) string {
	theme := in.cfg.theme
	status := state.Status()

	var suggestions []string
	if in.cfg.suggester != nil {
		suggestions = in.suggestions(in.cycle.filterQuery(in.input.String()))
	}

	var sb strings.Builder
	sb.WriteString(theme.Header(status, in.label))
	if in.input.IsEmpty() {
		sb.WriteString(theme.Placeholder(status, inputTextOf(in.placeholder)))
	} else {
		sb.WriteString(theme.Input(status, inputTextOf(in.input)))
	}
	sb.WriteString(theme.Footer(status, in.footerMessage(status, len(suggestions) > 0)))

	if status.Kind == StateActive {
		highlighted := in.cycle.highlighted()
		for i, suggestion := range suggestions {
			sb.WriteString(theme.Suggestion(status, suggestion, i == highlighted))
		}
	}
	return sb.String()
}

// footerMessage picks the hint for the footer line.
func (in *Input[T]) footerMessage(status Status, hasSuggestions bool) string {
	if hasSuggestions {
		if status.Kind == StateActive {
			return footerSuggestions
		}
		return ""
	}
	switch in.mode {
	case multilineEditing:
		return footerMultilineEditing
	case multilinePreview:
		return footerMultilinePreview
	default:
		return ""
	}
}
