// Package bubble runs autoprompt inputs inside Bubble Tea programs.
//
// Model wraps an *autoprompt.Input and implements tea.Model: key messages are
// translated into autoprompt keys and fed to Input.Handle, and View draws the
// prompt with Input.Render. The program quits once the prompt is submitted or
// cancelled.
//
//	in := autoprompt.NewTextInput("Language",
//		autoprompt.WithSuggestions("go", "rust", "zig"),
//		autoprompt.WithTheme(bubble.DefaultStyles()),
//	)
//	m := bubble.New(in)
//	if _, err := tea.NewProgram(m).Run(); err != nil {
//		log.Fatal(err)
//	}
//	lang, err := m.Value()
package bubble

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nao1215/autoprompt"
)

// Model is a tea.Model driving an autoprompt input.
type Model[T any] struct {
	input *autoprompt.Input[T]
	state autoprompt.State[T]
	value T
	err   error
	done  bool
}

var _ tea.Model = (*Model[string])(nil)

// New creates a Model for input.
func New[T any](input *autoprompt.Input[T]) *Model[T] {
	return &Model[T]{
		input: input,
		state: autoprompt.Active[T](),
	}
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	if keyMsg.Type == tea.KeyCtrlD {
		if m.input.Value() != "" {
			return m, nil
		}
		return m.finish(autoprompt.Cancel[T](), autoprompt.ErrEOF)
	}

	for _, key := range translateKey(keyMsg) {
		m.state = m.input.Handle(key)
		switch {
		case m.state.Kind == autoprompt.StateSubmit:
			m.value = m.state.Value
			return m.finish(m.state, nil)
		case m.state.Cancelled():
			return m.finish(m.state, autoprompt.ErrInterrupted)
		}
	}
	return m, nil
}

func (m *Model[T]) finish(state autoprompt.State[T], err error) (tea.Model, tea.Cmd) {
	m.state = state
	m.err = err
	m.done = true
	return m, tea.Quit
}

// View implements tea.Model.
func (m *Model[T]) View() string {
	return m.input.Render(m.state)
}

// Done reports whether the prompt was submitted or cancelled.
func (m *Model[T]) Done() bool {
	return m.done
}

// Value returns the submitted value. The error is autoprompt.ErrInterrupted
// when the prompt was cancelled and autoprompt.ErrEOF after Ctrl+D on an
// empty input.
func (m *Model[T]) Value() (T, error) {
	return m.value, m.err
}

// translateKey maps a Bubble Tea key message to autoprompt keys. Pasted or
// batched runes yield one key each; unsupported keys yield none.
func translateKey(msg tea.KeyMsg) []autoprompt.Key {
	switch msg.Type {
	case tea.KeyRunes:
		return autoprompt.Keys(string(msg.Runes))
	case tea.KeySpace:
		return []autoprompt.Key{autoprompt.Char(' ')}
	case tea.KeyEnter, tea.KeyCtrlJ:
		return []autoprompt.Key{{Code: autoprompt.KeyEnter}}
	case tea.KeyEsc:
		return []autoprompt.Key{{Code: autoprompt.KeyEscape}}
	case tea.KeyCtrlC:
		return []autoprompt.Key{{Code: autoprompt.KeyInterrupt}}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []autoprompt.Key{{Code: autoprompt.KeyBackspace}}
	case tea.KeyDelete:
		return []autoprompt.Key{{Code: autoprompt.KeyDelete}}
	case tea.KeyTab:
		return []autoprompt.Key{{Code: autoprompt.KeyTab}}
	case tea.KeyUp, tea.KeyShiftTab:
		return []autoprompt.Key{{Code: autoprompt.KeyUp}}
	case tea.KeyDown:
		return []autoprompt.Key{{Code: autoprompt.KeyDown}}
	case tea.KeyLeft:
		return []autoprompt.Key{{Code: autoprompt.KeyLeft}}
	case tea.KeyRight:
		return []autoprompt.Key{{Code: autoprompt.KeyRight}}
	case tea.KeyHome, tea.KeyCtrlA:
		return []autoprompt.Key{{Code: autoprompt.KeyHome}}
	case tea.KeyEnd, tea.KeyCtrlE:
		return []autoprompt.Key{{Code: autoprompt.KeyEnd}}
	default:
		return nil
	}
}
