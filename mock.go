package autoprompt

import (
	"bytes"
	"io"
)

// mockTerminal implements terminalInterface for testing.
//
// Input is a pre-configured rune sequence; everything written goes to an
// in-memory buffer. Raw mode and close calls are recorded so tests can check
// that the terminal was restored.
type mockTerminal struct {
	input        []rune       // Pre-configured input sequence for testing
	inputPos     int          // Current position in the input sequence
	rawMode      bool         // Track raw mode state for test verification
	closed       bool         // Track Close calls
	terminalSize [2]int       // Fixed terminal dimensions [width, height]
	output       bytes.Buffer // Everything rendered to the terminal
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Buffered() bool {
	return m.inputPos < len(m.input)
}

func (m *mockTerminal) Output() io.Writer {
	return &m.output
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}
