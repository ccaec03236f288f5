package histsearch

import (
	"bytes"
	"io"
)

// mockTerminal implements Terminal for testing.
//
// It serves a pre-configured key sequence, renders into an in-memory
// buffer, reports a fixed size, and exposes an injectable resize channel,
// so prompt sessions can be exercised deterministically without a TTY.
type mockTerminal struct {
	input        []rune        // Pre-configured input sequence for testing
	inputPos     int           // Current position in the input sequence
	rawMode      bool          // Track raw mode state for test verification
	terminalSize [2]int        // Fixed terminal dimensions [width, height]
	output       bytes.Buffer  // Captured rendered output
	resize       chan struct{} // Injectable resize notifications
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
		resize:       make(chan struct{}, 1),
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

func (m *mockTerminal) ResizeEvents() <-chan struct{} {
	return m.resize
}

func (m *mockTerminal) Close() error {
	return nil
}
