package linenoise

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// mockTerminal implements terminalInterface with a scripted key sequence.
// ReadRune returns io.EOF once the script is exhausted.
type mockTerminal struct {
	input        []rune
	inputPos     int
	rawMode      bool
	closed       int
	terminalSize [2]int
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

func (m *mockTerminal) Close() error {
	m.closed++
	return nil
}

// newForTesting creates an editor driven by a mock terminal that types
// input. Output is captured in the returned buffer.
func newForTesting(t *testing.T, input string, options ...Option) (*Editor, *bytes.Buffer) {
	t.Helper()

	output := &bytes.Buffer{}
	opts := append([]Option{
		WithOutput(output),
		WithWarningOutput(io.Discard),
		WithCharset(UTF8),
	}, options...)

	e, err := New(opts...)
	require.NoError(t, err)
	e.terminal = newMockTerminal(input)
	return e, output
}
