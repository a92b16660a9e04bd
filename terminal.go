package linenoise

import (
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// unsupportedTerms lists TERM values that cannot handle the escape sequences
// used for line editing. Input is read as a plain line on these terminals.
var unsupportedTerms = []string{"dumb", "cons25", "emacs"}

// terminalInterface abstracts the raw-mode terminal so the line reader can be
// driven by a scripted mock in tests.
type terminalInterface interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Get terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // Read a single Unicode character from input
	Close() error                         // Clean up resources and prevent fd leaks
}

// realTerminal implements terminalInterface with go-tty for input and size,
// and golang.org/x/term for the raw mode switch on stdin.
//
// Double Close is a no-op (go-tty panics on Windows otherwise) and Size falls
// back to 80x24 when detection fails, so width arithmetic never divides by zero.
type realTerminal struct {
	tty           *tty.TTY
	closed        bool
	stdinFd       int
	originalState *term.State
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Capture the state on every entry so Restore always returns to the
	// settings that were active right before this read.
	if term.IsTerminal(t.stdinFd) {
		state, err := term.MakeRaw(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Close() error {
	if t.closed || t.tty == nil {
		return nil
	}
	t.closed = true
	return t.tty.Close()
}

// stdinIsTerminal reports whether stdin is attached to a terminal
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// termSupported reports whether $TERM can handle line editing
func termSupported() bool {
	return !slices.Contains(unsupportedTerms, os.Getenv("TERM"))
}

// defaultOutput returns stdout, wrapped for ANSI support on Windows
func defaultOutput() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}
