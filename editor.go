package linenoise

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Editor reads lines from the terminal with in-place editing, completion and
// hints, and owns the history and settings those features use.
//
// An Editor is not safe for concurrent use. ReadLine blocks while it owns the
// terminal, and the completion and hint providers are called from inside it
// on the same goroutine.
type Editor struct {
	multiline bool
	completer Completer
	hinter    Hinter
	hintColor Color
	hintBold  bool

	history *History
	charset *Charset
	keyMap  *KeyMap

	output     io.Writer
	warnOutput io.Writer
	renderer   *renderer

	terminal      terminalInterface
	input         io.Reader // read directly when stdin is not a usable terminal
	plainReader   *bufio.Reader
	isTerminal    func() bool
	termSupported func() bool

	reading bool
}

// New creates an editor. No terminal is opened until the first ReadLine.
//
// Example:
//
//	ed, err := linenoise.New(
//		linenoise.WithCompleter(linenoise.NewFuzzyCompleter([]string{"git status", "git commit"})),
//		linenoise.WithHintColor(linenoise.ColorCyan),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ed.Close()
//
//	for {
//		line, ok, err := ed.ReadLine("> ")
//		if err != nil || !ok {
//			break
//		}
//		_ = ed.History().Push(line)
//	}
func New(options ...Option) (*Editor, error) {
	config := DefaultConfig()
	for _, option := range options {
		option(&config)
	}
	return newFromConfig(config)
}

func newFromConfig(config Config) (*Editor, error) {
	if _, err := checkColor(config.HintColor); err != nil {
		return nil, err
	}
	if config.HistoryCapacity <= 0 {
		return nil, fmt.Errorf("%w: history capacity must be positive, got %d", ErrInvalidArgument, config.HistoryCapacity)
	}
	if isNilValue(config.Completer) {
		config.Completer = nil
	}
	if isNilValue(config.Hinter) {
		config.Hinter = nil
	}
	if config.Charset == nil {
		config.Charset = LocaleCharset()
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}
	if config.Output == nil {
		config.Output = defaultOutput()
	}
	if config.WarningOutput == nil {
		config.WarningOutput = os.Stderr
	}

	history := NewHistory(config.HistoryCapacity)
	history.charset = config.Charset

	return &Editor{
		multiline:     config.Multiline,
		completer:     config.Completer,
		hinter:        config.Hinter,
		hintColor:     config.HintColor,
		hintBold:      config.HintBold,
		history:       history,
		charset:       config.Charset,
		keyMap:        config.KeyMap,
		output:        config.Output,
		warnOutput:    config.WarningOutput,
		renderer:      newRenderer(config.Output),
		input:         os.Stdin,
		isTerminal:    stdinIsTerminal,
		termSupported: termSupported,
	}, nil
}

// History returns the editor's history. ReadLine never adds to it; push the
// lines you want to recall.
func (e *Editor) History() *History {
	return e.history
}

// Charset returns the charset text is validated against
func (e *Editor) Charset() *Charset {
	return e.charset
}

// Multiline reports whether multiline mode is enabled
func (e *Editor) Multiline() bool {
	return e.multiline
}

// SetMultiline switches between wrapping and horizontally scrolling long
// lines. It takes effect on the next ReadLine.
func (e *Editor) SetMultiline(enabled bool) {
	e.multiline = enabled
}

// SetCompleter replaces the completion provider; nil disables completion
func (e *Editor) SetCompleter(completer Completer) {
	if isNilValue(completer) {
		completer = nil
	}
	e.completer = completer
}

// RegisterCompleter replaces the completion provider with v, which may be a
// Completer, a func(string) Completion, a func(string) []string, a
// func(string) string or nil. Any other value fails with ErrInvalidArgument
// and leaves the current provider in place.
func (e *Editor) RegisterCompleter(v any) error {
	completer, err := completerFromValue(v)
	if err != nil {
		return err
	}
	e.completer = completer
	return nil
}

// SetHinter replaces the hint provider; nil disables hints
func (e *Editor) SetHinter(hinter Hinter) {
	if isNilValue(hinter) {
		hinter = nil
	}
	e.hinter = hinter
}

// RegisterHinter replaces the hint provider with v, which may be a Hinter, a
// func(string) (string, bool), a func(string) string or nil. Any other value
// fails with ErrInvalidArgument and leaves the current provider in place.
func (e *Editor) RegisterHinter(v any) error {
	hinter, err := hinterFromValue(v)
	if err != nil {
		return err
	}
	e.hinter = hinter
	return nil
}

// HintColor returns the current hint color
func (e *Editor) HintColor() Color {
	return e.hintColor
}

// SetHintColor sets the hint color. Only ColorNone and ColorRed..ColorWhite
// (SGR 31..37) are accepted; anything else fails with ErrInvalidArgument.
func (e *Editor) SetHintColor(color Color) error {
	c, err := checkColor(color)
	if err != nil {
		return err
	}
	e.hintColor = c
	return nil
}

// SetHintColorValue sets the hint color from a loosely typed value, such as
// one read from a config file. nil means ColorNone and integers are SGR codes.
// Other types fail with ErrTypeMismatch, out-of-range integers with
// ErrInvalidArgument.
func (e *Editor) SetHintColorValue(v any) error {
	c, err := colorFromValue(v)
	if err != nil {
		return err
	}
	e.hintColor = c
	return nil
}

// HintBold reports whether hints are drawn in bold
func (e *Editor) HintBold() bool {
	return e.hintBold
}

// SetHintBold sets whether hints are drawn in bold
func (e *Editor) SetHintBold(bold bool) {
	e.hintBold = bold
}

// ReadLine shows prompt and reads one line of input.
//
// It returns ok=false, with no error, when the user ends input (Ctrl+D or
// EOF) on an empty line. Ctrl+C returns ErrInterrupted. Errors from the
// completion and hint providers' text validation end the read and are
// returned as is.
func (e *Editor) ReadLine(prompt string) (line string, ok bool, err error) {
	return e.ReadLineContext(context.Background(), prompt)
}

// Readline is an alias for ReadLine
func (e *Editor) Readline(prompt string) (string, bool, error) {
	return e.ReadLine(prompt)
}

// ReadLineContext is ReadLine with cancellation. The context is checked
// between keystrokes, so a cancelled context ends the read at the next key.
//
// Example with timeout:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	line, ok, err := ed.ReadLineContext(ctx, "> ")
//	if errors.Is(err, context.DeadlineExceeded) {
//		fmt.Println("Timeout reached")
//		return
//	}
func (e *Editor) ReadLineContext(ctx context.Context, prompt string) (string, bool, error) {
	if e.reading {
		return "", false, ErrBusy
	}
	e.reading = true
	defer func() { e.reading = false }()

	if e.terminal == nil {
		if !e.isTerminal() {
			return e.readPlain("")
		}
		if !e.termSupported() {
			return e.readPlain(prompt)
		}
		t, err := newRealTerminal()
		if err != nil {
			return "", false, fmt.Errorf("failed to create terminal: %w", err)
		}
		e.terminal = t
	}

	if err := e.terminal.SetRaw(); err != nil {
		return "", false, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := e.terminal.Restore(); err != nil {
			e.warn("failed to exit raw mode: %v", err)
		}
	}()

	lr := newLineReader(e, prompt)
	return lr.run(ctx)
}

// readPlain reads a line without raw mode, for pipes and dumb terminals
func (e *Editor) readPlain(prompt string) (string, bool, error) {
	if prompt != "" {
		if _, err := io.WriteString(e.output, prompt); err != nil {
			return "", false, fmt.Errorf("failed to write prompt: %w", err)
		}
	}
	if e.plainReader == nil {
		e.plainReader = bufio.NewReader(e.input)
	}
	line, err := e.plainReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, nil
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), true, nil
}

// ClearScreen clears the terminal and moves the cursor to the top-left corner
func (e *Editor) ClearScreen() error {
	if err := e.renderer.clearScreen(); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}
	return nil
}

// Close releases the terminal. It is safe to call Close multiple times.
func (e *Editor) Close() error {
	if e.terminal == nil {
		return nil
	}
	err := e.terminal.Close()
	e.terminal = nil
	return err
}

func (e *Editor) warn(format string, args ...any) {
	fmt.Fprintf(e.warnOutput, "Warning: "+format+"\n", args...)
}
