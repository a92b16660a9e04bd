package linenoise

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// lineReader holds the state of one ReadLine call: the edit buffer, the
// cursor and a scratch copy of the history that Up/Down walk through.
type lineReader struct {
	e         *Editor
	prompt    string
	multiline bool // fixed for the whole read; SetMultiline applies to the next one
	buf       []rune
	cursor    int

	// lines is the history snapshot followed by the line being typed.
	// Edits made while browsing are kept here and never reach History.
	lines []string
	index int
}

func newLineReader(e *Editor, prompt string) *lineReader {
	lines := append(e.history.Entries(), "")
	return &lineReader{
		e:         e,
		prompt:    prompt,
		multiline: e.multiline,
		buf:       []rune{},
		lines:     lines,
		index:     len(lines) - 1,
	}
}

func (lr *lineReader) run(ctx context.Context) (string, bool, error) {
	lr.e.renderer.reset()
	if err := lr.refresh(); err != nil {
		return "", false, err
	}

	var pending rune
	hasPending := false
	for {
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		default:
		}

		var r rune
		if hasPending {
			r, hasPending = pending, false
		} else {
			var err error
			r, err = lr.readRune()
			if err != nil {
				if errors.Is(err, io.EOF) {
					if len(lr.buf) == 0 {
						return "", false, nil
					}
					return lr.finish()
				}
				return "", false, fmt.Errorf("failed to read input: %w", err)
			}
		}

		var action KeyAction
		if r == '\x1b' {
			seq, err := lr.readEscapeSequence()
			if err != nil {
				continue
			}
			action = lr.e.keyMap.GetSequenceAction(seq)
		} else {
			action = lr.e.keyMap.GetAction(r)
		}

		switch action {
		case ActionSubmit:
			return lr.finish()

		case ActionCancel:
			fmt.Fprint(lr.e.output, "^C\r\n")
			return "", false, ErrInterrupted

		case ActionComplete:
			next, ok, err := lr.complete()
			if err != nil {
				return "", false, err
			}
			if ok {
				// The key that ended completion is handled as if typed now.
				pending, hasPending = next, true
				continue
			}

		case ActionDeleteOrEOF:
			if len(lr.buf) == 0 {
				return "", false, nil
			}
			lr.deleteForward()

		case ActionBackspace:
			if lr.cursor > 0 {
				start := prevGraphemeStart(lr.buf, lr.cursor)
				lr.buf = append(lr.buf[:start], lr.buf[lr.cursor:]...)
				lr.cursor = start
			}

		case ActionDeleteChar:
			lr.deleteForward()

		case ActionMoveLeft:
			lr.cursor = prevGraphemeStart(lr.buf, lr.cursor)

		case ActionMoveRight:
			lr.cursor = nextGraphemeEnd(lr.buf, lr.cursor)

		case ActionMoveHome:
			lr.cursor = 0

		case ActionMoveEnd:
			lr.cursor = len(lr.buf)

		case ActionMoveWordLeft:
			lr.cursor = lr.findWordBoundary(-1)

		case ActionMoveWordRight:
			lr.cursor = lr.findWordBoundary(1)

		case ActionHistoryPrev:
			lr.browseHistory(-1)

		case ActionHistoryNext:
			lr.browseHistory(1)

		case ActionDeleteToEnd:
			lr.buf = lr.buf[:lr.cursor]

		case ActionDeleteLine:
			lr.buf = lr.buf[:0]
			lr.cursor = 0

		case ActionDeleteWordBack:
			if lr.cursor > 0 {
				newPos := lr.findWordBoundary(-1)
				lr.buf = append(lr.buf[:newPos], lr.buf[lr.cursor:]...)
				lr.cursor = newPos
			}

		case ActionSwapChars:
			if lr.cursor > 0 && lr.cursor < len(lr.buf) {
				lr.buf[lr.cursor-1], lr.buf[lr.cursor] = lr.buf[lr.cursor], lr.buf[lr.cursor-1]
				if lr.cursor < len(lr.buf)-1 {
					lr.cursor++
				}
			}

		case ActionClearScreen:
			if err := lr.e.renderer.clearScreen(); err != nil {
				return "", false, fmt.Errorf("failed to clear screen: %w", err)
			}
			lr.e.renderer.reset()

		default:
			if r >= 32 && r != 127 {
				lr.insertRune(r)
			}
		}

		if err := lr.refresh(); err != nil {
			return "", false, err
		}
	}
}

// complete cycles through the completion candidates on repeated Tab.
//
// Each candidate is shown in place of the buffer; one Tab past the last
// candidate shows the original input again. Esc restores the original input.
// Any other key accepts the candidate on screen and is returned so the caller
// can process it.
func (lr *lineReader) complete() (rune, bool, error) {
	candidates, err := lr.e.Complete(string(lr.buf))
	if err != nil {
		return 0, false, err
	}
	if len(candidates) == 0 {
		lr.beep()
		return 0, false, nil
	}

	i := 0
	for {
		if i < len(candidates) {
			shown := []rune(candidates[i])
			if err := lr.draw(shown, len(shown), true); err != nil {
				return 0, false, err
			}
		} else if err := lr.refresh(); err != nil {
			return 0, false, err
		}

		r, err := lr.readRune()
		if err != nil {
			if i < len(candidates) {
				lr.setBuffer(candidates[i])
			}
			if errors.Is(err, io.EOF) {
				return 0, false, nil
			}
			return 0, false, fmt.Errorf("failed to read input: %w", err)
		}

		switch {
		case lr.e.keyMap.GetAction(r) == ActionComplete:
			i = (i + 1) % (len(candidates) + 1)
			if i == len(candidates) {
				lr.beep()
			}
		case r == '\x1b':
			return 0, false, nil
		default:
			if i < len(candidates) {
				lr.setBuffer(candidates[i])
			}
			return r, true, nil
		}
	}
}

// finish moves the cursor to the end, redraws without the hint so it does
// not stay on screen, and returns the line.
func (lr *lineReader) finish() (string, bool, error) {
	lr.cursor = len(lr.buf)
	if err := lr.draw(lr.buf, lr.cursor, false); err != nil {
		return "", false, err
	}
	fmt.Fprint(lr.e.output, "\r\n")
	return string(lr.buf), true, nil
}

// browseHistory moves dir steps through the history snapshot, keeping
// whatever was typed in the slot being left.
func (lr *lineReader) browseHistory(dir int) {
	next := lr.index + dir
	if next < 0 || next >= len(lr.lines) {
		return
	}
	lr.lines[lr.index] = string(lr.buf)
	lr.index = next
	lr.setBuffer(lr.lines[lr.index])
}

func (lr *lineReader) refresh() error {
	return lr.draw(lr.buf, lr.cursor, true)
}

func (lr *lineReader) draw(buf []rune, cursor int, withHint bool) error {
	w, _, _ := lr.e.terminal.Size()
	lr.e.renderer.setWidth(w)

	var hint *Hint
	if withHint {
		h, ok, err := lr.e.Hint(string(buf))
		if err != nil {
			return err
		}
		if ok {
			hint = &h
		}
	}
	if err := lr.e.renderer.refresh(lr.multiline, lr.prompt, buf, cursor, hint); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return nil
}

func (lr *lineReader) beep() {
	fmt.Fprint(lr.e.output, "\a")
}

func (lr *lineReader) insertRune(r rune) {
	lr.buf = append(lr.buf[:lr.cursor], append([]rune{r}, lr.buf[lr.cursor:]...)...)
	lr.cursor++
}

func (lr *lineReader) deleteForward() {
	if lr.cursor < len(lr.buf) {
		end := nextGraphemeEnd(lr.buf, lr.cursor)
		lr.buf = append(lr.buf[:lr.cursor], lr.buf[end:]...)
	}
}

func (lr *lineReader) setBuffer(text string) {
	lr.buf = []rune(text)
	lr.cursor = len(lr.buf)
}

// findWordBoundary finds the next word boundary in the given direction.
//
//	direction > 0 (Ctrl+Right): skip separators, then the word, and stop after it
//	direction < 0 (Ctrl+Left, Ctrl+W): skip separators backwards, then stop at
//	the start of the word before them
//
// Word characters are defined by isWordChar.
func (lr *lineReader) findWordBoundary(direction int) int {
	if direction > 0 {
		pos := lr.cursor
		for pos < len(lr.buf) && !isWordChar(lr.buf[pos]) {
			pos++
		}
		for pos < len(lr.buf) && isWordChar(lr.buf[pos]) {
			pos++
		}
		return pos
	}
	pos := lr.cursor
	if pos > 0 {
		pos--
	}
	for pos > 0 && !isWordChar(lr.buf[pos]) {
		pos--
	}
	for pos > 0 && isWordChar(lr.buf[pos-1]) {
		pos--
	}
	return pos
}

// isWordChar reports whether r is part of a word: ASCII letters, digits and underscore.
func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func (lr *lineReader) readRune() (rune, error) {
	r, _, err := lr.e.terminal.ReadRune()
	return r, err
}

func (lr *lineReader) readEscapeSequence() (string, error) {
	seq := make([]rune, 0, 10)
	for range 10 { // Limit to prevent infinite loop
		r, err := lr.readRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		s := string(seq)
		if len(seq) == 2 && (seq[0] == '[' || seq[0] == 'O') && (r < '0' || r > '9') {
			return s, nil
		}
		if strings.HasSuffix(s, "~") && len(s) >= 3 {
			return s, nil
		}
		if len(seq) >= 3 && (r < '0' || r > '9') && r != ';' {
			return s, nil
		}
	}
	return string(seq), nil
}
