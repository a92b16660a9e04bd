package linenoise

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderer redraws the prompt, the edit buffer and the hint.
//
// In single-line mode the buffer scrolls horizontally so the cursor stays
// visible. In multiline mode it wraps across rows; the renderer remembers how
// many rows it used and where it left the cursor so the next refresh can
// clear them.
type renderer struct {
	output    io.Writer
	cols      int // terminal width, refreshed before every draw
	maxRows   int // most rows used by the current line so far
	cursorRow int // 1-based row the cursor was left on
}

func newRenderer(output io.Writer) *renderer {
	return &renderer{output: output, cols: 80}
}

// reset forgets the geometry of the previous line. Called at the start of
// every ReadLine.
func (r *renderer) reset() {
	r.maxRows = 0
	r.cursorRow = 0
}

// setWidth updates the terminal width; non-positive values are ignored.
func (r *renderer) setWidth(cols int) {
	if cols > 0 {
		r.cols = cols
	}
}

func (r *renderer) refresh(multiline bool, prompt string, buf []rune, cursor int, hint *Hint) error {
	if multiline {
		return r.refreshMultiLine(prompt, buf, cursor, hint)
	}
	return r.refreshSingleLine(prompt, buf, cursor, hint)
}

func (r *renderer) refreshSingleLine(prompt string, buf []rune, cursor int, hint *Hint) error {
	plen := runewidth.StringWidth(prompt)
	visible := buf
	pos := cursor

	// Drop runes on the left until the cursor fits, then on the right until
	// the whole window fits.
	for pos > 0 && plen+runewidth.StringWidth(string(visible[:pos])) >= r.cols {
		visible = visible[1:]
		pos--
	}
	for len(visible) > pos && plen+runewidth.StringWidth(string(visible)) > r.cols {
		visible = visible[:len(visible)-1]
	}

	var sb strings.Builder
	sb.WriteString("\r")
	sb.WriteString(prompt)
	sb.WriteString(string(visible))
	r.writeHint(&sb, plen+runewidth.StringWidth(string(visible)), hint)
	sb.WriteString("\x1b[0K")
	sb.WriteString("\r")
	if col := plen + runewidth.StringWidth(string(visible[:pos])); col > 0 {
		fmt.Fprintf(&sb, "\x1b[%dC", col)
	}
	_, err := io.WriteString(r.output, sb.String())
	return err
}

func (r *renderer) refreshMultiLine(prompt string, buf []rune, cursor int, hint *Hint) error {
	plen := runewidth.StringWidth(prompt)
	width := runewidth.StringWidth(string(buf))
	rows := max((plen+width+r.cols-1)/r.cols, 1)
	oldRows := r.maxRows
	if rows > r.maxRows {
		r.maxRows = rows
	}

	var sb strings.Builder

	// Go to the last row used so far, then clear every row going up.
	if down := oldRows - r.cursorRow; down > 0 {
		fmt.Fprintf(&sb, "\x1b[%dB", down)
	}
	for range oldRows - 1 {
		sb.WriteString("\r\x1b[0K\x1b[1A")
	}
	sb.WriteString("\r\x1b[0K")

	sb.WriteString(prompt)
	sb.WriteString(string(buf))
	r.writeHint(&sb, plen+width, hint)

	// With the cursor at the very end of a full row the terminal has not
	// wrapped yet; open the next row ourselves.
	if cursor > 0 && cursor == len(buf) && (plen+width)%r.cols == 0 {
		sb.WriteString("\n\r")
		rows++
		if rows > r.maxRows {
			r.maxRows = rows
		}
	}

	before := plen + runewidth.StringWidth(string(buf[:cursor]))
	cursorRow := (before + r.cols) / r.cols
	if up := rows - cursorRow; up > 0 {
		fmt.Fprintf(&sb, "\x1b[%dA", up)
	}
	if col := before % r.cols; col > 0 {
		fmt.Fprintf(&sb, "\r\x1b[%dC", col)
	} else {
		sb.WriteString("\r")
	}
	r.cursorRow = cursorRow

	_, err := io.WriteString(r.output, sb.String())
	return err
}

// writeHint appends the hint after a line that already occupies used
// columns, truncated to what is left of the row.
func (r *renderer) writeHint(sb *strings.Builder, used int, hint *Hint) {
	if hint == nil || hint.Text == "" || used >= r.cols {
		return
	}
	text := runewidth.Truncate(hint.Text, r.cols-used, "")
	sgr := hintSGR(hint.Color, hint.Bold)
	sb.WriteString(sgr)
	sb.WriteString(text)
	if sgr != "" {
		sb.WriteString(Reset())
	}
}

// clearScreen homes the cursor and clears the whole screen
func (r *renderer) clearScreen() error {
	_, err := io.WriteString(r.output, "\x1b[H\x1b[2J")
	return err
}
