package linenoise

import "github.com/rivo/uniseg"

// prevGraphemeStart returns the rune index at which the grapheme cluster
// ending at cursor begins, so that Backspace and Left treat "é" written as
// e + U+0301, or a flag emoji, as one character.
func prevGraphemeStart(buf []rune, cursor int) int {
	if cursor <= 0 {
		return 0
	}
	start := 0
	g := uniseg.NewGraphemes(string(buf[:cursor]))
	for g.Next() {
		n := len(g.Runes())
		if start+n >= cursor {
			return start
		}
		start += n
	}
	return cursor - 1
}

// nextGraphemeEnd returns the rune index just past the grapheme cluster that
// starts at cursor.
func nextGraphemeEnd(buf []rune, cursor int) int {
	if cursor >= len(buf) {
		return len(buf)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(buf[cursor:]), -1)
	n := len([]rune(cluster))
	if n == 0 {
		n = 1
	}
	return cursor + n
}
