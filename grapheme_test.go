package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrevGraphemeStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		buf    string
		cursor int
		want   int
	}{
		{name: "start of line", buf: "abc", cursor: 0, want: 0},
		{name: "ascii", buf: "abc", cursor: 2, want: 1},
		{name: "combining accent", buf: "ae\u0301", cursor: 3, want: 1},
		{name: "flag", buf: "x\U0001F1EF\U0001F1F5", cursor: 3, want: 1},
		{name: "wide rune", buf: "日本", cursor: 2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, prevGraphemeStart([]rune(tt.buf), tt.cursor))
		})
	}
}

func TestNextGraphemeEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		buf    string
		cursor int
		want   int
	}{
		{name: "end of line", buf: "abc", cursor: 3, want: 3},
		{name: "ascii", buf: "abc", cursor: 1, want: 2},
		{name: "combining accent", buf: "e\u0301x", cursor: 0, want: 2},
		{name: "flag", buf: "\U0001F1EF\U0001F1F5x", cursor: 0, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, nextGraphemeEnd([]rune(tt.buf), tt.cursor))
		})
	}
}
