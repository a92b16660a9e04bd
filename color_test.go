package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{input: "", want: ColorNone},
		{input: "none", want: ColorNone},
		{input: "red", want: ColorRed},
		{input: " Magenta ", want: ColorMagenta},
		{input: "WHITE", want: ColorWhite},
		{input: "32", want: ColorGreen},
		{input: "0", want: ColorNone},
		{input: "30", wantErr: true},
		{input: "38", wantErr: true},
		{input: "purple", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", ColorNone.String())
	assert.Equal(t, "cyan", ColorCyan.String())
	assert.Equal(t, "Color(99)", Color(99).String())
	assert.True(t, ColorBlue.Valid())
	assert.False(t, Color(1).Valid())
}

func TestHintSGR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color Color
		bold  bool
		want  string
	}{
		{name: "plain", color: ColorNone, bold: false, want: ""},
		{name: "red", color: ColorRed, bold: false, want: "\x1b[0;31;49m"},
		{name: "bold red", color: ColorRed, bold: true, want: "\x1b[1;31;49m"},
		{name: "bold without color", color: ColorNone, bold: true, want: "\x1b[1;37;49m"},
		{name: "cyan", color: ColorCyan, bold: false, want: "\x1b[0;36;49m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, hintSGR(tt.color, tt.bold))
		})
	}
}
