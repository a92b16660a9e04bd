package linenoise

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Color is the ANSI foreground color used to draw hints.
// The zero value ColorNone draws hints with the terminal's default color.
type Color int

// Hint colors. The values are the ANSI SGR foreground codes.
const (
	ColorNone    Color = 0
	ColorRed     Color = 31
	ColorGreen   Color = 32
	ColorYellow  Color = 33
	ColorBlue    Color = 34
	ColorMagenta Color = 35
	ColorCyan    Color = 36
	ColorWhite   Color = 37
)

var colorNames = map[Color]string{
	ColorNone:    "none",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// Valid reports whether c is ColorNone or one of the seven named colors
func (c Color) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

// String returns the lower-case color name
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

// ParseColor parses a color name ("red", "none", ...) or its SGR code ("31").
// An empty string is ColorNone.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ColorNone, nil
	}
	for c, name := range colorNames {
		if name == s {
			return c, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ColorNone, fmt.Errorf("%w: unknown color %q", ErrInvalidArgument, s)
	}
	return checkColor(Color(n))
}

func checkColor(c Color) (Color, error) {
	if !c.Valid() {
		return ColorNone, fmt.Errorf("%w: hint color must be none or 31..37, got %d", ErrInvalidArgument, int(c))
	}
	return c, nil
}

// colorFromValue converts a loosely typed setting into a Color.
// nil is ColorNone and integers are SGR codes; anything else is a type mismatch.
func colorFromValue(v any) (Color, error) {
	switch x := v.(type) {
	case nil:
		return ColorNone, nil
	case Color:
		return checkColor(x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return checkColor(Color(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(ColorWhite) {
			return ColorNone, fmt.Errorf("%w: hint color must be none or 31..37, got %d", ErrInvalidArgument, u)
		}
		return checkColor(Color(u))
	}
	return ColorNone, fmt.Errorf("%w: hint color must be an integer or nil, got %T", ErrTypeMismatch, v)
}

// hintSGR returns the escape sequence that starts a hint.
// Bold without a color falls back to white so the weight is visible.
func hintSGR(c Color, bold bool) string {
	if c == ColorNone && !bold {
		return ""
	}
	if c == ColorNone {
		c = ColorWhite
	}
	weight := 0
	if bold {
		weight = 1
	}
	return fmt.Sprintf("\x1b[%d;%d;49m", weight, int(c))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
