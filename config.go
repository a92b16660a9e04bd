package linenoise

import "io"

// Config holds the initial configuration of an Editor.
type Config struct {
	Multiline       bool      // Wrap long input across rows instead of scrolling (default: true)
	Completer       Completer // Completion provider (nil disables completion)
	Hinter          Hinter    // Hint provider (nil disables hints)
	HintColor       Color     // Hint foreground color (default: ColorNone)
	HintBold        bool      // Draw hints in bold
	HistoryCapacity int       // Maximum history entries (default: 100)
	KeyMap          *KeyMap   // Key bindings (nil for default)
	Charset         *Charset  // Text encoding (nil for the process locale)
	Output          io.Writer // Where the line is drawn (nil for stdout)
	WarningOutput   io.Writer // Where non-fatal warnings go (nil for stderr)
}

// DefaultConfig returns the configuration used by New before options apply
func DefaultConfig() Config {
	return Config{
		Multiline:       true,
		HistoryCapacity: DefaultHistoryCapacity,
	}
}

// Option represents a configuration option for an Editor
type Option func(*Config)

// WithMultiline enables or disables multiline mode
func WithMultiline(multiline bool) Option {
	return func(c *Config) {
		c.Multiline = multiline
	}
}

// WithCompleter sets the completion provider
func WithCompleter(completer Completer) Option {
	return func(c *Config) {
		c.Completer = completer
	}
}

// WithHinter sets the hint provider
func WithHinter(hinter Hinter) Option {
	return func(c *Config) {
		c.Hinter = hinter
	}
}

// WithHintColor sets the hint color. New fails with ErrInvalidArgument for
// values other than ColorNone and ColorRed..ColorWhite.
func WithHintColor(color Color) Option {
	return func(c *Config) {
		c.HintColor = color
	}
}

// WithHintBold draws hints in bold
func WithHintBold(bold bool) Option {
	return func(c *Config) {
		c.HintBold = bold
	}
}

// WithHistoryCapacity sets how many history entries are kept.
// New fails with ErrInvalidArgument if capacity is not positive.
func WithHistoryCapacity(capacity int) Option {
	return func(c *Config) {
		c.HistoryCapacity = capacity
	}
}

// WithKeyMap sets the key bindings
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithCharset overrides the charset derived from the process locale
func WithCharset(charset *Charset) Option {
	return func(c *Config) {
		c.Charset = charset
	}
}

// WithOutput sets the writer the line is drawn on
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithWarningOutput sets the writer for non-fatal warnings
func WithWarningOutput(w io.Writer) Option {
	return func(c *Config) {
		c.WarningOutput = w
	}
}
