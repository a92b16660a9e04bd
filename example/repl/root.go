package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nao1215/linenoise"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings is the REPL configuration after flags, environment and config
// file have been merged.
type settings struct {
	HistoryFile string `mapstructure:"history-file"`
	HistorySize int    `mapstructure:"history-size"`
	Multiline   bool   `mapstructure:"multiline"`
	HintColor   any    `mapstructure:"hint-color"`
	HintBold    bool   `mapstructure:"hint-bold"`
	Charset     string `mapstructure:"charset"`
}

var rootCmd = &cobra.Command{
	Use:          "repl",
	Short:        "Interactive shell demonstrating line editing, completion and hints",
	Version:      linenoise.Version,
	SilenceUsage: true,
	RunE:         runRepl,
}

func init() {
	addFlags(rootCmd)
}

func addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.String("history-file", linenoise.DefaultHistoryFile(), "file the history is loaded from and saved to")
	flags.Int("history-size", linenoise.DefaultHistoryCapacity, "maximum number of history entries")
	flags.Bool("multiline", true, "wrap long lines instead of scrolling")
	flags.String("hint-color", "cyan", "hint color: none, red, green, yellow, blue, magenta, cyan, white or 31-37")
	flags.Bool("hint-bold", false, "draw hints in bold")
	flags.String("charset", "", "charset for history and candidates (default: from the locale)")
}

// loadSettings merges the command's flags with LINENOISE_* environment
// variables and an optional config file.
func loadSettings(cmd *cobra.Command) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix("LINENOISE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return settings{}, fmt.Errorf("binding flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return s, nil
}

// newEditor builds an editor from s. A hint color given as text is parsed by
// name; numbers from a config file are passed through as they are.
func newEditor(s settings) (*linenoise.Editor, error) {
	options := []linenoise.Option{
		linenoise.WithMultiline(s.Multiline),
		linenoise.WithHistoryCapacity(s.HistorySize),
		linenoise.WithHintBold(s.HintBold),
	}
	if s.Charset != "" {
		cs, err := linenoise.NewCharset(s.Charset)
		if err != nil {
			return nil, err
		}
		options = append(options, linenoise.WithCharset(cs))
	}

	ed, err := linenoise.New(options...)
	if err != nil {
		return nil, err
	}

	switch color := s.HintColor.(type) {
	case string:
		var c linenoise.Color
		c, err = linenoise.ParseColor(color)
		if err == nil {
			err = ed.SetHintColor(c)
		}
	default:
		err = ed.SetHintColorValue(color)
	}
	if err != nil {
		return nil, errors.Join(err, ed.Close())
	}
	return ed, nil
}

func runRepl(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ed, err := newEditor(s)
	if err != nil {
		return err
	}
	defer ed.Close()

	return newSession(ed, s.HistoryFile, cmd.OutOrStdout()).run(cmd.Context())
}
