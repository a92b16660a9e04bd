package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/linenoise"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "repl-test"}
	addFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := loadSettings(newTestCmd(t))
	require.NoError(t, err)

	assert.Equal(t, linenoise.DefaultHistoryFile(), s.HistoryFile)
	assert.Equal(t, linenoise.DefaultHistoryCapacity, s.HistorySize)
	assert.True(t, s.Multiline)
	assert.Equal(t, "cyan", s.HintColor)
	assert.False(t, s.HintBold)
}

func TestLoadSettingsPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "repl.yaml")
	config := "history-size: 50\nhint-color: 33\nhint-bold: true\nmultiline: false\n"
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o600))

	t.Setenv("LINENOISE_HISTORY_SIZE", "75")

	s, err := loadSettings(newTestCmd(t, "--config", configPath, "--history-size", "20"))
	require.NoError(t, err)

	assert.Equal(t, 20, s.HistorySize, "flags win over environment and file")
	assert.Equal(t, 33, s.HintColor)
	assert.True(t, s.HintBold)
	assert.False(t, s.Multiline)
}

func TestLoadSettingsEnvironment(t *testing.T) {
	t.Setenv("LINENOISE_HINT_COLOR", "magenta")
	t.Setenv("LINENOISE_MULTILINE", "false")

	s, err := loadSettings(newTestCmd(t))
	require.NoError(t, err)
	assert.Equal(t, "magenta", s.HintColor)
	assert.False(t, s.Multiline)
}

func TestLoadSettingsMissingConfig(t *testing.T) {
	_, err := loadSettings(newTestCmd(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestRootCommandVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, linenoise.Version, rootCmd.Version)
}

func TestNewEditor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		hintColor any
		want      linenoise.Color
		wantErr   error
	}{
		{name: "color name", hintColor: "red", want: linenoise.ColorRed},
		{name: "code as text", hintColor: "34", want: linenoise.ColorBlue},
		{name: "code from config file", hintColor: 36, want: linenoise.ColorCyan},
		{name: "no color", hintColor: nil, want: linenoise.ColorNone},
		{name: "unknown name", hintColor: "purple", wantErr: linenoise.ErrInvalidArgument},
		{name: "code out of range", hintColor: 40, wantErr: linenoise.ErrInvalidArgument},
		{name: "wrong type", hintColor: 1.5, wantErr: linenoise.ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ed, err := newEditor(settings{HistorySize: 10, HintColor: tt.hintColor, Charset: "UTF-8"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer ed.Close()
			assert.Equal(t, tt.want, ed.HintColor())
			assert.Equal(t, 10, ed.History().Cap())
		})
	}
}

func TestSessionCompletionAndHints(t *testing.T) {
	t.Parallel()

	ed, err := newEditor(settings{HistorySize: 10, Charset: "UTF-8"})
	require.NoError(t, err)
	defer ed.Close()

	s := newSession(ed, filepath.Join(t.TempDir(), "history"), &strings.Builder{})

	got, err := ed.Complete("pw")
	require.NoError(t, err)
	assert.Equal(t, []string{"pwd"}, got)

	got, err = ed.Complete("pwd x")
	require.NoError(t, err)
	assert.Empty(t, got)

	hint, ok, err := ed.Hint("cd")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, " <dir>", hint.Text)

	_, ok = s.hint("pwd")
	assert.False(t, ok)
}

func TestSessionHistory(t *testing.T) {
	t.Parallel()

	ed, err := newEditor(settings{HistorySize: 10, Charset: "UTF-8"})
	require.NoError(t, err)
	defer ed.Close()

	historyFile := filepath.Join(t.TempDir(), "nested", "history")
	out := &strings.Builder{}
	s := newSession(ed, historyFile, out)

	require.NoError(t, ed.History().PushAll("ls", "pwd", "help"))
	s.execute("history 2")
	assert.Equal(t, "    2  pwd\n    3  help\n", out.String())

	require.NoError(t, s.save())
	loaded := linenoise.NewHistory(10)
	require.NoError(t, loaded.Load(historyFile))
	assert.Equal(t, []string{"ls", "pwd", "help"}, loaded.Entries())
}
