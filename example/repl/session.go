package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/linenoise"
)

type builtin struct {
	args string
	help string
}

var builtins = map[string]builtin{
	"cd":        {args: " <dir>", help: "change directory"},
	"ls":        {args: " [dir]", help: "list directory contents"},
	"pwd":       {help: "print working directory"},
	"history":   {args: " [n]", help: "show the last n history entries"},
	"multiline": {args: " on|off", help: "switch line wrapping"},
	"clear":     {help: "clear the screen"},
	"help":      {help: "show this help"},
	"exit":      {help: "save history and quit"},
}

// session runs the read-eval loop for one editor.
type session struct {
	ed          *linenoise.Editor
	historyFile string
	out         io.Writer
	names       linenoise.Completer
	files       linenoise.Completer
}

func newSession(ed *linenoise.Editor, historyFile string, out io.Writer) *session {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	s := &session{
		ed:          ed,
		historyFile: historyFile,
		out:         out,
		names:       linenoise.NewFuzzyCompleter(names),
		files:       linenoise.NewFileCompleter(),
	}
	ed.SetCompleter(linenoise.CompleterFunc(s.complete))
	ed.SetHinter(linenoise.HinterFunc(s.hint))
	return s
}

// complete offers command names for the first word and paths after cd and ls.
func (s *session) complete(input string) linenoise.Completion {
	cmd, _, hasArgs := strings.Cut(input, " ")
	if !hasArgs {
		return s.names.Complete(input)
	}
	if cmd == "cd" || cmd == "ls" {
		return s.files.Complete(input)
	}
	return linenoise.Completion{}
}

func (s *session) hint(input string) (string, bool) {
	b, ok := builtins[input]
	if !ok || b.args == "" {
		return "", false
	}
	return b.args, true
}

func (s *session) run(ctx context.Context) error {
	history := s.ed.History()
	if err := history.Load(s.historyFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	for {
		line, ok, err := s.ed.ReadLineContext(ctx, "repl> ")
		if errors.Is(err, linenoise.ErrInterrupted) {
			continue
		}
		if err != nil {
			return err
		}
		if !ok {
			return s.save()
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := history.Push(line); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		if line == "exit" {
			return s.save()
		}
		s.execute(line)
	}
}

func (s *session) save() error {
	if err := os.MkdirAll(filepath.Dir(s.historyFile), 0o750); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	return s.ed.History().Save(s.historyFile)
}

func (s *session) execute(line string) {
	words := strings.Fields(line)
	cmd, args := words[0], words[1:]

	switch cmd {
	case "help":
		for name, b := range builtins {
			fmt.Fprintf(s.out, "  %-10s %s\n", name+b.args, b.help)
		}
	case "pwd":
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(s.out, cwd)
	case "cd":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "Error: cd requires a directory argument")
			return
		}
		if err := os.Chdir(args[0]); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	case "ls":
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				name += "/"
			}
			fmt.Fprintf(s.out, "  %s\n", name)
		}
	case "history":
		s.printHistory(args)
	case "multiline":
		s.ed.SetMultiline(len(args) == 0 || args[0] != "off")
	case "clear":
		if err := s.ed.ClearScreen(); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	default:
		fmt.Fprintf(s.out, "unknown command: %s\n", cmd)
	}
}

// printHistory prints the last n entries, oldest first, using negative
// indexes from the newest entry.
func (s *session) printHistory(args []string) {
	history := s.ed.History()
	n := history.Len()
	if len(args) > 0 {
		if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n <= 0 {
			fmt.Fprintf(s.out, "Error: invalid count %q\n", args[0])
			return
		}
	}
	n = min(n, history.Len())
	for i := -n; i < 0; i++ {
		entry, err := history.Get(i)
		if err != nil {
			return
		}
		fmt.Fprintf(s.out, "%5d  %s\n", history.Len()+i+1, entry)
	}
}
