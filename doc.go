// Package linenoise reads lines from a terminal with in-place editing, a
// bounded history and pluggable completion and hints.
//
// Key Features:
//
//   - Emacs-style line editing in raw mode, single-line or multiline
//   - Bounded history with negative indexing, in-place replace and file persistence
//   - Tab completion from a host-supplied provider, cycling through candidates
//   - Inline hints drawn after the cursor in one of seven ANSI colors, optionally bold
//   - Text validated against the process locale's charset
//   - Plain line reading when stdin is not a terminal
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/linenoise"
//	)
//
//	func main() {
//		ed, err := linenoise.New()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer ed.Close()
//
//		line, ok, err := ed.ReadLine("> ")
//		if err != nil {
//			log.Fatal(err)
//		}
//		if ok {
//			fmt.Printf("You entered: %s\n", line)
//		}
//	}
//
// Completion and Hints:
//
// Providers are called synchronously from inside ReadLine. A completer
// returns either a Single candidate or Many; a hinter returns the text to
// show after the cursor.
//
//	ed, _ := linenoise.New(
//		linenoise.WithCompleter(linenoise.CompleterFunc(func(input string) linenoise.Completion {
//			if strings.HasPrefix("hello", input) {
//				return linenoise.Many("hello", "hello there")
//			}
//			return linenoise.Completion{}
//		})),
//		linenoise.WithHinter(linenoise.HinterFunc(func(input string) (string, bool) {
//			if input == "git" {
//				return " <command> [<args>]", true
//			}
//			return "", false
//		})),
//		linenoise.WithHintColor(linenoise.ColorMagenta),
//	)
//
// History:
//
// ReadLine never records lines on its own. Push what should be recalled and
// save or load the history when it suits the application:
//
//	h := ed.History()
//	_ = h.Load(linenoise.DefaultHistoryFile())
//	line, ok, _ := ed.ReadLine("> ")
//	if ok && line != "" {
//		_ = h.Push(line)
//	}
//	_ = h.Save(linenoise.DefaultHistoryFile())
//
// Error Handling:
//
//   - ErrInvalidArgument: bad capacity, unusable provider, hint color out of range
//   - ErrIndexOutOfRange: History.Get or History.Set outside the history
//   - ErrIO: history file could not be read or written (wraps the os error)
//   - ErrEncoding: text not valid under the editor's charset
//   - ErrTypeMismatch: SetHintColorValue given something other than an integer or nil
//   - ErrInterrupted: user pressed Ctrl+C
//
// End of input on an empty line is not an error: ReadLine returns ok=false.
//
// Thread Safety:
//
// An Editor and its History are not safe for concurrent use. Use them from
// the goroutine that reads input and mutate the history between ReadLine
// calls. A second ReadLine started while one is running fails with ErrBusy.
package linenoise
