// Package main demonstrates switching between single-line and multiline editing.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/linenoise"
)

func main() {
	fmt.Println("Multiline Editing Example")
	fmt.Println("Long lines wrap across rows in multiline mode and scroll")
	fmt.Println("horizontally in single-line mode.")
	fmt.Println("  :single   - switch to single-line mode")
	fmt.Println("  :multi    - switch to multiline mode")
	fmt.Println("  :clear    - clear the screen (or press Ctrl+L)")
	fmt.Println("Type 'exit' to quit")
	fmt.Println()

	ed, err := linenoise.New(linenoise.WithMultiline(true))
	if err != nil {
		log.Fatal(err)
	}
	defer ed.Close()

	for {
		mode := "single"
		if ed.Multiline() {
			mode = "multi"
		}

		line, ok, err := ed.ReadLine(mode + "> ")
		if err != nil {
			if errors.Is(err, linenoise.ErrInterrupted) {
				continue
			}
			log.Fatal(err)
		}
		if !ok || strings.TrimSpace(line) == "exit" {
			fmt.Println("Goodbye!")
			return
		}

		switch strings.TrimSpace(line) {
		case ":single":
			ed.SetMultiline(false)
		case ":multi":
			ed.SetMultiline(true)
		case ":clear":
			if err := ed.ClearScreen(); err != nil {
				log.Print(err)
			}
		default:
			fmt.Printf("Total characters: %d\n", len([]rune(line)))
		}
	}
}
