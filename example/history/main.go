// Package main demonstrates history management and persistence.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/nao1215/linenoise"
)

func main() {
	historyFile := linenoise.DefaultHistoryFile()

	fmt.Println("History Example with File Persistence")
	fmt.Println("Use Up/Down arrow keys to navigate history")
	fmt.Println("Type 'history' to see command history")
	fmt.Println("Type '!!' to repeat the last command")
	fmt.Println("Type 'clear' to clear history")
	fmt.Println("Type 'exit' or 'quit' to exit")
	fmt.Printf("History is saved to %s on exit\n", historyFile)
	fmt.Println()

	ed, err := linenoise.New(linenoise.WithHistoryCapacity(1000))
	if err != nil {
		log.Fatal(err)
	}
	defer ed.Close()

	history := ed.History()
	if err := history.Load(historyFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: %v", err)
	}
	defer func() {
		if err := history.Save(historyFile); err != nil {
			log.Printf("Warning: %v", err)
		}
	}()

	for {
		line, ok, err := ed.ReadLine("history> ")
		if err != nil {
			if errors.Is(err, linenoise.ErrInterrupted) {
				continue
			}
			log.Print(err)
			return
		}
		if !ok {
			fmt.Println("Goodbye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "history":
			fmt.Println("Command History:")
			i := 0
			for entry := range history.All() {
				i++
				fmt.Printf("  %3d: %s\n", i, entry)
			}
		case "clear":
			history.Clear()
			fmt.Println("History cleared")
		case "!!":
			last, err := history.Get(-1)
			if err != nil {
				fmt.Println("No previous command")
				continue
			}
			fmt.Printf("Executed: %s\n", last)
		default:
			if err := history.Push(line); err != nil {
				log.Printf("Warning: %v", err)
			}
			fmt.Printf("Executed: %s\n", line)
		}
	}
}
