// Package main demonstrates basic usage of the linenoise library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/linenoise"
)

func main() {
	ed, err := linenoise.New()
	if err != nil {
		log.Fatal(err)
	}
	defer ed.Close()

	fmt.Println("Basic Line Editing Example")
	fmt.Println("Type 'exit' or 'quit' to exit")
	fmt.Println("Press Ctrl+D on an empty line to exit")
	fmt.Println()

	for {
		line, ok, err := ed.ReadLine(">>> ")
		if err != nil {
			if errors.Is(err, linenoise.ErrInterrupted) {
				continue
			}
			log.Fatal(err)
		}
		if !ok {
			fmt.Println("Goodbye!")
			return
		}

		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			return
		}
		fmt.Printf("You typed: %s\n", line)
	}
}
