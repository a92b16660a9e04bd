// Package main demonstrates Tab completion with inline hints.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/linenoise"
)

type command struct {
	name string
	args string
	help string
}

var commands = []command{
	{name: "help", help: "Show help information"},
	{name: "list", help: "List all items"},
	{name: "create", args: " <project|file|folder>", help: "Create a new item"},
	{name: "delete", args: " <item>", help: "Delete an existing item"},
	{name: "update", args: " <item>", help: "Update an existing item"},
	{name: "status", help: "Show current status"},
	{name: "exit", help: "Exit the program"},
}

var arguments = map[string][]string{
	"create": {"project", "file", "folder"},
	"delete": {"item1", "item2", "item3"},
	"update": {"item1", "item2", "item3"},
}

// complete offers command names for the first word and known arguments for
// the second. Candidates replace the whole line, so the command is repeated.
func complete(input string) linenoise.Completion {
	words := strings.Fields(input)
	if len(words) == 0 || (len(words) == 1 && !strings.HasSuffix(input, " ")) {
		prefix := strings.ToLower(strings.TrimSpace(input))
		var names []string
		for _, cmd := range commands {
			if strings.HasPrefix(cmd.name, prefix) {
				names = append(names, cmd.name)
			}
		}
		return linenoise.Many(names...)
	}

	args, found := arguments[words[0]]
	if !found {
		return linenoise.Completion{}
	}
	partial := ""
	if len(words) > 1 && !strings.HasSuffix(input, " ") {
		partial = words[len(words)-1]
	}
	var lines []string
	for _, arg := range args {
		if strings.HasPrefix(arg, partial) {
			lines = append(lines, words[0]+" "+arg)
		}
	}
	return linenoise.Many(lines...)
}

// hint shows the argument synopsis once a full command name is typed.
func hint(input string) (string, bool) {
	for _, cmd := range commands {
		if input == cmd.name && cmd.args != "" {
			return cmd.args, true
		}
	}
	return "", false
}

func main() {
	fmt.Println("Autocomplete Example")
	fmt.Println("====================")
	fmt.Println("Press Tab to cycle through candidates, Esc to go back")
	fmt.Println("Type 'help' to see available commands")
	fmt.Println("Type 'exit' to quit")
	fmt.Println()

	ed, err := linenoise.New(
		linenoise.WithCompleter(linenoise.CompleterFunc(complete)),
		linenoise.WithHinter(linenoise.HinterFunc(hint)),
		linenoise.WithHintColor(linenoise.ColorCyan),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer ed.Close()

	for {
		line, ok, err := ed.ReadLine("app> ")
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

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "help":
			fmt.Println("Available commands:")
			for _, cmd := range commands {
				fmt.Printf("  %-7s - %s\n", cmd.name, cmd.help)
			}
		case "status":
			fmt.Println("Status: Running")
		case "list":
			fmt.Println("Items: item1, item2, item3")
		default:
			fmt.Printf("Executed: %s\n", line)
		}
	}
}
