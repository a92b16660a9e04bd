// Package main is a small configurable REPL built on the linenoise library.
//
// Settings come from flags, LINENOISE_* environment variables or a YAML/TOML
// config file, in that order of precedence.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
