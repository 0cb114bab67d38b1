package main

import (
	"os"

	"github.com/pitchrank/ladder/cmd/ladder/commands"
)

// main is the entry point for the ladder CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
