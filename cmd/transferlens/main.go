package main

import (
	"os"

	"github.com/transferlens/transferlens/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
