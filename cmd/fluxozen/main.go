package main

import (
	"os"

	"github.com/fluxozen/fluxozen/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
