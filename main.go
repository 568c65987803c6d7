package main

import (
	"os"

	"github.com/HimTar/golang-transactions/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
