// Package main is the entry point for the lonascrape CLI.
package main

import (
	"os"

	"github.com/lonab-tools/lonascrape/cmd/lonascrape/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
