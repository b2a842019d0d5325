// Package main is the entry point for the onamer CLI.
package main

import (
	"os"

	"github.com/f3rmion/onamer/cmd/onamer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
