// Package main is the entry point for the presetctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/nodekit/presetctl/internal/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
