// Package main provides the entry point for the gitchart CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/flashcode/gitchart/cmd/gitchart/commands"
	"github.com/flashcode/gitchart/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	rootCmd := commands.NewRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
