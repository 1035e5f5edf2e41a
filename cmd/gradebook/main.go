// Package main provides the CLI entrypoint for the gradebook tool.
package main

import (
	"os"

	"github.com/gradebook-labs/gradebook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
