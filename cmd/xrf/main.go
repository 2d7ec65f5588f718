// Package main is the entry point for the xrf CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/crossref/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
