// Package main is the entry point for the devcost CLI.
package main

import (
	"os"

	"devcost/cmd/devcost/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
