// Package main is the entry point for the ghn-baogia CLI.
package main

import (
	"os"

	"github.com/dung89nm/ghn-baogia/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
