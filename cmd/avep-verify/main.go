// Package main provides the entry point for the avep-verify CLI.
package main

import (
	"os"

	"github.com/avep-labs/avep/cmd/avep-verify/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
