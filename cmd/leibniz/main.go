// Command leibniz is the CLI entry point for the computer algebra system.
package main

import (
	"os"

	"github.com/cwbudde/leibniz/cmd/leibniz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
