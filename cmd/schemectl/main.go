// Command schemectl is the operator CLI for schemetrack.
package main

import (
	"os"

	"github.com/lohum/schemetrack/internal/interfaces/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
