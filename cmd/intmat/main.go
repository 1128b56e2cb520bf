// SPDX-License-Identifier: MIT

// Command intmat is the command-line front end of the intmat matrix library.
package main

import (
	"os"

	"github.com/katalvlaran/intmat/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
