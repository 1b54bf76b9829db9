// Command formmask checks values against numeric ranges and IPv4 syntax, and
// hosts numeric and address widgets in a terminal.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
