// Command gpa manages a subject ledger from the terminal and prints the
// weighted GPA with its status band.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
