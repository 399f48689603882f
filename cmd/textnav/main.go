// Package main is the entry point for the textnav command.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := Execute(); err != nil {
		if errors.Is(err, ErrNoMatch) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}
