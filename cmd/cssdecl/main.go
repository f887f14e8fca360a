// Package main provides the cssdecl CLI tool for formatting CSS declaration
// blocks and linting inline style attributes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
