// Package main provides the keepsake CLI. One invocation performs one
// ledger operation: load the persisted state, run the operation as the
// configured caller identity, and commit the new state on success.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
