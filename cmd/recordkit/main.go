// Package main provides the CLI entrypoint for recordkit.
//
// recordkit is a runtime method synthesis engine for record types:
//   - Declares records by ordered field list (YAML schema or Go structs)
//   - Synthesizes constructor, repr, equality, iteration and hash methods
//     from generic templates cached per (method kind, field count)
//   - Enforces immutability for frozen records
package main

import (
	"fmt"
	"os"

	"recordkit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "recordkit:", err)
		os.Exit(1)
	}
}
