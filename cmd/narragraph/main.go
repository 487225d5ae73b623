// Package main provides the narragraph binary: narrative text in, RDF
// knowledge graph out.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
