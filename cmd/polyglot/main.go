// Command polyglot edits a pair of translation files (source and target
// language) from the terminal, with optional DeepL auto-translation, and
// can expose the same editing session over a localhost HTTP API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
