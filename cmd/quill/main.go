// Command quill edits one text file in the terminal.
package main

import "os"

// Build information injected via ldflags at build time.
var (
	commit = ""
	date   = ""
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
