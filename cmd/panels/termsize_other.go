//go:build !unix

package main

import (
	"os"

	"golang.org/x/term"
)

// terminalSize returns the size of the terminal on stdout in cells.
func terminalSize() (width, height int, ok bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}
