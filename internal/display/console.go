package display

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ConsoleWidth returns the current terminal width in characters, or
// fallback when stdout is not a terminal or the size cannot be read.
// Colors are handled separately by fatih/color's own TTY detection.
func ConsoleWidth(fallback int) int {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fallback
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
