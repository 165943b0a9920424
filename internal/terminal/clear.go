// Package terminal provides utilities for terminal operations such as clearing
// prompts and reading secrets without echo.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines clears text from the terminal that was previously printed.
// It calculates how many lines were used by the provided text based on the current
// terminal width, then moves up and clears each line.
//
// This is useful for cleaning up user input prompts after they've been entered.
// textLength is the total number of characters of prompt plus user input.
func ClearPreviousLines(textLength int) {
	fmt.Print(clearSequence(textLength, Width()))
}

// Width returns the terminal width of stdout, or 80 when it is not a terminal.
func Width() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// clearSequence builds the ANSI sequence that erases textLength characters
// wrapped at termWidth, plus the empty line left by the Enter key.
func clearSequence(textLength, termWidth int) string {
	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1 // At minimum, we have 1 line
	}

	// After Enter, cursor is on a NEW line below the input.
	linesToClear := totalLines + 1

	var out string
	for i := 0; i < linesToClear; i++ {
		out += "\r\x1b[2K" // Move to start and clear entire line
		if i < linesToClear-1 {
			out += "\x1b[1A" // Move up one line (don't move up on last iteration)
		}
	}
	return out
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
