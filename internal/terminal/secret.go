package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadSecret prints prompt and reads a line without echoing it when stdin is a
// terminal. Piped input is read as a plain line.
func ReadSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	if IsInteractive() {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	return readLine(os.Stdin)
}

// Confirm asks a yes/no question on an interactive terminal; "y" and "yes" confirm.
func Confirm(prompt string) bool {
	fmt.Print(prompt + " [y/N]: ")
	ans, err := readLine(os.Stdin)
	if err != nil {
		return false
	}
	ClearPreviousLines(len(prompt) + 7 + len(ans))
	ans = strings.ToLower(ans)
	return ans == "y" || ans == "yes"
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
