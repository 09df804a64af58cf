package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PromptContinue asks a yes/no question on the terminal. Without a
// terminal it answers yes.
func PromptContinue(message string) bool {
	if !IsInteractive() {
		return true
	}
	return Confirm(os.Stdin, os.Stdout, message)
}

// Confirm writes message to out and reads one answer line from in. An
// empty answer, "y" and "yes" mean yes.
func Confirm(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [Y/n]: ", message)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return err == io.EOF
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true
	}
	return false
}
