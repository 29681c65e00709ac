// Package prompt reads the single line of console input each program takes.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Label formats a prompt with its accepted choices, e.g.
// "Enter platform (windows/mac)".
func Label(text string, choices []string) string {
	if len(choices) == 0 {
		return text
	}
	return fmt.Sprintf("%s (%s)", text, strings.Join(choices, "/"))
}

// ReadLine writes "label: " to out and reads one line from in.
// The line terminator is stripped; no other trimming is done.
// Input that ends without a newline is returned as is, so an empty
// stream yields "".
func ReadLine(in io.Reader, out io.Writer, label string) (string, error) {
	if _, err := fmt.Fprintf(out, "%s: ", label); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
