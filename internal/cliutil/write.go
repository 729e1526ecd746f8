// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ReadText reads all of r and drops a single trailing line ending, so that
// `echo text | textcase title -` converts "text" and not "text\n".
func ReadText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("cliutil: reading input: %w", err)
	}
	text := string(data)
	if s, ok := strings.CutSuffix(text, "\n"); ok {
		text = strings.TrimSuffix(s, "\r")
	}
	return text, nil
}
