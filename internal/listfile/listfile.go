// Package listfile reads and writes plain-text name lists, one name
// per line.
package listfile

import (
	"fmt"
	"os"
	"strings"
)

// WriteError reports an output file that could not be created or
// written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write writes names to path, one per line, every line terminated
// with \n regardless of platform. An existing file is overwritten.
// The input slice is never modified, so the caller can retry or
// re-display it after a failure.
func Write(path string, names []string) error {
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Read loads a list written by Write: lines split on \n, a trailing
// \r stripped so files written on Windows load the same, and the
// final empty line after the terminator dropped. Interior blank lines
// are preserved.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text := string(data)
	if text == "" {
		return nil, nil
	}
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}
