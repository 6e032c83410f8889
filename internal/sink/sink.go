package sink

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"go.uber.org/multierr"
)

// Sink appends health lines to a log file and mirrors them to a console.
type Sink struct {
	file    *os.File
	console io.Writer
}

// Open opens path for appending, creating the file if needed. The parent
// directory must already exist.
func Open(path string, console io.Writer) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	if console == nil {
		console = io.Discard
	}
	return &Sink{file: f, console: console}, nil
}

// Emit writes line as-is to the file, then the right-trimmed line to the
// console. A file error is returned before anything reaches the console.
func (s *Sink) Emit(line string) error {
	if _, err := io.WriteString(s.file, line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	_, err := fmt.Fprintln(s.console, strings.TrimRightFunc(line, unicode.IsSpace))
	return err
}

func (s *Sink) Close() error {
	return multierr.Append(s.file.Sync(), s.file.Close())
}
