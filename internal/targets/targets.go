package targets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrFileNotFound = errors.New("urls file not found")
	ErrNoTargets    = errors.New("no urls supplied")
)

// Collect merges URLs read from path (if set) with args. File URLs come
// first, then args in the order given. Duplicates are kept.
func Collect(path string, args []string) ([]string, error) {
	var urls []string
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
		}
		defer f.Close()

		urls, err = Read(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	urls = append(urls, args...)
	if len(urls) == 0 {
		return nil, ErrNoTargets
	}
	return urls, nil
}

// Read returns the non-blank, non-comment lines of r, trimmed.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
