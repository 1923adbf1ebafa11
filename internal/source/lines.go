// Package source acquires candidate sets for ranking: newline-separated
// input and walked directory trees.
package source

import (
	"bufio"
	"io"
	"strings"
)

// Lines reads newline-separated candidates from r, dropping blank lines.
func Lines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines, scanner.Err()
}
