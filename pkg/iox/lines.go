package iox

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadLines reads non-empty lines from a [io.Reader].
// Surrounding whitespace is trimmed and lines starting with # are skipped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}

	return lines, nil
}
