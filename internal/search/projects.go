package search

import (
	"fmt"
	"os"
	"strings"
)

// ReadProjectList returns the project root folders listed in path, one
// per non-empty line. Blank lines and lines starting with '#' are
// ignored; surrounding whitespace is trimmed.
func ReadProjectList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project list: %w", err)
	}

	var roots []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		roots = append(roots, line)
	}
	return roots, nil
}
