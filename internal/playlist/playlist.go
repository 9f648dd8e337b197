// Package playlist parses the ASCII playlist file main.go is given:
// one source path or s3:// URI per line.
package playlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads path and returns its non-empty, non-comment lines in
// order. A line beginning with '#' is a comment.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("playlist: open %s: %w", path, err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("playlist: read %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("playlist: %s has no entries", path)
	}
	return entries, nil
}
