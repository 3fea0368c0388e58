// Package storage persists batch lists: plain UTF-8 text, one content item
// per line, read and written verbatim.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/qrforge/qrforge/internal/domain/common/errorz"
)

// LoadList reads every line of the file at path, verbatim.
func LoadList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.Resource, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.Resource, err)
	}
	return lines, nil
}

// SaveList writes items to path, one per line.
func SaveList(path string, items []string) error {
	data := strings.Join(items, "\n")
	if len(items) > 0 {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("%w: %v", errorz.Resource, err)
	}
	return nil
}
