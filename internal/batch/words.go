package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadBatchFile reads words from a file, one word or phrase per line.
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer file.Close()

	words, err := ReadWords(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return words, nil
}

// ReadWords reads a word list from r
func ReadWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}

	return words, scanner.Err()
}
