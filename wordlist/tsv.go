package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TSVReader streams word pairs from tab-separated lines.
// Blank lines and lines starting with '#' are skipped.
type TSVReader struct {
	scanner *bufio.Scanner
	line    int
}

func NewTSVReader(reader io.Reader) *TSVReader {
	return &TSVReader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next pair as (source, target).
// It returns io.EOF when exhausted.
func (r *TSVReader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		source, target, found := strings.Cut(line, "\t")
		source, target = strings.TrimSpace(source), strings.TrimSpace(target)
		if !found || source == "" || target == "" || strings.Contains(target, "\t") {
			return "", "", fmt.Errorf("line %d: expected source<TAB>target, have %q", r.line, line)
		}
		return source, target, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", fmt.Errorf("line %d: %w", r.line, err)
	}
	return "", "", io.EOF
}
