package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrNoInput indicates a file that exists but holds no usable content.
var ErrNoInput = errors.New("input: no usable content")

// ReadFile returns the whole file as a string. Read failures are
// wrapped with the path; a file of pure whitespace fails with
// ErrNoInput so downstream parsers never see a phantom puzzle.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("input: read %s: %w", path, err)
	}
	text := string(raw)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", ErrNoInput, path)
	}

	return text, nil
}

// DayPath returns the conventional location of a day's puzzle input:
// <root>/day<N>/input.txt.
func DayPath(root string, day int) string {
	return filepath.Join(root, fmt.Sprintf("day%d", day), "input.txt")
}

// ReadDay reads the day's input.txt under root.
func ReadDay(root string, day int) (string, error) {
	return ReadFile(DayPath(root, day))
}

// Split cuts text on sep, trims surrounding whitespace from every
// token, and drops the empties. The trimming happens here so that a
// trailing newline never rides along on the final token.
func Split(text, sep string) []string {
	parts := strings.Split(text, sep)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		out = append(out, token)
	}

	return out
}

// Lines is Split on newlines. CRLF input loses its '\r' with the rest
// of the surrounding whitespace.
func Lines(text string) []string {
	return Split(text, "\n")
}

// Sanitize keeps only the lines matching re. Anchor the pattern
// (^...$) when a full-line match is required.
func Sanitize(lines []string, re *regexp.Regexp) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if re.MatchString(line) {
			out = append(out, line)
		}
	}

	return out
}

// Sum totals a slice of any integer kind.
func Sum[T constraints.Integer](xs []T) T {
	var sum T
	for _, x := range xs {
		sum += x
	}

	return sum
}
