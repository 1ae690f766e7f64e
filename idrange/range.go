package idrange

import (
	"regexp"
	"strconv"
	"strings"
)

// rangeRx matches one range token: two decimal numbers joined by a
// hyphen, nothing else.
var rangeRx = regexp.MustCompile(`^([0-9]+)-([0-9]+)$`)

// Parse parses a token such as "11-22" into a Range.
// Returns ErrMalformedRange for any token outside the grammar, for
// numbers beyond uint64, and for spans without First < Last.
func Parse(token string) (Range, error) {
	m := rangeRx.FindStringSubmatch(token)
	if m == nil {
		return Range{}, ErrMalformedRange
	}
	first, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Range{}, ErrMalformedRange
	}
	last, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Range{}, ErrMalformedRange
	}
	if first >= last {
		return Range{}, ErrMalformedRange
	}

	return Range{First: first, Last: last}, nil
}

// ParseList splits text on sep and parses each token, trimming
// surrounding whitespace first. Blank tokens are ignored; malformed
// ones are skipped and counted, so one bad entry never poisons the
// batch. Returns the parsed ranges and the skip count.
// Complexity: O(len(text)).
func ParseList(text, sep string) ([]Range, int) {
	parts := strings.Split(text, sep)
	ranges := make([]Range, 0, len(parts))
	skipped := 0
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		r, err := Parse(token)
		if err != nil {
			skipped++
			continue
		}
		ranges = append(ranges, r)
	}

	return ranges, skipped
}

// Invalid reports whether id matches the pattern rule names. Chunk
// comparison is fixed-width on the decimal digit string, so leading
// zeros inside a chunk are significant ("100100" is a repeat of "100").
// Complexity: O(d²) worst case for Repeats, d = digit count ≤ 20.
func Invalid(id uint64, rule Rule) bool {
	s := strconv.FormatUint(id, 10)
	n := len(s)

	if rule == Halves {
		return n%2 == 0 && s[:n/2] == s[n/2:]
	}

	for size := 1; size <= n/2; size++ {
		if n%size != 0 {
			continue
		}
		if repeated(s, size) {
			return true
		}
	}

	return false
}

// repeated reports whether s is its leading size-digit chunk repeated.
func repeated(s string, size int) bool {
	head := s[:size]
	for i := size; i < len(s); i += size {
		if s[i:i+size] != head {
			return false
		}
	}

	return true
}

// IDs materializes the inclusive span. Returns nil for a malformed
// Range. Complexity: O(Last−First).
func (r Range) IDs() []uint64 {
	if r.First >= r.Last {
		return nil
	}

	ids := make([]uint64, 0, r.Last-r.First+1)
	for id := r.First; ; id++ {
		ids = append(ids, id)
		if id == r.Last {
			break
		}
	}

	return ids
}

// InvalidIDs returns every ID in the span that matches rule, in
// ascending order. Returns nil for a malformed Range.
// Complexity: O((Last−First)·d²).
func (r Range) InvalidIDs(rule Rule) []uint64 {
	if r.First >= r.Last {
		return nil
	}

	var ids []uint64
	for id := r.First; ; id++ {
		if Invalid(id, rule) {
			ids = append(ids, id)
		}
		if id == r.Last {
			break
		}
	}

	return ids
}

// SumInvalid streams the span and sums the IDs matching rule without
// materializing them. Returns 0 for a malformed Range.
// Complexity: O((Last−First)·d²), Memory: O(1).
func (r Range) SumInvalid(rule Rule) uint64 {
	if r.First >= r.Last {
		return 0
	}

	var sum uint64
	for id := r.First; ; id++ {
		if Invalid(id, rule) {
			sum += id
		}
		if id == r.Last {
			break
		}
	}

	return sum
}
