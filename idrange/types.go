package idrange

import "errors"

// ErrMalformedRange rejects tokens outside the "first-last" grammar,
// including reversed or single-ID spans and numbers beyond uint64.
var ErrMalformedRange = errors.New("idrange: malformed range token")

// Rule selects which digit pattern marks an ID as invalid.
type Rule uint8

const (
	// Halves flags IDs with an even digit count whose first half equals
	// the second half ("1212", "99"). Odd-length IDs never match.
	Halves Rule = iota
	// Repeats flags IDs whose digit string is one chunk repeated two or
	// more times ("121212", "999", "100100"). Strictly wider than Halves.
	Repeats
)

// String returns the rule name for logs and errors.
func (r Rule) String() string {
	if r == Repeats {
		return "repeats"
	}

	return "halves"
}

// Range is an inclusive span of candidate IDs. It is structurally
// valid only when First < Last; the ID enumerators return nothing for
// a malformed span, mirroring the parser's rejection of one.
type Range struct {
	First, Last uint64
}
