package dial

import "errors"

// Sentinel errors for dial construction and token parsing.
var (
	// ErrMalformedRotation indicates a token outside the <letter><digits> grammar.
	ErrMalformedRotation = errors.New("dial: malformed rotation token")

	// ErrNonPositiveModulus indicates Options.Modulus < 1.
	ErrNonPositiveModulus = errors.New("dial: modulus must be positive")

	// ErrStartOutOfRange indicates Options.Start outside [0, Modulus).
	ErrStartOutOfRange = errors.New("dial: start position outside the track")
)

// Direction selects which way a rotation turns the dial.
type Direction uint8

const (
	// Counterclockwise turns the dial toward lower numbers ('L' tokens).
	Counterclockwise Direction = iota
	// Clockwise turns the dial toward higher numbers ('R' tokens).
	Clockwise
)

// String returns the token letter for d: "L" or "R".
func (d Direction) String() string {
	if d == Clockwise {
		return "R"
	}
	return "L"
}

// Rotation is one parsed instruction: a direction plus a step count.
// Magnitude is never negative for a Rotation produced by ParseRotation.
type Rotation struct {
	Dir       Direction
	Magnitude int
}

// Track geometry of the safe-dial puzzle.
const (
	// DefaultModulus is the number of positions on the track (0..99).
	DefaultModulus = 100
	// DefaultStart is the position the dial points at before any rotation.
	DefaultStart = 50
)

// Options configures a Dial.
//
// Fields:
//   - Modulus — number of positions on the circular track.
//     Fixed for the dial's lifetime.
//   - Start — initial position; also the position Reset restores.
//
// Example:
//
//	opts := dial.DefaultOptions() // Modulus=100, Start=50
//	d, err := dial.New(opts)
type Options struct {
	Modulus int
	Start   int
}

// DefaultOptions returns the puzzle geometry: Modulus=100, Start=50.
func DefaultOptions() Options {
	return Options{Modulus: DefaultModulus, Start: DefaultStart}
}
