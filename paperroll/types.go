package paperroll

import "errors"

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("paperroll: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("paperroll: all rows must have the same length")

	// ErrInvalidCell indicates characters outside the '.'/'@' alphabet.
	ErrInvalidCell = errors.New("paperroll: cell outside the recognized alphabet")

	// ErrOutOfRange indicates a query coordinate outside the grid.
	ErrOutOfRange = errors.New("paperroll: coordinates outside the grid")
)

// Cell classifies one grid position.
type Cell uint8

const (
	// Empty marks floor with nothing on it ('.').
	Empty Cell = iota
	// Roll marks a paper roll ('@').
	Roll
	// AccessibleRoll marks a roll reachable by the forklifts ('X' in renders).
	// It appears only in the derived overlay; base cells stay Empty or Roll.
	AccessibleRoll
	// Invalid marks an input character outside the alphabet ('!').
	// Its presence makes construction fail, so a built Grid never holds it.
	Invalid
)

// Rune returns the render character for c.
func (c Cell) Rune() rune {
	switch c {
	case Roll:
		return '@'
	case AccessibleRoll:
		return 'X'
	case Invalid:
		return '!'
	default:
		return '.'
	}
}

// Input alphabet of the raw grid text.
const (
	markEmpty = '.'
	markRoll  = '@'
)
