package paperroll

import (
	"fmt"
	"strings"
)

// Grid is a rectangular warehouse map in row-major order. The base cells
// are owned exclusively and never change after Parse; the accessibility
// overlay is a second array of the same shape, derived eagerly at
// construction and equally immutable.
type Grid struct {
	Width, Height int

	cells      []Cell
	overlay    []Cell
	accessible int
}

// Parse builds a Grid from raw text: rows separated by newlines, every
// row the same length, characters drawn from {'.', '@'}. Trailing
// whitespace (including the usual final newline) is stripped here, not
// by the caller; trailing '\r' per row is tolerated for CRLF input.
//
// Returns ErrEmptyGrid when no rows or columns remain,
// ErrNonRectangular when row lengths differ (a blank interior line is a
// length mismatch), and ErrInvalidCell — carrying the offending cell
// count — when any character outside the alphabet appears. Invalid
// cells are never dropped silently.
//
// Complexity: O(W×H) time and memory.
func Parse(raw string) (*Grid, error) {
	trimmed := strings.TrimRight(raw, " \t\r\n")
	if trimmed == "" {
		return nil, ErrEmptyGrid
	}

	rows := strings.Split(trimmed, "\n")
	width := len(strings.TrimSuffix(rows[0], "\r"))
	if width == 0 {
		return nil, ErrEmptyGrid
	}
	height := len(rows)

	cells := make([]Cell, 0, width*height)
	invalid := 0
	for _, row := range rows {
		row = strings.TrimSuffix(row, "\r")
		if len(row) != width {
			return nil, ErrNonRectangular
		}
		for i := 0; i < len(row); i++ {
			switch row[i] {
			case markEmpty:
				cells = append(cells, Empty)
			case markRoll:
				cells = append(cells, Roll)
			default:
				cells = append(cells, Invalid)
				invalid++
			}
		}
	}
	if invalid > 0 {
		return nil, fmt.Errorf("%w: %d invalid cell(s)", ErrInvalidCell, invalid)
	}

	g := &Grid{Width: width, Height: height, cells: cells}
	g.overlay, g.accessible = g.classify()

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// At returns the base cell at (x,y), bounds-checked. External queries
// are strict: coordinates outside the grid fail with ErrOutOfRange,
// never clamp. Complexity: O(1).
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Empty, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, x, y, g.Width, g.Height)
	}

	return g.cells[g.index(x, y)], nil
}

// IsRoll reports whether the base cell at (x,y) holds a roll.
// Fails with ErrOutOfRange outside the grid. Complexity: O(1).
func (g *Grid) IsRoll(x, y int) (bool, error) {
	c, err := g.At(x, y)
	if err != nil {
		return false, err
	}

	return c == Roll, nil
}
