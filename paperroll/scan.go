package paperroll

import (
	"fmt"
	"strings"
)

// mooreOffsets lists the up-to-8 neighbor deltas around a cell:
//
//	0 1 2
//	3 . 4
//	5 6 7
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// neighborLimit is the crowding rule of the exercise: a roll with this
// many roll neighbors or more cannot be reached. Fixed by the puzzle,
// not configurable.
const neighborLimit = 4

// rollNeighbors counts base-grid rolls among the existing neighbors of
// (x,y). Off-grid positions simply do not exist — they are excluded
// from the count, not treated as empty stand-ins. Complexity: O(1).
func (g *Grid) rollNeighbors(x, y int) int {
	n := 0
	for _, d := range mooreOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.cells[g.index(nx, ny)] == Roll {
			n++
		}
	}

	return n
}

// classify derives the accessibility overlay from the base cells and
// returns it together with the accessible-roll count. Every roll with
// fewer than neighborLimit roll neighbors is re-marked AccessibleRoll;
// everything else keeps its base classification. The base grid is read
// only — classification never feeds back into itself.
// Complexity: O(W×H) time and memory.
func (g *Grid) classify() ([]Cell, int) {
	overlay := make([]Cell, len(g.cells))
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.index(x, y)
			if g.cells[i] == Roll && g.rollNeighbors(x, y) < neighborLimit {
				overlay[i] = AccessibleRoll
				count++
				continue
			}
			overlay[i] = g.cells[i]
		}
	}

	return overlay, count
}

// IsAccessible reports whether the roll at (x,y) is reachable: false for
// any non-roll cell, true for a roll with fewer than 4 roll neighbors
// among its existing Moore neighbors. The answer comes from the overlay
// computed at construction. Fails with ErrOutOfRange outside the grid —
// external queries stay strict even though the internal neighbor scan
// is permissive. Complexity: O(1).
func (g *Grid) IsAccessible(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, x, y, g.Width, g.Height)
	}

	return g.overlay[g.index(x, y)] == AccessibleRoll, nil
}

// AccessibleCount returns how many rolls the scan classified as
// reachable. Computed once at construction; O(1) thereafter.
func (g *Grid) AccessibleCount() int {
	return g.accessible
}

// Overlay returns a copy of the accessibility map in row-major order.
// Complexity: O(W×H).
func (g *Grid) Overlay() []Cell {
	out := make([]Cell, len(g.overlay))
	copy(out, g.overlay)

	return out
}

// String renders the overlay as newline-separated rows using the cell
// runes: '.' floor, '@' blocked roll, 'X' accessible roll.
// Complexity: O(W×H).
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(g.overlay[g.index(x, y)].Rune())
		}
	}

	return sb.String()
}
