// Package paperroll scans a rectangular warehouse map of paper rolls
// and classifies which rolls a forklift can actually reach.
//
// What:
//
//   - Grid parses a textual map of '.' (floor) and '@' (roll) rows.
//   - A roll is accessible when fewer than 4 of its Moore neighbors
//     (the up-to-8 surrounding cells) are rolls; edge and corner cells
//     simply have fewer neighbors.
//   - The accessibility overlay and total are precomputed once at
//     Parse time; queries afterwards are O(1).
//
// Why:
//
//   - Warehouse triage: count and render the rolls worth dispatching to.
//   - Density analysis: the same crowding rule spots over-packed regions.
//
// Complexity:
//
//   - Parse:           O(W×H), Memory: O(W×H).
//   - IsAccessible:    O(1).
//   - AccessibleCount: O(1).
//   - Overlay, String: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or an empty first row.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a byte other than '.' or '@' appears in the map.
//   - ErrOutOfRange: query coordinates fall outside the grid.
package paperroll
