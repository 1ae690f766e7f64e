// Package solve wires the puzzle cores to their day numbers.
//
// What:
//
//   - Run(day, part, text) feeds raw puzzle text to one registered
//     solver and returns its numeric answer.
//   - Days and Parts expose the registry for runners that iterate.
//
// Day map: 1 → dial (zero landings, zero passes), 2 → idrange
// (invalid-ID sums under Halves, then Repeats), 3 → joltage (battery
// totals at pick 2, then 12), 4 → paperroll (accessible rolls, single
// part).
//
// Errors:
//
//   - ErrUnknownDay, ErrUnknownPart: dispatch misses.
//   - Core failures propagate wrapped with day and part.
package solve
