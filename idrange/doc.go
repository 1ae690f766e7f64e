// Package idrange audits inclusive ID spans for suspicious digit
// patterns.
//
// What:
//
//   - Range parses "first-last" tokens (ParseList handles a whole
//     comma-separated batch with per-token tolerance).
//   - Two pattern rules: Halves (first half of the digits equals the
//     second half) and Repeats (the digit string is one chunk repeated
//     two or more times).
//   - InvalidIDs enumerates matches; SumInvalid folds them without
//     materializing the span.
//
// Why:
//
//   - Registry hygiene: machine-stamped IDs with degenerate digit
//     patterns usually mean a generator fault.
//   - The two rules grade the audit: Repeats strictly contains Halves.
//
// Complexity:
//
//   - Parse, ParseList: O(input length).
//   - Invalid: O(d²) on the digit count d ≤ 20.
//   - IDs, InvalidIDs, SumInvalid: O(span size), SumInvalid in O(1) memory.
//
// Errors:
//
//   - ErrMalformedRange: token outside "first-last", numbers beyond
//     uint64, or a span without First < Last.
package idrange
