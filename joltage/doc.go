// Package joltage extracts the strongest readings from battery banks.
//
// What:
//
//   - Bank is one line of digit cells; Battery is a stack of banks.
//   - Bank.Joltage(pick) forms the largest pick-digit number available
//     as an in-order subsequence of the bank, via a greedy
//     leftmost-maximum scan.
//   - Battery.Joltage(pick) totals the banks at one pick width.
//
// Why:
//
//   - Capacity triage: the same cells read at pick=2 or pick=12 grade a
//     bank's short-burst versus sustained output.
//
// Complexity:
//
//   - ParseBank, ParseBattery: O(input length).
//   - Bank.Joltage: O(Len·pick) worst case.
//
// Errors:
//
//   - ErrEmptyBank, ErrNotDigit: malformed bank text.
//   - ErrPickOutOfRange: pick below 1 or above the bank size.
//   - ErrOverflow: pick above 19, past uint64 capacity.
package joltage
