package joltage

import "errors"

// Sentinel errors for bank parsing and joltage extraction.
var (
	// ErrEmptyBank indicates a bank line with no digits at all.
	ErrEmptyBank = errors.New("joltage: bank must hold at least one digit")

	// ErrNotDigit indicates a bank byte outside '0'..'9'.
	ErrNotDigit = errors.New("joltage: bank holds a non-digit byte")

	// ErrPickOutOfRange indicates a pick below 1 or above the bank size.
	ErrPickOutOfRange = errors.New("joltage: pick outside the bank size")

	// ErrOverflow indicates a pick too wide for a uint64 result.
	ErrOverflow = errors.New("joltage: picked number would overflow uint64")
)

// maxPick is the widest result that still fits a uint64: nineteen 9s.
const maxPick = 19

// Bank is one battery bank, a sequence of digit values 0-9 in cell
// order. Build it with ParseBank; hand-rolled banks must keep every
// element below 10.
type Bank []uint8

// Battery is an ordered set of banks whose joltages add up.
type Battery []Bank
