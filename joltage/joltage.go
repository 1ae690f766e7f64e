package joltage

import "fmt"

// ParseBank converts one line of digit characters into a Bank.
// Returns ErrEmptyBank for an empty line and ErrNotDigit — wrapped
// with the byte and its offset — for anything outside '0'..'9'.
// Complexity: O(len(line)).
func ParseBank(line string) (Bank, error) {
	if line == "" {
		return nil, ErrEmptyBank
	}

	bank := make(Bank, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrNotDigit, c, i)
		}
		bank[i] = c - '0'
	}

	return bank, nil
}

// ParseBattery parses one Bank per line. All lines must parse; the
// first failure wins and carries its 1-based line number.
// Complexity: O(total input length).
func ParseBattery(lines []string) (Battery, error) {
	battery := make(Battery, 0, len(lines))
	for i, line := range lines {
		bank, err := ParseBank(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		battery = append(battery, bank)
	}

	return battery, nil
}

// Len returns the number of digits in the bank.
func (b Bank) Len() int {
	return len(b)
}

// Joltage returns the largest number formed by choosing pick digits
// from the bank as a subsequence, order preserved.
//
// Greedy scan: each output position takes the leftmost maximum inside
// a window that still leaves enough digits for the remaining picks,
// then the search resumes one past the chosen digit. Leftmost wins
// ties because a draw further right only shrinks later windows.
//
// Returns ErrPickOutOfRange unless 1 ≤ pick ≤ Len() and ErrOverflow
// when pick exceeds 19, the widest result a uint64 can hold.
// Complexity: O(Len·pick) worst case, O(Len) for small picks.
func (b Bank) Joltage(pick int) (uint64, error) {
	if pick < 1 || pick > len(b) {
		return 0, fmt.Errorf("%w: pick %d of %d digit(s)", ErrPickOutOfRange, pick, len(b))
	}
	if pick > maxPick {
		return 0, fmt.Errorf("%w: pick %d exceeds %d digits", ErrOverflow, pick, maxPick)
	}

	var result uint64
	start := 0
	for k := 0; k < pick; k++ {
		end := len(b) - pick + k + 1
		best := start
		for i := start + 1; i < end; i++ {
			if b[i] > b[best] {
				best = i
			}
		}
		result = result*10 + uint64(b[best])
		start = best + 1
	}

	return result, nil
}

// Joltage sums the per-bank joltages at the same pick width. The first
// failing bank wins and carries its 1-based index.
// Complexity: O(total digits · pick).
func (bt Battery) Joltage(pick int) (uint64, error) {
	var sum uint64
	for i, bank := range bt {
		j, err := bank.Joltage(pick)
		if err != nil {
			return 0, fmt.Errorf("bank %d: %w", i+1, err)
		}
		sum += j
	}

	return sum, nil
}
