package solve

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/puzzlith/dial"
	"github.com/katalvlaran/puzzlith/idrange"
	"github.com/katalvlaran/puzzlith/input"
	"github.com/katalvlaran/puzzlith/joltage"
	"github.com/katalvlaran/puzzlith/paperroll"
)

// Sentinel errors for dispatch misses.
var (
	// ErrUnknownDay indicates a day with no registered solver.
	ErrUnknownDay = errors.New("solve: no solver registered for day")

	// ErrUnknownPart indicates a part number the day does not have.
	ErrUnknownPart = errors.New("solve: no such part for day")
)

// partFunc computes one answer from the raw puzzle text.
type partFunc func(text string) (uint64, error)

// registry maps each day to its ordered parts. Day 4 ships a single
// part; everything else has two.
var registry = map[int][]partFunc{
	1: {day1Landings, day1Passes},
	2: {day2Sum(idrange.Halves), day2Sum(idrange.Repeats)},
	3: {day3Joltage(2), day3Joltage(12)},
	4: {day4Accessible},
}

// Run dispatches the raw puzzle text to one registered solver. part is
// 1-based. Returns ErrUnknownDay or ErrUnknownPart on a dispatch miss;
// core failures propagate wrapped with the day.
func Run(day, part int, text string) (uint64, error) {
	parts, ok := registry[day]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	if part < 1 || part > len(parts) {
		return 0, fmt.Errorf("%w: day %d has %d part(s), got part %d",
			ErrUnknownPart, day, len(parts), part)
	}

	answer, err := parts[part-1](text)
	if err != nil {
		return 0, fmt.Errorf("day %d part %d: %w", day, part, err)
	}

	return answer, nil
}

// Days lists the registered days in ascending order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for day := range registry {
		days = append(days, day)
	}
	sort.Ints(days)

	return days
}

// Parts returns how many parts the day has, 0 for an unknown day.
func Parts(day int) int {
	return len(registry[day])
}

// day1Landings counts how often the dial rests on zero after applying
// every rotation line.
func day1Landings(text string) (uint64, error) {
	d, err := dial.New(dial.DefaultOptions())
	if err != nil {
		return 0, err
	}
	d.ApplySequence(input.Lines(text))

	return uint64(d.ZeroLandings()), nil
}

// day1Passes counts every zero crossing instead.
func day1Passes(text string) (uint64, error) {
	d, err := dial.New(dial.DefaultOptions())
	if err != nil {
		return 0, err
	}
	d.ApplySequence(input.Lines(text))

	return uint64(d.ZeroPasses()), nil
}

// day2Sum folds the invalid-ID sums of every comma-separated range
// under one audit rule. Malformed tokens are skipped by ParseList's
// tolerance policy.
func day2Sum(rule idrange.Rule) partFunc {
	return func(text string) (uint64, error) {
		ranges, _ := idrange.ParseList(text, ",")
		sums := make([]uint64, 0, len(ranges))
		for _, r := range ranges {
			sums = append(sums, r.SumInvalid(rule))
		}

		return input.Sum(sums), nil
	}
}

// day3Joltage totals the battery at one pick width, one bank per line.
func day3Joltage(pick int) partFunc {
	return func(text string) (uint64, error) {
		battery, err := joltage.ParseBattery(input.Lines(text))
		if err != nil {
			return 0, err
		}

		return battery.Joltage(pick)
	}
}

// day4Accessible counts the reachable paper rolls of the warehouse map.
func day4Accessible(text string) (uint64, error) {
	grid, err := paperroll.Parse(text)
	if err != nil {
		return 0, err
	}

	return uint64(grid.AccessibleCount()), nil
}
