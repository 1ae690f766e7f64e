// Package puzzlith is a small stable of puzzle cores — a dial that
// counts its trips past zero, a warehouse grid that knows which paper
// rolls you can still reach, and their sibling auditors — plus the
// plumbing to run them against real input files.
//
// 🚀 What is puzzlith?
//
//	A compact, deterministic collection of solvers with strict parsing
//	at the edges and pure logic inside:
//		• dial      — circular counter: rotations, rests on zero, zero crossings
//		• paperroll — grid accessibility scan with a rendered overlay
//		• idrange   — ID spans audited for degenerate digit patterns
//		• joltage   — best-k-digit subsequence extraction over battery banks
//		• input     — file reading, token splitting, regex sanitizing
//		• solve     — the day/part registry gluing cores to puzzle text
//
// ✨ Why puzzlith?
//
//   - Pure cores – no I/O inside the logic, everything testable offline
//   - Strict edges – malformed input fails loudly at parse time
//   - Tolerant sequences – one bad token never poisons a batch
//   - O(1) queries – scans classify once, answers come from cache
//
// The runner lives in cmd/puzzlith:
//
//	puzzlith -day 1 -part 2 -input ./inputs
//
// reads ./inputs/day1/input.txt and prints the answer on stdout, with
// zerolog keeping commentary on stderr.
//
// Quick ASCII taste of the paperroll overlay:
//
//	.@@.        .@@.
//	@@@@   →    X@@X
//	.@@.        .@@.
//
//	two rolls reachable, the crowded middle stays blocked.
//
// Dive into examples/ for runnable scenarios of every core.
//
//	go get github.com/katalvlaran/puzzlith
package puzzlith
