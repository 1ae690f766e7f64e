// Package dial models the circular safe dial of the first exercise:
// a position tracker on a fixed ring of numbers with two zero counters.
//
// What:
//
//   - Dial wraps a circular track of Modulus positions, starting at Start.
//   - Rotations are text tokens ("L68", "R469") or typed (Direction, magnitude).
//   - ZeroLandings counts rotations that end exactly on 0.
//   - ZeroPasses counts every crossing of 0, including several per
//     rotation when the magnitude exceeds a full turn.
//
// Why:
//
//   - The exercise's first answer is the landing count, its second the
//     pass count; both fall out of a single left-to-right pass over the
//     rotation sequence.
//
// Complexity:
//
//   - Rotate / Apply: O(1).
//   - ApplySequence:  O(n) over the token count.
//
// Options:
//
//   - Options.Modulus: track size (default 100).
//   - Options.Start:   initial position (default 50).
//
// Errors:
//
//   - ErrMalformedRotation: token outside the <letter><digits> grammar.
//   - ErrNonPositiveModulus: Modulus < 1 at construction.
//   - ErrStartOutOfRange: Start outside [0, Modulus) at construction.
//
// Malformed tokens fed to Apply or ApplySequence are ignored without
// error; see the Dial doc for the rationale behind that policy.
package dial
