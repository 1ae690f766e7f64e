package dial

import (
	"regexp"
	"strconv"
)

// Dial — circular position tracker with zero-crossing counters
//
// Description:
//
//	A Dial tracks a position on a circular track of Modulus numbered
//	positions (0..Modulus-1). Signed rotations move it either way; the
//	dial counts (a) how often a rotation leaves it pointing exactly at 0
//	and (b) how often a rotation's traversal crosses or lands on 0,
//	including multiple crossings for magnitudes beyond a full turn.
//
// Pass counting (per rotation of magnitude m from position p):
//  1. dist = steps until the next zero crossing in the turn direction:
//     Modulus-p clockwise, p counterclockwise (0 = parked on zero and
//     about to leave it).
//  2. m < dist ⇒ no crossing at all.
//  3. Otherwise passes = m/Modulus full wraps, +1 if the m%Modulus
//     remainder still reaches dist, −1 when leaving p==0
//     counterclockwise so the starting zero is not itself counted.
//
// Tolerance policy:
//
//	Malformed input — an unparseable token, a negative magnitude, an
//	out-of-enum direction — is deliberately ignored: the dial does not
//	move and no counter changes. Puzzle feeds are trusted; a bad token
//	is noise, not an error. Do not copy this stance into code that
//	faces untrusted input.
//
// Complexity:
//
//	Every operation is O(1); ApplySequence is O(len(tokens)).
type Dial struct {
	modulus      int
	start        int
	position     int
	zeroLandings int
	zeroPasses   int
}

// New constructs a Dial from opts.
// Returns ErrNonPositiveModulus if opts.Modulus < 1,
// ErrStartOutOfRange if opts.Start lies outside [0, Modulus).
func New(opts Options) (*Dial, error) {
	if opts.Modulus < 1 {
		return nil, ErrNonPositiveModulus
	}
	if opts.Start < 0 || opts.Start >= opts.Modulus {
		return nil, ErrStartOutOfRange
	}

	return &Dial{
		modulus:  opts.Modulus,
		start:    opts.Start,
		position: opts.Start,
	}, nil
}

// rotationRx matches one rotation token: a direction letter followed by a
// non-negative decimal magnitude, nothing else.
var rotationRx = regexp.MustCompile(`^([LR])([0-9]+)$`)

// ParseRotation parses a token such as "L68" or "R469".
// Returns ErrMalformedRotation for any token outside the grammar,
// including magnitudes too large for an int.
func ParseRotation(token string) (Rotation, error) {
	m := rotationRx.FindStringSubmatch(token)
	if m == nil {
		return Rotation{}, ErrMalformedRotation
	}
	size, err := strconv.Atoi(m[2])
	if err != nil {
		// A magnitude beyond the int range is as unusable as garbage text.
		return Rotation{}, ErrMalformedRotation
	}
	dir := Counterclockwise
	if m[1] == "R" {
		dir = Clockwise
	}

	return Rotation{Dir: dir, Magnitude: size}, nil
}

// Rotate advances the dial magnitude steps in dir, updates both zero
// counters, and returns the resulting position. A negative magnitude or
// an out-of-enum direction is a silent no-op per the tolerance policy;
// so is magnitude 0, which moves nothing and counts nothing.
// Complexity: O(1).
func (d *Dial) Rotate(dir Direction, magnitude int) int {
	if magnitude <= 0 || dir > Clockwise {
		return d.position
	}

	// Passes are counted against the pre-rotation position.
	d.zeroPasses += d.passCount(dir, magnitude)

	if dir == Clockwise {
		d.position = (d.position + magnitude%d.modulus) % d.modulus
	} else {
		d.position = (d.position + d.modulus - magnitude%d.modulus) % d.modulus
	}
	if d.position == 0 {
		d.zeroLandings++
	}

	return d.position
}

// passCount reports how many times a rotation of magnitude steps in dir
// crosses or lands on position 0, starting from the current position.
// Magnitude must be positive. Complexity: O(1).
func (d *Dial) passCount(dir Direction, magnitude int) int {
	dist := d.position
	if dir == Clockwise {
		dist = d.modulus - d.position
	}
	if magnitude < dist {
		return 0
	}

	passes := magnitude / d.modulus
	if magnitude%d.modulus >= dist {
		passes++
	}
	if d.position == 0 && dir == Counterclockwise {
		// Leaving a dial parked on 0: the starting zero is not a pass.
		passes--
	}

	return passes
}

// Apply parses token and rotates accordingly. Malformed tokens are
// silent no-ops: the unchanged position is returned. Complexity: O(1).
func (d *Dial) Apply(token string) int {
	rot, err := ParseRotation(token)
	if err != nil {
		return d.position
	}

	return d.Rotate(rot.Dir, rot.Magnitude)
}

// ApplySequence applies every token in order and returns the final
// position. There is no short-circuiting: malformed tokens are skipped
// and all later tokens are still attempted.
// Complexity: O(len(tokens)).
func (d *Dial) ApplySequence(tokens []string) int {
	for _, token := range tokens {
		d.Apply(token)
	}

	return d.position
}

// Position returns the current position in [0, Modulus).
func (d *Dial) Position() int { return d.position }

// ZeroLandings returns how many rotations have left the dial exactly on 0.
func (d *Dial) ZeroLandings() int { return d.zeroLandings }

// ZeroPasses returns how many times rotations have crossed or landed on 0.
func (d *Dial) ZeroPasses() int { return d.zeroPasses }

// Modulus returns the fixed track size.
func (d *Dial) Modulus() int { return d.modulus }

// Reset restores the start position and zeroes both counters.
func (d *Dial) Reset() {
	d.position = d.start
	d.zeroLandings = 0
	d.zeroPasses = 0
}
