package gea

// registerSpec pins the fixed topology of one of the A/B/C/D keystream
// registers: its width, Galois feedback polynomial, and the seven tap
// positions fed into the filter function. All four registers share a
// single implementation (linearLFSR below); only these constants
// differ between them.
type registerSpec struct {
	width int
	poly  uint64
	taps  [7]int
}

var (
	specA = registerSpec{
		width: 31,
		poly:  0b11101110110001001101110001101,
		taps:  [7]int{22, 0, 13, 21, 25, 2, 7},
	}
	specB = registerSpec{
		width: 32,
		poly:  0b1110001110000001111000001000101,
		taps:  [7]int{12, 27, 0, 1, 29, 21, 5},
	}
	specC = registerSpec{
		width: 33,
		poly:  0b1010000111001101111101000100100,
		taps:  [7]int{10, 30, 32, 3, 19, 0, 4},
	}
	specD = registerSpec{
		width: 29,
		poly:  0b1010010110011010101111111001,
		taps:  [7]int{12, 23, 3, 0, 10, 27, 17},
	}
)

// linearLFSR is a Galois-form linear feedback shift register: on each
// tick the bit shifted out (XORed with an external input bit) becomes
// the new top stage, and when that bit is 1 the feedback polynomial is
// XORed into the state. It implements clocker and is reused, unmodified,
// for all of A, B, C and D — only the registerSpec passed to newLinear
// differs.
type linearLFSR struct {
	state uint64
	spec  registerSpec
}

func (r *linearLFSR) clock(bit bool) {
	top := uint(r.spec.width - 1)
	feedback := (r.state&1 != 0) != bit
	r.state >>= 1
	if feedback {
		r.state |= 1 << top
		r.state ^= r.spec.poly
	}
}

// f evaluates the filter function on the register's current state
// without mutating it.
func (r *linearLFSR) f() bool {
	return fTable[tapIndex(r.state, r.spec.taps)]
}

// newLinear builds a register of the given spec, seeding it with width
// bits of data (LSB first, via seedBits), then forcing it to 1 if the
// result is the trivial all-zero fixed point.
func newLinear(spec registerSpec, data uint64, width int) *linearLFSR {
	r := &linearLFSR{spec: spec}
	seedBits(r, data, width)
	if r.state == 0 {
		r.state = 1
	}
	return r
}

// newLinearFromBits is the wide-seed variant of newLinear, used when
// the seed material exceeds 64 bits (GEA-2 seeding A/B/C/D from
// rotations of the 97-bit W register).
func newLinearFromBits(spec registerSpec, width int, bitAt func(i int) bool) *linearLFSR {
	r := &linearLFSR{spec: spec}
	seedFunc(r, width, bitAt)
	if r.state == 0 {
		r.state = 1
	}
	return r
}
