package gea

// wTaps are the seven bit positions of the W register fed into the
// filter function, fixed by the GEA-2 specification.
var wTaps = [7]int{4, 18, 33, 57, 63, 83, 96}

// wRegister is the 97-bit nonlinear feedback shift register used by
// GEA-2 to mix the session key, IV and link direction into the seed
// material for the A, B, C and D keystream registers. It plays exactly
// the role sRegister plays for GEA-1, just one bit wider than a native
// machine word allows, hence wide97 instead of uint64.
type wRegister struct {
	state wide97
}

func (r *wRegister) f() bool {
	idx := 0
	for k, tap := range wTaps {
		if r.state.bit(tap) {
			idx |= 1 << uint(k)
		}
	}
	return fTable[idx]
}

func (r *wRegister) clock(bit bool) {
	feedback := (r.state.bit(0) != r.f()) != bit
	r.state = r.state.shiftRight1(feedback)
}

// newWRegister builds and fully initializes the W register from a
// GEA-2 session key, IV and link direction: IV, then direction, then
// key, then 194 zero bits to diffuse the mixed state.
func newWRegister(key uint64, iv uint32, dir Direction) *wRegister {
	r := &wRegister{}
	seedBits(r, uint64(iv), 32)
	seedBits(r, b64(dir.bit()), 1)
	seedBits(r, key, 64)
	seedBits(r, 0, 194)
	return r
}
