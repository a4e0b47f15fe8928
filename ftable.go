package gea

// fTable is the nonlinear filter function f, realized as a 128-entry
// lookup indexed by seven tapped register bits packed into bits 0..6
// of the index (tap k lands at index bit k). The content is fixed by
// the 3GPP GEA-1/GEA-2 specification and pinned by the test vectors in
// vectors_test.go — it must never be regenerated or "simplified".
var fTable = [128]bool{
	false, false, true, true, true, false, false, true,
	true, false, true, true, true, false, true, true,
	false, false, true, false, true, true, false, true,
	true, false, true, false, true, true, true, true,
	true, false, true, false, true, true, false, false,
	false, true, true, true, true, false, true, true,
	false, true, false, false, false, true, true, true,
	true, false, false, true, false, false, false, false,
	false, false, false, true, false, false, true, false,
	true, false, false, true, false, true, false, true,
	false, false, true, true, false, true, false, true,
	true, false, false, false, false, false, false, true,
	false, true, true, false, false, false, false, false,
	true, true, false, true, false, true, false, false,
	true, false, true, true, true, false, false, false,
	false, false, true, true, true, true, true, true,
}

// tapIndex packs seven tapped bits of state into a 7-bit lookup index,
// tap k landing at index bit k, and returns that index; callers look
// it up in fTable to evaluate f.
func tapIndex(state uint64, taps [7]int) int {
	idx := 0
	for k, tap := range taps {
		if state&(1<<uint(tap)) != 0 {
			idx |= 1 << uint(k)
		}
	}
	return idx
}
