// Package gea implements the GEA-1 and GEA-2 stream ciphers used to
// protect user-plane traffic on legacy GPRS (2.5G) mobile networks.
//
// The package is a pure computational core: given a 64-bit session
// key, a 32-bit IV and a link Direction, NewGEA1 / NewGEA2 build a
// cipher instance whose GenerateStream, CryptStream and XORKeyStream
// methods produce a deterministic keystream or XOR it with a payload.
// There is no I/O, no framing, and no key management here — those are
// the caller's responsibility.
package gea

import "crypto/cipher"

var (
	_ cipher.Stream = (*GEA1State)(nil)
	_ cipher.Stream = (*GEA2State)(nil)
)
