// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package trivium

import "math/bits"

const (
	LenA       = 9
	LenB       = 7
	LenC       = 6
	StateWidth = LenA + LenB + LenC // 22

	// blank rounds run after expansion, output discarded.
	WarmupRounds = 4 * StateWidth

	maskA uint16 = 1<<LenA - 1
	maskB uint8  = 1<<LenB - 1
	maskC uint8  = 1<<LenC - 1
)

/*
State is the 22-bit internal state of the generator, split into three
component registers. Bit 0 of every register is the insertion end,
the highest bit is the one shifted out.

	keystream:  z  = a8 ^ b6 ^ c5 ^ a4*b2
	feedback:   fa = a8 ^ a5 ^ c4 ^ c2*c3
	            fb = b6 ^ b3 ^ a7 ^ a5*a6
	            fc = c5 ^ c2 ^ b5 ^ b3*b4

Each feedback is linear in its own discarded bit and reads no other
discarded bit, hence Advance permutes the 2^22 states and the all-zero
state is only ever reached through Clear.
*/
type State struct {
	A uint16
	B uint8
	C uint8
}

func bit16(r uint16, i uint) uint8 { return uint8(r>>i) & 1 }
func bit8(r uint8, i uint) uint8   { return (r >> i) & 1 }

/*
ExpandSeed spreads the 8-bit seed over the three registers.

	A: seed rotated left by 3, top bit forced.
	B: bit-reversed seed without its lowest bit, bit 0 forced.
	C: seed>>2 folded with the low three seed bits, bit 5 forced.

A alone is injective, and each register keeps at least one set bit
whatever the seed is.
*/
func ExpandSeed(seed byte) State {
	return State{
		A: uint16(bits.RotateLeft8(seed, 3)) | 1<<(LenA-1),
		B: bits.Reverse8(seed)>>1 | 0x01,
		C: ((seed>>2)^((seed&0x07)<<3))&0x1F | 1<<(LenC-1),
	}
}

// Advance returns the keystream bit of the current state and steps every register once.
func (s *State) Advance() uint8 {
	a, b, c := s.A, s.B, s.C

	z := bit16(a, 8) ^ bit8(b, 6) ^ bit8(c, 5) ^ (bit16(a, 4) & bit8(b, 2))

	fa := bit16(a, 8) ^ bit16(a, 5) ^ bit8(c, 4) ^ (bit8(c, 2) & bit8(c, 3))
	fb := bit8(b, 6) ^ bit8(b, 3) ^ bit16(a, 7) ^ (bit16(a, 5) & bit16(a, 6))
	fc := bit8(c, 5) ^ bit8(c, 2) ^ bit8(b, 5) ^ (bit8(b, 3) & bit8(b, 4))

	s.A = (a<<1 | uint16(fa)) & maskA
	s.B = (b<<1 | fb) & maskB
	s.C = (c<<1 | fc) & maskC
	return z
}

// Clear puts the registers back to the all-zero reset default.
func (s *State) Clear() { *s = State{} }

func (s State) IsZero() bool { return s == State{} }

// Pack lays the registers out as one word: A in bits 0..8, B in 9..15, C in 16..21.
func (s State) Pack() uint32 {
	return uint32(s.A) | uint32(s.B)<<LenA | uint32(s.C)<<(LenA+LenB)
}

func Unpack(w uint32) State {
	return State{
		A: uint16(w) & maskA,
		B: uint8(w>>LenA) & maskB,
		C: uint8(w>>(LenA+LenB)) & maskC,
	}
}

// LoadState is the state right after a seed load: expansion plus warm-up.
func LoadState(seed byte) State {
	s := ExpandSeed(seed)
	for i := 0; i < WarmupRounds; i++ {
		s.Advance()
	}
	return s
}

// Keystream returns the first n keystream bits following a load of seed.
func Keystream(seed byte, n int) []uint8 {
	s := LoadState(seed)
	res := make([]uint8, n)
	for i := range res {
		res[i] = s.Advance()
	}
	return res
}

// KeystreamBytes packs 8*n keystream bits LSB first, the order the combiner consumes them.
func KeystreamBytes(seed byte, n int) []byte {
	s := LoadState(seed)
	res := make([]byte, n)
	for i := range res {
		for j := uint(0); j < 8; j++ {
			res[i] |= s.Advance() << j
		}
	}
	return res
}

// Period walks from the post-load state until it comes back. 0 if limit is hit first.
func Period(seed byte, limit int) int {
	start := LoadState(seed)
	s := start
	for i := 1; i <= limit; i++ {
		s.Advance()
		if s == start {
			return i
		}
	}
	return 0
}
