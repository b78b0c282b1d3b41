// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package trivium

import (
	"log"
	"testing"
)

func TestExpandSeedSetsEveryRegister(t *testing.T) {
	seen := make(map[State]int)
	for s := 0; s < 256; s++ {
		st := ExpandSeed(byte(s))
		if st.A == 0 || st.B == 0 || st.C == 0 {
			t.Fatalf("seed %#02x expands to an empty register: %+v", s, st)
		}
		if st.A > uint16(maskA) || st.B > maskB || st.C > maskC {
			t.Fatalf("seed %#02x overflows register width: %+v", s, st)
		}
		if prev, ok := seen[st]; ok {
			t.Errorf("seeds %#02x and %#02x expand to the same state", prev, s)
		}
		seen[st] = s
	}
}

func TestExpandSeedKnownValues(t *testing.T) {
	cases := []struct {
		seed byte
		want State
	}{
		{0x00, State{A: 0x100, B: 0x01, C: 0x20}},
		{0x76, State{A: 0x1B3, B: 0x37, C: 0x2D}},
		{0xFF, State{A: 0x1FF, B: 0x7F, C: 0x27}},
	}
	for _, c := range cases {
		if got := ExpandSeed(c.seed); got != c.want {
			t.Errorf("ExpandSeed(%#02x) = %+v, want %+v", c.seed, got, c.want)
		}
	}
}

func TestZeroStateIsFixedPoint(t *testing.T) {
	var s State
	for i := 0; i < 64; i++ {
		if z := s.Advance(); z != 0 {
			t.Fatalf("cleared state produced keystream bit at %d", i)
		}
	}
	if !s.IsZero() {
		t.Errorf("cleared state moved: %+v", s)
	}
}

func TestSeedZeroKeystreamNotDegenerate(t *testing.T) {
	ks := Keystream(0x00, 64)
	ones := 0
	for _, b := range ks {
		ones += int(b)
	}
	log.Println(`ones in first 64 bits after seed 0x00:`, ones)
	if ones == 0 {
		t.Error(`seed 0x00 produced an all-zero keystream`)
	}
}

func TestNoSeedYieldsSilentPrefix(t *testing.T) {
	for s := 0; s < 256; s++ {
		if LoadState(byte(s)).IsZero() {
			t.Fatalf("seed %#02x loaded into the zero state", s)
		}
		zero := true
		for _, b := range Keystream(byte(s), 64) {
			if b != 0 {
				zero = false
				break
			}
		}
		if zero {
			t.Errorf("seed %#02x: first 64 keystream bits are zero", s)
		}
	}
}

func TestKeystreamPrefixesDistinct(t *testing.T) {
	seen := make(map[string]int)
	for s := 0; s < 256; s++ {
		k := string(KeystreamBytes(byte(s), 8))
		if prev, ok := seen[k]; ok {
			t.Errorf("seeds %#02x and %#02x share a 64-bit keystream prefix", prev, s)
		}
		seen[k] = s
	}
}

func TestKeystreamBytesKnownAnswer(t *testing.T) {
	want := map[byte][]byte{
		0x76: {0x20, 0x2c, 0x13, 0x70, 0x39, 0x8b, 0x8b, 0xcd},
		0x00: {0x0c, 0x2a, 0xd0, 0xad, 0x38, 0xbb, 0x1b, 0xf8},
	}
	for seed, w := range want {
		got := KeystreamBytes(seed, len(w))
		for i := range w {
			if got[i] != w[i] {
				t.Errorf("seed %#02x byte %d = %#02x, want %#02x", seed, i, got[i], w[i])
			}
		}
	}
}

func TestKeystreamMatchesBytes(t *testing.T) {
	bits := Keystream(0x3C, 32)
	packed := KeystreamBytes(0x3C, 4)
	for i, b := range bits {
		if (packed[i/8]>>(i%8))&1 != b {
			t.Fatalf("bit %d differs between Keystream and KeystreamBytes", i)
		}
	}
}

func TestPeriod(t *testing.T) {
	if p := Period(0x76, 1<<18); p != 196703 {
		t.Errorf("period of seed 0x76 = %d, want 196703", p)
	}
	if p := Period(0x76, 1000); p != 0 {
		t.Errorf("bounded period search returned %d, want 0", p)
	}
}

func TestPackUnpack(t *testing.T) {
	s := LoadState(0x5A)
	if Unpack(s.Pack()) != s {
		t.Errorf("pack/unpack mismatch for %+v", s)
	}
	if s.Pack() >= 1<<StateWidth {
		t.Errorf("packed state %#x wider than %d bits", s.Pack(), StateWidth)
	}
}
