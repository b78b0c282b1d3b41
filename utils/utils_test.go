// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	"log"
	"testing"
)

func TestParseHexBytes(t *testing.T) {
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	for _, inp := range []string{`deadbeef`, `0xDEADBEEF`, `de ad be ef`, ` de:ad:be:ef `, `de,ad,be,ef`} {
		got, err := ParseHexBytes(inp)
		if err != nil {
			t.Errorf("%q: %v", inp, err)
			continue
		}
		if ok, why := CmpByte2Slices(got, want); !ok {
			t.Errorf("%q: %s", inp, why)
		}
	}
	if _, err := ParseHexBytes(`dea`); err == nil {
		t.Error(`odd-length hex accepted`)
	}
	if HexSpaced(want) != `de ad be ef` {
		t.Errorf("HexSpaced = %q", HexSpaced(want))
	}
}

func TestCmpByte2Slices(t *testing.T) {
	if ok, _ := CmpByte2Slices([]byte{1, 2}, []byte{1, 2}); !ok {
		t.Error(`equal slices reported unequal`)
	}
	ok, why := CmpByte2Slices([]byte{1, 2}, []byte{1, 3})
	log.Println(why)
	if ok {
		t.Error(`unequal slices reported equal`)
	}
	if ok, _ := CmpByte2Slices([]byte{1}, []byte{1, 2}); ok {
		t.Error(`length mismatch ignored`)
	}
}

func TestSetRandByte(t *testing.T) {
	buf := make([]byte, 64)
	n, err := SetRandByte(&buf)
	if err != nil || n != len(buf) {
		t.Fatalf("n=%d err=%v", n, err)
	}
	LogHex(`rand:`, buf)
}

func TestTagHexAndPackedBytes(t *testing.T) {
	if got := TagHex(`state:`, nil); got != `state: --` {
		t.Errorf("empty dump %q", got)
	}
	// 22-bit word 0x2D6FB3 -> 3 bytes
	b := PackedBytes(0x2D6FB3, 22)
	if ok, why := CmpByte2Slices(b, []byte{0xB3, 0x6F, 0x2D}); !ok {
		t.Error(why)
	}
	if got := TagHex(`state:`, b); got != `state: b3 6f 2d` {
		t.Errorf("dump %q", got)
	}
	if len(PackedBytes(0xFFFFFFFF, 40)) != 4 {
		t.Error(`PackedBytes read past the word`)
	}
}
