// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package cryptoprotect

import (
	"bytes"
	"errors"
	"testing"

	"triviumlite/protocol"
	utils "triviumlite/utils"
)

func TestTriviumLiteFlip(t *testing.T) {
	var test_cipher StreamCipher = &TriviumLite{}
	test_cipher.SetKey([]byte{0x76})

	res, err := test_cipher.FlipFlow([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	if err != nil {
		t.Fatal(err)
	}
	utils.LogHex(`res:`, res)
	if ok, why := utils.CmpByte2Slices(res, []byte{0xFE, 0x81, 0xAD, 0x9F}); !ok {
		t.Error(why)
	}
	dec, err := test_cipher.FlipFlow(res)
	if err != nil {
		t.Fatal(err)
	}
	if ok, why := utils.CmpByte2Slices(dec, []byte{0xDE, 0xAD, 0xBE, 0xEF}); !ok {
		t.Error(why)
	}
}

func TestTriviumLiteRunningStreams(t *testing.T) {
	var test_cipher StreamCipher = &TriviumLite{}
	seed, err := GenerateSeed()
	if err != nil {
		t.Fatal(err)
	}
	test_cipher.SetKey([]byte{seed})

	helo := []byte("hello words!!!!!!I am the storm that is approaching")
	res, _ := test_cipher.EncryptFlow(helo[:17])
	res1, _ := test_cipher.EncryptFlow(helo[17:])
	whole, _ := test_cipher.FlipFlow(helo)
	if !bytes.Equal(append(res, res1...), whole) {
		t.Error(`split encryption differs from one-shot session`)
	}

	dec, _ := test_cipher.DecryptFlow(res)
	dec1, _ := test_cipher.DecryptFlow(res1)
	utils.LogHex(`decrypt:`, append(dec, dec1...))
	if ok, why := utils.CmpByte2Slices(append(dec, dec1...), helo); !ok {
		t.Error(why)
	}

	test_cipher.SetKey([]byte{seed ^ 0x01})
	other, _ := test_cipher.EncryptFlow(helo)
	if bytes.Equal(other, whole) {
		t.Error(`SetKey did not restart the streams`)
	}
}

func TestGenerateSeedEncodable(t *testing.T) {
	for i := 0; i < 64; i++ {
		s, err := GenerateSeed()
		if err != nil {
			t.Fatal(err)
		}
		if protocol.Decode(s) != protocol.CMD_SEED_LOAD {
			t.Fatalf("generated seed %#02x is a control code", s)
		}
	}
}

func TestKeystreamDigest(t *testing.T) {
	for _, name := range HashNames() {
		h, err := HashByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		a := KeystreamDigest(0x76, 64, h)
		b := KeystreamDigest(0x76, 64, h)
		c := KeystreamDigest(0x77, 64, h)
		if !bytes.Equal(a, b) {
			t.Errorf("%s: digest not deterministic", name)
		}
		if bytes.Equal(a, c) {
			t.Errorf("%s: neighbouring seeds share a digest", name)
		}
		if uint64(len(a)) != h.GetHashLen() {
			t.Errorf("%s: %d bytes", name, len(a))
		}
	}
	if _, err := HashByName(`md5`); !errors.Is(err, ErrUnknownHash) {
		t.Errorf("md5: %v", err)
	}
	if _, err := HashByName(` SM3 `); err != nil {
		t.Errorf("name lookup is case sensitive: %v", err)
	}
}
