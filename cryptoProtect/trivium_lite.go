// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package cryptoprotect

import (
	"triviumlite/trivium"
)

/*
TriviumLite plugs the bit-serial engine into the StreamCipher interface.

	EncryptFlow and DecryptFlow keep one running engine each, so a message split
	over several calls is handled like one long stream. FlipFlow opens a fresh
	session every call.
*/
type TriviumLite struct {
	Key       [SeedSize]byte
	encstream *trivium.Engine
	decstream *trivium.Engine
}

func (t *TriviumLite) SetKey(key []byte) {
	copy(t.Key[:], key)
	t.encstream, t.decstream = nil, nil
}

func (t *TriviumLite) GetKey() []byte { return t.Key[:] }

func (t *TriviumLite) Seed() byte { return t.Key[0] }

func (t *TriviumLite) generateStream(stream **trivium.Engine) error {
	if *stream != nil {
		return nil
	}
	e := trivium.NewEngine()
	if err := e.LoadSeed(t.Key[0]); err != nil {
		return err
	}
	*stream = e
	return nil
}

func (t *TriviumLite) EncryptFlow(msg []byte) ([]byte, error) {
	if err := t.generateStream(&t.encstream); err != nil {
		return nil, err
	}
	return t.encstream.Process(msg)
}

func (t *TriviumLite) DecryptFlow(msg []byte) ([]byte, error) {
	if err := t.generateStream(&t.decstream); err != nil {
		return nil, err
	}
	return t.decstream.Process(msg)
}

func (t *TriviumLite) FlipFlow(msg []byte) ([]byte, error) {
	var e *trivium.Engine
	if err := t.generateStream(&e); err != nil {
		return nil, err
	}
	return e.Process(msg)
}

// KeystreamDigest hashes the first n keystream bytes that follow a load of seed.
func KeystreamDigest(seed byte, n int, h HashCipher) []byte {
	w := h.NewHasher()
	w.Write(trivium.KeystreamBytes(seed, n))
	return w.Sum(nil)
}
