// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package cryptoprotect

import "hash"

type StreamCipher interface {
	// SetKey from bytes. Trivium-lite only reads the first byte, the seed.
	SetKey(key []byte)

	// return the key in the representation of bytes
	GetKey() []byte

	// encrypt message on the running encryption stream.
	EncryptFlow(msg []byte) ([]byte, error)

	// decrypt message on the running decryption stream.
	DecryptFlow(msg []byte) ([]byte, error)

	// one independent session: reset, reload, process. Its own inverse.
	FlipFlow(msg []byte) ([]byte, error)
}

type HashCipher interface {
	CalculateHash(msg []byte) []byte // not for file

	// return length of digest.
	GetHashLen() uint64

	// fresh incremental hasher.
	NewHasher() hash.Hash
}
