// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package cryptoprotect

import (
	"errors"
	"strings"

	hashciphers "triviumlite/cryptoProtect/hashCiphers"
	"triviumlite/defErr"
	"triviumlite/protocol"
	"triviumlite/utils"
)

/*
	Digest choices for keystream fingerprints. A fingerprint is the hash of the
	first n keystream bytes after a seed load, handy for comparing two builds or
	two runs without shipping the raw keystream around.
*/

type hash_cipher_choice uint // hash crypto alias

const (
	SeedSize int = 1
)

const (
	PICK_SM3        hash_cipher_choice = iota + 1 // sm3 hash
	PICK_SHA256                                   // sha256
	PICK_SHA3_256                                 // sha3-256
	PICK_SHA512                                   // sha512
	PICK_SHA3_512                                 // sha3-512
	PICK_BLAKE2B256                               // blake2b256
	PICK_BLAKE2S256                               // blake2s256
	PICK_BLAKE2B512                               // blake2b512
)

var (
	ErrUnknownHash = errors.New("cryptoprotect: unknown hash choice")

	hashNames = map[string]hash_cipher_choice{
		`sm3`:         PICK_SM3,
		`sha256`:      PICK_SHA256,
		`sha3-256`:    PICK_SHA3_256,
		`sha512`:      PICK_SHA512,
		`sha3-512`:    PICK_SHA3_512,
		`blake2b-256`: PICK_BLAKE2B256,
		`blake2s-256`: PICK_BLAKE2S256,
		`blake2b-512`: PICK_BLAKE2B512,
	}
)

func NewHashCipher(choice hash_cipher_choice) (HashCipher, error) {
	switch choice {
	case PICK_SM3:
		return &hashciphers.SM3{}, nil
	case PICK_SHA256:
		return &hashciphers.Sha256{}, nil
	case PICK_SHA3_256:
		return &hashciphers.Sha3_256{}, nil
	case PICK_SHA512:
		return &hashciphers.Sha512{}, nil
	case PICK_SHA3_512:
		return &hashciphers.Sha3_512{}, nil
	case PICK_BLAKE2B256:
		return &hashciphers.Blake2b256{}, nil
	case PICK_BLAKE2S256:
		return &hashciphers.Blake2s256{}, nil
	case PICK_BLAKE2B512:
		return &hashciphers.Blake2b512{}, nil
	}
	return nil, ErrUnknownHash
}

// HashByName accepts the names used in the yaml config and on the command line, case-insensitive.
func HashByName(name string) (HashCipher, error) {
	choice, ok := hashNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, defErr.Concat(ErrUnknownHash, name)
	}
	return NewHashCipher(choice)
}

func HashNames() []string {
	return []string{`sm3`, `sha256`, `sha3-256`, `sha512`, `sha3-512`, `blake2b-256`, `blake2s-256`, `blake2b-512`}
}

/*
GenerateSeed draws a random seed that the pin side channel can carry,
i.e. neither the idle code nor the reset code.
*/
func GenerateSeed() (byte, error) {
	buf := make([]byte, 16)
	for {
		if _, err := utils.SetRandByte(&buf); err != nil {
			return 0, err
		}
		for _, b := range buf {
			if protocol.Decode(b) == protocol.CMD_SEED_LOAD {
				return b, nil
			}
		}
	}
}
