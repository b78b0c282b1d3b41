// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"
)

type (
	Sha256   struct{}
	Sha3_256 struct{}
	Sha512   struct{}
	Sha3_512 struct{}
)

func (sha *Sha256) CalculateHash(msg []byte) []byte {
	tmp := sha256.Sum256(msg)
	return tmp[:]
}

func (s *Sha3_256) CalculateHash(msg []byte) []byte {
	res := sha3.Sum256(msg)
	return res[:]
}

func (sha *Sha512) CalculateHash(msg []byte) []byte {
	tmp := sha512.Sum512(msg)
	return tmp[:]
}

func (s *Sha3_512) CalculateHash(msg []byte) []byte {
	res := sha3.Sum512(msg)
	return res[:]
}

func (sha *Sha256) GetHashLen() uint64 { return 32 }
func (s *Sha3_256) GetHashLen() uint64 { return 32 }
func (sha *Sha512) GetHashLen() uint64 { return 64 }
func (s *Sha3_512) GetHashLen() uint64 { return 64 }

func (sha *Sha256) NewHasher() hash.Hash { return sha256.New() }
func (s *Sha3_256) NewHasher() hash.Hash { return sha3.New256() }
func (sha *Sha512) NewHasher() hash.Hash { return sha512.New() }
func (s *Sha3_512) NewHasher() hash.Hash { return sha3.New512() }
