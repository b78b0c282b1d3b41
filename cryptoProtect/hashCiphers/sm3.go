// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	"hash"

	"github.com/emmansun/gmsm/sm3"
)

type SM3 struct{}

func (sm *SM3) CalculateHash(msg []byte) []byte {
	tmp := sm3.Sum(msg)
	return tmp[:]
}

func (sm *SM3) GetHashLen() uint64   { return 32 }
func (sm *SM3) NewHasher() hash.Hash { return sm3.New() }
