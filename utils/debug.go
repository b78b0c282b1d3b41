// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	"encoding/binary"
	"log"
)

// TagHex renders inp as spaced hex behind tag. Empty input shows as `--`.
func TagHex(tag string, inp []byte) string {
	if len(inp) == 0 {
		return tag + ` --`
	}
	return tag + ` ` + HexSpaced(inp)
}

// LogHex is the debug dump used by verbose traces and tests.
func LogHex(tag string, inp []byte) {
	log.Println(TagHex(tag, inp))
}

/*
PackedBytes cuts the low width bits of a packed register word into
little-endian bytes, so a 22-bit state dumps as 3 bytes.
*/
func PackedBytes(word uint32, width int) []byte {
	n := (width + 7) / 8
	if n > 4 {
		n = 4
	}
	return binary.LittleEndian.AppendUint32(nil, word)[:n]
}
