// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	"encoding/hex"
	"fmt"
	"strings"
)

/*
compare whether two byte slices are the same.

	return true, `ok` if two bytesSlices are equal, otherwise return false with the reason.
*/
func CmpByte2Slices(a []byte, b []byte) (bool, string) {
	lena, lenb := len(a), len(b)
	if lena != lenb {
		return false, fmt.Sprintf(`unequal: differentLen found:(%d,%d)`, lena, lenb)
	}
	for idx, val := range a {
		if val != b[idx] {
			return false, fmt.Sprintf(`unequal: differentVal found at:%d`, idx)
		}
	}
	return true, `ok`
}

/*
parse a hex payload such as `de ad be ef`, `0xDEADBEEF` or `de:ad:be:ef`.

	separators (space, colon, comma, underscore) are dropped before decoding.
*/
func ParseHexBytes(inp string) ([]byte, error) {
	s := strings.TrimSpace(inp)
	s = strings.TrimPrefix(strings.TrimPrefix(s, `0x`), `0X`)
	s = strings.NewReplacer(` `, ``, `:`, ``, `,`, ``, `_`, ``, "\t", ``).Replace(s)
	return hex.DecodeString(s)
}

// render bytes as `de ad be ef`.
func HexSpaced(inp []byte) string {
	return fmt.Sprintf(`% x`, inp)
}
