//go:build !linux
// +build !linux

// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import crand "crypto/rand"

func SetRandByte(inp *[]byte) (int, error) {
	return crand.Read(*inp)
}
