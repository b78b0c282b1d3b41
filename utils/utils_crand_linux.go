//go:build linux
// +build linux

// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	"errors"

	"golang.org/x/sys/unix"
)

// fill inp straight from getrandom(2), retrying on EINTR and short reads.
func SetRandByte(inp *[]byte) (int, error) {
	buf := *inp
	done := 0
	for done < len(buf) {
		n, err := unix.Getrandom(buf[done:], 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return done, err
		}
		done += n
	}
	return done, nil
}
