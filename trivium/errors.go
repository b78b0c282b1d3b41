// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package trivium

import (
	"errors"
	"fmt"
)

var (
	ErrNotSeeded          = errors.New("trivium: stream requested before any seed load")
	ErrSeedMidByte        = errors.New("trivium: seed load while a byte window is open")
	ErrByteInFlight       = errors.New("trivium: previous byte window has not completed")
	ErrNoByteInFlight     = errors.New("trivium: clock without an open byte window")
	ErrConflictingControl = errors.New("trivium: seed load and reset asserted together")
	ErrDisabled           = errors.New("trivium: engine disabled")
)

// EngineFault records the phase in which an out-of-protocol operation was attempted.
type EngineFault struct {
	Op    string
	Phase Phase
	Err   error
}

func (f *EngineFault) Error() string {
	return fmt.Sprintf("%s in phase %s: %v", f.Op, f.Phase, f.Err)
}

func (f *EngineFault) Unwrap() error { return f.Err }

func fault(op string, p Phase, err error) error {
	return &EngineFault{Op: op, Phase: p, Err: err}
}
