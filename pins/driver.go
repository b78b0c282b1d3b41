// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package pins

import (
	"errors"

	"triviumlite/protocol"
	"triviumlite/trivium"
)

var errUnencodableSeed = errors.New("pins: seed collides with the idle or reset code")

// Helpers driving the pins the way the reference bench does.

// HoldReset keeps rst_n low for n cycles, then releases it.
func (p *Pins) HoldReset(n int) error {
	p.RstN = false
	err := p.Cycles(n)
	p.RstN = true
	return err
}

// Pulse drives code on uio_in for one cycle followed by idle cycles.
func (p *Pins) Pulse(code uint8, idle int) error {
	if !p.Ena {
		return trivium.ErrDisabled
	}
	p.UioIn = code
	err := p.Tick()
	p.UioIn = uint8(protocol.CTRL_IDLE)
	if e := p.Cycles(idle); err == nil {
		err = e
	}
	return err
}

// LoadSeed is one seed-load pulse with its closing idle cycle. Seeds 0x00 and 0xFF
// have no pulse encoding, use the engine directly for them.
func (p *Pins) LoadSeed(seed uint8) error {
	if protocol.Decode(seed) != protocol.CMD_SEED_LOAD {
		return errUnencodableSeed
	}
	return p.Pulse(seed, 1)
}

// ResetPulse is the 0xFF code followed by two idle cycles.
func (p *Pins) ResetPulse() error {
	return p.Pulse(uint8(protocol.CTRL_RESET), 2)
}

// StreamByte presents b on ui_in for one full window and samples uo_out afterwards.
func (p *Pins) StreamByte(b uint8) (uint8, error) {
	if !p.Ena {
		return 0, trivium.ErrDisabled
	}
	// idle cycles in IDLE are legal on the wire, a byte request is not.
	if p.engine.Phase() == trivium.Idle {
		return 0, trivium.ErrNotSeeded
	}
	// a window opened by raw Ticks has to be finished the same way.
	if p.engine.InFlight() {
		return 0, &trivium.EngineFault{Op: "byte-request", Phase: p.engine.Phase(), Err: trivium.ErrByteInFlight}
	}
	p.UiIn = b
	if err := p.Cycles(trivium.BitsPerByte); err != nil {
		return 0, err
	}
	return p.UoOut(), nil
}

func (p *Pins) Stream(src []byte) ([]byte, error) {
	res := make([]byte, 0, len(src))
	for _, b := range src {
		out, err := p.StreamByte(b)
		if err != nil {
			return res, err
		}
		res = append(res, out)
	}
	return res, nil
}
