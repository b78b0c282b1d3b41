// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>

/*
Package pins maps the 8-bit pin protocol onto a trivium.Engine.

	clk     Tick()       one rising edge
	rst_n   RstN         active low, clears to IDLE
	ena     Ena          engine inert while low
	ui_in   UiIn         data byte, latched at the first cycle of a window
	uio_in  UioIn        control side channel, see package protocol
	uo_out  UoOut()      stable between window ends
*/
package pins

import (
	"triviumlite/defErr"
	"triviumlite/protocol"
	"triviumlite/trivium"
)

type Pins struct {
	RstN  bool
	Ena   bool
	UiIn  uint8
	UioIn uint8

	engine *trivium.Engine
	ctrl   protocol.PulseDetector
	cycle  uint64
	rec    *Recorder
}

// New returns pins in the power-up condition with reset released and the engine enabled.
func New() *Pins {
	return &Pins{RstN: true, Ena: true, engine: trivium.NewEngine()}
}

// Attach records every following edge into r. nil detaches.
func (p *Pins) Attach(r *Recorder) { p.rec = r }

func (p *Pins) UoOut() uint8 { return p.engine.Output() }

func (p *Pins) Cycle() uint64 { return p.cycle }

func (p *Pins) Phase() trivium.Phase { return p.engine.Phase() }

func (p *Pins) Engine() *trivium.Engine { return p.engine }

/*
Tick applies one rising clock edge. Order of evaluation:

	rst_n low  -> hard reset, a non-idle uio_in at the same time is reported
	ena low    -> nothing
	uio_in     -> reset or seed-load pulse, pulse cycles are not stream cycles
	otherwise  -> one combiner micro-step when a seed is loaded
*/
func (p *Pins) Tick() (err error) {
	p.cycle++
	defer func() { p.rec.record(p, err) }()

	if !p.RstN {
		p.engine.HardReset()
		p.ctrl.Clear()
		if p.UioIn != uint8(protocol.CTRL_IDLE) {
			return defErr.Describef(trivium.ErrConflictingControl, "pins: cycle %d", p.cycle)
		}
		return nil
	}
	if !p.Ena {
		return nil
	}

	pulse := p.ctrl.Sample(p.UioIn)
	switch pulse.Cmd {
	case protocol.CMD_RESET:
		p.engine.Reset()
		return nil
	case protocol.CMD_SEED_LOAD:
		if err = p.engine.LoadSeed(pulse.Seed); err != nil {
			return defErr.Describef(err, "pins: cycle %d", p.cycle)
		}
		return nil
	}
	if pulse.Busy || p.engine.Phase() == trivium.Idle {
		return nil
	}

	if !p.engine.InFlight() {
		if err = p.engine.BeginByte(p.UiIn); err != nil {
			return err
		}
	}
	_, _, err = p.engine.Clock()
	return err
}

// Cycles ticks n times and returns the first error met; the remaining edges are still applied.
func (p *Pins) Cycles(n int) error {
	var first error
	for i := 0; i < n; i++ {
		if err := p.Tick(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
