// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>

/*
Package trivium implements the Trivium-lite engine: a 22-bit, three-register
nonlinear keystream generator keyed by an 8-bit seed, a bit-serial combiner
that consumes one keystream bit per clock, and the control FSM gating both.

Encryption and decryption are the same operation. Two sessions that load the
same seed and then feed bytes from the same offset XOR against the same
keystream, so running the output of one through the other gives the input back.

An Engine is one logical stream and is not safe for concurrent use.
*/
package trivium

// Engine owns the internal state exclusively, only the FSM transitions below mutate it.
type Engine struct {
	state  State
	seed   byte
	loaded bool
	phase  Phase
	comb   combiner
	offset uint64
}

// Snapshot is a read-only view of an Engine, used by tracing and tests.
type Snapshot struct {
	Phase  Phase
	State  State
	Seed   byte
	Offset uint64
	InAcc  byte
	OutAcc byte
	Cycle  uint8
	Output byte
}

func NewEngine() *Engine { return &Engine{} }

// LoadSeed latches seed, expands it and runs the warm-up. Allowed from any phase
// except with a byte window open. Reloading restarts the keystream from offset 0.
func (e *Engine) LoadSeed(seed byte) error {
	p, err := next(e.phase, evSeedLoad, e.comb.open)
	if err != nil {
		return err
	}
	e.seed, e.loaded = seed, true
	e.state = LoadState(seed)
	e.offset = 0
	e.phase = p
	return nil
}

// Reset aborts any open byte window, clears state and accumulators and returns to Idle.
// The seed register keeps its value but streaming needs a new LoadSeed.
func (e *Engine) Reset() {
	e.phase, _ = next(e.phase, evReset, e.comb.open)
	e.state.Clear()
	e.comb.clear()
	e.offset = 0
}

// HardReset is the power-up condition, seed register included.
func (e *Engine) HardReset() { *e = Engine{} }

// BeginByte opens an 8-cycle window for in. Clock drives the window.
func (e *Engine) BeginByte(in byte) error {
	p, err := next(e.phase, evByteRequest, e.comb.open)
	if err != nil {
		return err
	}
	e.phase = p
	e.comb.begin(in)
	return nil
}

/*
Clock is one enabled cycle inside a byte window: the generator advances once and
its bit is combined with the current input bit. done reports the end of the
window, out is the latched output byte.
*/
func (e *Engine) Clock() (done bool, out byte, err error) {
	if !e.comb.open {
		return false, e.comb.latched, fault("clock", e.phase, ErrNoByteInFlight)
	}
	z := e.state.Advance()
	e.offset++
	done, out = e.comb.step(z)
	return done, out, nil
}

// SubmitByte runs a full byte window, eight micro-steps.
func (e *Engine) SubmitByte(in byte) (byte, error) {
	if err := e.BeginByte(in); err != nil {
		return 0, err
	}
	for {
		done, out, err := e.Clock()
		if err != nil {
			return 0, err
		}
		if done {
			return out, nil
		}
	}
}

// Process submits src byte by byte and stops at the first fault.
func (e *Engine) Process(src []byte) ([]byte, error) {
	res := make([]byte, 0, len(src))
	for _, b := range src {
		out, err := e.SubmitByte(b)
		if err != nil {
			return res, err
		}
		res = append(res, out)
	}
	return res, nil
}

func (e *Engine) Phase() Phase { return e.phase }

// Seed returns the seed register and whether it was ever written since power-up.
func (e *Engine) Seed() (byte, bool) { return e.seed, e.loaded }

// Offset is the number of stream cycles since the last load.
func (e *Engine) Offset() uint64 { return e.offset }

// Output is the last latched output byte.
func (e *Engine) Output() byte { return e.comb.latched }

func (e *Engine) InFlight() bool { return e.comb.open }

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:  e.phase,
		State:  e.state,
		Seed:   e.seed,
		Offset: e.offset,
		InAcc:  e.comb.in,
		OutAcc: e.comb.out,
		Cycle:  e.comb.cycle,
		Output: e.comb.latched,
	}
}
