package protocol

/* Control side channel (uio_in). One pulse = a nonzero code for one cycle followed by an idle cycle. */

type (
	ControlCode uint8
	Command     uint8
)

const (
	CTRL_IDLE      ControlCode = 0x00 // no-op
	CTRL_RESET     ControlCode = 0xFF // full reset pulse
	CTRL_SEED_DEMO ControlCode = 0x76 // seed code used by the reference bench; any other nonzero byte loads too
)

const (
	CMD_NONE      Command = iota // idle or a held code
	CMD_SEED_LOAD                // rising pulse, carries the seed
	CMD_RESET                    // rising reset pulse
)

func (c Command) String() string {
	switch c {
	case CMD_NONE:
		return `NONE`
	case CMD_SEED_LOAD:
		return `SEED-LOAD`
	case CMD_RESET:
		return `RESET`
	}
	return `UNKNOWN`
}

// Decode classifies a raw control byte, ignoring pulse timing.
func Decode(b uint8) Command {
	switch ControlCode(b) {
	case CTRL_IDLE:
		return CMD_NONE
	case CTRL_RESET:
		return CMD_RESET
	}
	return CMD_SEED_LOAD
}

/*
PulseDetector turns the sampled side channel into commands.

	A command fires on the first cycle a nonzero code follows an idle cycle.
	Holding the code, or switching between two nonzero codes, does not refire.
	Every cycle with a code present, plus the idle cycle closing it, is Busy.
*/
type PulseDetector struct {
	prev uint8
}

type Pulse struct {
	Cmd  Command
	Seed uint8 // only meaningful for CMD_SEED_LOAD
	Busy bool
}

// Sample feeds the value seen on one clock edge.
func (p *PulseDetector) Sample(b uint8) Pulse {
	prev := p.prev
	p.prev = b
	idle := uint8(CTRL_IDLE)
	switch {
	case b != idle && prev == idle:
		res := Pulse{Cmd: Decode(b), Busy: true}
		if res.Cmd == CMD_SEED_LOAD {
			res.Seed = b
		}
		return res
	case b != idle || prev != idle:
		return Pulse{Busy: true}
	}
	return Pulse{}
}

func (p *PulseDetector) Clear() { p.prev = uint8(CTRL_IDLE) }
