// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package trivium

// Phase of the control FSM. Reset is a transition back to Idle, not a resting phase.
type Phase uint8

const (
	Idle      Phase = iota // post-reset, nothing loaded
	Seeded                 // state expanded, no byte yet
	Streaming              // at least one byte window opened since the load
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "IDLE"
	case Seeded:
		return "SEEDED"
	case Streaming:
		return "STREAMING"
	}
	return "UNKNOWN"
}

type event uint8

const (
	evSeedLoad event = iota
	evByteRequest
	evReset
)

var eventName = [...]string{
	evSeedLoad:    "seed-load",
	evByteRequest: "byte-request",
	evReset:       "reset",
}

/*
next is the transition function of the control FSM.

	IDLE      --seed-load-->    SEEDED
	SEEDED    --seed-load-->    SEEDED     (reload)
	SEEDED    --byte-request--> STREAMING
	STREAMING --byte-request--> STREAMING
	STREAMING --seed-load-->    SEEDED     (reload, only between bytes)
	*         --reset-->        IDLE

midByte reports whether a byte window is currently open.
*/
func next(p Phase, ev event, midByte bool) (Phase, error) {
	switch ev {
	case evReset:
		return Idle, nil
	case evSeedLoad:
		if midByte {
			return p, fault(eventName[ev], p, ErrSeedMidByte)
		}
		return Seeded, nil
	case evByteRequest:
		switch {
		case p == Idle:
			return p, fault(eventName[ev], p, ErrNotSeeded)
		case midByte:
			return p, fault(eventName[ev], p, ErrByteInFlight)
		}
		return Streaming, nil
	}
	return p, nil
}
