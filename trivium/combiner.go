// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package trivium

// BitsPerByte is the length of one byte window in clock cycles.
const BitsPerByte = 8

// combiner holds the two byte accumulators. Bits travel LSB first.
type combiner struct {
	in, out byte
	cycle   uint8
	open    bool
	latched byte
}

func (c *combiner) begin(in byte) {
	c.in, c.out, c.cycle, c.open = in, 0, 0, true
}

// step consumes one keystream bit. done is set on the eighth cycle, when out gets latched.
func (c *combiner) step(z uint8) (done bool, out byte) {
	b := (c.in>>c.cycle)&1 ^ z
	c.out |= b << c.cycle
	c.cycle++
	if c.cycle < BitsPerByte {
		return false, c.latched
	}
	c.latched = c.out
	c.open = false
	c.in, c.out, c.cycle = 0, 0, 0
	return true, c.latched
}

func (c *combiner) clear() { *c = combiner{} }
