// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// Bitwise logic operations. AND/ORA/EOR set N/Z from the result; BIT
// leaves A untouched and instead copies bits 7 and 6 of the operand
// straight into N and V.

func (c *CPU) opAND() {
	c.Reg.A &= c.read()
	c.P.setNZ(int(c.Reg.A))
}

func (c *CPU) opORA() {
	c.Reg.A |= c.read()
	c.P.setNZ(int(c.Reg.A))
}

func (c *CPU) opEOR() {
	c.Reg.A ^= c.read()
	c.P.setNZ(int(c.Reg.A))
}

// opBIT tests A&M without modifying A: Z reports whether the masked bits
// are all clear, while N and V are copied directly from bits 7 and 6 of
// the memory operand rather than from the masked result.
func (c *CPU) opBIT() {
	m := c.read()
	c.P.setZero(int(c.Reg.A & m))
	c.P.set(FlagNegative, m&0x80 != 0)
	c.P.SetOverflow(m&0x40 != 0)
}
