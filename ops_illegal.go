// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// Undocumented opcodes. Most of these are read-modify-write instructions
// that perform two official operations against the same decoded byte in a
// single cycle count; a handful (ANE, LXA, SHA, SHX, SHY, TAS, LAS) are
// electrically unstable on real silicon and are implemented here using the
// behavior most commonly documented and reproduced by other emulators,
// not guaranteed bit-for-bit across every 6502 die revision.

// SLO: ASL the operand, then OR the shifted value into A.
func (c *CPU) opSLO() {
	v := c.read()
	c.P.SetCarry(v&0x80 != 0)
	r := v << 1
	c.write(r)
	c.Reg.A |= r
	c.P.setNZ(int(c.Reg.A))
}

// RLA: ROL the operand, then AND the rotated value into A.
func (c *CPU) opRLA() {
	v := c.read()
	carryIn := byte(0)
	if c.P.IsCarry() {
		carryIn = 1
	}
	c.P.SetCarry(v&0x80 != 0)
	r := (v << 1) | carryIn
	c.write(r)
	c.Reg.A &= r
	c.P.setNZ(int(c.Reg.A))
}

// SRE: LSR the operand, then EOR the shifted value into A.
func (c *CPU) opSRE() {
	v := c.read()
	c.P.SetCarry(v&0x01 != 0)
	r := v >> 1
	c.write(r)
	c.Reg.A ^= r
	c.P.setNZ(int(c.Reg.A))
}

// RRA: ROR the operand, then ADC the rotated value into A.
func (c *CPU) opRRA() {
	v := c.read()
	carryIn := byte(0)
	if c.P.IsCarry() {
		carryIn = 0x80
	}
	newCarry := v&0x01 != 0
	r := (v >> 1) | carryIn
	c.write(r)

	a := c.Reg.A
	carry := 0
	if newCarry {
		carry = 1
	}
	sum := int(a) + int(r) + carry
	res := byte(sum)
	c.Reg.A = res
	c.P.setCarryAdd(sum)
	c.P.SetOverflow((int(a)^int(res))&(int(r)^int(res))&0x80 != 0)
	c.P.setNZ(int(res))
}

// DCP: DEC the operand, then CMP it against A.
func (c *CPU) opDCP() {
	r := c.read() - 1
	c.write(r)
	diff := int(c.Reg.A) - int(r)
	c.P.SetCarry(c.Reg.A >= r)
	c.P.setNZ(diff)
}

// ISC: INC the operand, then SBC it from A.
func (c *CPU) opISC() {
	r := c.read() + 1
	c.write(r)

	a := c.Reg.A
	carry := 0
	if c.P.IsCarry() {
		carry = 1
	}
	inv := ^r
	sum := int(a) + int(inv) + carry
	res := byte(sum)
	c.Reg.A = res
	c.P.setCarryAdd(sum)
	c.P.SetOverflow((int(a)^int(res))&(int(inv)^int(res))&0x80 != 0)
	c.P.setNZ(int(res))
}

// LAX: load both A and X from the operand in a single instruction.
func (c *CPU) opLAX() {
	v := c.read()
	c.Reg.A = v
	c.Reg.X = v
	c.P.setNZ(int(v))
}

// SAX stores A&X without touching any flag.
func (c *CPU) opSAX() { c.write(c.Reg.A & c.Reg.X) }

// ANC: AND with the immediate operand, then copy the result's sign bit
// into carry as though the AND had been followed by an ASL.
func (c *CPU) opANC() {
	c.Reg.A &= c.read()
	c.P.setNZ(int(c.Reg.A))
	c.P.SetCarry(c.Reg.A&0x80 != 0)
}

// ALR: AND with the immediate operand, then LSR the accumulator.
func (c *CPU) opALR() {
	c.Reg.A &= c.read()
	c.P.SetCarry(c.Reg.A&0x01 != 0)
	c.Reg.A >>= 1
	c.P.set(FlagNegative, false)
	c.P.setZero(int(c.Reg.A))
}

// ARR: AND with the immediate operand, then ROR the accumulator; the
// resulting carry and overflow come from bits 6 and 5 of the rotated
// value rather than from the rotate itself.
func (c *CPU) opARR() {
	c.Reg.A &= c.read()
	carryIn := byte(0)
	if c.P.IsCarry() {
		carryIn = 0x80
	}
	c.Reg.A = (c.Reg.A >> 1) | carryIn
	c.P.setNZ(int(c.Reg.A))
	bit6 := c.Reg.A&0x40 != 0
	bit5 := c.Reg.A&0x20 != 0
	c.P.SetCarry(bit6)
	c.P.SetOverflow(bit6 != bit5)
}

// SBX: AND A with X, subtract the operand from that, and store the result
// in X with no borrow-in, the way a CMP-like subtract would.
func (c *CPU) opSBX() {
	m := c.read()
	base := c.Reg.A & c.Reg.X
	diff := int(base) - int(m)
	c.P.SetCarry(base >= m)
	c.Reg.X = byte(diff)
	c.P.setNZ(diff)
}

// ANE is unstable on real hardware; it approximates A = (A & X) & M.
func (c *CPU) opANE() {
	c.Reg.A = c.Reg.A & c.Reg.X & c.read()
	c.P.setNZ(int(c.Reg.A))
}

// LXA is unstable on real hardware; it approximates A = X = A & M.
func (c *CPU) opLXA() {
	v := c.Reg.A & c.read()
	c.Reg.A = v
	c.Reg.X = v
	c.P.setNZ(int(v))
}

// LAS ANDs the operand with S and loads the result into A, X, and S.
func (c *CPU) opLAS() {
	v := c.read() & c.Reg.S
	c.Reg.A = v
	c.Reg.X = v
	c.Reg.S = v
	c.P.setNZ(int(v))
}

// addrHigh returns the high byte of the resolved effective address plus
// one, the value the SHA/SHX/SHY/TAS family AND against before storing.
func (c *CPU) addrHigh() byte { return byte(c.op>>8) + 1 }

// SHA stores A&X&(high byte of the address + 1). Unstable on real hardware.
func (c *CPU) opSHA() { c.write(c.Reg.A & c.Reg.X & c.addrHigh()) }

// SHX stores X&(high byte of the address + 1). Unstable on real hardware.
func (c *CPU) opSHX() { c.write(c.Reg.X & c.addrHigh()) }

// SHY stores Y&(high byte of the address + 1). Unstable on real hardware.
func (c *CPU) opSHY() { c.write(c.Reg.Y & c.addrHigh()) }

// TAS sets S = A&X, then stores S&(high byte of the address + 1). Unstable
// on real hardware.
func (c *CPU) opTAS() {
	c.Reg.S = c.Reg.A & c.Reg.X
	c.write(c.Reg.S & c.addrHigh())
}

// JAM locks the CPU up the way the real hardware does when it decodes one
// of these opcodes: the data/address bus freezes and only a reset recovers
// it. Step() checks halted before fetching the next instruction.
func (c *CPU) opJAM() { c.halted = true }
