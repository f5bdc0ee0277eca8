// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// Shifts, rotates, and increment/decrement operations. ASL/LSR/ROL/ROR
// operate through read()/write() so the same body handles both the
// Accumulator addressing mode and a resolved memory address.

func (c *CPU) opASL() {
	v := c.read()
	c.P.SetCarry(v&0x80 != 0)
	r := v << 1
	c.write(r)
	c.P.setNZ(int(r))
}

func (c *CPU) opLSR() {
	v := c.read()
	c.P.SetCarry(v&0x01 != 0)
	r := v >> 1
	c.write(r)
	c.P.set(FlagNegative, false)
	c.P.setZero(int(r))
}

func (c *CPU) opROL() {
	v := c.read()
	carryIn := byte(0)
	if c.P.IsCarry() {
		carryIn = 1
	}
	c.P.SetCarry(v&0x80 != 0)
	r := (v << 1) | carryIn
	c.write(r)
	c.P.setNZ(int(r))
}

func (c *CPU) opROR() {
	v := c.read()
	carryIn := byte(0)
	if c.P.IsCarry() {
		carryIn = 0x80
	}
	c.P.SetCarry(v&0x01 != 0)
	r := (v >> 1) | carryIn
	c.write(r)
	c.P.setNZ(int(r))
}

func (c *CPU) opINC() {
	r := c.read() + 1
	c.write(r)
	c.P.setNZ(int(r))
}

func (c *CPU) opDEC() {
	r := c.read() - 1
	c.write(r)
	c.P.setNZ(int(r))
}

func (c *CPU) opINX() { c.Reg.X++; c.P.setNZ(int(c.Reg.X)) }
func (c *CPU) opINY() { c.Reg.Y++; c.P.setNZ(int(c.Reg.Y)) }
func (c *CPU) opDEX() { c.Reg.X--; c.P.setNZ(int(c.Reg.X)) }
func (c *CPU) opDEY() { c.Reg.Y--; c.P.setNZ(int(c.Reg.Y)) }
