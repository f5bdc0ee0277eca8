// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// Branches and the unconditional jump. Every branch shares the same shape:
// a signed 8-bit displacement relative to the address of the instruction
// following the branch. Taking a branch costs one extra cycle; crossing a
// page boundary while doing so costs one more (the instruction's BPCycles,
// added by Step).

// branch reads the relative operand and, if taken, redirects PC and
// records the cycle penalties. The Relative addressing mode leaves c.op
// pointing at the not-yet-consumed displacement byte and PC already
// advanced past it.
func (c *CPU) branch(taken bool) {
	offset := int8(c.Bus.ReadByte(c.op))
	if !taken {
		return
	}
	c.branchTaken = true
	oldPC := c.Reg.PC
	newPC := uint16(int32(oldPC) + int32(offset))
	if oldPC&0xff00 != newPC&0xff00 {
		c.pageCrossed = true
	}
	c.Reg.PC = newPC
}

func (c *CPU) opBCC() { c.branch(!c.P.IsCarry()) }
func (c *CPU) opBCS() { c.branch(c.P.IsCarry()) }
func (c *CPU) opBEQ() { c.branch(c.P.IsZero()) }
func (c *CPU) opBNE() { c.branch(!c.P.IsZero()) }
func (c *CPU) opBMI() { c.branch(c.P.IsNegative()) }
func (c *CPU) opBPL() { c.branch(!c.P.IsNegative()) }
func (c *CPU) opBVC() { c.branch(!c.P.IsOverflow()) }
func (c *CPU) opBVS() { c.branch(c.P.IsOverflow()) }

// opJMP loads PC directly from the resolved operand address; unlike every
// other addressing mode, JMP's "operand" is a destination, not a value to
// load.
func (c *CPU) opJMP() { c.Reg.PC = c.op }
