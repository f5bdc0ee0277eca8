// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// AddrMode identifies one of the 13 6502 addressing modes. CPU.resolve
// handles every mode with the same contract: it may read further bytes at
// PC (advancing it), and it sets cpu.op to either an effective address or
// (in Accumulator mode) a shadow of A.
type AddrMode byte

const (
	Implied AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
	Relative
)

// resolve runs the addressing-mode resolver for mode, mutating cpu.PC and
// cpu.op and recording whether the effective-address computation crossed a
// page boundary (consulted by Step() for the page-cross cycle penalty).
func (c *CPU) resolve(mode AddrMode) {
	c.pageCrossed = false
	m := mem{c.Bus}
	switch mode {
	case Implied:
		// no operand; op is left untouched and unused.
	case Accumulator:
		// read()/write() special-case Instruction.Accumulator instead of
		// consulting op, but keeping op in sync makes CPU state easier to
		// snapshot for tracing.
		c.op = uint16(c.Reg.A)
	case Immediate, Relative:
		c.op = c.Reg.PC
		c.Reg.PC++
	case ZeroPage:
		c.op = m.zpg(&c.Reg.PC)
	case ZeroPageX:
		c.op = m.zpgIndexed(&c.Reg.PC, c.Reg.X)
	case ZeroPageY:
		c.op = m.zpgIndexed(&c.Reg.PC, c.Reg.Y)
	case Absolute:
		c.op = m.abs(&c.Reg.PC)
	case AbsoluteX:
		c.op, c.pageCrossed = m.absIndexed(&c.Reg.PC, c.Reg.X)
	case AbsoluteY:
		c.op, c.pageCrossed = m.absIndexed(&c.Reg.PC, c.Reg.Y)
	case Indirect:
		c.op = m.indirect(&c.Reg.PC)
	case IndexedIndirect:
		c.op = m.indexedX(&c.Reg.PC, c.Reg.X)
	case IndirectIndexed:
		base := m.indexedIndirect(&c.Reg.PC)
		addr := base + uint16(c.Reg.Y)
		c.pageCrossed = (addr & 0xff00) != (base & 0xff00)
		c.op = addr
	default:
		panic("nes6502: invalid addressing mode")
	}
}
