// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// Flag operations and NOP. Each sets or clears exactly one bit in P; NOP
// touches nothing. Operand bytes for the multi-byte NOP variants are
// already consumed by the addressing-mode resolver before exec runs, so
// opNOP itself has nothing left to do regardless of which opcode reached it.

func (c *CPU) opCLC() { c.P.SetCarry(false) }
func (c *CPU) opSEC() { c.P.SetCarry(true) }
func (c *CPU) opCLD() { c.P.SetDecimal(false) }
func (c *CPU) opSED() { c.P.SetDecimal(true) }
func (c *CPU) opCLI() { c.P.SetInterrupt(false) }
func (c *CPU) opSEI() { c.P.SetInterrupt(true) }
func (c *CPU) opCLV() { c.P.SetOverflow(false) }

func (c *CPU) opNOP() {}
