// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// Data movement: LDA/LDX/LDY set N/Z from the loaded value; STA/STX/STY
// touch no flags; the register transfers set N/Z except TXS, which does
// not.

func (c *CPU) opLDA() { c.Reg.A = c.read(); c.P.setNZ(int(c.Reg.A)) }
func (c *CPU) opLDX() { c.Reg.X = c.read(); c.P.setNZ(int(c.Reg.X)) }
func (c *CPU) opLDY() { c.Reg.Y = c.read(); c.P.setNZ(int(c.Reg.Y)) }

func (c *CPU) opSTA() { c.write(c.Reg.A) }
func (c *CPU) opSTX() { c.write(c.Reg.X) }
func (c *CPU) opSTY() { c.write(c.Reg.Y) }

func (c *CPU) opTAX() { c.Reg.X = c.Reg.A; c.P.setNZ(int(c.Reg.X)) }
func (c *CPU) opTAY() { c.Reg.Y = c.Reg.A; c.P.setNZ(int(c.Reg.Y)) }
func (c *CPU) opTXA() { c.Reg.A = c.Reg.X; c.P.setNZ(int(c.Reg.A)) }
func (c *CPU) opTYA() { c.Reg.A = c.Reg.Y; c.P.setNZ(int(c.Reg.A)) }
func (c *CPU) opTSX() { c.Reg.X = c.Reg.S; c.P.setNZ(int(c.Reg.X)) }
func (c *CPU) opTXS() { c.Reg.S = c.Reg.X }
