// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// Stack operations, subroutine calls, and interrupts. The stack lives at
// 0x0100+S and grows downward: push post-decrements S, pull pre-increments
// it.

func (c *CPU) opPHA() { c.pushByte(c.Reg.A) }

// opPHP pushes P with B and the unused bit forced to 1.
func (c *CPU) opPHP() { c.pushByte(c.P.asPushed(true)) }

func (c *CPU) opPLA() {
	c.Reg.A = c.pullByte()
	c.P.setNZ(int(c.Reg.A))
}

// opPLP pulls P but preserves the existing B flag and forces bit 5 to 1;
// neither is ever really stored in P, only synthesized at push time.
func (c *CPU) opPLP() { c.P = c.P.pulled(c.pullByte()) }

// opJSR pushes the address of the last byte of the JSR instruction
// (PC-1, since the Absolute resolver already advanced PC past the target
// address) and jumps to the resolved operand.
func (c *CPU) opJSR() {
	c.pushWord(c.Reg.PC - 1)
	c.Reg.PC = c.op
}

// opRTS pulls the return address pushed by JSR and resumes just after it.
func (c *CPU) opRTS() {
	addr := c.pullWord()
	c.Reg.PC = addr + 1
}

// opRTI pulls P (ignoring B and the unused bit) then PC, with no +1 — this
// is what distinguishes it from RTS, which resumes after a JSR return
// address rather than at the exact interrupted instruction.
func (c *CPU) opRTI() {
	c.P = c.P.pulled(c.pullByte())
	c.Reg.PC = c.pullWord()
}

// opBRK is a software interrupt: it skips the byte following the opcode
// (traditionally used as a signature/break code), pushes PC+1, pushes P
// with B set, disables further IRQs, and loads PC from the IRQ/BRK vector.
func (c *CPU) opBRK() {
	c.pushWord(c.Reg.PC + 1)
	c.pushByte(c.P.asPushed(true))
	c.P.SetInterrupt(true)
	c.Reg.PC = mem{c.Bus}.readWordLE(vectorIRQ)
}
