// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nes6502 implements the instruction execution core of the MOS
// 6502 microprocessor as used in the NES: register file and status word,
// addressing-mode resolvers, a 256-entry opcode decode table, per-opcode
// operation semantics, and the bus contract the core needs from its host.
package nes6502

// Architecture selects which flavor of 6502 semantics ADC/SBC honor for the
// decimal (BCD) flag. The core is otherwise identical between the two; the
// NES's Ricoh 2A03 simply wires D to always read as inert.
type Architecture byte

const (
	// NMOS is the general-purpose MOS 6502: ADC/SBC apply BCD correction
	// when D is set.
	NMOS Architecture = iota

	// NES is the Ricoh 2A03 variant used in the Nintendo Entertainment
	// System: D can be set and cleared like any other flag, but ADC/SBC
	// always operate in binary.
	NES
)

// Interrupt/reset vectors.
const (
	vectorNMI   uint16 = 0xfffa
	vectorReset uint16 = 0xfffc
	vectorIRQ   uint16 = 0xfffe
)

// Snapshot is the CPU register/status state handed to a Tracer once per
// Step(), captured after the instruction has fully executed.
type Snapshot struct {
	A, X, Y, S byte
	P          Status
	PC         uint16
}

// Tracer receives one notification per executed instruction. It is a
// passive observer with no influence over execution; the core calls
// whatever Tracer is attached exactly once per Step().
type Tracer interface {
	Trace(pcBefore uint16, inst *Instruction, snap Snapshot)
}

// CPU holds the entire mutable state of a single 6502: the register file,
// the currently resolved operand, the currently executing Instruction, and
// a reference to the Bus it is bound to. It is not safe for concurrent use;
// Step() is the only re-entrancy boundary.
type CPU struct {
	Arch Architecture
	Reg  Registers
	P    Status
	Bus  Bus

	Cycles uint64 // total executed cycles, for host bookkeeping

	Tracer   Tracer
	Debugger *Debugger

	op          uint16 // resolved operand: effective address, or (Accumulator mode) a shadow of A
	cmd         *Instruction
	pageCrossed bool
	branchTaken bool

	halted bool // set by JAM; cleared only by Reset()

	nmiPending bool
	irqLine    bool
}

// NewCPU creates a CPU bound to bus. The register file starts with A, X, Y
// and PC zero and S at 0xff; call Reset to bring it to the hardware
// power-on state.
func NewCPU(arch Architecture, bus Bus) *CPU {
	c := &CPU{Arch: arch, Bus: bus}
	c.Reg.Init()
	c.P = statusReset
	return c
}

// read returns the byte the currently executing instruction operates on:
// the accumulator, if the instruction's addressing mode is Accumulator, or
// the resolved effective address otherwise. Every op that reads its operand
// goes through this single helper.
func (c *CPU) read() byte {
	if c.cmd.Accumulator {
		return c.Reg.A
	}
	return c.Bus.ReadByte(c.op)
}

// write is read's write-side counterpart.
func (c *CPU) write(v byte) {
	if c.cmd.Accumulator {
		c.Reg.A = v
		return
	}
	c.Bus.WriteByte(c.op, v)
	if c.Debugger != nil {
		c.Debugger.onDataStore(c, c.op, v)
	}
}

// Halted reports whether the CPU has latched into the JAM state. Only
// Reset() clears it.
func (c *CPU) Halted() bool { return c.halted }

// SetNMI raises a pending NMI. The CPU observes it at the next Step()
// boundary, never mid-instruction; NMI is edge-triggered, so this flag is
// consumed exactly once.
func (c *CPU) SetNMI() { c.nmiPending = true }

// SetIRQ sets or clears the level-triggered IRQ line. The CPU honors it at
// instruction boundaries only while I is clear.
func (c *CPU) SetIRQ(asserted bool) { c.irqLine = asserted }

// Reset restores the CPU to the state real 6502 hardware powers up (or
// resets) into: A/X/Y = 0, S = 0xfd, P = I|unused, PC loaded from the reset
// vector.
func (c *CPU) Reset() {
	c.Reg.A = 0
	c.Reg.X = 0
	c.Reg.Y = 0
	c.Reg.S = 0xfd
	c.P = statusReset
	c.halted = false
	c.nmiPending = false
	c.irqLine = false
	c.Reg.PC = mem{c.Bus}.readWordLE(vectorReset)
}

// snapshot captures the current register/status state for the Tracer.
func (c *CPU) snapshot() Snapshot {
	return Snapshot{A: c.Reg.A, X: c.Reg.X, Y: c.Reg.Y, S: c.Reg.S, P: c.P, PC: c.Reg.PC}
}

// Step fetches, decodes, resolves, and executes exactly one instruction,
// then returns the number of cycles it consumed. If the CPU is halted
// (JAM), Step is a no-op that returns 0.
func (c *CPU) Step() int {
	if c.halted {
		return 0
	}

	// Interrupts are observed only at instruction boundaries.
	if c.nmiPending {
		c.nmiPending = false
		c.enterInterrupt(vectorNMI, false)
		return 7
	}
	if c.irqLine && !c.P.IsInterrupt() {
		c.enterInterrupt(vectorIRQ, false)
		return 7
	}

	pcBefore := c.Reg.PC

	opcode := c.Bus.ReadByte(c.Reg.PC)
	c.Reg.PC++

	inst := &opcodeTable[opcode]
	c.cmd = inst

	c.pageCrossed = false
	c.branchTaken = false

	c.resolve(inst.Mode)
	inst.exec(c)

	cycles := int(inst.BaseCycles)
	if c.pageCrossed {
		cycles += int(inst.BPCycles)
	}
	if c.branchTaken {
		cycles++
	}
	c.Cycles += uint64(cycles)

	if c.Tracer != nil {
		c.Tracer.Trace(pcBefore, inst, c.snapshot())
	}
	if c.Debugger != nil {
		c.Debugger.onStep(c, pcBefore)
	}

	return cycles
}

// NMI requests a non-maskable interrupt, honored at the next Step()
// boundary. An explicit alias for SetNMI on the host control surface.
func (c *CPU) NMI() { c.SetNMI() }

// IRQ asserts the maskable interrupt line, honored at the next Step()
// boundary if I is clear. See SetIRQ for level-triggered polling.
func (c *CPU) IRQ() { c.irqLine = true }

// enterInterrupt implements the push-PC/push-P/load-vector sequence used by
// hardware NMI/IRQ (from Step); opBRK in ops_stack.go performs the same
// sequence itself. brk selects the pushed B flag.
func (c *CPU) enterInterrupt(vector uint16, brk bool) {
	m := mem{c.Bus}
	c.pushWord(c.Reg.PC)
	c.pushByte(c.P.asPushed(brk))
	c.P.SetInterrupt(true)
	c.Reg.PC = m.readWordLE(vector)
}

// pushByte pushes v onto the hardware stack (page 1), post-decrementing S.
func (c *CPU) pushByte(v byte) {
	c.Bus.WriteByte(0x0100|uint16(c.Reg.S), v)
	c.Reg.S--
}

// pullByte pulls a byte off the hardware stack, pre-incrementing S.
func (c *CPU) pullByte() byte {
	c.Reg.S++
	return c.Bus.ReadByte(0x0100 | uint16(c.Reg.S))
}

// pushWord pushes a 16-bit value high-byte-first, matching JSR/BRK order.
func (c *CPU) pushWord(v uint16) {
	c.pushByte(byte(v >> 8))
	c.pushByte(byte(v))
}

// pullWord pulls a 16-bit value low-byte-first, matching RTS/RTI order.
func (c *CPU) pullWord() uint16 {
	lo := c.pullByte()
	hi := c.pullByte()
	return uint16(lo) | uint16(hi)<<8
}
