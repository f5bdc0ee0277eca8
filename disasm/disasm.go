// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 6502 instruction disassembler and a
// nes6502.Tracer that logs one formatted line per executed instruction.
package disasm

import (
	"fmt"
	"io"

	"github.com/beevik/nes6502"
)

// modeFormat holds the printf-style operand template for each AddrMode,
// indexed in the same order nes6502.AddrMode declares its constants.
var modeFormat = []string{
	"%s",      // Implied
	"%s",      // Accumulator
	"#$%s",    // Immediate
	"$%s",     // ZeroPage
	"$%s,X",   // ZeroPageX
	"$%s,Y",   // ZeroPageY
	"$%s",     // Absolute
	"$%s,X",   // AbsoluteX
	"$%s,Y",   // AbsoluteY
	"($%s)",   // Indirect
	"($%s,X)", // IndexedIndirect
	"($%s),Y", // IndirectIndexed
	"$%s",     // Relative
}

const hexDigits = "0123456789ABCDEF"

func hexString(b []byte) string {
	buf := make([]byte, len(b)*2)
	j := len(buf) - 1
	for _, n := range b {
		buf[j] = hexDigits[n&0xf]
		buf[j-1] = hexDigits[n>>4]
		j -= 2
	}
	return string(buf)
}

// Disassemble decodes the instruction at addr on bus, returning the
// formatted assembly line and the address of the following instruction.
// Relative branches are rendered as an absolute target, not a raw offset.
func Disassemble(bus nes6502.Bus, addr uint16) (line string, next uint16) {
	opcode := bus.ReadByte(addr)
	inst := nes6502.Lookup(opcode)

	operand := make([]byte, inst.Length-1)
	for i := range operand {
		operand[i] = bus.ReadByte(addr + 1 + uint16(i))
	}

	if inst.Mode == nes6502.Relative {
		offset := int8(operand[0])
		target := uint16(int32(addr) + int32(inst.Length) + int32(offset))
		operand = []byte{byte(target), byte(target >> 8)}
	}

	format := "%s " + modeFormat[inst.Mode]
	line = fmt.Sprintf(format, inst.Mnemonic.String(), hexString(operand))
	next = addr + uint16(inst.Length)
	return line, next
}

// Logger is a nes6502.Tracer that writes one formatted trace line per Step
// to Out, in a fixed-width layout resembling common 6502 trace logs: the
// instruction address, the disassembled instruction, and the
// post-execution register snapshot.
type Logger struct {
	Out io.Writer
	Bus nes6502.Bus
}

// NewLogger creates a Logger that disassembles from bus and writes to out.
func NewLogger(out io.Writer, bus nes6502.Bus) *Logger {
	return &Logger{Out: out, Bus: bus}
}

// Trace implements nes6502.Tracer.
func (l *Logger) Trace(pcBefore uint16, inst *nes6502.Instruction, snap nes6502.Snapshot) {
	line, _ := Disassemble(l.Bus, pcBefore)
	fmt.Fprintf(l.Out, "%04X  %-20s A:%02X X:%02X Y:%02X S:%02X P:%02X\n",
		pcBefore, line, snap.A, snap.X, snap.Y, snap.S, byte(snap.P))
}
