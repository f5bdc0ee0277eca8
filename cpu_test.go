// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502_test

import (
	"testing"

	"github.com/beevik/nes6502"
)

func newCPU(code []byte, origin uint16) (*nes6502.CPU, *nes6502.RAM) {
	ram := nes6502.NewRAM()
	ram.LoadBytes(origin, code)
	cpu := nes6502.NewCPU(nes6502.NES, ram)
	cpu.Reg.PC = origin
	return cpu, ram
}

func step(cpu *nes6502.CPU, n int) {
	for i := 0; i < n; i++ {
		cpu.Step()
	}
}

func TestResetVector(t *testing.T) {
	ram := nes6502.NewRAM()
	ram.WriteByte(0xfffc, 0x00)
	ram.WriteByte(0xfffd, 0x86)
	cpu := nes6502.NewCPU(nes6502.NES, ram)
	cpu.Reset()

	if cpu.Reg.PC != 0x8600 {
		t.Errorf("PC after reset: got $%04X, want $8600", cpu.Reg.PC)
	}
	if cpu.Reg.S != 0xfd {
		t.Errorf("S after reset: got $%02X, want $FD", cpu.Reg.S)
	}
	if !cpu.P.IsInterrupt() {
		t.Error("I flag should be set after reset")
	}
}

func TestLDASetsNZ(t *testing.T) {
	cpu, _ := newCPU([]byte{0xa9, 0x80}, 0x0600) // LDA #$80
	step(cpu, 1)

	if cpu.Reg.A != 0x80 {
		t.Errorf("A: got $%02X, want $80", cpu.Reg.A)
	}
	if !cpu.P.IsNegative() {
		t.Error("N should be set for a negative load")
	}
	if cpu.P.IsZero() {
		t.Error("Z should be clear for a nonzero load")
	}
}

func TestADCOverflow(t *testing.T) {
	// LDA #$50; ADC #$50 -> 0xA0, V set (two positives summing to a
	// negative result), C clear.
	cpu, _ := newCPU([]byte{0xa9, 0x50, 0x69, 0x50}, 0x0600)
	step(cpu, 2)

	if cpu.Reg.A != 0xa0 {
		t.Errorf("A: got $%02X, want $A0", cpu.Reg.A)
	}
	if !cpu.P.IsOverflow() {
		t.Error("V should be set")
	}
	if cpu.P.IsCarry() {
		t.Error("C should be clear")
	}
	if !cpu.P.IsNegative() {
		t.Error("N should be set")
	}
}

func TestSBCBorrow(t *testing.T) {
	// SEC; LDA #$00; SBC #$01 -> 0xFF, C clear (borrow occurred).
	cpu, _ := newCPU([]byte{0x38, 0xa9, 0x00, 0xe9, 0x01}, 0x0600)
	step(cpu, 3)

	if cpu.Reg.A != 0xff {
		t.Errorf("A: got $%02X, want $FF", cpu.Reg.A)
	}
	if cpu.P.IsCarry() {
		t.Error("C should be clear after a borrow")
	}
}

// CMP uses canonical semantics: C is set when the register is >= the
// operand, never the inverse.
func TestCompareCanonicalPolarity(t *testing.T) {
	cpu, _ := newCPU([]byte{0xa9, 0x40, 0xc9, 0x40}, 0x0600) // LDA #$40; CMP #$40
	step(cpu, 2)

	if !cpu.P.IsZero() {
		t.Error("Z should be set when A == operand")
	}
	if !cpu.P.IsCarry() {
		t.Error("C should be set when A >= operand")
	}

	cpu2, _ := newCPU([]byte{0xa9, 0x10, 0xc9, 0x40}, 0x0600) // LDA #$10; CMP #$40
	step(cpu2, 2)
	if cpu2.P.IsCarry() {
		t.Error("C should be clear when A < operand")
	}
	if !cpu2.P.IsNegative() {
		t.Error("N should be set: 0x10-0x40 is negative in the low byte")
	}
}

func TestAccumulatorVsMemoryShift(t *testing.T) {
	// ASL A shifts the accumulator, not memory.
	cpu, _ := newCPU([]byte{0xa9, 0x40, 0x0a}, 0x0600) // LDA #$40; ASL A
	step(cpu, 2)
	if cpu.Reg.A != 0x80 {
		t.Errorf("A: got $%02X, want $80", cpu.Reg.A)
	}

	// ASL $10 shifts memory, leaving A untouched.
	cpu2, ram2 := newCPU([]byte{0x06, 0x10}, 0x0600) // ASL $10
	cpu2.Reg.A = 0x55
	ram2.WriteByte(0x0010, 0x01)
	step(cpu2, 1)
	if cpu2.Reg.A != 0x55 {
		t.Error("ASL on a memory operand must not touch A")
	}
	if ram2.ReadByte(0x0010) != 0x02 {
		t.Errorf("memory operand: got $%02X, want $02", ram2.ReadByte(0x0010))
	}
}

func TestPushPullRoundTrip(t *testing.T) {
	cpu, _ := newCPU([]byte{0xa9, 0x42, 0x48, 0xa9, 0x00, 0x68}, 0x0600) // LDA #$42; PHA; LDA #$00; PLA
	startS := cpu.Reg.S
	step(cpu, 4)

	if cpu.Reg.A != 0x42 {
		t.Errorf("A after pull: got $%02X, want $42", cpu.Reg.A)
	}
	if cpu.Reg.S != startS {
		t.Errorf("S should be restored after a push/pull pair: got $%02X, want $%02X", cpu.Reg.S, startS)
	}
}

func TestStackWrapsAtPageBoundary(t *testing.T) {
	cpu, ram := newCPU([]byte{0x48}, 0x0600) // PHA
	cpu.Reg.A = 0x99
	cpu.Reg.S = 0x00
	step(cpu, 1)

	if ram.ReadByte(0x0100) != 0x99 {
		t.Error("push at S=$00 should store to $0100")
	}
	if cpu.Reg.S != 0xff {
		t.Errorf("S should wrap to $FF after pushing at $00: got $%02X", cpu.Reg.S)
	}
}

func TestJSRRTSPairing(t *testing.T) {
	code := []byte{
		0x20, 0x00, 0x90, // JSR $9000
		0xea, // NOP (landed on after RTS)
	}
	cpu, ram := newCPU(code, 0x8000)
	ram.WriteByte(0x9000, 0x60) // RTS

	step(cpu, 2) // JSR, RTS

	if cpu.Reg.PC != 0x8003 {
		t.Errorf("PC after RTS: got $%04X, want $8003", cpu.Reg.PC)
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	cpu, ram := newCPU([]byte{0x6c, 0xff, 0x02}, 0x0600) // JMP ($02FF)
	ram.WriteByte(0x02ff, 0x00)
	ram.WriteByte(0x0200, 0x03) // hardware bug: high byte read from $0200, not $0300
	ram.WriteByte(0x0300, 0xff) // decoy: must NOT be used

	step(cpu, 1)

	if cpu.Reg.PC != 0x0300 {
		t.Errorf("PC after buggy indirect JMP: got $%04X, want $0300", cpu.Reg.PC)
	}
}

func TestZeroPageIndexedWrapsWithinPage(t *testing.T) {
	cpu, ram := newCPU([]byte{0xb5, 0xff}, 0x0600) // LDA $FF,X
	cpu.Reg.X = 0x02
	ram.WriteByte(0x0001, 0x77) // $FF + $02 wraps to $01, staying in page zero

	step(cpu, 1)

	if cpu.Reg.A != 0x77 {
		t.Errorf("zero-page,X should wrap within page zero: got A=$%02X", cpu.Reg.A)
	}
}

func TestFlagSettersRoundTrip(t *testing.T) {
	cpu, _ := newCPU([]byte{0x38, 0x18}, 0x0600) // SEC; CLC
	step(cpu, 1)
	if !cpu.P.IsCarry() {
		t.Error("C should be set after SEC")
	}
	step(cpu, 1)
	if cpu.P.IsCarry() {
		t.Error("C should be clear after CLC")
	}
}

func TestEORIsSelfInverse(t *testing.T) {
	cpu, _ := newCPU([]byte{0xa9, 0x5a, 0x49, 0x5a}, 0x0600) // LDA #$5A; EOR #$5A
	step(cpu, 2)
	if cpu.Reg.A != 0x00 {
		t.Errorf("A after self-EOR: got $%02X, want $00", cpu.Reg.A)
	}
	if !cpu.P.IsZero() {
		t.Error("Z should be set")
	}
}

func TestIncDecRoundTrip(t *testing.T) {
	cpu, ram := newCPU([]byte{0xe6, 0x10, 0xc6, 0x10}, 0x0600) // INC $10; DEC $10
	ram.WriteByte(0x0010, 0x7f)
	step(cpu, 2)
	if ram.ReadByte(0x0010) != 0x7f {
		t.Errorf("INC then DEC should be a no-op: got $%02X", ram.ReadByte(0x0010))
	}
}

func TestBranchTakenPageCrossCosts4Cycles(t *testing.T) {
	// Placed so the branch target crosses into the next page.
	cpu, _ := newCPU([]byte{0xd0, 0x04}, 0x01fd) // BNE +4, from PC=$01FD
	cpu.P.SetZero(false)                         // ensure BNE is taken

	cycles := cpu.Step()
	if cycles != 4 {
		t.Errorf("branch-taken page-cross cycles: got %d, want 4", cycles)
	}
	if cpu.Reg.PC != 0x0203 {
		t.Errorf("PC after branch: got $%04X, want $0203", cpu.Reg.PC)
	}
}

func TestLAXLoadsBothRegisters(t *testing.T) {
	cpu, ram := newCPU([]byte{0xa7, 0x10}, 0x0600) // LAX $10
	ram.WriteByte(0x0010, 0x37)
	step(cpu, 1)

	if cpu.Reg.A != 0x37 || cpu.Reg.X != 0x37 {
		t.Errorf("LAX should load A and X: got A=$%02X X=$%02X", cpu.Reg.A, cpu.Reg.X)
	}
}

func TestJAMHaltsTheCPU(t *testing.T) {
	cpu, _ := newCPU([]byte{0x02, 0xa9, 0x01}, 0x0600) // JAM; LDA #$01 (never reached)
	step(cpu, 3)

	if !cpu.Halted() {
		t.Error("CPU should be halted after a JAM opcode")
	}
	if cpu.Reg.A == 0x01 {
		t.Error("instructions after JAM must never execute")
	}

	cpu.Reset()
	if cpu.Halted() {
		t.Error("Reset should clear the halted state")
	}
}

func TestBRKAndRTI(t *testing.T) {
	ram := nes6502.NewRAM()
	ram.WriteByte(0xfffe, 0x00)
	ram.WriteByte(0xffff, 0x90) // IRQ/BRK vector -> $9000
	ram.WriteByte(0x9000, 0x40) // RTI
	ram.LoadBytes(0x0600, []byte{0x00, 0x00, 0xea})

	cpu := nes6502.NewCPU(nes6502.NES, ram)
	cpu.Reg.PC = 0x0600
	cpu.Reg.S = 0xfd

	step(cpu, 1) // BRK
	if cpu.Reg.PC != 0x9000 {
		t.Errorf("PC after BRK: got $%04X, want $9000", cpu.Reg.PC)
	}
	if !cpu.P.IsInterrupt() {
		t.Error("I should be set after entering the BRK/IRQ vector")
	}

	step(cpu, 1) // RTI
	if cpu.Reg.PC != 0x0602 {
		t.Errorf("PC after RTI: got $%04X, want $0602", cpu.Reg.PC)
	}
}

type tracerFunc func(pcBefore uint16, inst *nes6502.Instruction, snap nes6502.Snapshot)

func (f tracerFunc) Trace(pcBefore uint16, inst *nes6502.Instruction, snap nes6502.Snapshot) {
	f(pcBefore, inst, snap)
}

func TestTracerIsCalledOncePerStep(t *testing.T) {
	cpu, _ := newCPU([]byte{0xea, 0xea}, 0x0600) // NOP; NOP
	calls := 0
	cpu.Tracer = tracerFunc(func(pcBefore uint16, inst *nes6502.Instruction, snap nes6502.Snapshot) {
		calls++
	})
	step(cpu, 2)
	if calls != 2 {
		t.Errorf("Tracer.Trace calls: got %d, want 2", calls)
	}
}
