// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// Registers holds the register file of a single 6502: the accumulator, the
// two index registers, the stack pointer and the program counter. The
// status word lives separately, in Status (see status.go).
type Registers struct {
	A  byte   // accumulator
	X  byte   // X index register
	Y  byte   // Y index register
	S  byte   // stack pointer; stack lives at 0x0100 + S
	PC uint16 // program counter
}

// Init resets the register file the way power-on leaves it. Reset() (in
// cpu.go) applies the hardware-accurate reset values, which differ from a
// fresh Init() only in S (0xfd vs 0xff) and in loading PC from the reset
// vector.
func (r *Registers) Init() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.S = 0xff
	r.PC = 0
}
