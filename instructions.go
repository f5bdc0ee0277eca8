// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// Mnemonic identifies the operation an Instruction performs, independent of
// its addressing mode. It covers the 56 official 6502 mnemonics plus the
// commonly exercised illegal/undocumented opcodes.
type Mnemonic byte

// Official mnemonics.
const (
	ADC Mnemonic = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// Illegal / undocumented opcodes.
	ALR
	ANC
	ANE
	ARR
	DCP
	ISC
	JAM
	LAS
	LAX
	LXA
	RLA
	RRA
	SAX
	SBX
	SHA
	SHX
	SHY
	SLO
	SRE
	TAS
)

var mnemonicName = map[Mnemonic]string{
	ADC: "ADC", AND: "AND", ASL: "ASL", BCC: "BCC", BCS: "BCS", BEQ: "BEQ",
	BIT: "BIT", BMI: "BMI", BNE: "BNE", BPL: "BPL", BRK: "BRK", BVC: "BVC",
	BVS: "BVS", CLC: "CLC", CLD: "CLD", CLI: "CLI", CLV: "CLV", CMP: "CMP",
	CPX: "CPX", CPY: "CPY", DEC: "DEC", DEX: "DEX", DEY: "DEY", EOR: "EOR",
	INC: "INC", INX: "INX", INY: "INY", JMP: "JMP", JSR: "JSR", LDA: "LDA",
	LDX: "LDX", LDY: "LDY", LSR: "LSR", NOP: "NOP", ORA: "ORA", PHA: "PHA",
	PHP: "PHP", PLA: "PLA", PLP: "PLP", ROL: "ROL", ROR: "ROR", RTI: "RTI",
	RTS: "RTS", SBC: "SBC", SEC: "SEC", SED: "SED", SEI: "SEI", STA: "STA",
	STX: "STX", STY: "STY", TAX: "TAX", TAY: "TAY", TSX: "TSX", TXA: "TXA",
	TXS: "TXS", TYA: "TYA",
	ALR: "ALR", ANC: "ANC", ANE: "ANE", ARR: "ARR", DCP: "DCP", ISC: "ISC",
	JAM: "JAM", LAS: "LAS", LAX: "LAX", LXA: "LXA", RLA: "RLA", RRA: "RRA",
	SAX: "SAX", SBX: "SBX", SHA: "SHA", SHX: "SHX", SHY: "SHY", SLO: "SLO",
	SRE: "SRE", TAS: "TAS",
}

// String returns the three-letter mnemonic text, e.g. "ADC".
func (m Mnemonic) String() string {
	if name, ok := mnemonicName[m]; ok {
		return name
	}
	return "???"
}

// execFunc is the body of an operation: it reads/writes registers and
// memory (through cpu.read()/cpu.write(), or directly via cpu.Bus for
// operations that need the raw address) and updates flags.
type execFunc func(c *CPU)

// Instruction is the immutable per-opcode table entry: mnemonic,
// addressing mode, operation body, cycle cost, and whether the operation
// reads/writes the accumulator directly instead of a resolved memory
// address.
type Instruction struct {
	Mnemonic    Mnemonic
	Mode        AddrMode
	Opcode      byte
	Length      byte // total bytes including opcode
	BaseCycles  byte
	BPCycles    byte // extra cycles on a page-cross read
	Accumulator bool
	exec        execFunc
}

type opcodeData struct {
	mnemonic    Mnemonic
	mode        AddrMode
	opcode      byte
	length      byte
	cycles      byte
	bpcycles    byte
	accumulator bool
}

func modeLength(mode AddrMode) byte {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, Relative, IndexedIndirect, IndirectIndexed:
		return 2
	default:
		return 3
	}
}

// od is a small constructor used only while building the data table below;
// it keeps the table dense, one line per opcode.
func od(mnem Mnemonic, mode AddrMode, opcode byte, cycles, bpcycles byte) opcodeData {
	return opcodeData{
		mnemonic:    mnem,
		mode:        mode,
		opcode:      opcode,
		length:      modeLength(mode),
		cycles:      cycles,
		bpcycles:    bpcycles,
		accumulator: mode == Accumulator,
	}
}

// data holds the full 256-entry 6502 opcode map: the 151 official
// (opcode,mode) pairs plus the 105 illegal/undocumented ones commonly
// relied on by real NES software.
var data = buildOpcodeData()

func buildOpcodeData() []opcodeData {
	d := make([]opcodeData, 0, 256)
	add := func(mnem Mnemonic, mode AddrMode, opcode byte, cycles, bpcycles byte) {
		d = append(d, od(mnem, mode, opcode, cycles, bpcycles))
	}

	// --- official instructions ---
	add(LDA, Immediate, 0xa9, 2, 0)
	add(LDA, ZeroPage, 0xa5, 3, 0)
	add(LDA, ZeroPageX, 0xb5, 4, 0)
	add(LDA, Absolute, 0xad, 4, 0)
	add(LDA, AbsoluteX, 0xbd, 4, 1)
	add(LDA, AbsoluteY, 0xb9, 4, 1)
	add(LDA, IndexedIndirect, 0xa1, 6, 0)
	add(LDA, IndirectIndexed, 0xb1, 5, 1)

	add(LDX, Immediate, 0xa2, 2, 0)
	add(LDX, ZeroPage, 0xa6, 3, 0)
	add(LDX, ZeroPageY, 0xb6, 4, 0)
	add(LDX, Absolute, 0xae, 4, 0)
	add(LDX, AbsoluteY, 0xbe, 4, 1)

	add(LDY, Immediate, 0xa0, 2, 0)
	add(LDY, ZeroPage, 0xa4, 3, 0)
	add(LDY, ZeroPageX, 0xb4, 4, 0)
	add(LDY, Absolute, 0xac, 4, 0)
	add(LDY, AbsoluteX, 0xbc, 4, 1)

	add(STA, ZeroPage, 0x85, 3, 0)
	add(STA, ZeroPageX, 0x95, 4, 0)
	add(STA, Absolute, 0x8d, 4, 0)
	add(STA, AbsoluteX, 0x9d, 5, 0)
	add(STA, AbsoluteY, 0x99, 5, 0)
	add(STA, IndexedIndirect, 0x81, 6, 0)
	add(STA, IndirectIndexed, 0x91, 6, 0)

	add(STX, ZeroPage, 0x86, 3, 0)
	add(STX, ZeroPageY, 0x96, 4, 0)
	add(STX, Absolute, 0x8e, 4, 0)

	add(STY, ZeroPage, 0x84, 3, 0)
	add(STY, ZeroPageX, 0x94, 4, 0)
	add(STY, Absolute, 0x8c, 4, 0)

	add(ADC, Immediate, 0x69, 2, 0)
	add(ADC, ZeroPage, 0x65, 3, 0)
	add(ADC, ZeroPageX, 0x75, 4, 0)
	add(ADC, Absolute, 0x6d, 4, 0)
	add(ADC, AbsoluteX, 0x7d, 4, 1)
	add(ADC, AbsoluteY, 0x79, 4, 1)
	add(ADC, IndexedIndirect, 0x61, 6, 0)
	add(ADC, IndirectIndexed, 0x71, 5, 1)

	add(SBC, Immediate, 0xe9, 2, 0)
	add(SBC, ZeroPage, 0xe5, 3, 0)
	add(SBC, ZeroPageX, 0xf5, 4, 0)
	add(SBC, Absolute, 0xed, 4, 0)
	add(SBC, AbsoluteX, 0xfd, 4, 1)
	add(SBC, AbsoluteY, 0xf9, 4, 1)
	add(SBC, IndexedIndirect, 0xe1, 6, 0)
	add(SBC, IndirectIndexed, 0xf1, 5, 1)

	add(CMP, Immediate, 0xc9, 2, 0)
	add(CMP, ZeroPage, 0xc5, 3, 0)
	add(CMP, ZeroPageX, 0xd5, 4, 0)
	add(CMP, Absolute, 0xcd, 4, 0)
	add(CMP, AbsoluteX, 0xdd, 4, 1)
	add(CMP, AbsoluteY, 0xd9, 4, 1)
	add(CMP, IndexedIndirect, 0xc1, 6, 0)
	add(CMP, IndirectIndexed, 0xd1, 5, 1)

	add(CPX, Immediate, 0xe0, 2, 0)
	add(CPX, ZeroPage, 0xe4, 3, 0)
	add(CPX, Absolute, 0xec, 4, 0)

	add(CPY, Immediate, 0xc0, 2, 0)
	add(CPY, ZeroPage, 0xc4, 3, 0)
	add(CPY, Absolute, 0xcc, 4, 0)

	add(BIT, ZeroPage, 0x24, 3, 0)
	add(BIT, Absolute, 0x2c, 4, 0)

	add(CLC, Implied, 0x18, 2, 0)
	add(SEC, Implied, 0x38, 2, 0)
	add(CLI, Implied, 0x58, 2, 0)
	add(SEI, Implied, 0x78, 2, 0)
	add(CLD, Implied, 0xd8, 2, 0)
	add(SED, Implied, 0xf8, 2, 0)
	add(CLV, Implied, 0xb8, 2, 0)

	add(BCC, Relative, 0x90, 2, 1)
	add(BCS, Relative, 0xb0, 2, 1)
	add(BEQ, Relative, 0xf0, 2, 1)
	add(BNE, Relative, 0xd0, 2, 1)
	add(BMI, Relative, 0x30, 2, 1)
	add(BPL, Relative, 0x10, 2, 1)
	add(BVC, Relative, 0x50, 2, 1)
	add(BVS, Relative, 0x70, 2, 1)

	add(BRK, Implied, 0x00, 7, 0)

	add(AND, Immediate, 0x29, 2, 0)
	add(AND, ZeroPage, 0x25, 3, 0)
	add(AND, ZeroPageX, 0x35, 4, 0)
	add(AND, Absolute, 0x2d, 4, 0)
	add(AND, AbsoluteX, 0x3d, 4, 1)
	add(AND, AbsoluteY, 0x39, 4, 1)
	add(AND, IndexedIndirect, 0x21, 6, 0)
	add(AND, IndirectIndexed, 0x31, 5, 1)

	add(ORA, Immediate, 0x09, 2, 0)
	add(ORA, ZeroPage, 0x05, 3, 0)
	add(ORA, ZeroPageX, 0x15, 4, 0)
	add(ORA, Absolute, 0x0d, 4, 0)
	add(ORA, AbsoluteX, 0x1d, 4, 1)
	add(ORA, AbsoluteY, 0x19, 4, 1)
	add(ORA, IndexedIndirect, 0x01, 6, 0)
	add(ORA, IndirectIndexed, 0x11, 5, 1)

	add(EOR, Immediate, 0x49, 2, 0)
	add(EOR, ZeroPage, 0x45, 3, 0)
	add(EOR, ZeroPageX, 0x55, 4, 0)
	add(EOR, Absolute, 0x4d, 4, 0)
	add(EOR, AbsoluteX, 0x5d, 4, 1)
	add(EOR, AbsoluteY, 0x59, 4, 1)
	add(EOR, IndexedIndirect, 0x41, 6, 0)
	add(EOR, IndirectIndexed, 0x51, 5, 1)

	add(INC, ZeroPage, 0xe6, 5, 0)
	add(INC, ZeroPageX, 0xf6, 6, 0)
	add(INC, Absolute, 0xee, 6, 0)
	add(INC, AbsoluteX, 0xfe, 7, 0)

	add(DEC, ZeroPage, 0xc6, 5, 0)
	add(DEC, ZeroPageX, 0xd6, 6, 0)
	add(DEC, Absolute, 0xce, 6, 0)
	add(DEC, AbsoluteX, 0xde, 7, 0)

	add(INX, Implied, 0xe8, 2, 0)
	add(INY, Implied, 0xc8, 2, 0)
	add(DEX, Implied, 0xca, 2, 0)
	add(DEY, Implied, 0x88, 2, 0)

	add(JMP, Absolute, 0x4c, 3, 0)
	add(JMP, Indirect, 0x6c, 5, 0)

	add(JSR, Absolute, 0x20, 6, 0)
	add(RTS, Implied, 0x60, 6, 0)
	add(RTI, Implied, 0x40, 6, 0)

	add(NOP, Implied, 0xea, 2, 0)

	add(TAX, Implied, 0xaa, 2, 0)
	add(TXA, Implied, 0x8a, 2, 0)
	add(TAY, Implied, 0xa8, 2, 0)
	add(TYA, Implied, 0x98, 2, 0)
	add(TXS, Implied, 0x9a, 2, 0)
	add(TSX, Implied, 0xba, 2, 0)

	add(PHA, Implied, 0x48, 3, 0)
	add(PLA, Implied, 0x68, 4, 0)
	add(PHP, Implied, 0x08, 3, 0)
	add(PLP, Implied, 0x28, 4, 0)

	add(ASL, Accumulator, 0x0a, 2, 0)
	add(ASL, ZeroPage, 0x06, 5, 0)
	add(ASL, ZeroPageX, 0x16, 6, 0)
	add(ASL, Absolute, 0x0e, 6, 0)
	add(ASL, AbsoluteX, 0x1e, 7, 0)

	add(LSR, Accumulator, 0x4a, 2, 0)
	add(LSR, ZeroPage, 0x46, 5, 0)
	add(LSR, ZeroPageX, 0x56, 6, 0)
	add(LSR, Absolute, 0x4e, 6, 0)
	add(LSR, AbsoluteX, 0x5e, 7, 0)

	add(ROL, Accumulator, 0x2a, 2, 0)
	add(ROL, ZeroPage, 0x26, 5, 0)
	add(ROL, ZeroPageX, 0x36, 6, 0)
	add(ROL, Absolute, 0x2e, 6, 0)
	add(ROL, AbsoluteX, 0x3e, 7, 0)

	add(ROR, Accumulator, 0x6a, 2, 0)
	add(ROR, ZeroPage, 0x66, 5, 0)
	add(ROR, ZeroPageX, 0x76, 6, 0)
	add(ROR, Absolute, 0x6e, 6, 0)
	add(ROR, AbsoluteX, 0x7e, 7, 0)

	// --- illegal / undocumented opcodes ---

	for _, opcode := range []byte{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2} {
		add(JAM, Implied, opcode, 2, 0)
	}

	for _, opcode := range []byte{0x1a, 0x3a, 0x5a, 0x7a, 0xda, 0xfa} {
		add(NOP, Implied, opcode, 2, 0)
	}
	for _, opcode := range []byte{0x80, 0x82, 0x89, 0xc2, 0xe2} {
		add(NOP, Immediate, opcode, 2, 0)
	}
	for _, opcode := range []byte{0x04, 0x44, 0x64} {
		add(NOP, ZeroPage, opcode, 3, 0)
	}
	for _, opcode := range []byte{0x14, 0x34, 0x54, 0x74, 0xd4, 0xf4} {
		add(NOP, ZeroPageX, opcode, 4, 0)
	}
	add(NOP, Absolute, 0x0c, 4, 0)
	for _, opcode := range []byte{0x1c, 0x3c, 0x5c, 0x7c, 0xdc, 0xfc} {
		add(NOP, AbsoluteX, opcode, 4, 1)
	}

	add(SBC, Immediate, 0xeb, 2, 0) // undocumented duplicate of 0xe9

	add(LAX, ZeroPage, 0xa7, 3, 0)
	add(LAX, ZeroPageY, 0xb7, 4, 0)
	add(LAX, Absolute, 0xaf, 4, 0)
	add(LAX, AbsoluteY, 0xbf, 4, 1)
	add(LAX, IndexedIndirect, 0xa3, 6, 0)
	add(LAX, IndirectIndexed, 0xb3, 5, 1)

	add(SAX, ZeroPage, 0x87, 3, 0)
	add(SAX, ZeroPageY, 0x97, 4, 0)
	add(SAX, Absolute, 0x8f, 4, 0)
	add(SAX, IndexedIndirect, 0x83, 6, 0)

	add(DCP, ZeroPage, 0xc7, 5, 0)
	add(DCP, ZeroPageX, 0xd7, 6, 0)
	add(DCP, Absolute, 0xcf, 6, 0)
	add(DCP, AbsoluteX, 0xdf, 7, 0)
	add(DCP, AbsoluteY, 0xdb, 7, 0)
	add(DCP, IndexedIndirect, 0xc3, 8, 0)
	add(DCP, IndirectIndexed, 0xd3, 8, 0)

	add(ISC, ZeroPage, 0xe7, 5, 0)
	add(ISC, ZeroPageX, 0xf7, 6, 0)
	add(ISC, Absolute, 0xef, 6, 0)
	add(ISC, AbsoluteX, 0xff, 7, 0)
	add(ISC, AbsoluteY, 0xfb, 7, 0)
	add(ISC, IndexedIndirect, 0xe3, 8, 0)
	add(ISC, IndirectIndexed, 0xf3, 8, 0)

	add(SLO, ZeroPage, 0x07, 5, 0)
	add(SLO, ZeroPageX, 0x17, 6, 0)
	add(SLO, Absolute, 0x0f, 6, 0)
	add(SLO, AbsoluteX, 0x1f, 7, 0)
	add(SLO, AbsoluteY, 0x1b, 7, 0)
	add(SLO, IndexedIndirect, 0x03, 8, 0)
	add(SLO, IndirectIndexed, 0x13, 8, 0)

	add(RLA, ZeroPage, 0x27, 5, 0)
	add(RLA, ZeroPageX, 0x37, 6, 0)
	add(RLA, Absolute, 0x2f, 6, 0)
	add(RLA, AbsoluteX, 0x3f, 7, 0)
	add(RLA, AbsoluteY, 0x3b, 7, 0)
	add(RLA, IndexedIndirect, 0x23, 8, 0)
	add(RLA, IndirectIndexed, 0x33, 8, 0)

	add(SRE, ZeroPage, 0x47, 5, 0)
	add(SRE, ZeroPageX, 0x57, 6, 0)
	add(SRE, Absolute, 0x4f, 6, 0)
	add(SRE, AbsoluteX, 0x5f, 7, 0)
	add(SRE, AbsoluteY, 0x5b, 7, 0)
	add(SRE, IndexedIndirect, 0x43, 8, 0)
	add(SRE, IndirectIndexed, 0x53, 8, 0)

	add(RRA, ZeroPage, 0x67, 5, 0)
	add(RRA, ZeroPageX, 0x77, 6, 0)
	add(RRA, Absolute, 0x6f, 6, 0)
	add(RRA, AbsoluteX, 0x7f, 7, 0)
	add(RRA, AbsoluteY, 0x7b, 7, 0)
	add(RRA, IndexedIndirect, 0x63, 8, 0)
	add(RRA, IndirectIndexed, 0x73, 8, 0)

	add(ANC, Immediate, 0x0b, 2, 0)
	add(ANC, Immediate, 0x2b, 2, 0)
	add(ALR, Immediate, 0x4b, 2, 0)
	add(ARR, Immediate, 0x6b, 2, 0)
	add(SBX, Immediate, 0xcb, 2, 0)
	add(ANE, Immediate, 0x8b, 2, 0)
	add(LXA, Immediate, 0xab, 2, 0)

	add(LAS, AbsoluteY, 0xbb, 4, 1)
	add(SHA, AbsoluteY, 0x9f, 5, 0)
	add(SHA, IndirectIndexed, 0x93, 6, 0)
	add(SHX, AbsoluteY, 0x9e, 5, 0)
	add(SHY, AbsoluteX, 0x9c, 5, 0)
	add(TAS, AbsoluteY, 0x9b, 5, 0)

	if len(d) != 256 {
		panic("nes6502: opcode table does not cover all 256 opcodes")
	}
	return d
}

// mnemonicExec maps each Mnemonic to the CPU method implementing it. The
// bodies live in the ops_*.go files, grouped by category: data movement,
// stack, arithmetic, logic, shifts, increments, compares, branches, jumps,
// flags, illegal opcodes.
var mnemonicExec = map[Mnemonic]execFunc{
	LDA: (*CPU).opLDA, LDX: (*CPU).opLDX, LDY: (*CPU).opLDY,
	STA: (*CPU).opSTA, STX: (*CPU).opSTX, STY: (*CPU).opSTY,
	TAX: (*CPU).opTAX, TAY: (*CPU).opTAY, TXA: (*CPU).opTXA,
	TYA: (*CPU).opTYA, TSX: (*CPU).opTSX, TXS: (*CPU).opTXS,

	PHA: (*CPU).opPHA, PHP: (*CPU).opPHP, PLA: (*CPU).opPLA, PLP: (*CPU).opPLP,
	JSR: (*CPU).opJSR, RTS: (*CPU).opRTS, RTI: (*CPU).opRTI, BRK: (*CPU).opBRK,

	ADC: (*CPU).opADC, SBC: (*CPU).opSBC,
	CMP: (*CPU).opCMP, CPX: (*CPU).opCPX, CPY: (*CPU).opCPY,

	AND: (*CPU).opAND, ORA: (*CPU).opORA, EOR: (*CPU).opEOR, BIT: (*CPU).opBIT,

	ASL: (*CPU).opASL, LSR: (*CPU).opLSR, ROL: (*CPU).opROL, ROR: (*CPU).opROR,
	INC: (*CPU).opINC, DEC: (*CPU).opDEC,
	INX: (*CPU).opINX, INY: (*CPU).opINY, DEX: (*CPU).opDEX, DEY: (*CPU).opDEY,

	BCC: (*CPU).opBCC, BCS: (*CPU).opBCS, BEQ: (*CPU).opBEQ, BNE: (*CPU).opBNE,
	BMI: (*CPU).opBMI, BPL: (*CPU).opBPL, BVC: (*CPU).opBVC, BVS: (*CPU).opBVS,
	JMP: (*CPU).opJMP,

	CLC: (*CPU).opCLC, SEC: (*CPU).opSEC, CLD: (*CPU).opCLD, SED: (*CPU).opSED,
	CLI: (*CPU).opCLI, SEI: (*CPU).opSEI, CLV: (*CPU).opCLV, NOP: (*CPU).opNOP,

	SLO: (*CPU).opSLO, RLA: (*CPU).opRLA, SRE: (*CPU).opSRE, RRA: (*CPU).opRRA,
	DCP: (*CPU).opDCP, ISC: (*CPU).opISC, LAX: (*CPU).opLAX, SAX: (*CPU).opSAX,
	ANC: (*CPU).opANC, ALR: (*CPU).opALR, ARR: (*CPU).opARR, SBX: (*CPU).opSBX,
	ANE: (*CPU).opANE, LXA: (*CPU).opLXA, LAS: (*CPU).opLAS,
	SHA: (*CPU).opSHA, SHX: (*CPU).opSHX, SHY: (*CPU).opSHY, TAS: (*CPU).opTAS,
	JAM: (*CPU).opJAM,
}

// opcodeTable is the 256-entry decode table: every byte 0x00..0xff has an
// entry, undocumented opcodes included. Built once at package init from
// data (metadata) and mnemonicExec (bodies, implemented across the
// ops_*.go files).
var opcodeTable [256]Instruction

// Lookup returns the decode-table entry for opcode. The returned pointer
// is to shared, immutable table storage.
func Lookup(opcode byte) *Instruction { return &opcodeTable[opcode] }

func init() {
	for _, d := range data {
		fn, ok := mnemonicExec[d.mnemonic]
		if !ok {
			panic("nes6502: no implementation registered for mnemonic " + d.mnemonic.String())
		}
		opcodeTable[d.opcode] = Instruction{
			Mnemonic:    d.mnemonic,
			Mode:        d.mode,
			Opcode:      d.opcode,
			Length:      d.length,
			BaseCycles:  d.cycles,
			BPCycles:    d.bpcycles,
			Accumulator: d.accumulator,
			exec:        fn,
		}
	}
}
