// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// Bus is the single mandatory external dependency of the CPU core: a total,
// infallible 8-bit read/write surface over a 16-bit address space. The CPU
// never performs I/O, opens files, or touches a clock; every address the
// core ever touches goes through Bus.
//
// The host owns the Bus and may share it among the CPU, PPU, APU and
// cartridge mapper. The CPU holds only a reference to it, never a lock: the
// host is responsible for driving components sequentially so that bus
// accesses stay totally ordered.
type Bus interface {
	ReadByte(addr uint16) byte
	WriteByte(addr uint16, v byte)
}

// mem is a thin façade over a Bus that knows how to resolve the effective
// address for each 6502 addressing mode and perform the underlying 8-bit
// fetches/stores. It holds no state of its own beyond the bus reference.
type mem struct {
	bus Bus
}

func (m mem) read(addr uint16) byte     { return m.bus.ReadByte(addr) }
func (m mem) write(addr uint16, v byte) { m.bus.WriteByte(addr, v) }

// readWordLE reads a little-endian 16-bit word from addr, addr+1.
func (m mem) readWordLE(addr uint16) uint16 {
	lo := m.read(addr)
	hi := m.read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// abs reads the 16-bit word at pc, advances pc by 2, and returns it.
func (m mem) abs(pc *uint16) uint16 {
	addr := m.readWordLE(*pc)
	*pc += 2
	return addr
}

// absIndexed is like abs, but adds idx (0..255) to the word with 16-bit
// carry, and reports whether the addition crossed a page boundary.
func (m mem) absIndexed(pc *uint16, idx byte) (addr uint16, pageCrossed bool) {
	base := m.abs(pc)
	addr = base + uint16(idx)
	pageCrossed = (addr & 0xff00) != (base & 0xff00)
	return addr, pageCrossed
}

// zpg reads one byte at pc, advances pc by 1, and returns it zero-extended.
func (m mem) zpg(pc *uint16) uint16 {
	addr := uint16(m.read(*pc))
	*pc++
	return addr
}

// zpgIndexed is like zpg, but adds idx modulo 256 (no carry into the high
// byte — zero-page addressing never leaves page 0).
func (m mem) zpgIndexed(pc *uint16, idx byte) uint16 {
	base := m.zpg(pc)
	return uint16(byte(base) + idx)
}

// indirect reads a 16-bit pointer at pc (advancing pc by 2), then reads the
// 16-bit word stored at that pointer. It replicates the original 6502's
// page-wrap bug: when the low byte of the pointer is 0xff, the high byte of
// the target is fetched from ptr & 0xff00 rather than ptr+1.
func (m mem) indirect(pc *uint16) uint16 {
	ptr := m.abs(pc)
	lo := m.read(ptr)
	var hiAddr uint16
	if ptr&0xff == 0xff {
		hiAddr = ptr & 0xff00
	} else {
		hiAddr = ptr + 1
	}
	hi := m.read(hiAddr)
	return uint16(lo) | uint16(hi)<<8
}

// indexedX reads LL at pc (advancing pc by 1), and returns the word stored
// at the zero-page location (LL+x)&0xff, with the high byte wrapping inside
// page 0 as well. Used for (indirect,X).
func (m mem) indexedX(pc *uint16, x byte) uint16 {
	ll := byte(m.zpg(pc))
	ll += x
	lo := m.read(uint16(ll))
	hi := m.read(uint16(byte(ll + 1)))
	return uint16(lo) | uint16(hi)<<8
}

// indexedIndirect reads LL at pc (advancing pc by 1), and returns the word
// stored at the zero-page location LL, (LL+1)&0xff. Used for (indirect),Y,
// which then adds Y with carry at the call site so the page-cross flag can
// be observed by the addressing-mode resolver.
func (m mem) indexedIndirect(pc *uint16) uint16 {
	ll := byte(m.zpg(pc))
	lo := m.read(uint16(ll))
	hi := m.read(uint16(byte(ll + 1)))
	return uint16(lo) | uint16(hi)<<8
}

// RAM is a read/write memory bank backing the full 16-bit address space. It
// is not required by the CPU core, but is provided as the default Bus
// implementation for tests and the monitor CLI.
type RAM struct {
	data []byte
}

// NewRAM creates a RAM bank covering the full 64K address space.
func NewRAM() *RAM {
	return &RAM{data: make([]byte, 65536)}
}

func (r *RAM) ReadByte(addr uint16) byte     { return r.data[addr] }
func (r *RAM) WriteByte(addr uint16, v byte) { r.data[addr] = v }

// LoadBytes copies data into the RAM bank starting at addr. It panics if the
// copy would run past the end of the address space.
func (r *RAM) LoadBytes(addr uint16, data []byte) {
	if int(addr)+len(data) > len(r.data) {
		panic("nes6502: RAM.LoadBytes overruns the address space")
	}
	copy(r.data[addr:], data)
}

// Bytes returns the live backing slice, primarily for tests that want to
// assert on memory contents after a run.
func (r *RAM) Bytes() []byte { return r.data }
