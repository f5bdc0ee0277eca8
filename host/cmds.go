// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/nes6502"
	"github.com/beevik/nes6502/disasm"
)

func (h *Host) cmdReg(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.displayRegisters()
		return nil
	}
	if len(c.Args) != 2 {
		h.println("Syntax: reg [<register> <value>]")
		return nil
	}

	v, err := parseAddr(c.Args[1])
	if err != nil {
		h.printf("%v.\n", err)
		return nil
	}

	switch strings.ToLower(c.Args[0]) {
	case "a":
		h.cpu.Reg.A = byte(v)
	case "x":
		h.cpu.Reg.X = byte(v)
	case "y":
		h.cpu.Reg.Y = byte(v)
	case "s", "sp":
		h.cpu.Reg.S = byte(v)
	case "pc":
		h.cpu.Reg.PC = v
	case "p":
		h.cpu.P = nes6502.Status(byte(v))
	default:
		h.printf("Unknown register '%s'.\n", c.Args[0])
		return nil
	}
	h.displayRegisters()
	return nil
}

func (h *Host) displayRegisters() {
	r := h.cpu.Reg
	h.printf("A:%02X X:%02X Y:%02X S:%02X PC:%04X P:%02X [%s]\n",
		r.A, r.X, r.Y, r.S, r.PC, byte(h.cpu.P), flagString(h.cpu.P))
}

func flagString(p nes6502.Status) string {
	flags := []struct {
		bit  bool
		name byte
	}{
		{p.IsNegative(), 'N'},
		{p.IsOverflow(), 'V'},
		{true, '-'},
		{p.IsBreak(), 'B'},
		{p.IsDecimal(), 'D'},
		{p.IsInterrupt(), 'I'},
		{p.IsZero(), 'Z'},
		{p.IsCarry(), 'C'},
	}
	b := make([]byte, len(flags))
	for i, f := range flags {
		if f.bit {
			b[i] = f.name
		} else {
			b[i] = '.'
		}
	}
	return string(b)
}

func (h *Host) cmdStep(c cmd.Selection) error {
	count := h.settings.StepCount
	if len(c.Args) > 0 {
		n, err := strconv.Atoi(c.Args[0])
		if err != nil {
			h.printf("Invalid step count '%s'.\n", c.Args[0])
			return nil
		}
		count = n
	}

	for i := 0; i < count && !h.cpu.Halted(); i++ {
		pc := h.cpu.Reg.PC
		h.cpu.Step()
		if h.interactive {
			line, _ := disasm.Disassemble(h.ram, pc)
			h.printf("%04X  %s\n", pc, line)
		}
	}
	if h.cpu.Halted() {
		h.println("CPU halted (JAM).")
	}
	return nil
}

func (h *Host) cmdRun(c cmd.Selection) error {
	h.breakHit = false
	h.interrupted = false
	for !h.cpu.Halted() && !h.breakHit && !h.interrupted {
		h.cpu.Step()
	}
	switch {
	case h.cpu.Halted():
		h.println("CPU halted (JAM).")
	case h.interrupted:
		h.println("Interrupted.")
	}
	h.displayRegisters()
	return nil
}

func (h *Host) cmdReset(c cmd.Selection) error {
	h.cpu.Reset()
	h.displayRegisters()
	return nil
}

func (h *Host) cmdNMI(c cmd.Selection) error {
	h.cpu.NMI()
	h.println("NMI requested.")
	return nil
}

func (h *Host) cmdIRQ(c cmd.Selection) error {
	if len(c.Args) != 1 {
		h.println("Syntax: irq <on|off>")
		return nil
	}
	on, err := stringToBool(c.Args[0])
	if err != nil {
		h.printf("%v.\n", err)
		return nil
	}
	h.cpu.SetIRQ(on)
	return nil
}

func (h *Host) cmdMemRead(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.println("Syntax: mem read <address> [<count>]")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v.\n", err)
		return nil
	}
	count := h.settings.MemDumpBytes
	if len(c.Args) > 1 {
		n, err := strconv.Atoi(c.Args[1])
		if err != nil {
			h.printf("Invalid count '%s'.\n", c.Args[1])
			return nil
		}
		count = n
	}

	for offset := 0; offset < count; offset += 16 {
		line := addr + uint16(offset)
		n := min(16, count-offset)
		h.printf("%04X  ", line)
		buf := make([]byte, n)
		for i := 0; i < n; i++ {
			buf[i] = h.ram.ReadByte(line + uint16(i))
			h.printf("%02X ", buf[i])
		}
		h.print(strings.Repeat("   ", 16-n))
		h.print(" ")
		for _, b := range buf {
			h.print(string(toPrintableChar(b)))
		}
		h.println()
	}
	return nil
}

func (h *Host) cmdMemWrite(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.println("Syntax: mem write <address> <byte> [<byte> ...]")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v.\n", err)
		return nil
	}
	for i, s := range c.Args[1:] {
		v, err := parseByte(s)
		if err != nil {
			h.printf("%v.\n", err)
			return nil
		}
		h.ram.WriteByte(addr+uint16(i), v)
	}
	return nil
}

func (h *Host) cmdBreakList(c cmd.Selection) error {
	addrs := h.debugger.Breakpoints()
	if len(addrs) == 0 {
		h.println("No breakpoints set.")
		return nil
	}
	for _, addr := range addrs {
		h.printf("$%04X\n", addr)
	}
	return nil
}

func (h *Host) cmdBreakAdd(c cmd.Selection) error {
	if len(c.Args) != 1 {
		h.println("Syntax: break add <address>")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v.\n", err)
		return nil
	}
	h.debugger.AddBreakpoint(addr)
	return nil
}

func (h *Host) cmdBreakRemove(c cmd.Selection) error {
	if len(c.Args) != 1 {
		h.println("Syntax: break remove <address>")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		h.printf("%v.\n", err)
		return nil
	}
	h.debugger.RemoveBreakpoint(addr)
	return nil
}

func (h *Host) cmdTrace(c cmd.Selection) error {
	if len(c.Args) != 1 {
		h.println("Syntax: trace <on|off>")
		return nil
	}
	on, err := stringToBool(c.Args[0])
	if err != nil {
		h.printf("%v.\n", err)
		return nil
	}
	h.settings.TraceEnabled = on
	if on {
		h.cpu.Tracer = h.logger
	} else {
		h.cpu.Tracer = nil
	}
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.settings.Display(h.output)
		h.flush()
		return nil
	}
	if len(c.Args) != 2 {
		h.println("Syntax: set [<setting> <value>]")
		return nil
	}
	if err := h.settings.Set(c.Args[0], c.Args[1]); err != nil {
		h.printf("%v.\n", err)
		return nil
	}
	if h.settings.TraceEnabled {
		h.cpu.Tracer = h.logger
	} else {
		h.cpu.Tracer = nil
	}
	return nil
}
