// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes6502

// Debugger tracks address and data breakpoints against a running CPU and
// notifies a Handler when one fires. It is attached via CPU.Debugger and
// is otherwise completely passive: it never alters execution.
type Debugger struct {
	Handler         DebuggerHandler
	breakpoints     map[uint16]*breakpoint
	dataBreakpoints map[uint16]*dataBreakpoint
}

// DebuggerHandler receives breakpoint notifications.
type DebuggerHandler interface {
	OnBreakpoint(cpu *CPU, addr uint16)
	OnDataBreakpoint(cpu *CPU, addr uint16, v byte)
}

type breakpoint struct {
	addr    uint16
	enabled bool
}

type dataBreakpoint struct {
	addr        uint16
	enabled     bool
	conditional bool
	value       byte // if conditional == true
}

// NewDebugger creates a debugger that reports to handler.
func NewDebugger(handler DebuggerHandler) *Debugger {
	return &Debugger{
		Handler:         handler,
		breakpoints:     make(map[uint16]*breakpoint),
		dataBreakpoints: make(map[uint16]*dataBreakpoint),
	}
}

// AddBreakpoint sets a breakpoint at addr. A repeated call on the same
// address replaces the existing one.
func (d *Debugger) AddBreakpoint(addr uint16) {
	d.breakpoints[addr] = &breakpoint{addr: addr, enabled: true}
}

// RemoveBreakpoint removes the breakpoint at addr, if any.
func (d *Debugger) RemoveBreakpoint(addr uint16) {
	delete(d.breakpoints, addr)
}

// EnableBreakpoint re-enables a previously disabled breakpoint.
func (d *Debugger) EnableBreakpoint(addr uint16) {
	if b, ok := d.breakpoints[addr]; ok {
		b.enabled = true
	}
}

// DisableBreakpoint disables a breakpoint without removing it.
func (d *Debugger) DisableBreakpoint(addr uint16) {
	if b, ok := d.breakpoints[addr]; ok {
		b.enabled = false
	}
}

// Breakpoints returns the set of currently enabled breakpoint addresses.
func (d *Debugger) Breakpoints() []uint16 {
	addrs := make([]uint16, 0, len(d.breakpoints))
	for a, b := range d.breakpoints {
		if b.enabled {
			addrs = append(addrs, a)
		}
	}
	return addrs
}

// AddDataBreakpoint adds an unconditional data breakpoint at addr: it
// fires on any write to that address.
func (d *Debugger) AddDataBreakpoint(addr uint16) {
	d.dataBreakpoints[addr] = &dataBreakpoint{addr: addr, enabled: true}
}

// AddConditionalDataBreakpoint adds a data breakpoint at addr that only
// fires when the byte written equals v.
func (d *Debugger) AddConditionalDataBreakpoint(addr uint16, v byte) {
	d.dataBreakpoints[addr] = &dataBreakpoint{addr: addr, enabled: true, conditional: true, value: v}
}

// RemoveDataBreakpoint removes the data breakpoint at addr, if any.
func (d *Debugger) RemoveDataBreakpoint(addr uint16) {
	delete(d.dataBreakpoints, addr)
}

// EnableDataBreakpoint re-enables a previously disabled data breakpoint.
func (d *Debugger) EnableDataBreakpoint(addr uint16) {
	if b, ok := d.dataBreakpoints[addr]; ok {
		b.enabled = true
	}
}

// DisableDataBreakpoint disables a data breakpoint without removing it.
func (d *Debugger) DisableDataBreakpoint(addr uint16) {
	if b, ok := d.dataBreakpoints[addr]; ok {
		b.enabled = false
	}
}

// onStep is called once per completed Step(), with the PC the executed
// instruction started at.
func (d *Debugger) onStep(cpu *CPU, pcBefore uint16) {
	if d.Handler == nil {
		return
	}
	if b, ok := d.breakpoints[pcBefore]; ok && b.enabled {
		d.Handler.OnBreakpoint(cpu, pcBefore)
	}
}

// onDataStore is called by CPU.write for every operand store, so data
// breakpoints can observe writes regardless of addressing mode. Stack
// pushes bypass CPU.write and are not reported.
func (d *Debugger) onDataStore(cpu *CPU, addr uint16, v byte) {
	if d.Handler == nil {
		return
	}
	if b, ok := d.dataBreakpoints[addr]; ok && b.enabled {
		if !b.conditional || b.value == v {
			d.Handler.OnDataBreakpoint(cpu, addr, v)
		}
	}
}
