// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/nes6502"

// debugHandler relays breakpoint notifications from the attached
// nes6502.Debugger back to the Host that owns it.
type debugHandler struct {
	host *Host
}

func newDebugHandler(h *Host) *debugHandler {
	return &debugHandler{host: h}
}

func (d *debugHandler) OnBreakpoint(cpu *nes6502.CPU, addr uint16) {
	d.host.breakHit = true
	d.host.printf("Breakpoint hit at $%04X.\n", addr)
}

func (d *debugHandler) OnDataBreakpoint(cpu *nes6502.CPU, addr uint16, v byte) {
	d.host.breakHit = true
	d.host.printf("Data breakpoint hit at $%04X (value $%02X written).\n", addr, v)
}
