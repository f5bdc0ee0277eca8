// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host implements an interactive monitor for the nes6502 CPU
// core: a command-line front end that can load a memory image, step or
// run the CPU, inspect and modify registers and memory, manage
// breakpoints, and log an instruction trace.
package host

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/nes6502"
	"github.com/beevik/nes6502/disasm"
)

var cmds *cmd.Tree

func init() {
	cmds = cmd.NewTree("nes6502", []cmd.Command{
		{
			Name:     "help",
			Shortcut: "?",
			Brief:    "Display help for a command",
			HelpText: "help [<command>]",
			Data:     (*Host).cmdHelp,
		},
		{
			Name:  "reg",
			Brief: "Display or set a register",
			Description: "With no arguments, display all registers." +
				" With two arguments, set the named register" +
				" (a, x, y, s, pc, p) to a value.",
			HelpText: "reg [<register> <value>]",
			Data:     (*Host).cmdReg,
		},
		{
			Name:     "step",
			Shortcut: "s",
			Brief:    "Step the CPU",
			Description: "Execute the requested number of instructions" +
				" (default: the step-count setting). In interactive" +
				" mode, display the disassembly of each one executed.",
			HelpText: "step [<count>]",
			Data:     (*Host).cmdStep,
		},
		{
			Name:  "run",
			Brief: "Run until a breakpoint or JAM",
			Description: "Execute instructions until the CPU halts on an" +
				" illegal JAM opcode or a breakpoint fires.",
			HelpText: "run",
			Data:     (*Host).cmdRun,
		},
		{
			Name:     "reset",
			Brief:    "Reset the CPU",
			HelpText: "reset",
			Data:     (*Host).cmdReset,
		},
		{
			Name:     "nmi",
			Brief:    "Trigger a non-maskable interrupt",
			HelpText: "nmi",
			Data:     (*Host).cmdNMI,
		},
		{
			Name:     "irq",
			Brief:    "Assert or clear the IRQ line",
			HelpText: "irq <on|off>",
			Data:     (*Host).cmdIRQ,
		},
		{
			Name:     "mem",
			Shortcut: "m",
			Brief:    "Memory commands",
			Subcommands: cmd.NewTree("Memory", []cmd.Command{
				{
					Name:     "read",
					Shortcut: "r",
					Brief:    "Read a range of memory",
					HelpText: "mem read <address> [<count>]",
					Data:     (*Host).cmdMemRead,
				},
				{
					Name:     "write",
					Shortcut: "w",
					Brief:    "Write bytes to memory",
					HelpText: "mem write <address> <byte> [<byte> ...]",
					Data:     (*Host).cmdMemWrite,
				},
			}),
		},
		{
			Name:     "break",
			Shortcut: "b",
			Brief:    "Breakpoint commands",
			Subcommands: cmd.NewTree("Breakpoint", []cmd.Command{
				{
					Name:     "list",
					Brief:    "List breakpoints",
					HelpText: "break list",
					Data:     (*Host).cmdBreakList,
				},
				{
					Name:     "add",
					Brief:    "Add a breakpoint",
					HelpText: "break add <address>",
					Data:     (*Host).cmdBreakAdd,
				},
				{
					Name:     "remove",
					Brief:    "Remove a breakpoint",
					HelpText: "break remove <address>",
					Data:     (*Host).cmdBreakRemove,
				},
			}),
		},
		{
			Name:     "trace",
			Brief:    "Enable or disable instruction tracing",
			HelpText: "trace <on|off>",
			Data:     (*Host).cmdTrace,
		},
		{
			Name:     "set",
			Brief:    "Display or change a setting",
			HelpText: "set [<setting> <value>]",
			Data:     (*Host).cmdSet,
		},
		{
			Name:     "quit",
			Shortcut: "q",
			Brief:    "Quit the monitor",
			HelpText: "quit",
			Data:     (*Host).cmdQuit,
		},
	})
}

// Host holds a complete emulated machine: a 64K RAM bank, a CPU bound to
// it, a debugger, and the state needed to drive an interactive or
// scripted command session.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	quit        bool

	ram      *nes6502.RAM
	cpu      *nes6502.CPU
	debugger *nes6502.Debugger
	logger   *disasm.Logger
	settings *settings

	lastCmd     *cmd.Selection
	breakHit    bool
	interrupted bool
}

// New creates a host with a fresh 64K RAM bank and an NES-mode CPU bound
// to it.
func New() *Host {
	h := &Host{settings: newSettings()}
	h.ram = nes6502.NewRAM()
	h.cpu = nes6502.NewCPU(nes6502.NES, h.ram)
	h.debugger = nes6502.NewDebugger(newDebugHandler(h))
	h.cpu.Debugger = h.debugger
	h.logger = disasm.NewLogger(nil, h.ram)
	return h
}

// CPU returns the host's emulated CPU, primarily so a caller can preload
// memory before entering the command loop.
func (h *Host) CPU() *nes6502.CPU { return h.cpu }

// RAM returns the host's memory bank.
func (h *Host) RAM() *nes6502.RAM { return h.ram }

// Interrupt asks a currently executing "run" command to stop at the next
// instruction boundary. Safe to call from a signal handler goroutine.
func (h *Host) Interrupt() { h.interrupted = true }

// RunCommands reads commands from r, one per line, and writes results to
// w. In interactive mode a prompt is shown; in either mode an empty line
// repeats the previous command.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive
	h.logger.Out = h.output

	for !h.quit {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		var sel cmd.Selection
		if line != "" {
			sel, err = cmds.Lookup(line)
			switch err {
			case cmd.ErrNotFound:
				h.println("Command not found.")
				continue
			case cmd.ErrAmbiguous:
				h.println("Command is ambiguous.")
				continue
			case nil:
			default:
				h.printf("ERROR: %v.\n", err)
				continue
			}
		} else if h.lastCmd != nil {
			sel = *h.lastCmd
		}

		if sel.Command == nil {
			continue
		}
		h.lastCmd = &sel

		handler := sel.Command.Data.(func(*Host, cmd.Selection) error)
		if err := handler(h, sel); err != nil {
			break
		}
	}
}

func (h *Host) print(args ...interface{})            { fmt.Fprint(h.output, args...) }
func (h *Host) printf(format string, a ...interface{}) { fmt.Fprintf(h.output, format, a...); h.flush() }
func (h *Host) println(args ...interface{})           { fmt.Fprintln(h.output, args...); h.flush() }
func (h *Host) flush()                                { h.output.Flush() }

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return strings.TrimSpace(h.input.Text()), nil
	}
	if err := h.input.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
	}
}

func (h *Host) displayCommands(t *cmd.Tree) {
	h.printf("%s commands:\n", t.Title)
	for _, c := range t.Commands {
		if c.Brief != "" {
			h.printf("    %-15s %s\n", c.Name, c.Brief)
		}
	}
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.displayCommands(cmds)
		return nil
	}
	sel, err := cmds.Lookup(strings.Join(c.Args, " "))
	if err != nil {
		h.printf("%v.\n", err)
		return nil
	}
	if sel.Command.Subcommands != nil {
		h.displayCommands(sel.Command.Subcommands)
		return nil
	}
	if sel.Command.HelpText != "" {
		h.printf("Syntax: %s\n", sel.Command.HelpText)
	}
	if sel.Command.Description != "" {
		h.println(sel.Command.Description)
	}
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	h.quit = true
	return io.EOF
}
