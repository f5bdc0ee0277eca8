// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mon6502 is an interactive monitor for the nes6502 CPU core: it
// loads a raw memory image, then lets you step or run the CPU, inspect
// registers and memory, and manage breakpoints from a command prompt.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/beevik/nes6502/host"
	"github.com/beevik/term"
)

var (
	loadFile string
	loadAddr uint64
	startPC  string
)

func init() {
	var err error
	for i := 1; i < len(os.Args); i++ {
		switch {
		case strings.HasPrefix(os.Args[i], "-load="):
			loadFile = strings.TrimPrefix(os.Args[i], "-load=")
		case strings.HasPrefix(os.Args[i], "-addr="):
			loadAddr, err = strconv.ParseUint(strings.TrimPrefix(os.Args[i], "-addr="), 0, 16)
			if err != nil {
				exitOnError(fmt.Errorf("invalid -addr: %w", err))
			}
		case strings.HasPrefix(os.Args[i], "-pc="):
			startPC = strings.TrimPrefix(os.Args[i], "-pc=")
		}
	}
}

func main() {
	h := host.New()

	if loadFile != "" {
		data, err := os.ReadFile(loadFile)
		if err != nil {
			exitOnError(err)
		}
		h.RAM().LoadBytes(uint16(loadAddr), data)
	}

	if startPC != "" {
		pc, err := strconv.ParseUint(startPC, 0, 16)
		if err != nil {
			exitOnError(fmt.Errorf("invalid -pc: %w", err))
		}
		h.CPU().Reg.PC = uint16(pc)
	} else if loadFile != "" {
		h.CPU().Reg.PC = uint16(loadAddr)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		for range sig {
			h.Interrupt()
		}
	}()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	h.RunCommands(os.Stdin, os.Stdout, interactive)
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
