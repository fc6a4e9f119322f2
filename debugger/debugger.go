// This file is part of Gopher11.
//
// Gopher11 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher11 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher11.  If not, see <https://www.gnu.org/licenses/>.

// Package debugger implements a simple interactive debugger for the
// simulated machine: single stepping, free running, and inspection of
// registers, memory and the cache directory.
package debugger

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher11/debugger/terminal"
	"github.com/jetsetilly/gopher11/hardware"
	"github.com/jetsetilly/gopher11/hardware/cpu"
	"github.com/jetsetilly/gopher11/logger"
)

const helpText = `commands:
  STEP [n]        execute the next instruction (or the next n instructions)
  RUN             run until the machine halts or fails
  REGISTERS       show registers and condition codes
  MEMORY a [n]    show n words of memory from octal byte address a
  CACHE           show cache directory statistics
  TRACE           toggle the instruction trace during STEP and RUN
  LAST            show details of the last executed instruction
  LOG             show the debugging log
  HELP            this help
  QUIT            leave the debugger`

// Debugger is the basic debugging front end for the simulated machine.
type Debugger struct {
	sys  *hardware.PDP11
	term terminal.Terminal

	// whether to print a trace line for every executed instruction
	trace bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(sys *hardware.PDP11, term terminal.Terminal) *Debugger {
	return &Debugger{
		sys:   sys,
		term:  term,
		trace: true,
	}
}

// Start the interactive debugging loop. The loop ends with the QUIT command
// or when the terminal input is closed.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	logger.Log("debugger", "debugging session started")

	for {
		prompt := fmt.Sprintf("[%06o] ", dbg.sys.CPU.Reg[cpu.PC].Address())

		input, err := dbg.term.TermRead(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		quit, err := dbg.parseCommand(input)
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
		if quit {
			return nil
		}
	}
}

// parseCommand dispatches a single debugger command. The returned bool
// indicates that the debugging session should end.
func (dbg *Debugger) parseCommand(input string) (bool, error) {
	fields := strings.Fields(strings.ToUpper(input))
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "STEP", "S":
		n := 1
		if len(fields) > 1 {
			var err error
			n, err = strconv.Atoi(fields[1])
			if err != nil || n < 1 {
				return false, fmt.Errorf("STEP requires a positive count")
			}
		}
		for i := 0; i < n; i++ {
			if err := dbg.step(); err != nil {
				return false, err
			}
			if dbg.sys.CPU.Halted {
				break
			}
		}

	case "RUN", "R":
		for !dbg.sys.CPU.Halted {
			if err := dbg.step(); err != nil {
				return false, err
			}
		}

	case "REGISTERS", "REG":
		dbg.printRegisters()

	case "MEMORY", "M":
		if len(fields) < 2 {
			return false, fmt.Errorf("MEMORY requires an octal byte address")
		}
		address, err := strconv.ParseUint(fields[1], 8, 16)
		if err != nil {
			return false, fmt.Errorf("not an octal address (%s)", fields[1])
		}
		n := 8
		if len(fields) > 2 {
			n, err = strconv.Atoi(fields[2])
			if err != nil || n < 1 {
				return false, fmt.Errorf("MEMORY count must be a positive number")
			}
		}
		dbg.printMemory(uint16(address), n)

	case "CACHE":
		if dbg.sys.Cache == nil {
			return false, fmt.Errorf("the machine is running without the cache model")
		}
		for _, l := range strings.Split(strings.TrimSuffix(dbg.sys.Cache.Counters.String(), "\n"), "\n") {
			dbg.term.TermPrintLine(terminal.StyleOutput, l)
		}

	case "TRACE":
		dbg.trace = !dbg.trace
		if dbg.trace {
			dbg.term.TermPrintLine(terminal.StyleOutput, "instruction trace on")
		} else {
			dbg.term.TermPrintLine(terminal.StyleOutput, "instruction trace off")
		}

	case "LAST", "L":
		dbg.printLast()

	case "LOG":
		s := &strings.Builder{}
		logger.Write(s)
		for _, l := range strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n") {
			dbg.term.TermPrintLine(terminal.StyleOutput, l)
		}

	case "HELP", "H":
		for _, l := range strings.Split(helpText, "\n") {
			dbg.term.TermPrintLine(terminal.StyleHelp, l)
		}

	case "QUIT", "Q":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command (%s). try HELP", fields[0])
	}

	return false, nil
}

// step a single instruction, printing the trace and reacting to a halt.
func (dbg *Debugger) step() error {
	if dbg.sys.CPU.Halted {
		return fmt.Errorf("the machine has halted")
	}

	if err := dbg.sys.Step(); err != nil {
		return err
	}

	if dbg.trace {
		dbg.term.TermPrintLine(terminal.StyleTrace, dbg.sys.CPU.LastResult.String())
	}

	if dbg.sys.CPU.Halted {
		dbg.term.TermPrintLine(terminal.StyleOutput, "machine halted")
		for _, l := range strings.Split(strings.TrimSuffix(dbg.sys.CPU.Counters.String(), "\n"), "\n") {
			dbg.term.TermPrintLine(terminal.StyleOutput, l)
		}
	}

	return nil
}

func (dbg *Debugger) printRegisters() {
	s := &strings.Builder{}
	for i := range dbg.sys.CPU.Reg {
		s.WriteString(dbg.sys.CPU.Reg[i].String())
		if i%4 == 3 {
			dbg.term.TermPrintLine(terminal.StyleOutput, strings.TrimSpace(s.String()))
			s.Reset()
		} else {
			s.WriteString(" ")
		}
	}
	dbg.term.TermPrintLine(terminal.StyleOutput,
		fmt.Sprintf("%s: %s", dbg.sys.CPU.Status.Label(), dbg.sys.CPU.Status.String()))
}

func (dbg *Debugger) printMemory(address uint16, n int) {
	for i := 0; i < n; i++ {
		a := address + uint16(2*i)

		v, err := dbg.sys.Mem.Peek(a)
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
			return
		}

		dbg.term.TermPrintLine(terminal.StyleOutput, fmt.Sprintf("%07o  %06o", a, v))
	}
}

func (dbg *Debugger) printLast() {
	res := dbg.sys.CPU.LastResult
	if !res.Final {
		dbg.term.TermPrintLine(terminal.StyleOutput, "no instruction has completed yet")
		return
	}

	dbg.term.TermPrintLine(terminal.StyleOutput, res.String())
	dbg.term.TermPrintLine(terminal.StyleOutput, fmt.Sprintf("nzvc bits = %s", res.Status.Bits()))
	dbg.printRegisters()
}
