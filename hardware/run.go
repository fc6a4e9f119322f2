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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher11/hardware/cpu"
	"github.com/jetsetilly/gopher11/hardware/memory"
)

// PerformanceBrake is a standard value for limiting the frequency of
// expensive checks inside a Run() callback. A callback that needs to consult
// a clock, for example, can afford to do so only once every
// PerformanceBrake instructions.
const PerformanceBrake = 100

// Step executes a single instruction, first making sure the program counter
// still points inside memory. A program that runs off the end of memory
// without executing HALT is an error.
func (sys *PDP11) Step() error {
	if sys.CPU.Halted {
		return fmt.Errorf("pdp11: machine has halted")
	}

	if pc := sys.CPU.Reg[cpu.PC].Address(); pc >= memory.Size {
		return fmt.Errorf("pdp11: program counter has run off the end of memory (%06o)", pc)
	}

	return sys.CPU.ExecuteInstruction()
}

// Run the machine until it halts or fails. The onInstruction function, if
// not nil, is called after every completed instruction; it is how the trace
// printer and the debugger observe execution. Returning an error from
// onInstruction stops the machine.
func (sys *PDP11) Run(onInstruction func() error) error {
	if onInstruction == nil {
		onInstruction = func() error { return nil }
	}

	for !sys.CPU.Halted {
		if err := sys.Step(); err != nil {
			return err
		}

		if err := onInstruction(); err != nil {
			return err
		}
	}

	return nil
}
