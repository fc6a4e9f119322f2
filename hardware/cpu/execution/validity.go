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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher11/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition. Intended for use by tests to
// make sure the implementation hasn't gone off the rails.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("execution: result not finalised (bad opcode?)")
	}

	if r.Instruction.Defn == nil {
		return fmt.Errorf("execution: result has no instruction definition")
	}

	defn := r.Instruction.Defn

	// every instruction fetches at least its own word
	if r.InstructionFetches < 1 {
		return fmt.Errorf("execution: %s executed without an instruction fetch", defn.Mnemonic)
	}

	// instructions that must never touch memory
	switch defn.Class {
	case instructions.System, instructions.Branch, instructions.SubtractBranch:
		if r.MemoryReads != 0 || r.MemoryWrites != 0 {
			return fmt.Errorf("execution: %s made a data memory access", defn.Mnemonic)
		}
	}

	// comparison discards its result; it must never write
	if defn.Operation == instructions.Cmp && r.MemoryWrites != 0 {
		return fmt.Errorf("execution: cmp wrote to memory")
	}

	// only branch classes can report a taken branch
	if r.Taken && defn.Class != instructions.Branch && defn.Class != instructions.SubtractBranch {
		return fmt.Errorf("execution: %s reported a taken branch", defn.Mnemonic)
	}

	return nil
}
