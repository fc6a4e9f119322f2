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
	"github.com/jetsetilly/gopher11/hardware/cpu/registers"
)

// Operand records how one operand of the last instruction resolved. The
// trace printer and the tests consume this; the CPU itself keeps no other
// record of the resolution.
type Operand struct {
	Mode uint16
	Reg  uint16

	// the effective byte address the operand resolved to. not meaningful
	// for register mode (mode 0)
	Address    uint16
	HasAddress bool

	// the operand value, once it is known. for a MOV destination the value
	// is only ever written, never read, so Known is set by the write
	Value uint16
	Known bool
}

// Result records the execution details of the most recently executed
// instruction. It is the one place the trace, the debugger and the tests go
// to for information about what just happened.
type Result struct {
	// byte address of the instruction word
	Address uint16

	// the undecoded instruction word
	Word uint16

	// the decoded instruction. Instruction.Defn is nil if decoding failed
	Instruction instructions.Instruction

	// resolved operands. Src is meaningful only for double operand
	// instructions; Dst for double and single operand instructions
	Src Operand
	Dst Operand

	// the computed value, if any. for CMP this is the comparison result
	// that was thrown away
	Value uint16

	// branch instructions: whether the branch was taken
	Taken bool

	// condition codes at the end of the instruction
	Status registers.StatusRegister

	// number of words consumed from the instruction stream, including the
	// instruction word itself
	InstructionFetches int

	// number of data words read and written by the instruction
	MemoryReads  int
	MemoryWrites int

	// whether this data has been finalised
	Final bool
}

// Reset prepares the Result for a new instruction.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns the one line trace for the instruction, in the style of the
// original Clemson simulator traces.
func (r Result) String() string {
	if r.Instruction.Defn == nil {
		return fmt.Sprintf("at %07o: undecoded instruction (%06o)", r.Address, r.Word)
	}

	ins := r.Instruction

	switch ins.Defn.Class {
	case instructions.DoubleOperand:
		return fmt.Sprintf("at %07o: %s instruction sm %o, sr %o, dm %o, dr %o",
			r.Address, ins.Defn.Mnemonic, ins.SrcMode, ins.SrcReg, ins.DstMode, ins.DstReg)

	case instructions.SingleOperand:
		return fmt.Sprintf("at %07o: %s instruction dm %o, dr %o",
			r.Address, ins.Defn.Mnemonic, ins.DstMode, ins.DstReg)

	case instructions.Branch:
		return fmt.Sprintf("at %07o: %s instruction with offset %03o",
			r.Address, ins.Defn.Mnemonic, uint8(ins.BranchOffset))

	case instructions.SubtractBranch:
		return fmt.Sprintf("at %07o: %s instruction reg %o with offset %02o",
			r.Address, ins.Defn.Mnemonic, ins.Reg, ins.Offset)
	}

	return fmt.Sprintf("at %07o: %s instruction", r.Address, ins.Defn.Mnemonic)
}
