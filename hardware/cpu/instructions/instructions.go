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

package instructions

import "fmt"

// Operation identifies one of the instructions in the simulated subset.
type Operation int

// List of operations in the simulated subset.
const (
	Halt Operation = iota
	Mov
	Cmp
	Add
	Sub
	Asr
	Asl
	Br
	Bne
	Beq
	Sob
)

// Class categorises an instruction by its encoding format. The format
// decides which fields of the Instruction type are meaningful.
type Class int

// List of encoding classes.
const (
	// HALT. no operand fields at all.
	System Class = iota

	// [opcode(4) | src_mode(3) | src_reg(3) | dst_mode(3) | dst_reg(3)]
	DoubleOperand

	// [opcode(10) | dst_mode(3) | dst_reg(3)]
	SingleOperand

	// [opcode(8) | signed byte offset(8)]
	Branch

	// [opcode(7) | reg(3) | offset(6)]. the offset is unsigned and always
	// backward.
	SubtractBranch
)

func (c Class) String() string {
	switch c {
	case System:
		return "system"
	case DoubleOperand:
		return "double operand"
	case SingleOperand:
		return "single operand"
	case Branch:
		return "branch"
	case SubtractBranch:
		return "subtract and branch"
	}
	return "unknown class"
}

// Definition defines each instruction in the instruction set; one per
// operation.
type Definition struct {
	Operation Operation
	Mnemonic  string
	Class     Class

	// the prefix match for this instruction. a word w encodes the
	// instruction when w&mask == match
	mask  uint16
	match uint16
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%s [%s]", defn.Mnemonic, defn.Class)
}

// the decode table. matching is longest prefix first so the ordering of
// entries matters: HALT (16 bits), then the shifts (10 bits), branches (8
// bits), SOB (7 bits) and finally the double operand instructions (4 bits).
var definitions = []Definition{
	{Operation: Halt, Mnemonic: "halt", Class: System, mask: 0xffff, match: 0o000000},
	{Operation: Asr, Mnemonic: "asr", Class: SingleOperand, mask: 0xffc0, match: 0o006200},
	{Operation: Asl, Mnemonic: "asl", Class: SingleOperand, mask: 0xffc0, match: 0o006300},
	{Operation: Br, Mnemonic: "br", Class: Branch, mask: 0xff00, match: 0o000400},
	{Operation: Bne, Mnemonic: "bne", Class: Branch, mask: 0xff00, match: 0o001000},
	{Operation: Beq, Mnemonic: "beq", Class: Branch, mask: 0xff00, match: 0o001400},
	{Operation: Sob, Mnemonic: "sob", Class: SubtractBranch, mask: 0xfe00, match: 0o077000},
	{Operation: Mov, Mnemonic: "mov", Class: DoubleOperand, mask: 0xf000, match: 0o010000},
	{Operation: Cmp, Mnemonic: "cmp", Class: DoubleOperand, mask: 0xf000, match: 0o020000},
	{Operation: Add, Mnemonic: "add", Class: DoubleOperand, mask: 0xf000, match: 0o060000},
	{Operation: Sub, Mnemonic: "sub", Class: DoubleOperand, mask: 0xf000, match: 0o160000},
}
