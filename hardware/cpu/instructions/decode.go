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

// Instruction is a fully decoded instruction word. Only the fields implied
// by the definition's Class are meaningful; the others are left at zero.
type Instruction struct {
	Defn *Definition

	// the undecoded instruction word
	Word uint16

	// DoubleOperand
	SrcMode uint16
	SrcReg  uint16

	// DoubleOperand and SingleOperand
	DstMode uint16
	DstReg  uint16

	// Branch. sign extended from the low byte of the instruction word.
	BranchOffset int8

	// SubtractBranch
	Reg    uint16
	Offset uint16
}

// Decode an instruction word into an Instruction record. Matching is longest
// prefix first, meaning that for example 000400 decodes as BR and never as a
// malformed MOV.
//
// A word that matches no prefix is an error. The error message names the
// offending word; the caller knows the program counter and is expected to
// wrap the error with it.
func Decode(word uint16) (Instruction, error) {
	for i := range definitions {
		defn := &definitions[i]
		if word&defn.mask != defn.match {
			continue
		}

		ins := Instruction{Defn: defn, Word: word}

		switch defn.Class {
		case System:
			// no fields

		case DoubleOperand:
			ins.SrcMode = (word >> 9) & 0x07
			ins.SrcReg = (word >> 6) & 0x07
			ins.DstMode = (word >> 3) & 0x07
			ins.DstReg = word & 0x07

		case SingleOperand:
			ins.DstMode = (word >> 3) & 0x07
			ins.DstReg = word & 0x07

		case Branch:
			ins.BranchOffset = int8(word & 0xff)

		case SubtractBranch:
			ins.Reg = (word >> 6) & 0x07
			ins.Offset = word & 0x3f
		}

		return ins, nil
	}

	return Instruction{}, fmt.Errorf("unknown instruction (%06o)", word)
}
