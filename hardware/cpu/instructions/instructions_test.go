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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher11/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher11/test"
)

func TestDecodeDoubleOperand(t *testing.T) {
	// mov #5,r0 is encoded as 012700 (the immediate word follows separately)
	ins, err := instructions.Decode(0o012700)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operation == instructions.Mov, true)
	test.Equate(t, ins.SrcMode, 2)
	test.Equate(t, ins.SrcReg, 7)
	test.Equate(t, ins.DstMode, 0)
	test.Equate(t, ins.DstReg, 0)

	// cmp (r1)+,-(r2)
	ins, err = instructions.Decode(0o022142)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operation == instructions.Cmp, true)
	test.Equate(t, ins.SrcMode, 2)
	test.Equate(t, ins.SrcReg, 1)
	test.Equate(t, ins.DstMode, 4)
	test.Equate(t, ins.DstReg, 2)

	// add r1,r0
	ins, err = instructions.Decode(0o060100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operation == instructions.Add, true)

	// sub r1,r0
	ins, err = instructions.Decode(0o160100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operation == instructions.Sub, true)
}

func TestDecodePrecedence(t *testing.T) {
	// 000000 is HALT and nothing else
	ins, err := instructions.Decode(0o000000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operation == instructions.Halt, true)

	// the shift instructions live inside what would otherwise be unused
	// space. they must match before anything shorter.
	ins, err = instructions.Decode(0o006200)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operation == instructions.Asr, true)
	test.Equate(t, ins.DstMode, 0)
	test.Equate(t, ins.DstReg, 0)

	ins, err = instructions.Decode(0o006311)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operation == instructions.Asl, true)
	test.Equate(t, ins.DstMode, 1)
	test.Equate(t, ins.DstReg, 1)

	// branches are an 8bit prefix, not a 4bit one. 000400 is BR, not part
	// of the MOV space.
	ins, err = instructions.Decode(0o000400)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operation == instructions.Br, true)
	test.Equate(t, int(ins.BranchOffset), 0)

	ins, err = instructions.Decode(0o001177)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operation == instructions.Bne, true)
	test.Equate(t, int(ins.BranchOffset), 127)

	ins, err = instructions.Decode(0o001600)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operation == instructions.Beq, true)
	test.Equate(t, int(ins.BranchOffset), -128)
}

func TestDecodeSob(t *testing.T) {
	// sob r0,.-0 word is 077001 -> reg 0, offset 1
	ins, err := instructions.Decode(0o077001)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Defn.Operation == instructions.Sob, true)
	test.Equate(t, ins.Reg, 0)
	test.Equate(t, ins.Offset, 1)

	ins, err = instructions.Decode(0o077577)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Reg, 5)
	test.Equate(t, ins.Offset, 0o77)
}

func TestDecodeUnknown(t *testing.T) {
	// a selection of real PDP-11 instructions that are outside the
	// simulated subset
	for _, w := range []uint16{
		0o000001, // WAIT
		0o000240, // NOP
		0o004767, // JSR
		0o100400, // BMI
		0o005000, // CLR
		0o040000, // BIC space
		0o070000, // MUL space
	} {
		_, err := instructions.Decode(w)
		test.ExpectedFailure(t, err)
	}
}
