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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher11/hardware/cpu/execution"
	"github.com/jetsetilly/gopher11/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher11/hardware/cpu/registers"
	"github.com/jetsetilly/gopher11/hardware/memory/cpubus"
)

// PC is the index of the register that acts as the program counter.
const PC = 7

// SP is the index of the register that is, by convention, the stack pointer.
// The simulated subset attaches no special meaning to it.
const SP = 6

// CPU implements the simulated subset of the PDP-11 instruction set.
// Register logic is implemented by the Register type in the registers
// sub-package.
type CPU struct {
	Reg    [8]registers.Register
	Status registers.StatusRegister

	// the instruction stream is always read through mem. data accesses go
	// through data, which may be a snooping bus that reports traffic to the
	// cache directory. by default the two are the same bus.
	mem  cpubus.Bus
	data cpubus.Bus

	Counters Counters

	// the CPU has executed a HALT. requires a Reset()
	Halted bool

	// last result. updated field by field as the instruction executes so
	// that on error the partial record can still be inspected.
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Bus) *CPU {
	mc := &CPU{
		mem:  mem,
		data: mem,
	}
	for i := range mc.Reg {
		mc.Reg[i] = registers.NewRegister(0, fmt.Sprintf("R%d", i))
	}
	mc.Status = registers.NewStatusRegister()
	return mc
}

// PlumbDataBus replaces the bus used for data reads and writes. Instruction
// stream fetches are not affected.
func (mc *CPU) PlumbDataBus(data cpubus.Bus) {
	mc.data = data
}

// Reset reinitialises all registers, the condition codes and the counters.
// Execution begins at byte address zero.
func (mc *CPU) Reset() {
	for i := range mc.Reg {
		mc.Reg[i].Load(0)
	}
	mc.Status.Reset()
	mc.Counters.Reset()
	mc.Halted = false
	mc.LastResult.Reset()
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	for i := range mc.Reg {
		s.WriteString(mc.Reg[i].String())
		s.WriteString(" ")
	}
	s.WriteString(mc.Status.String())
	return s.String()
}

// fetchWord reads the word at the program counter and advances the counter
// by two. words consumed from the instruction stream count as instruction
// fetches, never as data reads, even when they hold an immediate operand or
// an index word.
func (mc *CPU) fetchWord() (uint16, error) {
	pc := mc.Reg[PC].Address()

	v, err := mc.mem.ReadWord(pc)
	if err != nil {
		return 0, err
	}

	mc.Reg[PC].Load(pc + 2)
	mc.Counters.InstFetches++
	mc.LastResult.InstructionFetches++

	return v, nil
}

// readData reads a word from the data bus, accounting for the reference at
// the point it happens.
func (mc *CPU) readData(address uint16) (uint16, error) {
	v, err := mc.data.ReadWord(address)
	if err != nil {
		return 0, err
	}

	mc.Counters.MemoryReads++
	mc.LastResult.MemoryReads++

	return v, nil
}

// writeData writes a word to the data bus, accounting for the reference at
// the point it happens.
func (mc *CPU) writeData(address uint16, data uint16) error {
	err := mc.data.WriteWord(address, data)
	if err != nil {
		return err
	}

	mc.Counters.MemoryWrites++
	mc.LastResult.MemoryWrites++

	return nil
}

// sign returns the state of the sign bit of a 16bit word.
func sign(v uint16) bool {
	return v&0x8000 == 0x8000
}

// ExecuteInstruction fetches, decodes and executes one instruction. The
// details of the execution are recorded in LastResult.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Halted {
		return fmt.Errorf("cpu: executing instruction on a halted machine")
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Reg[PC].Address()

	word, err := mc.fetchWord()
	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}
	mc.LastResult.Word = word

	ins, err := instructions.Decode(word)
	if err != nil {
		return fmt.Errorf("cpu: %w at address %06o", err, mc.LastResult.Address)
	}
	mc.LastResult.Instruction = ins

	mc.Counters.InstExecs++

	switch ins.Defn.Operation {
	case instructions.Halt:
		mc.Halted = true

	case instructions.Mov:
		err = mc.mov(ins)

	case instructions.Cmp:
		err = mc.cmp(ins)

	case instructions.Add:
		err = mc.add(ins)

	case instructions.Sub:
		err = mc.sub(ins)

	case instructions.Asr:
		err = mc.asr(ins)

	case instructions.Asl:
		err = mc.asl(ins)

	case instructions.Br, instructions.Bne, instructions.Beq:
		mc.branch(ins)

	case instructions.Sob:
		mc.sob(ins)

	default:
		err = fmt.Errorf("unserviced operation (%s)", ins.Defn.Mnemonic)
	}

	if err != nil {
		return fmt.Errorf("cpu: %w", err)
	}

	mc.LastResult.Status = mc.Status
	mc.LastResult.Final = true

	return nil
}

func (mc *CPU) mov(ins instructions.Instruction) error {
	src, err := mc.resolveOperand(ins.SrcMode, ins.SrcReg)
	if err != nil {
		return err
	}
	v, err := mc.readOperand(&src)
	if err != nil {
		return err
	}

	// the destination of a MOV is write-only; it is never read
	dst, err := mc.resolveOperand(ins.DstMode, ins.DstReg)
	if err != nil {
		return err
	}
	err = mc.writeOperand(&dst, v)
	if err != nil {
		return err
	}

	mc.Status.Negative = sign(v)
	mc.Status.Zero = v == 0
	mc.Status.Overflow = false
	// carry is unchanged by MOV

	mc.LastResult.Src = src
	mc.LastResult.Dst = dst
	mc.LastResult.Value = v

	return nil
}

func (mc *CPU) cmp(ins instructions.Instruction) error {
	src, err := mc.resolveOperand(ins.SrcMode, ins.SrcReg)
	if err != nil {
		return err
	}
	s, err := mc.readOperand(&src)
	if err != nil {
		return err
	}

	dst, err := mc.resolveOperand(ins.DstMode, ins.DstReg)
	if err != nil {
		return err
	}
	d, err := mc.readOperand(&dst)
	if err != nil {
		return err
	}

	// note the operand order: CMP computes src minus dst. the result is
	// used for the condition codes and then discarded
	v := s - d

	mc.Status.Negative = sign(v)
	mc.Status.Zero = v == 0
	mc.Status.Overflow = sign(s) != sign(d) && sign(v) != sign(s)
	mc.Status.Carry = s < d

	mc.LastResult.Src = src
	mc.LastResult.Dst = dst
	mc.LastResult.Value = v

	return nil
}

func (mc *CPU) add(ins instructions.Instruction) error {
	src, err := mc.resolveOperand(ins.SrcMode, ins.SrcReg)
	if err != nil {
		return err
	}
	s, err := mc.readOperand(&src)
	if err != nil {
		return err
	}

	dst, err := mc.resolveOperand(ins.DstMode, ins.DstReg)
	if err != nil {
		return err
	}
	d, err := mc.readOperand(&dst)
	if err != nil {
		return err
	}

	v := d + s

	mc.Status.Negative = sign(v)
	mc.Status.Zero = v == 0
	mc.Status.Overflow = sign(d) == sign(s) && sign(v) != sign(s)
	mc.Status.Carry = uint32(d)+uint32(s) > 0xffff

	err = mc.writeOperand(&dst, v)
	if err != nil {
		return err
	}

	mc.LastResult.Src = src
	mc.LastResult.Dst = dst
	mc.LastResult.Value = v

	return nil
}

func (mc *CPU) sub(ins instructions.Instruction) error {
	src, err := mc.resolveOperand(ins.SrcMode, ins.SrcReg)
	if err != nil {
		return err
	}
	s, err := mc.readOperand(&src)
	if err != nil {
		return err
	}

	dst, err := mc.resolveOperand(ins.DstMode, ins.DstReg)
	if err != nil {
		return err
	}
	d, err := mc.readOperand(&dst)
	if err != nil {
		return err
	}

	// unlike CMP the computation is dst minus src, and the result is
	// written back
	v := d - s

	mc.Status.Negative = sign(v)
	mc.Status.Zero = v == 0
	mc.Status.Overflow = sign(s) != sign(d) && sign(v) != sign(d)
	mc.Status.Carry = d < s

	err = mc.writeOperand(&dst, v)
	if err != nil {
		return err
	}

	mc.LastResult.Src = src
	mc.LastResult.Dst = dst
	mc.LastResult.Value = v

	return nil
}

func (mc *CPU) asr(ins instructions.Instruction) error {
	dst, err := mc.resolveOperand(ins.DstMode, ins.DstReg)
	if err != nil {
		return err
	}
	old, err := mc.readOperand(&dst)
	if err != nil {
		return err
	}

	// arithmetic shift: the sign bit is duplicated into the vacated bit
	v := (old >> 1) | (old & 0x8000)

	mc.Status.Negative = sign(v)
	mc.Status.Zero = v == 0
	mc.Status.Carry = old&0x01 == 0x01
	// the classic PDP-11 rule: V is the exclusive or of N and C as loaded
	// by this instruction
	mc.Status.Overflow = mc.Status.Negative != mc.Status.Carry

	err = mc.writeOperand(&dst, v)
	if err != nil {
		return err
	}

	mc.LastResult.Dst = dst
	mc.LastResult.Value = v

	return nil
}

func (mc *CPU) asl(ins instructions.Instruction) error {
	dst, err := mc.resolveOperand(ins.DstMode, ins.DstReg)
	if err != nil {
		return err
	}
	old, err := mc.readOperand(&dst)
	if err != nil {
		return err
	}

	v := old << 1

	mc.Status.Negative = sign(v)
	mc.Status.Zero = v == 0
	mc.Status.Overflow = sign(old) != sign(v)
	mc.Status.Carry = sign(old)

	err = mc.writeOperand(&dst, v)
	if err != nil {
		return err
	}

	mc.LastResult.Dst = dst
	mc.LastResult.Value = v

	return nil
}

func (mc *CPU) branch(ins instructions.Instruction) {
	mc.Counters.BranchExecs++

	var taken bool

	switch ins.Defn.Operation {
	case instructions.Br:
		taken = true
	case instructions.Bne:
		taken = !mc.Status.Zero
	case instructions.Beq:
		taken = mc.Status.Zero
	}

	if taken {
		mc.Counters.BranchTaken++

		// the offset is in words and is applied to the program counter
		// after it has moved past the branch instruction. intermediate
		// arithmetic is signed and wider than a machine word
		pc := int32(mc.Reg[PC].Address()) + 2*int32(ins.BranchOffset)
		mc.Reg[PC].Load(uint16(pc))
	}

	mc.LastResult.Taken = taken
}

func (mc *CPU) sob(ins instructions.Instruction) {
	mc.Counters.BranchExecs++

	v := mc.Reg[ins.Reg].Value() - 1
	mc.Reg[ins.Reg].Load(v)

	// condition codes are not affected by SOB

	taken := v != 0
	if taken {
		mc.Counters.BranchTaken++
		mc.Reg[PC].Load(mc.Reg[PC].Address() - 2*ins.Offset)
	}

	mc.LastResult.Taken = taken
	mc.LastResult.Value = v
}
