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

	"github.com/jetsetilly/gopher11/hardware/cpu/execution"
)

// resolveOperand decodes a mode/register pair into an operand, performing
// any side effects of the addressing mode: auto increment and decrement of
// the named register and consumption of immediate, absolute and index words
// from the instruction stream.
//
// Resolution happens exactly once per operand. The subsequent read and write
// operations use the address captured here, so an auto increment register
// can not skew a later write back.
func (mc *CPU) resolveOperand(mode uint16, reg uint16) (execution.Operand, error) {
	op := execution.Operand{Mode: mode, Reg: reg}

	// the bit widths of the mode and register fields make anything above 7
	// impossible but a check here is cheap
	if mode > 7 || reg > 7 {
		return op, fmt.Errorf("illegal operand field (mode %o, register %o)", mode, reg)
	}

	switch mode {
	case 0:
		// register mode. no address

	case 1:
		// register deferred
		op.Address = mc.Reg[reg].Address()
		op.HasAddress = true

	case 2:
		// autoincrement. with the program counter as the register the
		// operand is the next instruction word: immediate mode
		if reg == PC {
			op.Address = mc.Reg[PC].Address()
			op.HasAddress = true

			v, err := mc.fetchWord()
			if err != nil {
				return op, err
			}
			op.Value = v
			op.Known = true
		} else {
			op.Address = mc.Reg[reg].Address()
			op.HasAddress = true
			mc.Reg[reg].Add(2)
		}

	case 3:
		// autoincrement deferred. with the program counter as the register
		// the next instruction word is the effective address: absolute mode
		if reg == PC {
			v, err := mc.fetchWord()
			if err != nil {
				return op, err
			}
			op.Address = v
		} else {
			a := mc.Reg[reg].Address()
			v, err := mc.readData(a)
			if err != nil {
				return op, err
			}
			op.Address = v
			mc.Reg[reg].Add(2)
		}
		op.HasAddress = true

	case 4:
		// autodecrement
		mc.Reg[reg].Add(0xfffe)
		op.Address = mc.Reg[reg].Address()
		op.HasAddress = true

	case 5:
		// autodecrement deferred
		mc.Reg[reg].Add(0xfffe)
		v, err := mc.readData(mc.Reg[reg].Address())
		if err != nil {
			return op, err
		}
		op.Address = v
		op.HasAddress = true

	case 6:
		// index. the index word is part of the instruction stream. note
		// that when the register is the program counter the addressing is
		// PC relative and the base is the updated program counter, ie. the
		// address of the word after the index word
		x, err := mc.fetchWord()
		if err != nil {
			return op, err
		}
		op.Address = x + mc.Reg[reg].Address()
		op.HasAddress = true

	case 7:
		// index deferred
		x, err := mc.fetchWord()
		if err != nil {
			return op, err
		}
		v, err := mc.readData(x + mc.Reg[reg].Address())
		if err != nil {
			return op, err
		}
		op.Address = v
		op.HasAddress = true
	}

	return op, nil
}

// readOperand returns the operand's value, reading memory if necessary. An
// operand whose value was already consumed from the instruction stream
// (immediate mode) is simply returned; the fetch was accounted for during
// resolution.
func (mc *CPU) readOperand(op *execution.Operand) (uint16, error) {
	if op.Known {
		return op.Value, nil
	}

	if op.Mode == 0 {
		op.Value = mc.Reg[op.Reg].Value()
		op.Known = true
		return op.Value, nil
	}

	v, err := mc.readData(op.Address)
	if err != nil {
		return 0, err
	}
	op.Value = v
	op.Known = true

	return v, nil
}

// writeOperand stores a new value in the location the operand resolved to,
// including the register itself for register mode.
//
// The operand record keeps the value it had when it was read; a destination
// that was never read records the written value instead. The verbose trace
// relies on this to show the destination as it was before the instruction.
func (mc *CPU) writeOperand(op *execution.Operand, v uint16) error {
	if !op.Known {
		op.Value = v
		op.Known = true
	}

	if op.Mode == 0 {
		mc.Reg[op.Reg].Load(v)
		return nil
	}

	return mc.writeData(op.Address, v)
}
