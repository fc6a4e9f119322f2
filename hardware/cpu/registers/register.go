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

package registers

import "fmt"

// Register is one of the eight 16bit general purpose registers of the PDP-11.
// R7 doubles as the program counter and R6 is, by convention only, the stack
// pointer. The register logic itself doesn't care.
type Register struct {
	label string
	value uint16
}

// NewRegister creates a new register with the given starting value and label.
func NewRegister(val uint16, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%07o", r.label, r.value)
}

// Label returns the identifying string given to the register on creation.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint16 {
	return r.value
}

// Address returns the current value of the register in an address context.
// For this 16bit machine it is the same as Value() but the call site reads
// better when the register is being used as a pointer.
func (r Register) Address() uint16 {
	return r.value
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x8000 == 0x8000
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint16) {
	r.value = val
}

// Add value to register. All arithmetic is modulo 2^16.
func (r *Register) Add(val uint16) {
	r.value += val
}
