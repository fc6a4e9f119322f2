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

import "strings"

// StatusRegister is the collection of condition code bits set by the
// arithmetic and logical instructions. The four bits are independent; they
// are not stored inside any of the general purpose registers.
type StatusRegister struct {
	Negative bool
	Zero     bool
	Overflow bool
	Carry    bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the condition codes as four letters: an upper case letter
// means the bit is set, lower case means it is clear.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Bits returns the condition codes as a string of four binary digits in NZVC
// order. This is the format used by the verbose instruction trace.
func (sr StatusRegister) Bits() string {
	b := []byte{'0', '0', '0', '0'}
	if sr.Negative {
		b[0] = '1'
	}
	if sr.Zero {
		b[1] = '1'
	}
	if sr.Overflow {
		b[2] = '1'
	}
	if sr.Carry {
		b[3] = '1'
	}
	return string(b)
}

// Reset clears all four condition codes.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister struct into a single value with the NZVC
// bits packed into the low nibble.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Negative {
		v |= 0x08
	}
	if sr.Zero {
		v |= 0x04
	}
	if sr.Overflow {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue converts a packed NZVC nibble to the StatusRegister struct
// receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Negative = v&0x08 == 0x08
	sr.Zero = v&0x04 == 0x04
	sr.Overflow = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
