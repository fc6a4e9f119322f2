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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher11/hardware/cpu/registers"
	"github.com/jetsetilly/gopher11/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "R0")
	test.Equate(t, r.IsZero(), true)
	test.Equate(t, r.IsNegative(), false)
	test.Equate(t, r.String(), "R0=0000000")

	r.Load(0o100000)
	test.Equate(t, r.IsZero(), false)
	test.Equate(t, r.IsNegative(), true)
	test.Equate(t, r.String(), "R0=0100000")

	// arithmetic is modulo 2^16
	r.Load(0o177777)
	r.Add(2)
	test.Equate(t, r.Value(), 1)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.Equate(t, sr.String(), "nzvc")
	test.Equate(t, sr.Bits(), "0000")

	sr.Zero = true
	sr.Carry = true
	test.Equate(t, sr.String(), "nZvC")
	test.Equate(t, sr.Bits(), "0101")
	test.Equate(t, sr.Value(), 0x05)

	sr.FromValue(0x0a)
	test.Equate(t, sr.Negative, true)
	test.Equate(t, sr.Zero, false)
	test.Equate(t, sr.Overflow, true)
	test.Equate(t, sr.Carry, false)

	sr.Reset()
	test.Equate(t, sr.Bits(), "0000")
}
