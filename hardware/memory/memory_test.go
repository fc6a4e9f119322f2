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

package memory_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher11/hardware/memory"
	"github.com/jetsetilly/gopher11/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher11/test"
)

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	v, err := mem.ReadWord(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0)

	err = mem.WriteWord(0o000100, 0o123456)
	test.ExpectedSuccess(t, err)

	v, err = mem.ReadWord(0o000100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0o123456)

	// the highest valid word address
	err = mem.WriteWord(memory.Size-2, 0o000777)
	test.ExpectedSuccess(t, err)
	v, err = mem.ReadWord(memory.Size - 2)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0o000777)
}

func TestAddressErrors(t *testing.T) {
	mem := memory.NewMemory()

	// odd addresses are not valid for word access
	_, err := mem.ReadWord(0o000101)
	test.ExpectedFailure(t, err)
	test.Equate(t, errors.Is(err, cpubus.AddressError), true)

	err = mem.WriteWord(3, 0)
	test.ExpectedFailure(t, err)
	test.Equate(t, errors.Is(err, cpubus.AddressError), true)

	// out of range
	_, err = mem.ReadWord(memory.Size)
	test.ExpectedFailure(t, err)
	test.Equate(t, errors.Is(err, cpubus.AddressError), true)
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	n, err := mem.Load(strings.NewReader("012700\n000005\n000000\n"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 3)

	// the Nth word of the image lands at byte address 2*N
	v, _ := mem.Peek(0)
	test.Equate(t, v, 0o012700)
	v, _ = mem.Peek(2)
	test.Equate(t, v, 0o000005)
	v, _ = mem.Peek(4)
	test.Equate(t, v, 0)

	// leading whitespace is tolerated and blank lines are skipped
	mem.Reset()
	n, err = mem.Load(strings.NewReader("  000400\n\n\t177777\n"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, n, 2)
	v, _ = mem.Peek(2)
	test.Equate(t, v, 0o177777)
}

func TestLoadErrors(t *testing.T) {
	mem := memory.NewMemory()

	// not octal
	_, err := mem.Load(strings.NewReader("012700\n9999\n"))
	test.ExpectedFailure(t, err)

	// too many digits for 16 bits
	_, err = mem.Load(strings.NewReader("1777777\n"))
	test.ExpectedFailure(t, err)

	// not a number at all
	_, err = mem.Load(strings.NewReader("halt\n"))
	test.ExpectedFailure(t, err)
}
