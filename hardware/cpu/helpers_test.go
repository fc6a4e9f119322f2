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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher11/hardware/cpu"
	"github.com/jetsetilly/gopher11/hardware/memory"
)

// putWords copies a sequence of instruction/data words into memory, starting
// at the origin byte address. Returns the byte address after the last word.
func putWords(t *testing.T, mem *memory.Memory, origin uint16, words ...uint16) uint16 {
	t.Helper()

	for i, w := range words {
		err := mem.WriteWord(origin+uint16(2*i), w)
		if err != nil {
			t.Fatal(err)
		}
	}

	return origin + uint16(2*len(words))
}

// step executes a single instruction, failing the test on any execution
// error and validating the execution result.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()

	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}

	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}
