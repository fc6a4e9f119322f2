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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher11/hardware/memory/cpubus"
)

// Size of memory in bytes. the memory is word organised so half this number
// of words can be stored.
const Size = 32768

// NumWords is the number of 16bit words that fit in memory.
const NumWords = Size / 2

// Memory is the flat, word organised memory of the PDP-11 subset. There is no
// memory management unit and no I/O page; every even byte address below Size
// refers to a word of real storage.
type Memory struct {
	words []uint16
}

// NewMemory is the preferred method of initialisation for the Memory type.
// All words are initialised to zero.
func NewMemory() *Memory {
	return &Memory{
		words: make([]uint16, NumWords),
	}
}

// Reset sets every word in memory to zero.
func (mem *Memory) Reset() {
	for i := range mem.words {
		mem.words[i] = 0
	}
}

// index converts a byte address to a word index, checking range and
// alignment.
func (mem *Memory) index(address uint16) (uint16, error) {
	if address >= Size {
		return 0, fmt.Errorf("memory: %w: address out of range (%06o)", cpubus.AddressError, address)
	}
	if address&0x01 == 0x01 {
		return 0, fmt.Errorf("memory: %w: odd address for word access (%06o)", cpubus.AddressError, address)
	}
	return address >> 1, nil
}

// ReadWord implements the cpubus.Bus interface.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	idx, err := mem.index(address)
	if err != nil {
		return 0, err
	}
	return mem.words[idx], nil
}

// WriteWord implements the cpubus.Bus interface.
func (mem *Memory) WriteWord(address uint16, data uint16) error {
	idx, err := mem.index(address)
	if err != nil {
		return err
	}
	mem.words[idx] = data
	return nil
}

// Peek returns the word at the byte address without any side effects. It is
// intended for the debugger and for the final memory dump; the interpreter
// itself always goes through the bus interface.
func (mem *Memory) Peek(address uint16) (uint16, error) {
	return mem.ReadWord(address)
}
