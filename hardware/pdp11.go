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

package hardware

import (
	"github.com/jetsetilly/gopher11/hardware/cache"
	"github.com/jetsetilly/gopher11/hardware/cpu"
	"github.com/jetsetilly/gopher11/hardware/memory"
	"github.com/jetsetilly/gopher11/logger"
)

// PDP11 is the main container for the simulated components of the machine.
type PDP11 struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// Cache is nil when the machine was created without the data cache
	// model
	Cache *cache.Directory
}

// NewPDP11 creates a new machine and everything associated with it. The
// cache directory is an observer only; creating the machine without it
// changes nothing about the CPU visible state.
func NewPDP11(withCache bool) *PDP11 {
	sys := &PDP11{}

	sys.Mem = memory.NewMemory()
	sys.CPU = cpu.NewCPU(sys.Mem)

	if withCache {
		sys.Cache = cache.NewDirectory()
		sys.CPU.PlumbDataBus(&snoopBus{mem: sys.Mem, dir: sys.Cache})
		logger.Log("pdp11", "data cache model attached")
	}

	return sys
}

// Reset the machine to its startup state. Memory is cleared, registers and
// counters are zeroed and the cache directory, if present, goes cold.
func (sys *PDP11) Reset() {
	sys.Mem.Reset()
	sys.CPU.Reset()
	if sys.Cache != nil {
		sys.Cache.Reset()
	}
}
