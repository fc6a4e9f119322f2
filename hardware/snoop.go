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
	"github.com/jetsetilly/gopher11/hardware/memory/cpubus"
)

// snoopBus sits on the CPU's data path, forwarding every access to memory
// and reporting it to the cache directory. Instruction stream fetches never
// pass through it; the cache models data traffic only.
//
// Accesses that fail with an address error are not reported: the machine is
// about to stop anyway and a partial access would skew the counts.
type snoopBus struct {
	mem cpubus.Bus
	dir *cache.Directory
}

func (bus *snoopBus) ReadWord(address uint16) (uint16, error) {
	v, err := bus.mem.ReadWord(address)
	if err != nil {
		return 0, err
	}
	bus.dir.Access(uint32(address), cache.Read)
	return v, nil
}

func (bus *snoopBus) WriteWord(address uint16, data uint16) error {
	err := bus.mem.WriteWord(address, data)
	if err != nil {
		return err
	}
	bus.dir.Access(uint32(address), cache.Write)
	return nil
}
