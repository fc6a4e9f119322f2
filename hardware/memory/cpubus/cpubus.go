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

package cpubus

import "errors"

// Bus defines the operations for the memory system when accessed from the
// CPU. The PDP-11 is a byte addressed machine but the simulated subset only
// ever moves whole words, so the bus works in words. Addresses are byte
// addresses and must be even.
//
// The plain memory type implements this interface, as does the snooping bus
// that reports data traffic to the cache directory. The CPU does not care
// which of the two it has been given.
type Bus interface {
	ReadWord(address uint16) (uint16, error)
	WriteWord(address uint16, data uint16) error
}

// AddressError is a sentinel error returned by Bus implementations when an
// address is out of range or oddly aligned. Compare with errors.Is().
var AddressError = errors.New("address error")
