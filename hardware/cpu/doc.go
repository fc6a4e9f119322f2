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

// Package cpu implements the simulated PDP-11 instruction subset: eleven
// opcodes and the eight addressing modes, with the condition code rules of
// the real machine.
//
// The package is not a cycle accurate emulation. It interprets one
// instruction at a time through ExecuteInstruction() and records what
// happened in the LastResult field. Memory traffic is accounted for at the
// point of each reference, so an observer on the data bus (the cache
// directory, for instance) sees accesses in true program order.
package cpu
