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

package hardware_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher11/hardware"
	"github.com/jetsetilly/gopher11/hardware/cpu"
	"github.com/jetsetilly/gopher11/hardware/memory"
	"github.com/jetsetilly/gopher11/test"
)

func TestMinimalHalt(t *testing.T) {
	sys := hardware.NewPDP11(true)

	_, err := sys.Mem.Load(strings.NewReader("000000\n"))
	test.ExpectedSuccess(t, err)

	err = sys.Run(nil)
	test.ExpectedSuccess(t, err)

	ct := sys.CPU.Counters
	test.Equate(t, ct.InstExecs, 1)
	test.Equate(t, ct.InstFetches, 1)
	test.Equate(t, ct.MemoryReads, 0)
	test.Equate(t, ct.MemoryWrites, 0)
	test.Equate(t, ct.BranchExecs, 0)
	test.Equate(t, ct.BranchTaken, 0)

	// no data traffic means a completely idle cache
	cct := sys.Cache.Counters
	test.Equate(t, cct.CacheReads, 0)
	test.Equate(t, cct.CacheWrites, 0)
}

func TestImmediateMovProgram(t *testing.T) {
	sys := hardware.NewPDP11(true)

	_, err := sys.Mem.Load(strings.NewReader("012700\n000005\n000000\n"))
	test.ExpectedSuccess(t, err)

	err = sys.Run(nil)
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.CPU.Reg[0].Value(), 5)
	test.Equate(t, sys.CPU.Counters.InstExecs, 2)
	test.Equate(t, sys.CPU.Counters.InstFetches, 3)
	test.Equate(t, sys.CPU.Counters.MemoryReads, 0)
	test.Equate(t, sys.CPU.Counters.MemoryWrites, 0)
}

func TestSobProgram(t *testing.T) {
	sys := hardware.NewPDP11(false)

	_, err := sys.Mem.Load(strings.NewReader("012700\n000003\n077001\n000000\n"))
	test.ExpectedSuccess(t, err)

	// count the instructions seen by the observer callback while we're here
	seen := 0
	err = sys.Run(func() error {
		seen++
		return nil
	})
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.CPU.Reg[0].Value(), 0)
	test.Equate(t, sys.CPU.Counters.BranchExecs, 3)
	test.Equate(t, sys.CPU.Counters.BranchTaken, 2)
	test.Equate(t, seen, sys.CPU.Counters.InstExecs)
}

func TestAddOverflowProgram(t *testing.T) {
	sys := hardware.NewPDP11(false)

	_, err := sys.Mem.Load(strings.NewReader(
		"012700\n077777\n012701\n000001\n060100\n000000\n"))
	test.ExpectedSuccess(t, err)

	err = sys.Run(nil)
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.CPU.Reg[0].Value(), 0o100000)
	test.Equate(t, sys.CPU.Status.String(), "NzVc")
}

func TestCacheObservesDataTraffic(t *testing.T) {
	sys := hardware.NewPDP11(true)

	// mov #5,r0 ; mov r0,@#1000 ; mov @#1000,r1 ; halt
	_, err := sys.Mem.Load(strings.NewReader(
		"012700\n000005\n010037\n001000\n013701\n001000\n000000\n"))
	test.ExpectedSuccess(t, err)

	err = sys.Run(nil)
	test.ExpectedSuccess(t, err)

	test.Equate(t, sys.CPU.Reg[1].Value(), 5)

	// the write misses and leaves the line dirty; the read back hits the
	// same line. instruction fetches never reach the cache
	cct := sys.Cache.Counters
	test.Equate(t, cct.CacheWrites, 1)
	test.Equate(t, cct.CacheReads, 1)
	test.Equate(t, cct.Misses, 1)
	test.Equate(t, cct.Hits, 1)
	test.Equate(t, cct.WriteBacks, 0)

	test.Equate(t, cct.Hits+cct.Misses, cct.CacheReads+cct.CacheWrites)
}

func TestCacheDisabled(t *testing.T) {
	sys := hardware.NewPDP11(false)
	test.Equate(t, sys.Cache == nil, true)

	_, err := sys.Mem.Load(strings.NewReader("012700\n000005\n010037\n001000\n000000\n"))
	test.ExpectedSuccess(t, err)

	// data accesses work exactly the same without the observer
	err = sys.Run(nil)
	test.ExpectedSuccess(t, err)

	v, _ := sys.Mem.Peek(0o001000)
	test.Equate(t, v, 5)
}

func TestRunawayProgramCounter(t *testing.T) {
	sys := hardware.NewPDP11(false)

	// fill all of memory with "mov r0,r0". there is no HALT so the program
	// counter eventually runs off the end of memory
	for a := 0; a < memory.Size; a += 2 {
		err := sys.Mem.WriteWord(uint16(a), 0o010000)
		test.ExpectedSuccess(t, err)
	}

	err := sys.Run(nil)
	test.ExpectedFailure(t, err)

	test.Equate(t, sys.CPU.Reg[cpu.PC].Address() >= memory.Size-2, true)
}

func TestReset(t *testing.T) {
	sys := hardware.NewPDP11(true)

	_, err := sys.Mem.Load(strings.NewReader("012700\n000005\n010037\n001000\n000000\n"))
	test.ExpectedSuccess(t, err)

	err = sys.Run(nil)
	test.ExpectedSuccess(t, err)

	sys.Reset()
	test.Equate(t, sys.CPU.Halted, false)
	test.Equate(t, sys.CPU.Counters.InstExecs, 0)
	test.Equate(t, sys.Cache.Counters.Misses, 0)

	v, _ := sys.Mem.Peek(0)
	test.Equate(t, v, 0)
}
