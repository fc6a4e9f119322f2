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

// whitebox testing of the directory internals, in particular the replacement
// state machine.

package cache

import (
	"testing"

	"github.com/jetsetilly/gopher11/test"
)

// address with the given tag, landing in the given set.
func addr(tag uint32, set uint32) uint32 {
	return tag<<(offsetBits+indexBits) | set<<offsetBits
}

func TestColdDirectory(t *testing.T) {
	dir := NewDirectory()

	test.Equate(t, dir.Counters.CacheReads, 0)
	test.Equate(t, dir.Counters.CacheWrites, 0)
	test.Equate(t, dir.Counters.Hits, 0)
	test.Equate(t, dir.Counters.Misses, 0)
	test.Equate(t, dir.Counters.WriteBacks, 0)

	for w := 0; w < NumWays; w++ {
		for s := 0; s < NumSets; s++ {
			test.Equate(t, dir.lines[w][s].valid, false)
			test.Equate(t, dir.lines[w][s].dirty, false)
			test.Equate(t, dir.lines[w][s].tag, 0)
		}
	}
	for s := 0; s < NumSets; s++ {
		test.Equate(t, dir.plru[s], 0)
	}
}

func TestColdMissThenHit(t *testing.T) {
	dir := NewDirectory()

	dir.Access(0x0000, Read)
	dir.Access(0x0000, Read)

	test.Equate(t, dir.Counters.CacheReads, 2)
	test.Equate(t, dir.Counters.Hits, 1)
	test.Equate(t, dir.Counters.Misses, 1)
	test.Equate(t, dir.Counters.WriteBacks, 0)
}

func TestRepeatedAccessSameLine(t *testing.T) {
	dir := NewDirectory()

	const n = 100
	for i := 0; i < n; i++ {
		dir.Access(addr(0x1234, 7), Read)
	}

	test.Equate(t, dir.Counters.Misses, 1)
	test.Equate(t, dir.Counters.Hits, n-1)

	// different offsets within the line are still the same line
	dir.Access(addr(0x1234, 7)|0x1f, Write)
	test.Equate(t, dir.Counters.Misses, 1)
	test.Equate(t, dir.Counters.Hits, n)
}

func TestInvalidWaysFillInOrder(t *testing.T) {
	dir := NewDirectory()

	for i := uint32(0); i < NumWays; i++ {
		dir.Access(addr(i, 0), Read)
	}

	test.Equate(t, dir.Counters.Misses, 4)
	for w := 0; w < NumWays; w++ {
		test.Equate(t, dir.lines[w][0].valid, true)
		test.Equate(t, dir.lines[w][0].tag, uint32(w))
	}
}

func TestWriteBackOnEviction(t *testing.T) {
	dir := NewDirectory()

	// fill all four ways of set 0 with writes. each line is left dirty
	for i := uint32(0); i < NumWays; i++ {
		dir.Access(addr(i, 0), Write)
	}
	test.Equate(t, dir.Counters.Misses, 4)
	test.Equate(t, dir.Counters.WriteBacks, 0)

	// a fifth tag must evict a dirty line
	dir.Access(addr(4, 0), Read)
	test.Equate(t, dir.Counters.Misses, 5)
	test.Equate(t, dir.Counters.WriteBacks, 1)

	// the installs above walked the replacement state 0 -> 6 -> 4 -> 1 -> 0
	// so the victim of the fifth access was way 0
	test.Equate(t, dir.lines[0][0].tag, uint32(4))
	test.Equate(t, dir.lines[0][0].dirty, false)

	// ways 1..3 are still dirty and way 0, now clean, is the most recently
	// used. the state after install of tag 4 is 6, which selects way 2 next
	test.Equate(t, dir.plru[0], 6)
}

func TestReplacementChoice(t *testing.T) {
	// replacement choice by state, spec table: {0,0,1,1,2,3,2,3}
	expected := [8]int{0, 0, 1, 1, 2, 3, 2, 3}

	for state := uint8(0); state < 8; state++ {
		dir := NewDirectory()

		// make all four ways of set 0 valid and clean
		for i := uint32(0); i < NumWays; i++ {
			dir.Access(addr(i, 0), Read)
		}

		// force the replacement state and evict
		dir.plru[0] = state
		dir.Access(addr(100, 0), Read)

		test.Equate(t, dir.lines[expected[state]][0].tag, uint32(100))
	}
}

func TestNextStateTable(t *testing.T) {
	// next state by (state, way), spec table
	expected := [8][4]uint8{
		{6, 4, 1, 0},
		{7, 5, 1, 0},
		{6, 4, 3, 2},
		{7, 5, 3, 2},
		{6, 4, 1, 0},
		{7, 5, 1, 0},
		{6, 4, 3, 2},
		{7, 5, 3, 2},
	}

	dir := NewDirectory()
	for i := uint32(0); i < NumWays; i++ {
		dir.Access(addr(i, 0), Read)
	}

	for state := uint8(0); state < 8; state++ {
		for way := uint32(0); way < NumWays; way++ {
			dir.plru[0] = state

			// hit on the chosen way; the replacement state must follow the
			// next state table
			dir.Access(addr(way, 0), Read)
			test.Equate(t, dir.plru[0], expected[state][way])
		}
	}
}

func TestCounterInvariants(t *testing.T) {
	dir := NewDirectory()

	// a pseudo random walk over a handful of lines, enough to cause plenty
	// of evictions in set 3
	seq := []uint32{0, 1, 2, 3, 4, 5, 0, 1, 6, 2, 7, 0, 8, 8, 8, 1, 4, 4}
	for i, tag := range seq {
		if i%3 == 0 {
			dir.Access(addr(tag, 3), Write)
		} else {
			dir.Access(addr(tag, 3), Read)
		}
	}

	ct := dir.Counters
	test.Equate(t, ct.Hits+ct.Misses, ct.CacheReads+ct.CacheWrites)
	test.Equate(t, ct.WriteBacks <= ct.Misses, true)

	for s := 0; s < NumSets; s++ {
		test.Equate(t, dir.plru[s] < 8, true)
	}
}

func TestReset(t *testing.T) {
	dir := NewDirectory()

	dir.Access(0x0000, Write)
	dir.Access(0x4000, Read)
	test.Equate(t, dir.Counters.Misses, 2)

	dir.Reset()
	test.Equate(t, dir.Counters.Misses, 0)
	test.Equate(t, dir.lines[0][0].valid, false)
	test.Equate(t, dir.plru[0], 0)
}
