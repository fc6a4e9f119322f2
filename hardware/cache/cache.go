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

package cache

// geometry of the modelled cache: 4 KiB, four way set associative, 32 bytes
// per line. that makes 32 sets, selected by address bits 5 to 9, with the
// remaining 22 bits stored as the tag.
const (
	NumSets = 32
	NumWays = 4

	offsetBits = 5
	indexBits  = 5
	indexMask  = NumSets - 1
)

// AccessType distinguishes reads from writes on the data bus.
type AccessType int

// List of access types.
const (
	Read AccessType = iota
	Write
)

// line holds the directory bits for one way of one set. The contents of the
// line are not modelled; the directory bits alone determine hits, misses and
// write backs.
type line struct {
	valid bool
	dirty bool
	tag   uint32
}

// Directory models the cache directory and its replacement state. Create
// with NewDirectory() or reuse by calling Reset().
type Directory struct {
	lines [NumWays][NumSets]line

	// current replacement state for each set. three bits, each representing
	// one branch point in a binary decision tree: a 1 bit means the left
	// side has been referenced more recently than the right
	plru [NumSets]uint8

	Counters Counters
}

// replacement choice by state. all four lines of the set must be valid
// before this table is consulted.
var plruWay = [8]int{0, 0, 1, 1, 2, 3, 2, 3}

// next replacement state, indexed by 5 bits: (state<<2)|way.
var nextState = [32]uint8{
	// way:   0  1  2  3
	/* 0 */ 6, 4, 1, 0,
	/* 1 */ 7, 5, 1, 0,
	/* 2 */ 6, 4, 3, 2,
	/* 3 */ 7, 5, 3, 2,
	/* 4 */ 6, 4, 1, 0,
	/* 5 */ 7, 5, 1, 0,
	/* 6 */ 6, 4, 3, 2,
	/* 7 */ 7, 5, 3, 2,
}

// NewDirectory is the preferred method of initialisation for the Directory
// type. The directory starts cold: every bit and every counter is zero.
func NewDirectory() *Directory {
	dir := &Directory{}
	dir.Reset()
	return dir
}

// Reset returns the directory to the cold state.
func (dir *Directory) Reset() {
	for w := 0; w < NumWays; w++ {
		for s := 0; s < NumSets; s++ {
			dir.lines[w][s] = line{}
		}
	}
	for s := 0; s < NumSets; s++ {
		dir.plru[s] = 0
	}
	dir.Counters.Reset()
}

// Access the cache with a byte address. The hit/miss outcome, any write back
// of a dirty victim, and the replacement state update are all recorded in
// the directory and its counters.
func (dir *Directory) Access(address uint32, typ AccessType) {
	if typ == Write {
		dir.Counters.CacheWrites++
	} else {
		dir.Counters.CacheReads++
	}

	idx := (address >> offsetBits) & indexMask
	tag := address >> (offsetBits + indexBits)

	// probe the four ways for a hit
	way := -1
	for w := 0; w < NumWays; w++ {
		if dir.lines[w][idx].valid && dir.lines[w][idx].tag == tag {
			way = w
			break
		}
	}

	if way >= 0 {
		dir.Counters.Hits++
	} else {
		dir.Counters.Misses++

		// miss: choose a victim. an invalid way is used first, lowest
		// numbered first; otherwise the replacement state decides
		for w := 0; w < NumWays; w++ {
			if !dir.lines[w][idx].valid {
				way = w
				break
			}
		}
		if way < 0 {
			way = plruWay[dir.plru[idx]]
		}

		// a valid and dirty victim would be written back to memory
		if dir.lines[way][idx].valid && dir.lines[way][idx].dirty {
			dir.Counters.WriteBacks++
		}

		dir.lines[way][idx] = line{valid: true, tag: tag}
	}

	// update the replacement state for this set, hit or miss
	dir.plru[idx] = nextState[(dir.plru[idx]<<2)|uint8(way)]

	if typ == Write {
		dir.lines[way][idx].dirty = true
	}
}
