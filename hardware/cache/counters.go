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

import (
	"fmt"
	"strings"
)

// Counters accumulates the access statistics of the cache directory. All
// counters are monotonic; they reset with the directory.
type Counters struct {
	CacheReads  int
	CacheWrites int
	Hits        int
	Misses      int
	WriteBacks  int
}

// Reset all counters to zero.
func (ct *Counters) Reset() {
	*ct = Counters{}
}

// String returns the cache statistics block that is printed when the machine
// halts.
func (ct Counters) String() string {
	s := strings.Builder{}

	s.WriteString("cache statistics (in decimal):\n")
	s.WriteString(fmt.Sprintf("  cache reads       = %d\n", ct.CacheReads))
	s.WriteString(fmt.Sprintf("  cache writes      = %d\n", ct.CacheWrites))
	s.WriteString(fmt.Sprintf("  cache hits        = %d\n", ct.Hits))
	s.WriteString(fmt.Sprintf("  cache misses      = %d\n", ct.Misses))
	s.WriteString(fmt.Sprintf("  cache write backs = %d\n", ct.WriteBacks))

	return s.String()
}
