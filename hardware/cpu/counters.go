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

package cpu

import (
	"fmt"
	"strings"
)

// Counters accumulates the execution statistics of the CPU. All counters are
// monotonic and are reset only by CPU.Reset().
//
// InstFetches counts every word consumed from the instruction stream,
// including immediate operands and index words. MemoryReads and MemoryWrites
// count data references only.
type Counters struct {
	InstExecs    int
	InstFetches  int
	MemoryReads  int
	MemoryWrites int
	BranchExecs  int
	BranchTaken  int
}

// Reset all counters to zero.
func (ct *Counters) Reset() {
	*ct = Counters{}
}

// String returns the execution statistics block that is printed when the
// machine halts.
func (ct Counters) String() string {
	s := strings.Builder{}

	s.WriteString("execution statistics (in decimal):\n")
	s.WriteString(fmt.Sprintf("  instructions executed     = %d\n", ct.InstExecs))
	s.WriteString(fmt.Sprintf("  instruction words fetched = %d\n", ct.InstFetches))
	s.WriteString(fmt.Sprintf("  data words read           = %d\n", ct.MemoryReads))
	s.WriteString(fmt.Sprintf("  data words written        = %d\n", ct.MemoryWrites))
	s.WriteString(fmt.Sprintf("  branches executed         = %d\n", ct.BranchExecs))
	if ct.BranchExecs > 0 {
		pct := 100.0 * float64(ct.BranchTaken) / float64(ct.BranchExecs)
		s.WriteString(fmt.Sprintf("  branches taken            = %d (%.1f%%)\n", ct.BranchTaken, pct))
	} else {
		s.WriteString(fmt.Sprintf("  branches taken            = %d\n", ct.BranchTaken))
	}

	return s.String()
}
