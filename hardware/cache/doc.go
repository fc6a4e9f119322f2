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

// Package cache models the directory of a 4 KiB four way set associative
// write back data cache with pseudo LRU replacement.
//
// Only the directory is modelled. Valid, dirty and tag bits, together with
// the per set replacement state, are enough to determine the hit, miss and
// write back counts for any sequence of accesses; no line contents are kept.
//
// The replacement scheme is the three bit binary decision tree described in
// the Intel Embedded Pentium family manual (Figure 3-7). Each bit is one
// branch point in the tree; a 1 bit records that the left side was
// referenced more recently than the right.
package cache
