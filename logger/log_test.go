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

package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher11/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(10)

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "")

	l.log("test", "this is a test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test\n")

	// repeats of the last entry are folded, not appended
	l.log("test", "this is a test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test (repeat x2)\n")

	l.log("test2", "this is another test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test (repeat x2)\ntest2: this is another test\n")

	b.Reset()
	l.tail(b, 1)
	test.Equate(t, b.String(), "test2: this is another test\n")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("a", "1")
	l.log("b", "2")
	l.log("c", "3")

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "b: 2\nc: 3\n")
}
