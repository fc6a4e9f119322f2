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

package modalflag_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher11/modalflag"
	"github.com/jetsetilly/gopher11/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, len(md.RemainingArgs()), 0)
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})
	md.AddSubModes("RUN", "DEBUG")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "RUN")
}

func TestNamedSubMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"debug", "image.oct"})
	md.AddSubModes("RUN", "DEBUG")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "DEBUG")

	// the sub-mode argument has been consumed; the filename remains
	md.NewMode()
	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.GetArg(0), "image.oct")
}

func TestFlagsInSubMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-t"})
	md.AddSubModes("RUN", "DEBUG")

	// the top level flagset doesn't know -t. parsing falls through to the
	// default sub-mode, which does
	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	trace := md.AddBool("t", false, "instruction trace")
	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, *trace, true)
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: nil}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectedFailure(t, err)
	test.Equate(t, p == modalflag.ParseError, true)
}

func TestPath(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"debug"})
	md.AddSubModes("RUN", "DEBUG")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Path(), "DEBUG")
	test.Equate(t, md.String(), "DEBUG")
}
