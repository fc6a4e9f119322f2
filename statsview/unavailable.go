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

//go:build !statsview
// +build !statsview

package statsview

import "io"

// Address of the statsview HTTP server. Meaningless in builds without the
// statsview build constraint.
const Address = ""

// Launch only prints a notice in builds without the statsview build
// constraint; no server is started.
func Launch(output io.Writer) {
	output.Write([]byte("statsview is not available in this build\n"))
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
