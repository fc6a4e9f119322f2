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

package version

import "runtime/debug"

// The name to use when referring to the application.
const ApplicationName = "Gopher11"

// nothing in the source assigns this; it can only be set at link time (go
// build -ldflags -X). an empty string means it was not set.
var number string

// Version returns the version string and the vcs revision, as far as they
// are known. A revision with uncommitted changes is suffixed with "+dirty".
func Version() (string, string) {
	version := number
	if version == "" {
		version = "unreleased"
	}

	revision := "no revision information"

	info, ok := debug.ReadBuildInfo()
	if ok {
		var vcsRevision string
		var vcsModified bool

		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}

		if vcsRevision != "" {
			revision = vcsRevision
			if vcsModified {
				revision += "+dirty"
			}
		}
	}

	return version, revision
}
