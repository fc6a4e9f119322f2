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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter is used to amend the default output from the flag package.
type helpWriter struct {
	buffer []byte
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

// Help prints the buffered flag package output, together with sub-mode
// information and any additional help text.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	s := strings.TrimSuffix(string(hw.buffer), "\n")

	if banner != "" {
		io.WriteString(output, fmt.Sprintf("Usage of %s mode:\n", banner))
	} else {
		io.WriteString(output, "Usage:\n")
	}

	// the flag package's own output begins with a "Usage:" line of its own;
	// drop it and keep the flag defaults
	lines := strings.Split(s, "\n")
	if len(lines) > 1 {
		io.WriteString(output, strings.Join(lines[1:], "\n"))
		io.WriteString(output, "\n")
	}

	if len(subModes) > 0 {
		io.WriteString(output, fmt.Sprintf("  available sub-modes: %s\n", strings.Join(subModes, ", ")))
		io.WriteString(output, fmt.Sprintf("    default: %s\n", subModes[0]))
	}

	if additionalHelp != "" {
		io.WriteString(output, "\n")
		io.WriteString(output, additionalHelp)
		io.WriteString(output, "\n")
	}
}
