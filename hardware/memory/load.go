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

package memory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher11/logger"
)

// Load reads a memory image from input. The image format is ASCII text, one
// octal number per line, each number fitting in 16 bits. The Nth word of the
// image is placed at byte address 2*N. Lines that are empty after trimming
// are skipped; any other line that fails to parse is an error.
//
// Returns the number of words loaded.
func (mem *Memory) Load(input io.Reader) (int, error) {
	n := 0
	lineNum := 0

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lineNum++

		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}

		w, err := strconv.ParseUint(s, 8, 16)
		if err != nil {
			return n, fmt.Errorf("memory: image line %d: not a 16bit octal word (%s)", lineNum, s)
		}

		if n >= NumWords {
			return n, fmt.Errorf("memory: image is larger than memory (%d words)", NumWords)
		}

		mem.words[n] = uint16(w)
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("memory: %v", err)
	}

	logger.Logf("memory", "loaded %d words from image", n)

	return n, nil
}
