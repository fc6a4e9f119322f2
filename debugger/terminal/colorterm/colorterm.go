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

// Package colorterm implements the Terminal interface for the debugger. It
// provides a little more than the plainterm package: the terminal is put in
// cbreak mode while input is read and output is coloured by style.
package colorterm

import (
	"io"
	"os"

	"github.com/jetsetilly/gopher11/debugger/terminal"
	"github.com/jetsetilly/gopher11/debugger/terminal/colorterm/easyterm"
)

// ansi pens for each terminal style
const (
	penTrace  = "\033[36m"
	penHelp   = "\033[2m"
	penError  = "\033[31m"
	penPrompt = "\033[1m"
	penOff    = "\033[0m"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	return ct.Terminal.Initialise(os.Stdin, os.Stdout)
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.Print("\r")
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	switch style {
	case terminal.StyleTrace:
		ct.Print(penTrace)
	case terminal.StyleHelp:
		ct.Print(penHelp)
	case terminal.StyleError:
		ct.Print("%s* ", penError)
	}

	ct.Print(s)
	ct.Print(penOff)
	ct.Print("\n")
}

// TermRead implements the terminal.Input interface. Input is gathered in
// cbreak mode with just enough line editing to be comfortable: backspace and
// ctrl-u.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	ct.Print("%s%s%s", penPrompt, prompt, penOff)

	input := make([]byte, 0, 255)

	for {
		r, err := ct.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case '\n', '\r':
			ct.Print("\n")
			return string(input), nil

		case 0x04: // ctrl-d
			if len(input) == 0 {
				ct.Print("\n")
				return "", io.EOF
			}

		case 0x03: // ctrl-c
			ct.Print("\n")
			return "", io.EOF

		case 0x15: // ctrl-u
			for range input {
				ct.Print("\b \b")
			}
			input = input[:0]

		case 0x7f, 0x08: // backspace
			if len(input) > 0 {
				input = input[:len(input)-1]
				ct.Print("\b \b")
			}

		default:
			// printable ASCII only; anything else is quietly dropped
			if r >= 0x20 && r < 0x7f {
				input = append(input, r)
				ct.Print("%c", r)
			}
		}
	}
}
