// This file is part of Gopherz80.
//
// Gopherz80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherz80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherz80.  If not, see <https://www.gnu.org/licenses/>.

//go:build !windows

package monitor

import (
	"bufio"
	"fmt"

	"github.com/jetsetilly/gopherz80/govern"
	"github.com/pkg/term"
)

// the terminal device used by KeyLoop()
const tty = "/dev/tty"

// KeyLoop controls the machine with single key presses. The terminal is put
// into raw mode for the duration of the loop and restored on return.
func (mon *Monitor) KeyLoop() error {
	t, err := term.Open(tty, term.RawMode)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer t.Close()
	defer t.Restore()

	// output in raw mode needs explicit carriage returns
	output := mon.output
	mon.output = crlf{output}
	defer func() {
		mon.output = output
	}()

	key := make([]byte, 1)
	for mon.state != govern.Ending {
		mon.printf("[%04x] ", mon.pc())
		if _, err := t.Read(key); err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		mon.printf("\n")

		var cmd string
		switch key[0] {
		case ' ', 's':
			cmd = "STEP"
		case 'r':
			cmd = "RUN"
		case 'g':
			cmd = "REGS"
		case 't':
			cmd = "TRACE"
		case 'q', 0x03:
			cmd = "QUIT"
		case ':':
			// a full command line is read in the normal terminal mode
			if err := t.Restore(); err != nil {
				return fmt.Errorf("monitor: %w", err)
			}
			mon.printf(": ")
			line, _ := bufio.NewReader(t).ReadString('\n')
			cmd = line
			if err := term.RawMode(t); err != nil {
				return fmt.Errorf("monitor: %w", err)
			}
		default:
			continue // for loop
		}

		if err := mon.Command(cmd); err != nil {
			mon.printf("* %v\n", err)
		}
	}

	return nil
}
