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

package hardware

import (
	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
)

// Step the machine one CPU instruction. Returns the number of half-cycles
// consumed.
func (m *Machine) Step() (int, error) {
	if m.ended {
		return 0, curated.Errorf(ProgramEnded)
	}

	n := m.CPU.ExecuteInstruction()

	if m.err != nil {
		err := m.err
		m.err = nil
		return n, err
	}

	// nothing can wake the CPU in this machine except an interrupt
	if m.CPU.Halted() && !m.CPU.Reg.IFF1 {
		return n, curated.Errorf(HaltedForever, m.CPU.Reg.Value16(registers.PC))
	}

	return n, nil
}
