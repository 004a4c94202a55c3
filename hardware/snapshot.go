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
	"github.com/jetsetilly/gopherz80/hardware/cpu"
	"github.com/jetsetilly/gopherz80/hardware/memory"
)

// State stores the machine sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	CPU   *cpu.CPU
	Mem   *memory.Memory
	ended bool
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *State {
	return &State{
		CPU:   m.CPU.Snapshot(),
		Mem:   m.Mem.Snapshot(),
		ended: m.ended,
	}
}

// Plumb a previously snapshotted state into the machine.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. the machine must not
	// change the stored state
	m.CPU = state.CPU.Snapshot()
	m.Mem = state.Mem.Snapshot()
	m.ended = state.ended
	m.err = nil

	m.CPU.Plumb(m)
	m.Mem.AttachWaitLine(m.CPU)
}
