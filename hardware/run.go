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
	"github.com/jetsetilly/gopherz80/govern"
)

// PerformanceBrake is the number of instructions between calls to the
// continueCheck function of Run(). Checking after every instruction can be
// expensive.
const PerformanceBrake = 100

// Run the machine until the program ends or the continueCheck function
// returns the Ending state. The continueCheck function can be nil.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error
	var brake int

	state := govern.Running
	for state != govern.Ending && !m.ended {
		switch state {
		case govern.Running:
			if _, err := m.Step(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		brake++
		if brake >= PerformanceBrake || state != govern.Running {
			brake = 0
			state, err = continueCheck()
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// RunFor runs the machine for the specified number of instructions or until
// the program ends.
func (m *Machine) RunFor(instructions int) error {
	for i := 0; i < instructions && !m.ended; i++ {
		if _, err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
