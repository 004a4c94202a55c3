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

package cpu

import (
	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz80/logger"
)

// Sentinel error patterns returned by the register access functions.
const (
	UnknownRegister = "cpu: unknown register (%s)"
	InvalidValue    = "cpu: invalid value for %s (%#x)"
)

// the registers that make up a saved state. the 8-bit registers are all
// covered by these
var stateNames = []string{
	"AF", "BC", "DE", "HL",
	"AF'", "BC'", "DE'", "HL'",
	"IX", "IY", "SP", "PC", "IR", "WZ",
	"IFF1", "IFF2", "IM",
}

// Registers returns the list of names accepted by Get() and Set().
func (mc *CPU) Registers() []string {
	return registers.Names()
}

// Get the value of a register by name. The 8-bit and 16-bit registers are
// named as they are in assembly language. The shadow registers are named with
// a trailing apostrophe and WZ is also known as MEMPTR. The interrupt
// flip-flops are named IFF1 and IFF2 and the interrupt mode IM.
func (mc *CPU) Get(name string) (uint16, error) {
	v, ok := mc.Reg.Get(name)
	if !ok {
		return 0, curated.Errorf(UnknownRegister, name)
	}
	return v, nil
}

// Set the value of a register by name. See Get() for the list of names.
func (mc *CPU) Set(name string, value uint16) error {
	if _, ok := mc.Reg.Get(name); !ok {
		return curated.Errorf(UnknownRegister, name)
	}
	if !mc.Reg.Set(name, value) {
		return curated.Errorf(InvalidValue, name, value)
	}
	return nil
}

// State returns the programmer visible state of the CPU as a map of register
// name to value.
func (mc *CPU) State() map[string]uint16 {
	s := make(map[string]uint16, len(stateNames))
	for _, n := range stateNames {
		s[n], _ = mc.Reg.Get(n)
	}
	return s
}

// SetState restores a state returned by State(). Entries with names that are
// not recognised are logged and ignored. The first error encountered is
// returned after all other entries have been restored.
func (mc *CPU) SetState(state map[string]uint16) error {
	var first error
	for n, v := range state {
		err := mc.Set(n, v)
		if err != nil {
			logger.Log(mc.Logging, "cpu", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
