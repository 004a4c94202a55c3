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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherz80/hardware/cpu"
	"github.com/jetsetilly/gopherz80/hardware/memory"
	"github.com/jetsetilly/gopherz80/logger"
	"github.com/jetsetilly/gopherz80/test"
)

// newCPU creates a CPU and memory with the program at address zero. the
// power-on sequence is run before returning
func newCPU(t *testing.T, program ...uint8) (*cpu.CPU, *memory.Memory) {
	t.Helper()

	mem := memory.NewMemory()
	test.DemandSuccess(t, mem.Load(0x0000, program))

	mc := cpu.NewCPU(nil, mem)
	mc.Logging = logger.Deny
	mem.AttachWaitLine(mc)

	// power-on sequence
	test.DemandEquality(t, mc.ExecuteInstruction(), 6)
	test.DemandSuccess(t, mc.IsBoundary())

	return mc, mem
}

// reg returns the value of a register, failing the test if the register
// doesn't exist
func reg(t *testing.T, mc *cpu.CPU, name string) uint16 {
	t.Helper()
	v, err := mc.Get(name)
	test.DemandSuccess(t, err)
	return v
}

// setReg sets the values of registers
func setReg(t *testing.T, mc *cpu.CPU, regs map[string]uint16) {
	t.Helper()
	for n, v := range regs {
		test.DemandSuccess(t, mc.Set(n, v))
	}
}
