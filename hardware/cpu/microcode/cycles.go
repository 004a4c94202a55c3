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

package microcode

import (
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz80/hardware/memory/cpubus"
)

// Durations of the partial machine cycles in half-cycles.
const (
	startLength   = 3
	waitLength    = 2
	fetchLength   = 1
	refreshLength = 4
	dataLength    = 3

	// the automatic wait state inserted into I/O cycles
	ioWaitLength = 2

	// the automatic wait states inserted into interrupt acknowledge cycles
	ackWaitLength = 4
	ackLength     = 1
)

func bus(op cpubus.Operation, length int, addr registers.Wide, data registers.Byte, sample bool) Step {
	return Step{
		Kind:       Bus,
		Operation:  op,
		Length:     length,
		Addr:       addr,
		Data:       data,
		SampleWait: sample,
		Dst8:       NoData,
		Src8:       NoData,
		Copy:       NoData,
	}
}

// the M1 cycle. four T-states. the opcode is read into the Opcode register
func fetchCycle() []Step {
	return []Step{
		bus(cpubus.OpcodeFetchStart, startLength, registers.PC, registers.Opcode, false),
		bus(cpubus.OpcodeFetchWait, waitLength, registers.PC, registers.Opcode, true),
		bus(cpubus.OpcodeFetch, fetchLength, registers.PC, registers.Opcode, false),
		bus(cpubus.Refresh, refreshLength, registers.IR, NoData, false),
	}
}

// memory read cycle. three T-states
func readCycle(addr registers.Wide, data registers.Byte) []Step {
	return []Step{
		bus(cpubus.ReadStart, startLength, addr, data, false),
		bus(cpubus.ReadWait, waitLength, addr, data, true),
		bus(cpubus.Read, dataLength, addr, data, false),
	}
}

// memory write cycle. three T-states
func writeCycle(addr registers.Wide, data registers.Byte) []Step {
	return []Step{
		bus(cpubus.WriteStart, startLength, addr, data, false),
		bus(cpubus.WriteWait, waitLength, addr, data, true),
		bus(cpubus.Write, dataLength, addr, data, false),
	}
}

// port input cycle. four T-states including the automatic wait state
func inputCycle(addr registers.Wide, data registers.Byte) []Step {
	return []Step{
		bus(cpubus.InputStart, startLength, addr, data, false),
		bus(cpubus.InputWait, ioWaitLength, addr, data, false),
		bus(cpubus.InputWait, waitLength, addr, data, true),
		bus(cpubus.Input, dataLength, addr, data, false),
	}
}

// port output cycle. four T-states including the automatic wait state
func outputCycle(addr registers.Wide, data registers.Byte) []Step {
	return []Step{
		bus(cpubus.OutputStart, startLength, addr, data, false),
		bus(cpubus.OutputWait, ioWaitLength, addr, data, false),
		bus(cpubus.OutputWait, waitLength, addr, data, true),
		bus(cpubus.Output, dataLength, addr, data, false),
	}
}

// interrupt acknowledge cycle. six T-states when the wait line is not
// asserted, including the two automatic wait states and the refresh. every
// pass of the sampled wait phase adds one T-state. the byte supplied by the
// interrupting device is read into data
func ackCycle(data registers.Byte) []Step {
	return []Step{
		bus(cpubus.InterruptStart, startLength, registers.PC, data, false),
		bus(cpubus.InterruptWait, ackWaitLength, registers.PC, data, false),
		bus(cpubus.InterruptWait, waitLength, registers.PC, data, true),
		bus(cpubus.Interrupt, ackLength, registers.PC, data, false),
		bus(cpubus.Refresh, refreshLength, registers.IR, NoData, false),
	}
}

// internal operation for a number of half-cycles. zero length internal
// operations are folded away
func internal(length int) []Step {
	if length == 0 {
		return nil
	}
	return []Step{bus(cpubus.Internal, length, registers.PC, NoData, false)}
}
