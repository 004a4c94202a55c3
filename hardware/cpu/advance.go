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
	"math"

	"github.com/jetsetilly/gopherz80/assert"
	"github.com/jetsetilly/gopherz80/hardware/cpu/microcode"
	"github.com/jetsetilly/gopherz80/hardware/memory/cpubus"
)

// Advance runs the CPU for the number of half-cycles in the budget. A partial
// cycle that does not fit into what remains of the budget is left for the
// next call, as is any budget that remains after the last partial cycle that
// fits.
//
// A partial cycle that the host has stretched can take the CPU over budget.
// The overrun is deducted from the next call.
func (mc *CPU) Advance(budget int) {
	assert.Check(mc.owner.Claim(), "cpu: Advance() called from more than one goroutine")
	mc.remaining += budget
	mc.run(false)
}

// ExecuteInstruction runs the CPU until the start of the next instruction,
// regardless of budget. It returns the number of half-cycles consumed.
// Interrupt and reset responses count as instructions.
//
// If the bus is requested the function returns after offering a single bus
// acknowledge cycle.
func (mc *CPU) ExecuteInstruction() int {
	assert.Check(mc.owner.Claim(), "cpu: ExecuteInstruction() called from more than one goroutine")

	carry := mc.remaining
	mc.remaining = math.MaxInt32
	start := mc.halfCycles
	mc.run(true)
	mc.remaining = carry

	return int(mc.halfCycles - start)
}

// run steps through the microcode until the budget is exhausted or, if
// toBoundary is true, until the next instruction boundary
func (mc *CPU) run(toBoundary bool) {
	first := true

	for {
		s := &mc.seq[mc.cursor]

		if s.Kind != microcode.Bus {
			if toBoundary && !first && s.Kind == microcode.Boundary {
				return
			}
			first = false
			mc.cursor++
			mc.execute(s)
			continue
		}
		first = false

		// the wait line is only sampled if it is asserted. a sampling partial
		// cycle takes no time otherwise
		if s.SampleWait && !mc.wait {
			mc.cursor++
			continue
		}

		if s.Operation.IsStart() && mc.busRequest {
			if mc.remaining < busAcknowledgeLength {
				return
			}
			mc.perform(cpubus.PartialCycle{
				Operation: cpubus.BusAcknowledge,
				Length:    busAcknowledgeLength,
				Address:   mc.Reg.Value16(s.Addr),
			})
			if toBoundary {
				return
			}
			continue
		}

		if s.Length > mc.remaining {
			return
		}

		mc.transact(s)

		// a wait sampling partial cycle is repeated while the wait line is
		// asserted. the cursor doesn't move so the step will be offered again
		if s.SampleWait && mc.wait {
			continue
		}
		mc.cursor++
	}
}

// transact performs a bus step. data moves into the register file only on
// the partial cycles that transfer data
func (mc *CPU) transact(s *microcode.Step) {
	cycle := cpubus.PartialCycle{
		Operation:  s.Operation,
		Length:     s.Length,
		Address:    mc.Reg.Value16(s.Addr),
		SampleWait: s.SampleWait,
	}

	var v uint8
	if s.Data != microcode.NoData {
		v = mc.Reg.Value8(s.Data)
		if s.Operation.Transfers() && reads(s.Operation) {
			// an unanswered read sees a floating bus
			v = 0xff
		}
		cycle.Value = &v
	}
	assert.Check(cycle.Value != nil || !s.Operation.Transfers(), "cpu: %s without a value", s.Operation)

	mc.perform(cycle)

	if s.Operation.Transfers() && reads(s.Operation) {
		mc.Reg.Load8(s.Data, v)
	}
}

// perform passes a partial cycle to the bus and accounts for the time taken
func (mc *CPU) perform(cycle cpubus.PartialCycle) {
	mc.sampled = mc.lines
	mc.sinceSample = 0
	mc.boundary = false

	n := cycle.Length + mc.bus.PerformCycle(cycle)
	mc.remaining -= n
	mc.halfCycles += uint64(n)
	mc.sinceSample += n
}

func reads(op cpubus.Operation) bool {
	switch op {
	case cpubus.OpcodeFetch, cpubus.Read, cpubus.Input, cpubus.Interrupt:
		return true
	}
	return false
}
