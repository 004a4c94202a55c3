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

package cpubus_test

import (
	"testing"

	"github.com/jetsetilly/gopherz80/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherz80/test"
)

func TestOperations(t *testing.T) {
	var transfers, starts, waits int
	for op := cpubus.Operation(0); op < cpubus.NumOperations; op++ {
		if op.Transfers() {
			transfers++
		}
		if op.IsStart() {
			starts++
		}
		if op.IsWait() {
			waits++
		}
		test.ExpectInequality(t, op.String(), "")
	}

	// every machine cycle with a start and a wait phase transfers data
	test.ExpectEquality(t, transfers, 6)
	test.ExpectEquality(t, starts, 6)
	test.ExpectEquality(t, waits, 6)

	test.ExpectEquality(t, cpubus.Input.IsIO(), true)
	test.ExpectEquality(t, cpubus.Read.IsIO(), false)
}

func TestBusFunc(t *testing.T) {
	var seen cpubus.Operation
	var b cpubus.Bus = cpubus.BusFunc(func(c cpubus.PartialCycle) int {
		seen = c.Operation
		return 2
	})

	v := uint8(0x12)
	extra := b.PerformCycle(cpubus.PartialCycle{Operation: cpubus.Write, Length: 3, Address: 0x8000, Value: &v})
	test.ExpectEquality(t, extra, 2)
	test.ExpectEquality(t, seen, cpubus.Write)
}
