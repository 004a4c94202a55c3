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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/hardware/memory"
	"github.com/jetsetilly/gopherz80/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherz80/test"
)

type waitLine struct {
	asserted bool
	changes  int
}

func (w *waitLine) SetWait(asserted bool) {
	w.asserted = asserted
	w.changes++
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.Load(0x0100, []uint8{0x01, 0x02, 0x03})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mem.Peek(0x0100), 0x01)
	test.ExpectEquality(t, mem.Peek(0x0102), 0x03)

	err = mem.Load(0xfffe, []uint8{0x01, 0x02, 0x03})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.LoadOverflow))

	// exactly fits
	err = mem.Load(0xfffe, []uint8{0x01, 0x02})
	test.ExpectSuccess(t, err)
}

func TestTransfers(t *testing.T) {
	mem := memory.NewMemory()
	mem.Poke(0x4000, 0x55)
	mem.SetTracing(true)

	var v uint8
	mem.PerformCycle(cpubus.PartialCycle{Operation: cpubus.ReadStart, Length: 3, Address: 0x4000, Value: &v})
	test.ExpectEquality(t, v, 0x00)
	mem.PerformCycle(cpubus.PartialCycle{Operation: cpubus.Read, Length: 3, Address: 0x4000, Value: &v})
	test.ExpectEquality(t, v, 0x55)

	v = 0xaa
	mem.PerformCycle(cpubus.PartialCycle{Operation: cpubus.Write, Length: 3, Address: 0x4001, Value: &v})
	test.ExpectEquality(t, mem.Peek(0x4001), 0xaa)

	// output then input on the same port
	v = 0x12
	mem.PerformCycle(cpubus.PartialCycle{Operation: cpubus.Output, Length: 3, Address: 0x00fe, Value: &v})
	v = 0x00
	mem.PerformCycle(cpubus.PartialCycle{Operation: cpubus.Input, Length: 3, Address: 0x00fe, Value: &v})
	test.ExpectEquality(t, v, 0x12)

	// interrupt acknowledge
	mem.Vector = 0x04
	mem.PerformCycle(cpubus.PartialCycle{Operation: cpubus.Interrupt, Length: 1, Address: 0x0000, Value: &v})
	test.ExpectEquality(t, v, 0x04)

	// the start cycle is not recorded
	tr := mem.Trace()
	test.DemandEquality(t, len(tr), 5)
	test.ExpectEquality(t, tr[0], memory.Transaction{Operation: cpubus.Read, Address: 0x4000, Value: 0x55})
	test.ExpectEquality(t, tr[1], memory.Transaction{Operation: cpubus.Write, Address: 0x4001, Value: 0xaa})
	test.ExpectEquality(t, tr[4].String(), "Interrupt 0000 04")

	mem.SetTracing(false)
	test.ExpectEquality(t, len(mem.Trace()), 0)
}

func TestWaitStates(t *testing.T) {
	mem := memory.NewMemory()
	w := &waitLine{}
	mem.AttachWaitLine(w)
	mem.SetWaitStates(2)

	var v uint8
	mem.PerformCycle(cpubus.PartialCycle{Operation: cpubus.ReadStart, Length: 3, Value: &v})
	test.ExpectSuccess(t, w.asserted)

	mem.PerformCycle(cpubus.PartialCycle{Operation: cpubus.ReadWait, Length: 2, Value: &v, SampleWait: true})
	test.ExpectSuccess(t, w.asserted)
	mem.PerformCycle(cpubus.PartialCycle{Operation: cpubus.ReadWait, Length: 2, Value: &v, SampleWait: true})
	test.ExpectFailure(t, w.asserted)
	test.ExpectEquality(t, w.changes, 2)

	// I/O cycles have their own wait state and are not stretched
	mem.PerformCycle(cpubus.PartialCycle{Operation: cpubus.InputStart, Length: 3, Value: &v})
	test.ExpectFailure(t, w.asserted)
}
