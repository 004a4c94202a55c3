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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/hardware/memory/cpubus"
)

// Sentinel error patterns returned by the memory package.
const (
	LoadOverflow = "memory: data does not fit at origin (%#04x + %d bytes)"
)

// WaitLine is implemented by the CPU.
type WaitLine interface {
	SetWait(asserted bool)
}

// Transaction is a single data transfer on the bus.
type Transaction struct {
	Operation cpubus.Operation
	Address   uint16
	Value     uint8
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %04x %02x", t.Operation, t.Address, t.Value)
}

// Memory implements the cpubus.Bus interface.
type Memory struct {
	RAM   [0x10000]uint8
	Ports [0x10000]uint8

	// the value placed on the data bus by an interrupting device during the
	// interrupt acknowledge cycle
	Vector uint8

	// optional callbacks for port activity. if Input is nil then reading a
	// port returns the last value written to it
	Input  func(port uint16) uint8
	Output func(port uint16, data uint8)

	wait       WaitLine
	waitStates int
	waitCount  int

	tracing bool
	trace   []Transaction
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		Vector: 0xff,
	}
}

// AttachWaitLine connects the wait line of the CPU to the memory. The wait
// line is required if SetWaitStates() is used.
func (mem *Memory) AttachWaitLine(wait WaitLine) {
	mem.wait = wait
}

// Snapshot creates a copy of the memory. The copy is not tracing and shares
// the wait line and the port callbacks with the original.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.tracing = false
	n.trace = nil
	return &n
}

// SetWaitStates sets the number of wait states inserted into every memory
// read, memory write and opcode fetch.
func (mem *Memory) SetWaitStates(n int) {
	if n < 0 {
		n = 0
	}
	mem.waitStates = n
}

// Load copies data into RAM starting at the origin address.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > len(mem.RAM) {
		return curated.Errorf(LoadOverflow, origin, len(data))
	}
	copy(mem.RAM[origin:], data)
	return nil
}

// Peek returns the value at the address without affecting the trace.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.RAM[address]
}

// Poke sets the value at the address without affecting the trace.
func (mem *Memory) Poke(address uint16, value uint8) {
	mem.RAM[address] = value
}

// SetTracing turns the recording of transactions on or off. Turning tracing
// on clears any existing trace.
func (mem *Memory) SetTracing(on bool) {
	mem.tracing = on
	mem.trace = mem.trace[:0]
}

// Trace returns the transactions recorded since tracing was turned on.
func (mem *Memory) Trace() []Transaction {
	return mem.trace
}

// PerformCycle implements the cpubus.Bus interface.
func (mem *Memory) PerformCycle(cycle cpubus.PartialCycle) int {
	switch cycle.Operation {
	case cpubus.OpcodeFetchStart, cpubus.ReadStart, cpubus.WriteStart:
		if mem.waitStates > 0 && mem.wait != nil {
			mem.waitCount = mem.waitStates
			mem.wait.SetWait(true)
		}

	case cpubus.OpcodeFetch, cpubus.Read:
		*cycle.Value = mem.RAM[cycle.Address]

	case cpubus.Write:
		mem.RAM[cycle.Address] = *cycle.Value

	case cpubus.Input:
		if mem.Input != nil {
			*cycle.Value = mem.Input(cycle.Address)
		} else {
			*cycle.Value = mem.Ports[cycle.Address]
		}

	case cpubus.Output:
		mem.Ports[cycle.Address] = *cycle.Value
		if mem.Output != nil {
			mem.Output(cycle.Address, *cycle.Value)
		}

	case cpubus.Interrupt:
		*cycle.Value = mem.Vector
	}

	if cycle.SampleWait && mem.waitCount > 0 {
		mem.waitCount--
		if mem.waitCount == 0 {
			mem.wait.SetWait(false)
		}
	}

	if mem.tracing && cycle.Operation.Transfers() {
		mem.trace = append(mem.trace, Transaction{
			Operation: cycle.Operation,
			Address:   cycle.Address,
			Value:     *cycle.Value,
		})
	}

	return 0
}

// String returns a hex dump of the first page of RAM.
func (mem *Memory) String() string {
	return mem.Dump(0x0000, 0x0100)
}

// Dump returns a hex dump of length bytes of RAM from the origin. The origin
// is rounded down to a multiple of sixteen.
func (mem *Memory) Dump(origin uint16, length int) string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	a := int(origin &^ 0x0f)
	for y := 0; y < (length+15)/16 && a < len(mem.RAM); y++ {
		s.WriteString(fmt.Sprintf("%04x| ", a))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.RAM[a+x]))
		}
		s.WriteString("\n")
		a += 16
	}
	return strings.Trim(s.String(), "\n")
}
