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

package cpubus

import "fmt"

// Operation is the kind of a partial machine cycle.
type Operation int

// List of valid Operation values.
const (
	OpcodeFetchStart Operation = iota
	OpcodeFetchWait
	OpcodeFetch
	Refresh

	ReadStart
	ReadWait
	Read

	WriteStart
	WriteWait
	Write

	InputStart
	InputWait
	Input

	OutputStart
	OutputWait
	Output

	InterruptStart
	InterruptWait
	Interrupt

	// time passes but the bus is idle
	Internal

	// the bus has been handed to an external master
	BusAcknowledge

	NumOperations
)

var operationLabels = [NumOperations]string{
	"OpcodeFetchStart", "OpcodeFetchWait", "OpcodeFetch", "Refresh",
	"ReadStart", "ReadWait", "Read",
	"WriteStart", "WriteWait", "Write",
	"InputStart", "InputWait", "Input",
	"OutputStart", "OutputWait", "Output",
	"InterruptStart", "InterruptWait", "Interrupt",
	"Internal", "BusAcknowledge",
}

func (op Operation) String() string {
	if op < 0 || op >= NumOperations {
		return fmt.Sprintf("Operation(%d)", int(op))
	}
	return operationLabels[op]
}

// Transfers returns true if data is transferred during the operation. These
// operations always carry a value reference.
func (op Operation) Transfers() bool {
	switch op {
	case OpcodeFetch, Read, Write, Input, Output, Interrupt:
		return true
	}
	return false
}

// IsStart returns true if the operation is the first partial cycle of a
// machine cycle.
func (op Operation) IsStart() bool {
	switch op {
	case OpcodeFetchStart, ReadStart, WriteStart, InputStart, OutputStart, InterruptStart:
		return true
	}
	return false
}

// IsWait returns true if the operation is one of the wait partial cycles.
func (op Operation) IsWait() bool {
	switch op {
	case OpcodeFetchWait, ReadWait, WriteWait, InputWait, OutputWait, InterruptWait:
		return true
	}
	return false
}

// IsIO returns true if the operation addresses the port space rather than
// memory.
func (op Operation) IsIO() bool {
	switch op {
	case InputStart, InputWait, Input, OutputStart, OutputWait, Output:
		return true
	}
	return false
}

// PartialCycle is a single step of a machine cycle.
type PartialCycle struct {
	Operation Operation

	// duration of the partial cycle in half-cycles
	Length int

	// the address presented on the address bus. for Refresh this is the
	// value of the IR register
	Address uint16

	// the data to be read or written. only the Transfers() operations move
	// data but the start and wait partial cycles of the same machine cycle
	// carry the value for observation. nil for Refresh, Internal and
	// BusAcknowledge
	Value *uint8

	// whether the wait line is sampled during this partial cycle
	SampleWait bool
}

func (c PartialCycle) String() string {
	if c.Value != nil {
		return fmt.Sprintf("%s %04x %02x (%d)", c.Operation, c.Address, *c.Value, c.Length)
	}
	return fmt.Sprintf("%s %04x (%d)", c.Operation, c.Address, c.Length)
}

// Bus is implemented by the machine that hosts the CPU.
type Bus interface {
	// PerformCycle is called for every partial machine cycle. It returns
	// the number of additional half-cycles that the host has stretched the
	// partial cycle by. Most hosts will return zero.
	PerformCycle(cycle PartialCycle) int
}

// BusFunc is an adaptor that allows a plain function to be used as a Bus.
type BusFunc func(cycle PartialCycle) int

// PerformCycle implements the Bus interface.
func (f BusFunc) PerformCycle(cycle PartialCycle) int {
	return f(cycle)
}
