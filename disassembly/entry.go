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

package disassembly

import (
	"github.com/jetsetilly/gopherz80/hardware/cpu/instructions"
)

// EntryType describes the level of certainty of the entry.
type EntryType int

// List of valid EntryType values.
const (
	// a byte that has not been reached by the program flow
	EntryTypeData EntryType = iota

	// an instruction decoded by linear disassembly. it may be data
	EntryTypeDecode

	// an instruction reached by following the program from an entry point
	EntryTypeFlow
)

func (t EntryType) String() string {
	switch t {
	case EntryTypeData:
		return "data"
	case EntryTypeDecode:
		return "decode"
	case EntryTypeFlow:
		return "flow"
	}
	return "unknown"
}

// Entry is a single line of the disassembly.
type Entry struct {
	instructions.Instruction

	Type EntryType

	// the address the instruction may transfer control to other than the
	// next instruction
	Target    uint16
	HasTarget bool

	// control never passes to the next instruction
	Terminal bool

	// addresses that might be executed next and addresses of the
	// instructions that might have been executed previously. only filled in
	// by the Flow mode
	Next []uint16
	Prev []uint16
}

// Len returns the number of bytes covered by the entry.
func (e *Entry) Len() int {
	return len(e.Bytes)
}

// newEntry decodes the instruction at the address and analyses its effect on
// the program flow.
func newEntry(peek func(uint16) uint8, addr uint16) *Entry {
	e := &Entry{
		Instruction: instructions.Disassemble(peek, addr),
		Type:        EntryTypeDecode,
	}
	e.Target, e.HasTarget, e.Terminal = branch(e.Instruction)
	return e
}

// newData creates an entry for bytes that are not instructions.
func newData(addr uint16, data []uint8) *Entry {
	return &Entry{
		Instruction: instructions.Instruction{
			Address: addr,
			Bytes:   data,
		},
		Type: EntryTypeData,
	}
}
