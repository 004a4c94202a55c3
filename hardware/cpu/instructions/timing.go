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

package instructions

// Timing is the published duration of an instruction in T-states. One
// T-state is two half-cycles.
type Timing struct {
	// duration when the condition holds, or the only duration for
	// unconditional instructions. for the repeating block instructions this
	// is the duration of an iteration that repeats
	Taken int

	// duration when the condition does not hold. the same as Taken for
	// unconditional instructions
	Declined int

	// the opcode is a prefix and not an instruction
	Prefix bool
}

// Conditional returns true if the instruction has two durations.
func (t Timing) Conditional() bool {
	return t.Taken != t.Declined
}

// Lookup returns the published timing for an opcode in a page. The duration
// includes the fetch of all prefix bytes and, for the indexed bit pages, of
// the displacement.
func Lookup(p Page, opcode uint8) Timing {
	var t uint8
	var declined map[uint8]uint8

	switch p {
	case Base:
		t = baseTiming[opcode]
		declined = baseDeclined
	case Extended:
		t = extendedTiming[opcode]
		declined = extendedDeclined
	case Bit:
		t = bitTiming[opcode]
	case IndexX, IndexY:
		t = indexTiming[opcode]
		declined = indexDeclined
	case IndexXBit, IndexYBit:
		t = indexBitTiming[opcode]
	}

	if t == 0 {
		return Timing{Prefix: true}
	}

	tm := Timing{Taken: int(t), Declined: int(t)}
	if d, ok := declined[opcode]; ok {
		tm.Declined = int(d)
	}
	return tm
}
