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

// branch returns the target of the instruction and whether control can pass
// to the next instruction.
func branch(ins instructions.Instruction) (target uint16, hasTarget bool, terminal bool) {
	n := len(ins.Bytes)
	if n == 0 {
		return 0, false, false
	}

	nn := func() uint16 {
		return uint16(ins.Bytes[n-1])<<8 | uint16(ins.Bytes[n-2])
	}
	relative := func() uint16 {
		return ins.Address + uint16(n) + uint16(int8(ins.Bytes[n-1]))
	}

	switch ins.Page {
	case instructions.Extended:
		// RETN and RETI
		if ins.Opcode&0xc7 == 0x45 {
			return 0, false, true
		}
		return 0, false, false

	case instructions.Base, instructions.IndexX, instructions.IndexY:
	default:
		return 0, false, false
	}

	op := ins.Opcode
	switch {
	case op == 0xc3:
		// JP nn
		return nn(), true, true
	case op == 0xcd:
		// CALL nn
		return nn(), true, false
	case op&0xc7 == 0xc2 || op&0xc7 == 0xc4:
		// JP cc,nn and CALL cc,nn
		return nn(), true, false
	case op == 0x18:
		// JR e
		return relative(), true, true
	case op == 0x10 || op == 0x20 || op == 0x28 || op == 0x30 || op == 0x38:
		// DJNZ and JR cc,e
		return relative(), true, false
	case op&0xc7 == 0xc7:
		// RST
		return uint16(op & 0x38), true, false
	case op == 0xc9 || op == 0xe9:
		// RET and JP (HL)
		return 0, false, true
	}

	return 0, false, false
}

// flow follows the program from the entry address. every instruction reached
// is added to the entries map. targets outside of the region are not
// followed.
func (dsm *Disassembly) flow(entry uint16) {
	queue := []uint16{entry}

	for len(queue) > 0 {
		addr := queue[0]
		queue = queue[1:]

		for dsm.inRegion(addr) {
			if e, ok := dsm.entries[addr]; ok && e.Type == EntryTypeFlow {
				break
			}

			e := newEntry(dsm.peek, addr)
			e.Type = EntryTypeFlow
			dsm.entries[addr] = e

			next := addr + uint16(e.Len())
			if !e.Terminal {
				e.Next = append(e.Next, next)
			}
			if e.HasTarget {
				e.Next = append(e.Next, e.Target)
				if dsm.inRegion(e.Target) {
					queue = append(queue, e.Target)
				}
			}

			if e.Terminal {
				break
			}
			addr = next
		}
	}
}

// previous addresses are the reverse of the next addresses. called once
// after all entry points have been followed.
func (dsm *Disassembly) linkPrev() {
	for _, a := range dsm.sortedAddresses() {
		for _, n := range dsm.entries[a].Next {
			if t, ok := dsm.entries[n]; ok {
				t.Prev = append(t.Prev, a)
			}
		}
	}
}
