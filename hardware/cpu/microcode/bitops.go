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
	"github.com/jetsetilly/gopherz80/hardware/cpu/alu"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
)

// modify returns the step for the rotate, shift, RES and SET groups. the
// group is selected by x and the operation or bit number by y. if also is
// not NoData the result is also written to that register
func modify(x, y uint8, dst registers.Byte, also registers.Byte) Step {
	s := Step{Dst8: dst, Copy: also, N: int(y)}
	switch x {
	case 0:
		s.Kind = Shift
		s.Shift = alu.ShiftOp(y)
	case 2:
		s.Kind = Res
	case 3:
		s.Kind = SetBit
	}
	return s
}

// bit compiles an opcode from the CB page
func (b *builder) bit(op uint8) {
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07

	if z != 6 {
		if x == 1 {
			b.add(Step{Kind: Bit, Src8: plain(z), N: int(y)})
		} else {
			b.add(modify(x, y, plain(z), NoData))
		}
		return
	}

	b.add(readCycle(registers.HL, registers.Operand)...)
	b.add(internal(2)...)
	if x == 1 {
		b.add(Step{Kind: Bit, Src8: registers.Operand, N: int(y), XYFromWZ: true})
		return
	}
	b.add(modify(x, y, registers.Operand, NoData))
	b.add(writeCycle(registers.HL, registers.Operand)...)
}

// indexBit compiles an opcode from the DDCB or FDCB pages. the effective
// address has already been calculated by the time the opcode is decoded. for
// opcodes that don't name (HL) the result is also copied to a register
func (b *builder) indexBit(op uint8) {
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07

	b.add(readCycle(registers.Address, registers.Operand)...)
	b.add(internal(2)...)

	if x == 1 {
		b.add(Step{Kind: Bit, Src8: registers.Operand, N: int(y), XYFromWZ: true})
		return
	}

	also := NoData
	if z != 6 {
		also = plain(z)
	}
	b.add(modify(x, y, registers.Operand, also))
	b.add(writeCycle(registers.Address, registers.Operand)...)
}
