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
	"github.com/jetsetilly/gopherz80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
)

// base compiles an opcode from the unprefixed page or from one of the DD and
// FD pages. the only difference between them is the value of b.index
func (b *builder) base(op uint8) {
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07
	p := y >> 1
	q := y & 0x01

	switch x {
	case 0:
		b.baseQuarter0(y, z, p, q)

	case 1:
		switch {
		case y == 6 && z == 6:
			b.add(Step{Kind: Halt})
		case z == 6:
			addr := b.memoryOperand(10)
			b.add(readCycle(addr, plain(y))...)
		case y == 6:
			addr := b.memoryOperand(10)
			b.add(writeCycle(addr, plain(z))...)
		default:
			b.add(move8(b.r(y), b.r(z)))
		}

	case 2:
		if z == 6 {
			addr := b.memoryOperand(10)
			b.add(readCycle(addr, registers.Operand)...)
			b.add(arith(alu.Op(y), registers.Operand))
		} else {
			b.add(arith(alu.Op(y), b.r(z)))
		}

	case 3:
		b.baseQuarter3(y, z, p, q)
	}
}

func (b *builder) baseQuarter0(y, z, p, q uint8) {
	switch z {
	case 0:
		switch y {
		case 0:
			// NOP
		case 1:
			b.add(Step{Kind: ExchangeAF})
		case 2:
			// DJNZ
			b.add(internal(2)...)
			b.add(readOperand(registers.Operand)...)
			b.add(Step{Kind: Adjust8, Dst8: registers.B, N: -1})
			b.conditional(BNonZero, append(internal(10), Step{Kind: RelativeJump}), nil)
		case 3:
			b.add(readOperand(registers.Operand)...)
			b.add(internal(10)...)
			b.add(Step{Kind: RelativeJump})
		default:
			b.add(readOperand(registers.Operand)...)
			b.conditional(condition(y-4), append(internal(10), Step{Kind: RelativeJump}), nil)
		}

	case 1:
		if q == 0 {
			w := b.rp(p)
			b.add(readOperand(w.Low())...)
			b.add(readOperand(w.High())...)
		} else {
			b.add(Step{Kind: Add16, Dst16: b.index, Src16: b.rp(p)})
			b.add(internal(14)...)
		}

	case 2:
		switch p {
		case 0, 1:
			w := registers.BC
			if p == 1 {
				w = registers.DE
			}
			if q == 0 {
				b.add(writeCycle(w, registers.A)...)
				b.add(Step{Kind: MemptrA, Src16: w})
			} else {
				b.add(readCycle(w, registers.A)...)
				b.add(move16(registers.WZ, w, 1))
			}
		case 2:
			b.add(readAddress()...)
			if q == 0 {
				b.add(writeCycle(registers.WZ, b.index.Low())...)
				b.add(inc16(registers.WZ))
				b.add(writeCycle(registers.WZ, b.index.High())...)
			} else {
				b.add(readCycle(registers.WZ, b.index.Low())...)
				b.add(inc16(registers.WZ))
				b.add(readCycle(registers.WZ, b.index.High())...)
			}
		case 3:
			b.add(readAddress()...)
			if q == 0 {
				b.add(writeCycle(registers.WZ, registers.A)...)
				b.add(Step{Kind: MemptrA, Src16: registers.WZ})
			} else {
				b.add(readCycle(registers.WZ, registers.A)...)
				b.add(inc16(registers.WZ))
			}
		}

	case 3:
		if q == 0 {
			b.add(inc16(b.rp(p)))
		} else {
			b.add(dec16(b.rp(p)))
		}
		b.add(internal(4)...)

	case 4, 5:
		kind := Inc8
		if z == 5 {
			kind = Dec8
		}
		if y == 6 {
			addr := b.memoryOperand(10)
			b.add(readCycle(addr, registers.Operand)...)
			b.add(internal(2)...)
			b.add(Step{Kind: kind, Dst8: registers.Operand})
			b.add(writeCycle(addr, registers.Operand)...)
		} else {
			b.add(Step{Kind: kind, Dst8: b.r(y)})
		}

	case 6:
		if y == 6 {
			addr := b.memoryOperand(0)
			b.add(readOperand(registers.Operand)...)
			if b.page.Indexed() {
				b.add(internal(4)...)
			}
			b.add(writeCycle(addr, registers.Operand)...)
		} else {
			b.add(readOperand(b.r(y))...)
		}

	case 7:
		switch y {
		case 0, 1, 2, 3:
			b.add(Step{Kind: ShiftA, Shift: alu.ShiftOp(y)})
		case 4:
			b.add(Step{Kind: Daa})
		case 5:
			b.add(Step{Kind: Cpl})
		case 6:
			b.add(Step{Kind: Scf})
		case 7:
			b.add(Step{Kind: Ccf})
		}
	}
}

func (b *builder) baseQuarter3(y, z, p, q uint8) {
	switch z {
	case 0:
		b.add(internal(2)...)
		b.conditional(condition(y), append(pop(registers.WZ), jump()), nil)

	case 1:
		if q == 0 {
			b.add(pop(b.rp2(p))...)
			return
		}
		switch p {
		case 0:
			b.add(pop(registers.WZ)...)
			b.add(jump())
		case 1:
			b.add(Step{Kind: Exchange})
		case 2:
			b.add(move16(registers.PC, b.index, 0))
		case 3:
			b.add(move16(registers.SP, b.index, 0))
			b.add(internal(4)...)
		}

	case 2:
		b.add(readAddress()...)
		b.conditional(condition(y), []Step{jump()}, nil)

	case 3:
		switch y {
		case 0:
			b.add(readAddress()...)
			b.add(jump())
		case 1:
			b.bitPrefix()
		case 2:
			// OUT (n),A
			b.add(readOperand(registers.WZ.Low())...)
			b.add(move8(registers.WZ.High(), registers.A))
			b.add(outputCycle(registers.WZ, registers.A)...)
			b.add(Step{Kind: MemptrA, Src16: registers.WZ})
		case 3:
			// IN A,(n)
			b.add(readOperand(registers.WZ.Low())...)
			b.add(move8(registers.WZ.High(), registers.A))
			b.add(inputCycle(registers.WZ, registers.A)...)
			b.add(inc16(registers.WZ))
		case 4:
			// EX (SP),HL
			b.add(readCycle(registers.SP, registers.WZ.Low())...)
			b.add(move16(registers.Address, registers.SP, 1))
			b.add(readCycle(registers.Address, registers.WZ.High())...)
			b.add(internal(2)...)
			b.add(writeCycle(registers.Address, b.index.High())...)
			b.add(writeCycle(registers.SP, b.index.Low())...)
			b.add(internal(4)...)
			b.add(move16(b.index, registers.WZ, 0))
		case 5:
			b.add(Step{Kind: ExchangeDEHL})
		case 6:
			b.add(Step{Kind: DisableInterrupts})
		case 7:
			b.add(Step{Kind: EnableInterrupts})
		}

	case 4:
		// the low byte of the target is read whether or not the call is taken
		b.add(readOperand(registers.WZ.Low())...)
		taken := readOperand(registers.WZ.High())
		taken = append(taken, internal(2)...)
		taken = append(taken, push(registers.PC)...)
		taken = append(taken, jump())
		declined := append([]Step{inc16(registers.PC)}, internal(6)...)
		b.conditional(condition(y), taken, declined)

	case 5:
		if q == 0 {
			b.add(internal(2)...)
			b.add(push(b.rp2(p))...)
			return
		}
		switch p {
		case 0:
			b.add(readAddress()...)
			b.add(internal(2)...)
			b.add(push(registers.PC)...)
			b.add(jump())
		case 1:
			b.add(prefix(instructions.IndexX)...)
		case 2:
			b.add(prefix(instructions.Extended)...)
		case 3:
			b.add(prefix(instructions.IndexY)...)
		}

	case 6:
		b.add(readOperand(registers.Operand)...)
		b.add(arith(alu.Op(y), registers.Operand))

	case 7:
		b.add(internal(2)...)
		b.add(push(registers.PC)...)
		b.add(Step{Kind: Const16, Dst16: registers.WZ, N: int(y) * 8})
		b.add(jump())
	}
}

// bitPrefix is the CB prefix. for the indexed pages the displacement comes
// before the final opcode, which is read with an ordinary memory read and so
// does not increment the refresh counter
func (b *builder) bitPrefix() {
	switch b.page {
	case instructions.IndexX, instructions.IndexY:
		next := instructions.IndexXBit
		if b.page == instructions.IndexY {
			next = instructions.IndexYBit
		}
		b.add(readOperand(registers.Operand)...)
		b.add(Step{Kind: CalcIndex, Src16: b.index})
		b.add(readCycle(registers.PC, registers.Opcode)...)
		b.add(internal(4)...)
		b.add(Step{Kind: SetPage, Page: next})
		b.add(Step{Kind: Decode})
	default:
		b.add(prefix(instructions.Bit)...)
	}
}
