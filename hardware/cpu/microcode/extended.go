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

import "github.com/jetsetilly/gopherz80/hardware/cpu/registers"

// interrupt mode for each of the eight IM opcodes
var interruptModes = [8]int{0, 0, 1, 2, 0, 0, 1, 2}

// extended compiles an opcode from the ED page. opcodes without a defined
// meaning are two byte NOPs
func (b *builder) extended(op uint8) {
	x := op >> 6
	y := (op >> 3) & 0x07
	z := op & 0x07
	p := y >> 1
	q := y & 0x01

	switch {
	case x == 1:
		b.extendedQuarter1(y, z, p, q)
	case x == 2 && z <= 3 && y >= 4:
		b.block(y, z)
	}
}

func (b *builder) extendedQuarter1(y, z, p, q uint8) {
	switch z {
	case 0:
		b.add(inputCycle(registers.BC, registers.Operand)...)
		b.add(Step{Kind: InputFlags, Src8: registers.Operand})
		if y != 6 {
			b.add(move8(plain(y), registers.Operand))
		}
		b.add(move16(registers.WZ, registers.BC, 1))

	case 1:
		if y == 6 {
			v := 0x00
			if b.variant == CMOS {
				v = 0xff
			}
			b.add(Step{Kind: Const8, Dst8: registers.Operand, N: v})
			b.add(outputCycle(registers.BC, registers.Operand)...)
		} else {
			b.add(outputCycle(registers.BC, plain(y))...)
		}
		b.add(move16(registers.WZ, registers.BC, 1))

	case 2:
		kind := Sbc16
		if q == 1 {
			kind = Adc16
		}
		b.add(Step{Kind: kind, Dst16: registers.HL, Src16: b.rp(p)})
		b.add(internal(14)...)

	case 3:
		w := b.rp(p)
		b.add(readAddress()...)
		if q == 0 {
			b.add(writeCycle(registers.WZ, w.Low())...)
			b.add(inc16(registers.WZ))
			b.add(writeCycle(registers.WZ, w.High())...)
		} else {
			b.add(readCycle(registers.WZ, w.Low())...)
			b.add(inc16(registers.WZ))
			b.add(readCycle(registers.WZ, w.High())...)
		}

	case 4:
		b.add(Step{Kind: Neg})

	case 5:
		// RETI and RETN both copy IFF2 into IFF1
		b.add(pop(registers.WZ)...)
		b.add(jump())
		b.add(Step{Kind: RestoreIFF})

	case 6:
		b.add(Step{Kind: InterruptMode, N: interruptModes[y]})

	case 7:
		switch y {
		case 0:
			b.add(internal(2)...)
			b.add(move8(registers.I, registers.A))
		case 1:
			b.add(internal(2)...)
			b.add(move8(registers.R, registers.A))
		case 2:
			b.add(internal(2)...)
			b.add(Step{Kind: LoadIR, Src8: registers.I})
		case 3:
			b.add(internal(2)...)
			b.add(Step{Kind: LoadIR, Src8: registers.R})
		case 4, 5:
			kind := Rrd
			if y == 5 {
				kind = Rld
			}
			b.add(readCycle(registers.HL, registers.Operand)...)
			b.add(internal(8)...)
			b.add(Step{Kind: kind})
			b.add(writeCycle(registers.HL, registers.Operand)...)
			b.add(move16(registers.WZ, registers.HL, 1))
		}
	}
}

// block compiles LDI, CPI, INI, OUTI and their decrementing and repeating
// forms
func (b *builder) block(y, z uint8) {
	dir := 1
	if y&0x01 == 1 {
		dir = -1
	}

	var cond Condition
	repeat := Step{Kind: Repeat}

	switch z {
	case 0:
		b.add(readCycle(registers.HL, registers.Operand)...)
		b.add(writeCycle(registers.DE, registers.Operand)...)
		b.add(internal(4)...)
		b.add(Step{Kind: BlockLoad, N: dir})
		cond = BCNonZero
		repeat.N = 1
	case 1:
		b.add(readCycle(registers.HL, registers.Operand)...)
		b.add(internal(10)...)
		b.add(Step{Kind: BlockCompare, N: dir})
		cond = BCNonZeroAndNZ
		repeat.N = 1
	case 2:
		b.add(internal(2)...)
		b.add(inputCycle(registers.BC, registers.Operand)...)
		b.add(writeCycle(registers.HL, registers.Operand)...)
		b.add(Step{Kind: BlockInput, N: dir})
		cond = BNonZero
	case 3:
		b.add(internal(2)...)
		b.add(readCycle(registers.HL, registers.Operand)...)
		b.add(Step{Kind: Adjust8, Dst8: registers.B, N: -1})
		b.add(outputCycle(registers.BC, registers.Operand)...)
		b.add(Step{Kind: BlockOutput, N: dir})
		cond = BNonZero
	}

	if y >= 6 {
		b.conditional(cond, append(internal(10), repeat), nil)
	}
}
