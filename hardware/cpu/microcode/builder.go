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

// builder accumulates the steps for a single page.
type builder struct {
	page    instructions.Page
	variant Variant

	// HL for unindexed pages, IX or IY otherwise
	index registers.Wide

	steps []Step
}

func (b *builder) add(s ...Step) {
	b.steps = append(b.steps, s...)
}

// conditional adds a Test step followed by the two tails. MoveToNext is
// added to the end of both tails.
func (b *builder) conditional(cond Condition, taken []Step, declined []Step) {
	taken = append(taken, end())
	declined = append(declined, end())
	b.add(Step{Kind: Test, Cond: cond, Skip: len(taken)})
	b.add(taken...)
	b.add(declined...)
}

// the register encoded by three bits of an opcode. for indexed pages H and L
// are replaced by the halves of the index register. the value 6 must be
// handled by the caller
func (b *builder) r(z uint8) registers.Byte {
	switch z {
	case 4:
		return b.index.High()
	case 5:
		return b.index.Low()
	}
	return plain(z)
}

func plain(z uint8) registers.Byte {
	return [8]registers.Byte{
		registers.B, registers.C, registers.D, registers.E,
		registers.H, registers.L, NoData, registers.A,
	}[z]
}

func (b *builder) rp(p uint8) registers.Wide {
	return [4]registers.Wide{registers.BC, registers.DE, b.index, registers.SP}[p]
}

func (b *builder) rp2(p uint8) registers.Wide {
	return [4]registers.Wide{registers.BC, registers.DE, b.index, registers.AF}[p]
}

// memoryOperand adds the steps required to form the address of the (HL)
// operand and returns the cell holding that address. for indexed pages the
// displacement is fetched and followed by the specified number of half-cycles
// of internal operation
func (b *builder) memoryOperand(delay int) registers.Wide {
	if b.index == registers.HL {
		return registers.HL
	}
	b.add(readOperand(registers.Operand)...)
	b.add(Step{Kind: CalcIndex, Src16: b.index})
	b.add(internal(delay)...)
	return registers.Address
}

// prefix switches to another page and fetches the next opcode
func prefix(p instructions.Page) []Step {
	s := []Step{{Kind: SetPage, Page: p}}
	s = append(s, fetchCycle()...)
	return append(s, Step{Kind: Decode})
}

func end() Step {
	return Step{Kind: MoveToNext}
}

// read a byte from PC and advance PC
func readOperand(data registers.Byte) []Step {
	return append(readCycle(registers.PC, data), inc16(registers.PC))
}

// read a 16-bit operand into WZ
func readAddress() []Step {
	return append(readOperand(registers.WZ.Low()), readOperand(registers.WZ.High())...)
}

func push(w registers.Wide) []Step {
	s := []Step{dec16(registers.SP)}
	s = append(s, writeCycle(registers.SP, w.High())...)
	s = append(s, dec16(registers.SP))
	return append(s, writeCycle(registers.SP, w.Low())...)
}

func pop(w registers.Wide) []Step {
	s := readCycle(registers.SP, w.Low())
	s = append(s, inc16(registers.SP))
	s = append(s, readCycle(registers.SP, w.High())...)
	return append(s, inc16(registers.SP))
}

func move8(dst registers.Byte, src registers.Byte) Step {
	return Step{Kind: Move8, Dst8: dst, Src8: src}
}

func move16(dst registers.Wide, src registers.Wide, delta int) Step {
	return Step{Kind: Move16, Dst16: dst, Src16: src, N: delta}
}

func inc16(w registers.Wide) Step {
	return move16(w, w, 1)
}

func dec16(w registers.Wide) Step {
	return move16(w, w, -1)
}

func jump() Step {
	return move16(registers.PC, registers.WZ, 0)
}

func arith(op alu.Op, src registers.Byte) Step {
	return Step{Kind: Arith, Op: op, Src8: src}
}

// the condition encoded by three bits of an opcode
func condition(y uint8) Condition {
	return Condition(y)
}
