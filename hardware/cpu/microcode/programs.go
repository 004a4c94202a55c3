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

// the fetch of the next instruction. every MoveToNext step leads here
func fetchProgram() []Step {
	s := []Step{{Kind: Boundary}}
	s = append(s, fetchCycle()...)
	return append(s, Step{Kind: Decode})
}

func resetProgram() []Step {
	s := internal(6)
	return append(s, Step{Kind: ResetState}, end())
}

// the NMI response is an opcode fetch whose result is discarded followed by
// a call to 0x0066
func nmiProgram() []Step {
	s := []Step{{Kind: AcceptNMI}}
	s = append(s, fetchCycle()...)
	s = append(s, Step{Kind: IncrementR, N: 1})
	s = append(s, internal(2)...)
	s = append(s, push(registers.PC)...)
	s = append(s, Step{Kind: Const16, Dst16: registers.WZ, N: 0x0066})
	return append(s, jump(), end())
}

// in mode 0 the byte placed on the bus by the interrupting device is
// decoded as an opcode. any further bytes the instruction requires are read
// from memory in the normal way
func mode0Program() []Step {
	s := []Step{{Kind: AcceptIRQ}}
	s = append(s, ackCycle(registers.Opcode)...)
	return append(s, Step{Kind: SuppressPC}, Step{Kind: Decode})
}

// in mode 1 the byte on the bus is ignored and the response is a call to
// 0x0038
func mode1Program() []Step {
	s := []Step{{Kind: AcceptIRQ}}
	s = append(s, ackCycle(registers.Operand)...)
	s = append(s, Step{Kind: IncrementR, N: 1})
	s = append(s, internal(2)...)
	s = append(s, push(registers.PC)...)
	s = append(s, Step{Kind: Const16, Dst16: registers.WZ, N: 0x0038})
	return append(s, jump(), end())
}

// in mode 2 the byte on the bus is the low byte of an address in the vector
// table. the I register supplies the high byte
func mode2Program() []Step {
	s := []Step{{Kind: AcceptIRQ}}
	s = append(s, ackCycle(registers.Operand)...)
	s = append(s, Step{Kind: IncrementR, N: 1})
	s = append(s, internal(2)...)
	s = append(s, push(registers.PC)...)
	s = append(s, move8(registers.Address.High(), registers.I))
	s = append(s, move8(registers.Address.Low(), registers.Operand))
	s = append(s, readCycle(registers.Address, registers.WZ.Low())...)
	s = append(s, inc16(registers.Address))
	s = append(s, readCycle(registers.Address, registers.WZ.High())...)
	return append(s, jump(), end())
}
