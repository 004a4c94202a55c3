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

package alu

import "github.com/jetsetilly/gopherz80/hardware/cpu/registers"

// ShiftOp identifies one of the eight rotate and shift operations encoded in
// bits 3 to 5 of the first quarter of the CB page.
type ShiftOp int

// List of valid ShiftOp values.
const (
	RLC ShiftOp = iota
	RRC
	RL
	RR
	SLA
	SRA
	SLL
	SRL
)

var shiftLabels = [...]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}

func (op ShiftOp) String() string {
	return shiftLabels[op]
}

func shift(op ShiftOp, carryIn uint8, v uint8) (r uint8, carry uint8) {
	switch op {
	case RLC:
		return v<<1 | v>>7, v >> 7
	case RRC:
		return v>>1 | v<<7, v & 0x01
	case RL:
		return v<<1 | carryIn, v >> 7
	case RR:
		return v>>1 | carryIn<<7, v & 0x01
	case SLA:
		return v << 1, v >> 7
	case SRA:
		return v>>1 | v&0x80, v & 0x01
	case SLL:
		return v<<1 | 0x01, v >> 7
	}
	return v >> 1, v & 0x01
}

// Shift performs one of the CB page rotate and shift operations. All flags
// other than the carry flag are taken from the result.
func Shift(op ShiftOp, f registers.Flags, v uint8) (uint8, registers.Flags) {
	r, c := shift(op, f.Carry&registers.FlagCarry, v)
	return r, registers.Flags{
		Sign:   r,
		Zero:   r,
		XY:     r,
		Parity: parity(r),
		Carry:  c,
	}
}

// ShiftA performs one of the four accumulator rotates of the base page
// (RLCA, RRCA, RLA, RRA). Only op values RLC, RRC, RL and RR are meaningful.
// The sign, zero and parity flags are not affected.
func ShiftA(op ShiftOp, f registers.Flags, a uint8) (uint8, registers.Flags) {
	r, c := shift(op, f.Carry&registers.FlagCarry, a)
	f.XY = r
	f.Half = 0
	f.Subtract = 0
	f.Carry = c
	return r, f
}

// Bit tests bit n of v. The undocumented flags are taken from xy, which the
// caller chooses according to the addressing mode of the instruction.
func Bit(f registers.Flags, n uint8, v uint8, xy uint8) registers.Flags {
	z := v & (1 << n)
	f.Sign = z
	f.Zero = z
	f.Parity = 0
	if z == 0 {
		f.Parity = registers.FlagParity
	}
	f.Half = registers.FlagHalf
	f.Subtract = 0
	f.XY = xy
	return f
}

// Rld rotates the low nibble of the accumulator and the memory value to the
// left, four bits at a time. It returns the new accumulator and memory value.
func Rld(f registers.Flags, a uint8, m uint8) (uint8, uint8, registers.Flags) {
	na := a&0xf0 | m>>4
	nm := m<<4 | a&0x0f
	return na, nm, loadFlags(f, na, parity(na))
}

// Rrd rotates the low nibble of the accumulator and the memory value to the
// right, four bits at a time. It returns the new accumulator and memory value.
func Rrd(f registers.Flags, a uint8, m uint8) (uint8, uint8, registers.Flags) {
	na := a&0xf0 | m&0x0f
	nm := a<<4 | m>>4
	return na, nm, loadFlags(f, na, parity(na))
}

// loadFlags is the common flag pattern for instructions that load a value and
// report it in the flags without changing the carry.
func loadFlags(f registers.Flags, v uint8, p uint8) registers.Flags {
	f.Sign = v
	f.Zero = v
	f.XY = v
	f.Half = 0
	f.Subtract = 0
	f.Parity = p
	return f
}

// In is the flag rule for IN r,(C).
func In(f registers.Flags, v uint8) registers.Flags {
	return loadFlags(f, v, parity(v))
}

// LoadIR is the flag rule for LD A,I and LD A,R. The parity flag takes the
// value of IFF2.
func LoadIR(f registers.Flags, v uint8, iff2 bool) registers.Flags {
	var p uint8
	if iff2 {
		p = registers.FlagParity
	}
	return loadFlags(f, v, p)
}
