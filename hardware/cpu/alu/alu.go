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

import (
	"math/bits"

	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
)

// Op identifies one of the eight accumulator operations encoded in bits 3 to
// 5 of the arithmetic group of opcodes.
type Op int

// List of valid Op values.
const (
	Add Op = iota
	Adc
	Sub
	Sbc
	And
	Xor
	Or
	Cp
)

var opLabels = [...]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}

func (op Op) String() string {
	return opLabels[op]
}

// parity returns the parity flag for a value. The flag is set for even parity.
func parity(v uint8) uint8 {
	if bits.OnesCount8(v)&1 == 0 {
		return registers.FlagParity
	}
	return 0
}

// Arith performs one of the accumulator operations. For Cp the accumulator is
// returned unchanged.
func Arith(op Op, f registers.Flags, a uint8, b uint8) (uint8, registers.Flags) {
	switch op {
	case Add:
		return add(a, b, 0)
	case Adc:
		return add(a, b, f.Carry&registers.FlagCarry)
	case Sub:
		return sub(a, b, 0)
	case Sbc:
		return sub(a, b, f.Carry&registers.FlagCarry)
	case And:
		r := a & b
		return r, logic(r, registers.FlagHalf)
	case Xor:
		r := a ^ b
		return r, logic(r, 0)
	case Or:
		r := a | b
		return r, logic(r, 0)
	}

	// compare is a subtraction that discards the result. the undocumented
	// flags are taken from the operand
	_, nf := sub(a, b, 0)
	nf.XY = b
	return a, nf
}

func add(a uint8, b uint8, c uint8) (uint8, registers.Flags) {
	r16 := uint16(a) + uint16(b) + uint16(c)
	r := uint8(r16)
	return r, registers.Flags{
		Sign:   r,
		Zero:   r,
		XY:     r,
		Half:   (a ^ b ^ r) & registers.FlagHalf,
		Parity: ((a ^ r) & (b ^ r) & 0x80) >> 5,
		Carry:  uint8(r16 >> 8),
	}
}

func sub(a uint8, b uint8, c uint8) (uint8, registers.Flags) {
	r16 := uint16(a) - uint16(b) - uint16(c)
	r := uint8(r16)
	return r, registers.Flags{
		Sign:     r,
		Zero:     r,
		XY:       r,
		Half:     (a ^ b ^ r) & registers.FlagHalf,
		Parity:   ((a ^ b) & (a ^ r) & 0x80) >> 5,
		Carry:    uint8(r16>>8) & registers.FlagCarry,
		Subtract: registers.FlagSubtract,
	}
}

func logic(r uint8, half uint8) registers.Flags {
	return registers.Flags{
		Sign:   r,
		Zero:   r,
		XY:     r,
		Half:   half,
		Parity: parity(r),
	}
}

// Inc increments an 8-bit value. The carry flag is not affected.
func Inc(f registers.Flags, v uint8) (uint8, registers.Flags) {
	r := v + 1
	f.Sign = r
	f.Zero = r
	f.XY = r
	f.Half = (v ^ r) & registers.FlagHalf
	f.Parity = 0
	if r == 0x80 {
		f.Parity = registers.FlagParity
	}
	f.Subtract = 0
	return r, f
}

// Dec decrements an 8-bit value. The carry flag is not affected.
func Dec(f registers.Flags, v uint8) (uint8, registers.Flags) {
	r := v - 1
	f.Sign = r
	f.Zero = r
	f.XY = r
	f.Half = (v ^ r) & registers.FlagHalf
	f.Parity = 0
	if v == 0x80 {
		f.Parity = registers.FlagParity
	}
	f.Subtract = registers.FlagSubtract
	return r, f
}

// Neg negates the accumulator.
func Neg(f registers.Flags, a uint8) (uint8, registers.Flags) {
	return sub(0, a, 0)
}

// Cpl complements the accumulator.
func Cpl(f registers.Flags, a uint8) (uint8, registers.Flags) {
	r := ^a
	f.Half = registers.FlagHalf
	f.Subtract = registers.FlagSubtract
	f.XY = r
	return r, f
}

// Scf sets the carry flag. The undocumented flags are copied from the
// accumulator.
func Scf(f registers.Flags, a uint8) registers.Flags {
	f.Carry = registers.FlagCarry
	f.Half = 0
	f.Subtract = 0
	f.XY = a
	return f
}

// Ccf complements the carry flag. The half-carry flag takes the previous
// value of the carry flag.
func Ccf(f registers.Flags, a uint8) registers.Flags {
	f.Half = (f.Carry & registers.FlagCarry) << 4
	f.Carry = (f.Carry ^ registers.FlagCarry) & registers.FlagCarry
	f.Subtract = 0
	f.XY = a
	return f
}

// Daa adjusts the accumulator for binary coded decimal arithmetic, according
// to the result of the previous addition or subtraction.
func Daa(f registers.Flags, a uint8) (uint8, registers.Flags) {
	var correction uint8
	carry := f.IsCarry()
	lo := a & 0x0f

	if f.IsHalf() || lo > 9 {
		correction |= 0x06
	}
	if carry || a > 0x99 {
		correction |= 0x60
		carry = true
	}

	var r uint8
	var half bool
	if f.IsSubtract() {
		r = a - correction
		half = f.IsHalf() && lo < 6
	} else {
		r = a + correction
		half = lo > 9
	}

	f.Sign = r
	f.Zero = r
	f.XY = r
	f.Parity = parity(r)
	f.Half = 0
	if half {
		f.Half = registers.FlagHalf
	}
	f.Carry = 0
	if carry {
		f.Carry = registers.FlagCarry
	}
	return r, f
}
