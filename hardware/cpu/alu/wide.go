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

// Add16 performs a 16-bit ADD. The sign, zero and parity flags are not
// affected. The half-carry is from bit 11.
func Add16(f registers.Flags, a uint16, b uint16) (uint16, registers.Flags) {
	r32 := uint32(a) + uint32(b)
	r := uint16(r32)
	f.Half = uint8((a^b^r)>>8) & registers.FlagHalf
	f.Carry = uint8(r32 >> 16)
	f.Subtract = 0
	f.XY = uint8(r >> 8)
	return r, f
}

// Adc16 performs a 16-bit ADC. All flags are affected.
func Adc16(f registers.Flags, a uint16, b uint16) (uint16, registers.Flags) {
	r32 := uint32(a) + uint32(b) + uint32(f.Carry&registers.FlagCarry)
	r := uint16(r32)
	return r, registers.Flags{
		Sign:   uint8(r >> 8),
		Zero:   uint8(r>>8) | uint8(r),
		XY:     uint8(r >> 8),
		Half:   uint8((a^b^r)>>8) & registers.FlagHalf,
		Parity: uint8(((a ^ r) & (b ^ r) & 0x8000) >> 13),
		Carry:  uint8(r32 >> 16),
	}
}

// Sbc16 performs a 16-bit SBC. All flags are affected.
func Sbc16(f registers.Flags, a uint16, b uint16) (uint16, registers.Flags) {
	r32 := uint32(a) - uint32(b) - uint32(f.Carry&registers.FlagCarry)
	r := uint16(r32)
	return r, registers.Flags{
		Sign:     uint8(r >> 8),
		Zero:     uint8(r>>8) | uint8(r),
		XY:       uint8(r >> 8),
		Half:     uint8((a^b^r)>>8) & registers.FlagHalf,
		Parity:   uint8(((a ^ b) & (a ^ r) & 0x8000) >> 13),
		Carry:    uint8(r32>>16) & registers.FlagCarry,
		Subtract: registers.FlagSubtract,
	}
}
