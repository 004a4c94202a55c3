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

// undocumented flags for block transfer and compare take bit 3 from bit 3 of
// n and bit 5 from bit 1 of n
func blockXY(n uint8) uint8 {
	return n&registers.FlagX | (n<<4)&registers.FlagY
}

func counterParity(bc uint16) uint8 {
	if bc != 0 {
		return registers.FlagParity
	}
	return 0
}

// BlockLoad is the flag rule for LDI and LDD. The bc argument is the value of
// the counter after it has been decremented.
func BlockLoad(f registers.Flags, a uint8, v uint8, bc uint16) registers.Flags {
	f.XY = blockXY(a + v)
	f.Half = 0
	f.Subtract = 0
	f.Parity = counterParity(bc)
	return f
}

// BlockCompare is the flag rule for CPI and CPD. The bc argument is the value
// of the counter after it has been decremented.
func BlockCompare(f registers.Flags, a uint8, v uint8, bc uint16) registers.Flags {
	r := a - v
	h := (a ^ v ^ r) & registers.FlagHalf
	f.Sign = r
	f.Zero = r
	f.Half = h
	f.XY = blockXY(r - h>>4)
	f.Parity = counterParity(bc)
	f.Subtract = registers.FlagSubtract
	return f
}

// BlockIO is the flag rule for INI, IND, OUTI and OUTD. The b argument is the
// value of B after it has been decremented. The adjust argument is C plus or
// minus one for the input instructions and the new value of L for the output
// instructions.
func BlockIO(f registers.Flags, v uint8, b uint8, adjust uint8) registers.Flags {
	k := uint16(v) + uint16(adjust)
	f.Sign = b
	f.Zero = b
	f.XY = b
	f.Subtract = (v >> 6) & registers.FlagSubtract
	f.Half = 0
	f.Carry = 0
	if k > 0xff {
		f.Half = registers.FlagHalf
		f.Carry = registers.FlagCarry
	}
	f.Parity = parity(uint8(k)&0x07 ^ b)
	return f
}

// BlockIORepeat adjusts the flags of INIR, INDR, OTIR and OTDR when the
// instruction repeats. The v argument is the transferred byte and b is the
// value of B after it has been decremented. It should be applied after
// BlockIO.
func BlockIORepeat(f registers.Flags, v uint8, b uint8) registers.Flags {
	x := b
	if f.IsCarry() {
		f.Half = 0
		if v&0x80 != 0 {
			x = b - 1
			if b&0x0f == 0x00 {
				f.Half = registers.FlagHalf
			}
		} else {
			x = b + 1
			if b&0x0f == 0x0f {
				f.Half = registers.FlagHalf
			}
		}
	}

	// parity flips when the low three bits of x have odd parity
	f.Parity ^= parity(x&0x07) ^ registers.FlagParity
	return f
}
