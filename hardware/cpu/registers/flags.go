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

package registers

import "strings"

// Bit positions of the flags in the F register.
const (
	FlagCarry    = 0x01
	FlagSubtract = 0x02
	FlagParity   = 0x04
	FlagX        = 0x08
	FlagHalf     = 0x10
	FlagY        = 0x20
	FlagZero     = 0x40
	FlagSign     = 0x80

	// the two undocumented flags are always treated together
	FlagXY = FlagX | FlagY
)

// Flags holds the values from which the F register is built. Each field is
// the most recent value to affect that flag, already masked to the bit
// position of the flag in F. The exception is Zero, which holds a value that
// is zero when the zero flag is set.
type Flags struct {
	Sign     uint8
	Zero     uint8
	Half     uint8
	Parity   uint8
	Carry    uint8
	Subtract uint8
	XY       uint8
}

// Value reconstructs the F register.
func (f Flags) Value() uint8 {
	v := f.Sign&FlagSign | f.XY&FlagXY | f.Half&FlagHalf | f.Parity&FlagParity | f.Subtract&FlagSubtract | f.Carry&FlagCarry
	if f.Zero == 0 {
		v |= FlagZero
	}
	return v
}

// Load decomposes a value into the flag fields.
func (f *Flags) Load(v uint8) {
	f.Sign = v & FlagSign
	f.Zero = ^v & FlagZero
	f.XY = v & FlagXY
	f.Half = v & FlagHalf
	f.Parity = v & FlagParity
	f.Subtract = v & FlagSubtract
	f.Carry = v & FlagCarry
}

// IsCarry returns true if the carry flag is set.
func (f Flags) IsCarry() bool {
	return f.Carry&FlagCarry == FlagCarry
}

// IsZero returns true if the zero flag is set.
func (f Flags) IsZero() bool {
	return f.Zero == 0
}

// IsSign returns true if the sign flag is set.
func (f Flags) IsSign() bool {
	return f.Sign&FlagSign == FlagSign
}

// IsParity returns true if the parity/overflow flag is set.
func (f Flags) IsParity() bool {
	return f.Parity&FlagParity == FlagParity
}

// IsHalf returns true if the half-carry flag is set.
func (f Flags) IsHalf() bool {
	return f.Half&FlagHalf == FlagHalf
}

// IsSubtract returns true if the subtract flag is set.
func (f Flags) IsSubtract() bool {
	return f.Subtract&FlagSubtract == FlagSubtract
}

// String returns the flags as a string of eight characters, in bit order.
// Upper case indicates that a flag is set.
func (f Flags) String() string {
	const labels = "SZYHXPNC"

	s := strings.Builder{}
	v := f.Value()
	for i := 0; i < 8; i++ {
		if v&(0x80>>i) != 0 {
			s.WriteByte(labels[i])
		} else {
			s.WriteByte(labels[i] + ('a' - 'A'))
		}
	}
	return s.String()
}
