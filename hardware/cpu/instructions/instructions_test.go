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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherz80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherz80/test"
)

func peeker(b ...uint8) func(uint16) uint8 {
	return func(a uint16) uint8 {
		if int(a) < len(b) {
			return b[a]
		}
		return 0x00
	}
}

func TestDisassemble(t *testing.T) {
	var tests = []struct {
		bytes    []uint8
		mnemonic string
		length   int
		page     instructions.Page
	}{
		{[]uint8{0x00}, "NOP", 1, instructions.Base},
		{[]uint8{0x3e, 0x05}, "LD A,$05", 2, instructions.Base},
		{[]uint8{0x87}, "ADD A,A", 1, instructions.Base},
		{[]uint8{0x21, 0x34, 0x12}, "LD HL,$1234", 3, instructions.Base},
		{[]uint8{0x18, 0xfe}, "JR $0000", 2, instructions.Base},
		{[]uint8{0xcc, 0x00, 0x80}, "CALL Z,$8000", 3, instructions.Base},
		{[]uint8{0xed, 0xb0}, "LDIR", 2, instructions.Extended},
		{[]uint8{0xed, 0x5e}, "IM 2", 2, instructions.Extended},
		{[]uint8{0xed, 0x71}, "OUT (C),0", 2, instructions.Extended},
		{[]uint8{0xcb, 0x7e}, "BIT 7,(HL)", 2, instructions.Bit},
		{[]uint8{0xdd, 0x21, 0x00, 0x40}, "LD IX,$4000", 4, instructions.IndexX},
		{[]uint8{0xdd, 0x66, 0x05}, "LD H,(IX+$05)", 3, instructions.IndexX},
		{[]uint8{0xfd, 0x36, 0xfe, 0x11}, "LD (IY-$02),$11", 4, instructions.IndexY},
		{[]uint8{0xfd, 0x65}, "LD IYH,IYL", 2, instructions.IndexY},
		{[]uint8{0xdd, 0xcb, 0x03, 0x46}, "BIT 0,(IX+$03)", 4, instructions.IndexXBit},
		{[]uint8{0xfd, 0xcb, 0x03, 0x00}, "RLC (IY+$03),B", 4, instructions.IndexYBit},
		{[]uint8{0xff}, "RST $38", 1, instructions.Base},
	}

	for _, tt := range tests {
		ins := instructions.Disassemble(peeker(tt.bytes...), 0x0000)
		test.ExpectEquality(t, ins.Mnemonic, tt.mnemonic)
		test.ExpectEquality(t, len(ins.Bytes), tt.length, tt.mnemonic)
		test.ExpectEquality(t, ins.Page, tt.page, tt.mnemonic)
	}
}

func TestLookup(t *testing.T) {
	tm := instructions.Lookup(instructions.Base, 0x00)
	test.ExpectEquality(t, tm.Taken, 4)
	test.ExpectEquality(t, tm.Conditional(), false)

	tm = instructions.Lookup(instructions.Base, 0xc4)
	test.ExpectEquality(t, tm.Taken, 17)
	test.ExpectEquality(t, tm.Declined, 10)

	tm = instructions.Lookup(instructions.Base, 0x10)
	test.ExpectEquality(t, tm.Taken, 13)
	test.ExpectEquality(t, tm.Declined, 8)

	tm = instructions.Lookup(instructions.Base, 0xe3)
	test.ExpectEquality(t, tm.Taken, 19)

	tm = instructions.Lookup(instructions.Base, 0xdd)
	test.ExpectEquality(t, tm.Prefix, true)

	tm = instructions.Lookup(instructions.Extended, 0xb0)
	test.ExpectEquality(t, tm.Taken, 21)
	test.ExpectEquality(t, tm.Declined, 16)

	tm = instructions.Lookup(instructions.IndexY, 0x36)
	test.ExpectEquality(t, tm.Taken, 19)

	tm = instructions.Lookup(instructions.IndexX, 0xc4)
	test.ExpectEquality(t, tm.Declined, 14)

	tm = instructions.Lookup(instructions.IndexYBit, 0x46)
	test.ExpectEquality(t, tm.Taken, 20)
	tm = instructions.Lookup(instructions.IndexYBit, 0xc6)
	test.ExpectEquality(t, tm.Taken, 23)
}

func TestPages(t *testing.T) {
	for p := instructions.Page(0); p < instructions.NumPages; p++ {
		q, ok := instructions.PageFromString(p.String())
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, q, p)
	}
	test.ExpectEquality(t, instructions.IndexXBit.Indexed(), true)
	test.ExpectEquality(t, instructions.Extended.Indexed(), false)
}
