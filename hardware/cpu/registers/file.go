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

import (
	"fmt"
	"strings"
)

// File is the complete mutable state of the CPU that is not concerned with
// the progress of the current instruction.
type File struct {
	cells [NumWide]uint16

	// the low half of cells[AF] is not used. the flags are always read from
	// and written to the Flags field
	Flags Flags

	IFF1 bool
	IFF2 bool

	// interrupt mode. one of 0, 1 or 2
	IM uint8
}

// Value8 returns the value of a half register.
func (f *File) Value8(b Byte) uint8 {
	if b == F {
		return f.Flags.Value()
	}
	v := f.cells[b>>1]
	if b&1 == 1 {
		return uint8(v)
	}
	return uint8(v >> 8)
}

// Load8 sets the value of a half register.
func (f *File) Load8(b Byte, v uint8) {
	if b == F {
		f.Flags.Load(v)
		return
	}
	w := b >> 1
	if b&1 == 1 {
		f.cells[w] = f.cells[w]&0xff00 | uint16(v)
	} else {
		f.cells[w] = f.cells[w]&0x00ff | uint16(v)<<8
	}
}

// Value16 returns the value of a 16-bit cell.
func (f *File) Value16(w Wide) uint16 {
	if w == AF {
		return f.cells[AF]&0xff00 | uint16(f.Flags.Value())
	}
	return f.cells[w]
}

// Load16 sets the value of a 16-bit cell.
func (f *File) Load16(w Wide, v uint16) {
	f.cells[w] = v
	if w == AF {
		f.Flags.Load(uint8(v))
	}
}

// Add16 adds a (possibly negative) value to a 16-bit cell. The cell wraps
// around in both directions.
func (f *File) Add16(w Wide, v int) {
	f.Load16(w, f.Value16(w)+uint16(v))
}

// IncR increments the seven bit refresh counter. Bit 7 of the R register is
// not affected.
func (f *File) IncR(n uint8) {
	r := f.Value8(R)
	f.Load8(R, r&0x80|(r+n)&0x7f)
}

// ExchangeAF swaps AF with the shadow AF'.
func (f *File) ExchangeAF() {
	v := f.Value16(AF)
	f.Load16(AF, f.cells[AFx])
	f.cells[AFx] = v
}

// Exchange swaps BC, DE and HL with their shadow registers.
func (f *File) Exchange() {
	f.cells[BC], f.cells[BCx] = f.cells[BCx], f.cells[BC]
	f.cells[DE], f.cells[DEx] = f.cells[DEx], f.cells[DE]
	f.cells[HL], f.cells[HLx] = f.cells[HLx], f.cells[HL]
}

func (f *File) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x IX=%04x IY=%04x\n",
		f.Value16(AF), f.cells[BC], f.cells[DE], f.cells[HL], f.cells[IX], f.cells[IY]))
	s.WriteString(fmt.Sprintf("AF'=%04x BC'=%04x DE'=%04x HL'=%04x SP=%04x PC=%04x\n",
		f.cells[AFx], f.cells[BCx], f.cells[DEx], f.cells[HLx], f.cells[SP], f.cells[PC]))
	s.WriteString(fmt.Sprintf("I=%02x R=%02x WZ=%04x IM=%d IFF1=%v IFF2=%v [%s]",
		f.Value8(I), f.Value8(R), f.cells[WZ], f.IM, f.IFF1, f.IFF2, f.Flags.String()))
	return s.String()
}
