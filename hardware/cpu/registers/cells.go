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

import "fmt"

// Wide identifies one of the 16-bit cells in the register file.
type Wide int

// List of valid Wide values. The last two entries are not programmer visible
// and are used by the microcode as working storage.
const (
	AF Wide = iota
	BC
	DE
	HL
	AFx
	BCx
	DEx
	HLx
	IX
	IY
	SP
	PC
	IR
	WZ

	// the address that will be presented for memory reads and writes that
	// are not through a programmer visible register pair
	Address

	// high byte is the most recently fetched opcode, low byte is the most
	// recently read data byte
	Scratch

	NumWide
)

var wideLabels = [NumWide]string{
	"AF", "BC", "DE", "HL",
	"AF'", "BC'", "DE'", "HL'",
	"IX", "IY", "SP", "PC", "IR", "WZ",
	"ADDR", "SCRATCH",
}

// Label returns the programmer's name for the cell.
func (w Wide) Label() string {
	if w < 0 || w >= NumWide {
		return fmt.Sprintf("?%d", int(w))
	}
	return wideLabels[w]
}

func (w Wide) String() string {
	return w.Label()
}

// High returns the Byte that refers to the high half of the cell.
func (w Wide) High() Byte {
	return Byte(w) << 1
}

// Low returns the Byte that refers to the low half of the cell.
func (w Wide) Low() Byte {
	return Byte(w)<<1 | 1
}

// Byte identifies one half of a 16-bit cell.
type Byte int

// List of valid Byte values.
const (
	A   Byte = Byte(AF) << 1
	F   Byte = A | 1
	B   Byte = Byte(BC) << 1
	C   Byte = B | 1
	D   Byte = Byte(DE) << 1
	E   Byte = D | 1
	H   Byte = Byte(HL) << 1
	L   Byte = H | 1
	IXH Byte = Byte(IX) << 1
	IXL Byte = IXH | 1
	IYH Byte = Byte(IY) << 1
	IYL Byte = IYH | 1
	I   Byte = Byte(IR) << 1
	R   Byte = I | 1

	Opcode  Byte = Byte(Scratch) << 1
	Operand Byte = Opcode | 1

	NumByte = Byte(NumWide) << 1
)

// Wide returns the cell that the Byte is a half of.
func (b Byte) Wide() Wide {
	return Wide(b >> 1)
}

// IsLow returns true if the Byte refers to the low half of its cell.
func (b Byte) IsLow() bool {
	return b&1 == 1
}

// Label returns the programmer's name for the half register.
func (b Byte) Label() string {
	switch b {
	case A, F, B, C, D, E, H, L:
		return string("AFBCDEHL"[b])
	case I:
		return "I"
	case R:
		return "R"
	case Opcode:
		return "OPCODE"
	case Operand:
		return "OPERAND"
	}
	if b.IsLow() {
		return b.Wide().Label() + "L"
	}
	return b.Wide().Label() + "H"
}

func (b Byte) String() string {
	return b.Label()
}
