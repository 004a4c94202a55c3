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

package instructions

import "fmt"

// Page identifies one of the opcode decode tables.
type Page int

// List of valid Page values.
const (
	Base Page = iota
	Extended
	Bit
	IndexX
	IndexY
	IndexXBit
	IndexYBit
	NumPages
)

var pageLabels = [NumPages]string{"base", "ED", "CB", "DD", "FD", "DDCB", "FDCB"}

func (p Page) String() string {
	if p < 0 || p >= NumPages {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return pageLabels[p]
}

// PageFromString returns the Page with the label. Labels are those returned
// by the String() function.
func PageFromString(s string) (Page, bool) {
	for p := Page(0); p < NumPages; p++ {
		if pageLabels[p] == s {
			return p, true
		}
	}
	return Base, false
}

// Indexed returns true if the page uses an index register in place of HL.
func (p Page) Indexed() bool {
	return p == IndexX || p == IndexY || p == IndexXBit || p == IndexYBit
}

// Prefix returns the bytes that select the page. For the indexed bit pages
// the displacement byte is not included.
func (p Page) Prefix() []uint8 {
	switch p {
	case Extended:
		return []uint8{0xed}
	case Bit:
		return []uint8{0xcb}
	case IndexX:
		return []uint8{0xdd}
	case IndexY:
		return []uint8{0xfd}
	case IndexXBit:
		return []uint8{0xdd, 0xcb}
	case IndexYBit:
		return []uint8{0xfd, 0xcb}
	}
	return nil
}
