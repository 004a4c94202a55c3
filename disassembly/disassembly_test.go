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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/disassembly"
	"github.com/jetsetilly/gopherz80/test"
)

// prints the string at 0x010d if the zero flag is set and then jumps to the
// warm boot address. the string is never executed
var program = []uint8{
	0x0e, 0x09, // LD C,$09
	0x11, 0x0d, 0x01, // LD DE,$010d
	0x20, 0x03, // JR NZ,$010a
	0xcd, 0x05, 0x00, // CALL $0005
	0xc3, 0x00, 0x00, // JP $0000
	0x68, 0x69, 0x24, // "hi$"
}

func peek(addr uint16) uint8 {
	o := int(addr) - 0x0100
	if o >= 0 && o < len(program) {
		return program[o]
	}
	return 0
}

func TestFlow(t *testing.T) {
	dsm, err := disassembly.FromMemory(peek, 0x0100, len(program), disassembly.Flow, nil)
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), "TPA:\n"+
		"    0100  LD C,$09\n"+
		"    0102  LD DE,$010d\n"+
		"    0105  JR NZ,L010a\n"+
		"    0107  CALL BDOS\n"+
		"L010a:\n"+
		"    010a  JP WBOOT\n"+
		"    010d  DB $68,$69,$24\n")

	e, ok := dsm.Get(0x0105)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Type, disassembly.EntryTypeFlow)
	test.ExpectEquality(t, len(e.Next), 2)
	test.ExpectEquality(t, e.Next[0], uint16(0x0107))
	test.ExpectEquality(t, e.Next[1], uint16(0x010a))

	e, ok = dsm.Get(0x010a)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, e.Terminal)
	test.ExpectEquality(t, len(e.Prev), 2)
	test.ExpectEquality(t, e.Prev[0], uint16(0x0105))
	test.ExpectEquality(t, e.Prev[1], uint16(0x0107))

	e, ok = dsm.Get(0x010d)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Type, disassembly.EntryTypeData)
	test.ExpectEquality(t, e.Len(), 3)

	test.ExpectEquality(t, len(dsm.Entries()), 6)
}

func TestFlowInfo(t *testing.T) {
	dsm, err := disassembly.FromMemory(peek, 0x0100, len(program), disassembly.Flow, nil)
	test.DemandSuccess(t, err)

	e, _ := dsm.Get(0x010a)
	w := &test.Writer{}
	test.ExpectSuccess(t, dsm.WriteLine(w, disassembly.WriteAttr{ByteCode: true, FlowInfo: true}, e))
	test.ExpectEquality(t, w.String(), "L010a:\n    010a  c3 00 00     JP WBOOT -> 0000 <- 0105 0107\n")
}

func TestLinear(t *testing.T) {
	dsm, err := disassembly.FromMemory(peek, 0x0100, len(program), disassembly.Linear, nil)
	test.DemandSuccess(t, err)

	// the string is decoded as instructions
	e, ok := dsm.Get(0x010d)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Type, disassembly.EntryTypeDecode)
	test.ExpectEquality(t, e.Mnemonic, "LD L,B")
	test.ExpectEquality(t, len(dsm.Entries()), 8)

	// there is no flow information in linear mode
	e, _ = dsm.Get(0x0105)
	test.ExpectEquality(t, len(e.Next), 0)
	test.ExpectSuccess(t, e.HasTarget)
	test.ExpectEquality(t, e.Target, uint16(0x010a))
}

func TestEntryPoints(t *testing.T) {
	// the string is executable if it is an entry point
	dsm, err := disassembly.FromMemory(peek, 0x0100, len(program), disassembly.Flow, nil, 0x0100, 0x010d)
	test.DemandSuccess(t, err)

	e, _ := dsm.Get(0x010d)
	test.ExpectEquality(t, e.Type, disassembly.EntryTypeFlow)
	e, _ = dsm.Get(0x010f)
	test.ExpectEquality(t, e.Mnemonic, "INC H")
}

func TestInvalidRegion(t *testing.T) {
	_, err := disassembly.FromMemory(peek, 0xfff0, 0x20, disassembly.Linear, nil)
	test.ExpectSuccess(t, curated.Is(err, disassembly.InvalidRegion))

	_, err = disassembly.FromMemory(peek, 0x0100, 0, disassembly.Linear, nil)
	test.ExpectSuccess(t, curated.Is(err, disassembly.InvalidRegion))
}
