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

import (
	"fmt"
	"strings"
)

// Instruction is the result of disassembling a single instruction.
type Instruction struct {
	Address  uint16
	Bytes    []uint8
	Mnemonic string

	// the page the final opcode byte was decoded from
	Page   Page
	Opcode uint8
}

func (ins Instruction) String() string {
	b := strings.Builder{}
	for i, v := range ins.Bytes {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%02x", v))
	}
	return fmt.Sprintf("%04x  %-12s %s", ins.Address, b.String(), ins.Mnemonic)
}

// Timing returns the published timing of the instruction.
func (ins Instruction) Timing() Timing {
	return Lookup(ins.Page, ins.Opcode)
}

var (
	regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	rpNames  = [4]string{"BC", "DE", "HL", "SP"}
	rp2Names = [4]string{"BC", "DE", "HL", "AF"}
	ccNames  = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
	aluNames = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	rotNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}
	accNames = [8]string{"RLCA", "RRCA", "RLA", "RRA", "DAA", "CPL", "SCF", "CCF"}
	imModes  = [8]string{"0", "0", "1", "2", "0", "0", "1", "2"}
	blockOps = [4][4]string{
		{"LDI", "CPI", "INI", "OUTI"},
		{"LDD", "CPD", "IND", "OUTD"},
		{"LDIR", "CPIR", "INIR", "OTIR"},
		{"LDDR", "CPDR", "INDR", "OTDR"},
	}
	irOps = [8]string{"LD I,A", "LD R,A", "LD A,I", "LD A,R", "RRD", "RLD", "NOP", "NOP"}
)

type disassembler struct {
	peek  func(uint16) uint8
	pc    uint16
	bytes []uint8

	// "HL", "IX" or "IY"
	index string
	page  Page
}

func (d *disassembler) next() uint8 {
	v := d.peek(d.pc)
	d.pc++
	d.bytes = append(d.bytes, v)
	return v
}

func (d *disassembler) n() string {
	return fmt.Sprintf("$%02x", d.next())
}

func (d *disassembler) nn() string {
	lo := d.next()
	hi := d.next()
	return fmt.Sprintf("$%04x", uint16(hi)<<8|uint16(lo))
}

func (d *disassembler) relative() string {
	e := int8(d.next())
	return fmt.Sprintf("$%04x", d.pc+uint16(e))
}

// memory operand. for the indexed pages the displacement is read from the
// instruction stream
func (d *disassembler) mem() string {
	if d.index == "HL" {
		return "(HL)"
	}
	return displacement(d.index, int8(d.next()))
}

func displacement(index string, e int8) string {
	if e < 0 {
		return fmt.Sprintf("(%s-$%02x)", index, -int(e))
	}
	return fmt.Sprintf("(%s+$%02x)", index, e)
}

// register operand. plain is true if H and L should not be replaced by the
// halves of the index register
func (d *disassembler) reg(r uint8, plain bool) string {
	switch r {
	case 4, 5:
		if d.index != "HL" && !plain {
			return d.index + regNames[r]
		}
	case 6:
		return d.mem()
	}
	return regNames[r]
}

func (d *disassembler) rp(p uint8) string {
	if p == 2 {
		return d.index
	}
	return rpNames[p]
}

func (d *disassembler) rp2(p uint8) string {
	if p == 2 {
		return d.index
	}
	return rp2Names[p]
}

// Disassemble the instruction at the address. The peek function should
// return the value at an address without side effects.
func Disassemble(peek func(uint16) uint8, address uint16) Instruction {
	d := &disassembler{
		peek:  peek,
		pc:    address,
		index: "HL",
		page:  Base,
	}

	op := d.next()
	for op == 0xdd || op == 0xfd {
		if op == 0xdd {
			d.index = "IX"
			d.page = IndexX
		} else {
			d.index = "IY"
			d.page = IndexY
		}
		op = d.next()
	}

	var m string
	switch op {
	case 0xcb:
		m, op = d.bitPage()
	case 0xed:
		d.index = "HL"
		d.page = Extended
		op = d.next()
		m = d.extendedPage(op)
	default:
		m = d.basePage(op)
	}

	return Instruction{
		Address:  address,
		Bytes:    d.bytes,
		Mnemonic: m,
		Page:     d.page,
		Opcode:   op,
	}
}

func (d *disassembler) basePage(op uint8) string {
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				return "NOP"
			case 1:
				return "EX AF,AF'"
			case 2:
				return "DJNZ " + d.relative()
			case 3:
				return "JR " + d.relative()
			}
			return fmt.Sprintf("JR %s,%s", ccNames[y-4], d.relative())
		case 1:
			if q == 0 {
				return fmt.Sprintf("LD %s,%s", d.rp(p), d.nn())
			}
			return fmt.Sprintf("ADD %s,%s", d.index, d.rp(p))
		case 2:
			switch y {
			case 0:
				return "LD (BC),A"
			case 1:
				return "LD A,(BC)"
			case 2:
				return "LD (DE),A"
			case 3:
				return "LD A,(DE)"
			case 4:
				return fmt.Sprintf("LD (%s),%s", d.nn(), d.index)
			case 5:
				return fmt.Sprintf("LD %s,(%s)", d.index, d.nn())
			case 6:
				return fmt.Sprintf("LD (%s),A", d.nn())
			}
			return fmt.Sprintf("LD A,(%s)", d.nn())
		case 3:
			if q == 0 {
				return "INC " + d.rp(p)
			}
			return "DEC " + d.rp(p)
		case 4:
			return "INC " + d.reg(y, false)
		case 5:
			return "DEC " + d.reg(y, false)
		case 6:
			r := d.reg(y, false)
			return fmt.Sprintf("LD %s,%s", r, d.n())
		}
		return accNames[y]

	case 1:
		if y == 6 && z == 6 {
			return "HALT"
		}
		plain := y == 6 || z == 6
		dst := d.reg(y, plain)
		return fmt.Sprintf("LD %s,%s", dst, d.reg(z, plain))

	case 2:
		return aluNames[y] + d.reg(z, false)
	}

	switch z {
	case 0:
		return "RET " + ccNames[y]
	case 1:
		if q == 0 {
			return "POP " + d.rp2(p)
		}
		switch p {
		case 0:
			return "RET"
		case 1:
			return "EXX"
		case 2:
			return fmt.Sprintf("JP (%s)", d.index)
		}
		return fmt.Sprintf("LD SP,%s", d.index)
	case 2:
		return fmt.Sprintf("JP %s,%s", ccNames[y], d.nn())
	case 3:
		switch y {
		case 0:
			return "JP " + d.nn()
		case 2:
			return fmt.Sprintf("OUT (%s),A", d.n())
		case 3:
			return fmt.Sprintf("IN A,(%s)", d.n())
		case 4:
			return fmt.Sprintf("EX (SP),%s", d.index)
		case 5:
			return "EX DE,HL"
		case 6:
			return "DI"
		case 7:
			return "EI"
		}
	case 4:
		return fmt.Sprintf("CALL %s,%s", ccNames[y], d.nn())
	case 5:
		if q == 0 {
			return "PUSH " + d.rp2(p)
		}
		return "CALL " + d.nn()
	case 6:
		return aluNames[y] + d.n()
	case 7:
		return fmt.Sprintf("RST $%02x", y*8)
	}

	return "???"
}

func (d *disassembler) bitPage() (string, uint8) {
	var m string
	var e int8

	indexed := d.index != "HL"
	if indexed {
		// the displacement comes before the final opcode byte
		e = int8(d.next())
		if d.page == IndexX {
			d.page = IndexXBit
		} else {
			d.page = IndexYBit
		}
	} else {
		d.page = Bit
	}

	op := d.next()
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7

	operand := regNames[z]
	if indexed {
		operand = displacement(d.index, e)
	}

	switch x {
	case 0:
		m = fmt.Sprintf("%s %s", rotNames[y], operand)
	case 1:
		return fmt.Sprintf("BIT %d,%s", y, operand), op
	case 2:
		m = fmt.Sprintf("RES %d,%s", y, operand)
	case 3:
		m = fmt.Sprintf("SET %d,%s", y, operand)
	}

	// undocumented copy of the result to a register
	if indexed && z != 6 {
		m = fmt.Sprintf("%s,%s", m, regNames[z])
	}

	return m, op
}

func (d *disassembler) extendedPage(op uint8) string {
	x := op >> 6
	y := (op >> 3) & 7
	z := op & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 1:
		switch z {
		case 0:
			if y == 6 {
				return "IN (C)"
			}
			return fmt.Sprintf("IN %s,(C)", regNames[y])
		case 1:
			if y == 6 {
				return "OUT (C),0"
			}
			return fmt.Sprintf("OUT (C),%s", regNames[y])
		case 2:
			if q == 0 {
				return "SBC HL," + rpNames[p]
			}
			return "ADC HL," + rpNames[p]
		case 3:
			if q == 0 {
				return fmt.Sprintf("LD (%s),%s", d.nn(), rpNames[p])
			}
			return fmt.Sprintf("LD %s,(%s)", rpNames[p], d.nn())
		case 4:
			return "NEG"
		case 5:
			if y == 1 {
				return "RETI"
			}
			return "RETN"
		case 6:
			return "IM " + imModes[y]
		}
		return irOps[y]

	case 2:
		if z <= 3 && y >= 4 {
			return blockOps[y-4][z]
		}
	}

	return "NOP"
}
