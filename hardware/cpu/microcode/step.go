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

package microcode

import (
	"fmt"

	"github.com/jetsetilly/gopherz80/hardware/cpu/alu"
	"github.com/jetsetilly/gopherz80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz80/hardware/memory/cpubus"
)

// NoData is used for the Data field of bus steps that do not carry a value.
const NoData = registers.Byte(-1)

// Kind is the tag of a Step.
type Kind int

// List of valid Kind values.
const (
	// one partial machine cycle. the Operation, Length, SampleWait, Addr and
	// Data fields are used
	Bus Kind = iota

	// the start of an instruction. pending interrupts and reset are
	// considered here
	Boundary

	// resolve the next sequence from the current page using the Opcode
	// register. the refresh counter and the program counter are advanced
	Decode

	// change the current page to Page
	SetPage

	// end of instruction
	MoveToNext

	// skip Skip steps if Cond is false
	Test

	// Dst8 = Src8
	Move8

	// Dst8 = N
	Const8

	// Dst8 = Dst8 + N. flags are not affected
	Adjust8

	// Dst16 = Src16 + N
	Move16

	// Dst16 = N
	Const16

	// WZ = A<<8 | (Src16+1)&0xff
	MemptrA

	// Address = Src16 + signed(Operand) and WZ = Address
	CalcIndex

	// WZ = PC + signed(Operand) and PC = WZ
	RelativeJump

	// A = A Op Src8
	Arith

	// Dst8 = Dst8 + 1 with flags
	Inc8

	// Dst8 = Dst8 - 1 with flags
	Dec8

	// Dst8 = Shift(Dst8) and, if Copy is not NoData, Copy = Dst8
	Shift

	// accumulator rotate with the ShiftOp in the Shift field
	ShiftA

	// test bit N of Src8. the undocumented flags are taken from the high
	// byte of WZ if XYFromWZ is set
	Bit

	// clear bit N of Dst8 and, if Copy is not NoData, Copy = Dst8
	Res

	// set bit N of Dst8 and, if Copy is not NoData, Copy = Dst8
	SetBit

	Daa
	Cpl
	Neg
	Scf
	Ccf

	// Dst16 = Dst16 + Src16 and WZ = Dst16 + 1 (with the old Dst16)
	Add16
	Adc16
	Sbc16

	ExchangeAF
	Exchange
	ExchangeDEHL

	// A = Src8 (I or R) with flags
	LoadIR

	// flags for IN r,(C) from Src8
	InputFlags

	// rotate digit between A and Operand
	Rld
	Rrd

	// register updates and flags for the block instructions. N is the
	// direction (+1 or -1)
	BlockLoad
	BlockCompare
	BlockInput
	BlockOutput

	// rewind the program counter to the start of the instruction. WZ is
	// changed if N is non-zero. otherwise the instruction is a block I/O
	// instruction and the half-carry and parity flags are adjusted
	Repeat

	Halt
	DisableInterrupts
	EnableInterrupts

	// set the interrupt mode to N
	InterruptMode

	// IFF1 = IFF2
	RestoreIFF

	// IFF2 = IFF1 and IFF1 = false
	AcceptNMI

	// IFF1 = IFF2 = false
	AcceptIRQ

	// the next Decode will not advance the program counter
	SuppressPC

	// increment the refresh counter by N outside of a Decode step
	IncrementR

	// the register state that follows a reset
	ResetState

	NumKinds
)

var kindLabels = [NumKinds]string{
	"Bus", "Boundary", "Decode", "SetPage", "MoveToNext", "Test",
	"Move8", "Const8", "Adjust8", "Move16", "Const16", "MemptrA",
	"CalcIndex", "RelativeJump", "Arith", "Inc8", "Dec8", "Shift", "ShiftA",
	"Bit", "Res", "SetBit", "Daa", "Cpl", "Neg", "Scf", "Ccf",
	"Add16", "Adc16", "Sbc16", "ExchangeAF", "Exchange", "ExchangeDEHL",
	"LoadIR", "InputFlags", "Rld", "Rrd",
	"BlockLoad", "BlockCompare", "BlockInput", "BlockOutput", "Repeat",
	"Halt", "DisableInterrupts", "EnableInterrupts", "InterruptMode",
	"RestoreIFF", "AcceptNMI", "AcceptIRQ", "SuppressPC", "IncrementR", "ResetState",
}

func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindLabels[k]
}

// Condition is the condition tested by a Test step.
type Condition int

// List of valid Condition values. The first eight are in the order they are
// encoded in bits 3 to 5 of the conditional opcodes.
const (
	NZ Condition = iota
	Z
	NC
	C
	PO
	PE
	P
	M

	// B is not zero (DJNZ, INIR, OTIR)
	BNonZero

	// BC is not zero (LDIR)
	BCNonZero

	// BC is not zero and the zero flag is clear (CPIR)
	BCNonZeroAndNZ
)

var conditionLabels = [...]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M", "B!=0", "BC!=0", "BC!=0&&NZ"}

func (c Condition) String() string {
	return conditionLabels[c]
}

// Step is a single primitive step.
type Step struct {
	Kind Kind

	// bus operations
	Operation  cpubus.Operation
	Length     int
	SampleWait bool
	Addr       registers.Wide
	Data       registers.Byte

	// register operands
	Dst8  registers.Byte
	Src8  registers.Byte
	Copy  registers.Byte
	Dst16 registers.Wide
	Src16 registers.Wide

	// immediate value. bit number, interrupt mode, constant or direction
	N int

	Cond     Condition
	Skip     int
	Op       alu.Op
	Shift    alu.ShiftOp
	Page     instructions.Page
	XYFromWZ bool
}

func (s Step) String() string {
	switch s.Kind {
	case Bus:
		if s.Data == NoData {
			return fmt.Sprintf("%s %s (%d)", s.Operation, s.Addr, s.Length)
		}
		return fmt.Sprintf("%s %s %s (%d)", s.Operation, s.Addr, s.Data, s.Length)
	case Test:
		return fmt.Sprintf("Test %s skip %d", s.Cond, s.Skip)
	case SetPage:
		return fmt.Sprintf("SetPage %s", s.Page)
	case Move8, Const8, Adjust8:
		return fmt.Sprintf("%s %s %s %d", s.Kind, s.Dst8, s.Src8, s.N)
	case Move16, Const16, MemptrA, CalcIndex, Add16, Adc16, Sbc16:
		return fmt.Sprintf("%s %s %s %d", s.Kind, s.Dst16, s.Src16, s.N)
	case Arith:
		return fmt.Sprintf("%s %s", s.Op, s.Src8)
	case Shift:
		return fmt.Sprintf("%s %s", s.Shift, s.Dst8)
	}
	return s.Kind.String()
}
