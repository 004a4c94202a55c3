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

package cpu

import (
	"github.com/jetsetilly/gopherz80/hardware/cpu/alu"
	"github.com/jetsetilly/gopherz80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherz80/hardware/cpu/microcode"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
)

// jump to the start of another sequence
func (mc *CPU) jump(seq []microcode.Step) {
	mc.seq = seq
	mc.cursor = 0
}

// execute a step that is not a bus step. the cursor has already been moved
// past the step
func (mc *CPU) execute(s *microcode.Step) {
	r := &mc.Reg

	switch s.Kind {
	case microcode.Boundary:
		mc.atBoundary()

	case microcode.Decode:
		op := r.Value8(registers.Opcode)
		if mc.halted {
			op = 0x00
		}
		r.IncR(mc.page.RefreshStep)
		if !mc.suppressPC && !mc.halted {
			r.Add16(registers.PC, 1)
		}
		mc.suppressPC = false
		mc.jump(mc.page.Sequence(op))

	case microcode.SetPage:
		mc.page = mc.set.Pages[s.Page]

	case microcode.MoveToNext:
		mc.instructions++
		mc.page = mc.set.Pages[instructions.Base]
		mc.jump(mc.set.Fetch)

	case microcode.Test:
		if !mc.test(s.Cond) {
			mc.cursor += s.Skip
		}

	case microcode.Move8:
		r.Load8(s.Dst8, r.Value8(s.Src8))

	case microcode.Const8:
		r.Load8(s.Dst8, uint8(s.N))

	case microcode.Adjust8:
		r.Load8(s.Dst8, r.Value8(s.Dst8)+uint8(s.N))

	case microcode.Move16:
		r.Load16(s.Dst16, r.Value16(s.Src16)+uint16(s.N))

	case microcode.Const16:
		r.Load16(s.Dst16, uint16(s.N))

	case microcode.MemptrA:
		r.Load16(registers.WZ, uint16(r.Value8(registers.A))<<8|(r.Value16(s.Src16)+1)&0x00ff)

	case microcode.CalcIndex:
		a := r.Value16(s.Src16) + uint16(int8(r.Value8(registers.Operand)))
		r.Load16(registers.Address, a)
		r.Load16(registers.WZ, a)

	case microcode.RelativeJump:
		a := r.Value16(registers.PC) + uint16(int8(r.Value8(registers.Operand)))
		r.Load16(registers.WZ, a)
		r.Load16(registers.PC, a)

	case microcode.Arith:
		a, f := alu.Arith(s.Op, r.Flags, r.Value8(registers.A), r.Value8(s.Src8))
		r.Load8(registers.A, a)
		r.Flags = f

	case microcode.Inc8:
		v, f := alu.Inc(r.Flags, r.Value8(s.Dst8))
		r.Load8(s.Dst8, v)
		r.Flags = f

	case microcode.Dec8:
		v, f := alu.Dec(r.Flags, r.Value8(s.Dst8))
		r.Load8(s.Dst8, v)
		r.Flags = f

	case microcode.Shift:
		v, f := alu.Shift(s.Shift, r.Flags, r.Value8(s.Dst8))
		r.Flags = f
		mc.modified(s, v)

	case microcode.ShiftA:
		a, f := alu.ShiftA(s.Shift, r.Flags, r.Value8(registers.A))
		r.Load8(registers.A, a)
		r.Flags = f

	case microcode.Bit:
		v := r.Value8(s.Src8)
		xy := v
		if s.XYFromWZ {
			xy = r.Value8(registers.WZ.High())
		}
		r.Flags = alu.Bit(r.Flags, uint8(s.N), v, xy)

	case microcode.Res:
		mc.modified(s, r.Value8(s.Dst8)&^(1<<s.N))

	case microcode.SetBit:
		mc.modified(s, r.Value8(s.Dst8)|(1<<s.N))

	case microcode.Daa:
		a, f := alu.Daa(r.Flags, r.Value8(registers.A))
		r.Load8(registers.A, a)
		r.Flags = f

	case microcode.Cpl:
		a, f := alu.Cpl(r.Flags, r.Value8(registers.A))
		r.Load8(registers.A, a)
		r.Flags = f

	case microcode.Neg:
		a, f := alu.Neg(r.Flags, r.Value8(registers.A))
		r.Load8(registers.A, a)
		r.Flags = f

	case microcode.Scf:
		r.Flags = alu.Scf(r.Flags, r.Value8(registers.A))

	case microcode.Ccf:
		r.Flags = alu.Ccf(r.Flags, r.Value8(registers.A))

	case microcode.Add16, microcode.Adc16, microcode.Sbc16:
		a := r.Value16(s.Dst16)
		b := r.Value16(s.Src16)
		var v uint16
		switch s.Kind {
		case microcode.Add16:
			v, r.Flags = alu.Add16(r.Flags, a, b)
		case microcode.Adc16:
			v, r.Flags = alu.Adc16(r.Flags, a, b)
		default:
			v, r.Flags = alu.Sbc16(r.Flags, a, b)
		}
		r.Load16(registers.WZ, a+1)
		r.Load16(s.Dst16, v)

	case microcode.ExchangeAF:
		r.ExchangeAF()

	case microcode.Exchange:
		r.Exchange()

	case microcode.ExchangeDEHL:
		de := r.Value16(registers.DE)
		r.Load16(registers.DE, r.Value16(registers.HL))
		r.Load16(registers.HL, de)

	case microcode.LoadIR:
		v := r.Value8(s.Src8)
		r.Load8(registers.A, v)
		r.Flags = alu.LoadIR(r.Flags, v, r.IFF2)

	case microcode.InputFlags:
		r.Flags = alu.In(r.Flags, r.Value8(s.Src8))

	case microcode.Rld, microcode.Rrd:
		var a, m uint8
		if s.Kind == microcode.Rld {
			a, m, r.Flags = alu.Rld(r.Flags, r.Value8(registers.A), r.Value8(registers.Operand))
		} else {
			a, m, r.Flags = alu.Rrd(r.Flags, r.Value8(registers.A), r.Value8(registers.Operand))
		}
		r.Load8(registers.A, a)
		r.Load8(registers.Operand, m)

	case microcode.BlockLoad:
		bc := r.Value16(registers.BC) - 1
		r.Load16(registers.BC, bc)
		r.Add16(registers.HL, s.N)
		r.Add16(registers.DE, s.N)
		r.Flags = alu.BlockLoad(r.Flags, r.Value8(registers.A), r.Value8(registers.Operand), bc)

	case microcode.BlockCompare:
		bc := r.Value16(registers.BC) - 1
		r.Load16(registers.BC, bc)
		r.Add16(registers.HL, s.N)
		r.Add16(registers.WZ, s.N)
		r.Flags = alu.BlockCompare(r.Flags, r.Value8(registers.A), r.Value8(registers.Operand), bc)

	case microcode.BlockInput:
		r.Load16(registers.WZ, r.Value16(registers.BC)+uint16(s.N))
		b := r.Value8(registers.B) - 1
		r.Load8(registers.B, b)
		r.Add16(registers.HL, s.N)
		adjust := r.Value8(registers.C) + uint8(s.N)
		r.Flags = alu.BlockIO(r.Flags, r.Value8(registers.Operand), b, adjust)

	case microcode.BlockOutput:
		// B has already been decremented
		r.Add16(registers.HL, s.N)
		r.Load16(registers.WZ, r.Value16(registers.BC)+uint16(s.N))
		r.Flags = alu.BlockIO(r.Flags, r.Value8(registers.Operand), r.Value8(registers.B), r.Value8(registers.L))

	case microcode.Repeat:
		r.Add16(registers.PC, -2)
		pc := r.Value16(registers.PC)
		if s.N != 0 {
			r.Load16(registers.WZ, pc+1)
		} else {
			r.Flags = alu.BlockIORepeat(r.Flags, r.Value8(registers.Operand), r.Value8(registers.B))
		}
		r.Flags.XY = uint8((pc+1)>>8) & registers.FlagXY

	case microcode.Halt:
		mc.halted = true

	case microcode.DisableInterrupts:
		r.IFF1 = false
		r.IFF2 = false

	case microcode.EnableInterrupts:
		r.IFF1 = true
		r.IFF2 = true
		mc.eiDelay = true

	case microcode.InterruptMode:
		r.IM = uint8(s.N)

	case microcode.RestoreIFF:
		r.IFF1 = r.IFF2

	case microcode.AcceptNMI:
		r.IFF2 = r.IFF1
		r.IFF1 = false

	case microcode.AcceptIRQ:
		r.IFF1 = false
		r.IFF2 = false

	case microcode.SuppressPC:
		mc.suppressPC = true

	case microcode.IncrementR:
		r.IncR(uint8(s.N))

	case microcode.ResetState:
		mc.resetState()
	}
}

// modified stores the result of a Shift, Res or SetBit step
func (mc *CPU) modified(s *microcode.Step, v uint8) {
	mc.Reg.Load8(s.Dst8, v)
	if s.Copy != microcode.NoData {
		mc.Reg.Load8(s.Copy, v)
	}
}

func (mc *CPU) test(c microcode.Condition) bool {
	f := mc.Reg.Flags
	switch c {
	case microcode.NZ:
		return !f.IsZero()
	case microcode.Z:
		return f.IsZero()
	case microcode.NC:
		return !f.IsCarry()
	case microcode.C:
		return f.IsCarry()
	case microcode.PO:
		return !f.IsParity()
	case microcode.PE:
		return f.IsParity()
	case microcode.P:
		return !f.IsSign()
	case microcode.M:
		return f.IsSign()
	case microcode.BNonZero:
		return mc.Reg.Value8(registers.B) != 0
	case microcode.BCNonZero:
		return mc.Reg.Value16(registers.BC) != 0
	case microcode.BCNonZeroAndNZ:
		return mc.Reg.Value16(registers.BC) != 0 && !f.IsZero()
	}
	return false
}

// atBoundary decides what happens at the start of an instruction. requests
// are taken from the most recent sample of the request lines
func (mc *CPU) atBoundary() {
	mc.boundary = true

	req := mc.sampled
	eiDelay := mc.eiDelay
	mc.eiDelay = false

	switch {
	case req.reset || req.powerOn:
		mc.halted = false
		mc.jump(mc.set.Reset)

	case req.nmi:
		mc.lines.nmi = false
		mc.sampled.nmi = false
		mc.halted = false
		mc.jump(mc.set.NMI)

	case req.irq && mc.Reg.IFF1 && !eiDelay:
		mc.halted = false
		mc.jump(mc.set.IRQ[mc.Reg.IM%3])
	}
}
