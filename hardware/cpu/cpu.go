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
	"github.com/jetsetilly/gopherz80/assert"
	"github.com/jetsetilly/gopherz80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherz80/hardware/cpu/microcode"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz80/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherz80/hardware/preferences"
	"github.com/jetsetilly/gopherz80/logger"
)

// the duration of each bus acknowledge offered while the bus is requested
const busAcknowledgeLength = 2

// the state of the request lines as seen by the CPU
type requests struct {
	reset   bool
	powerOn bool
	nmi     bool
	irq     bool
}

// CPU implements the Z80. Register logic is implemented by the File type in
// the registers sub-package.
type CPU struct {
	prefs *preferences.Preferences
	bus   cpubus.Bus
	set   *microcode.Set

	// the register file. the Opcode, Operand, Address and WZ cells are
	// working storage for the microcode
	Reg registers.File

	// current opcode page and the position in the current sequence
	page   *microcode.Page
	seq    []microcode.Step
	cursor int

	// half-cycles available to Advance(). can be negative if the host
	// stretched the previous partial cycle beyond the budget
	remaining int

	halfCycles   uint64
	instructions uint64

	halted     bool
	suppressPC bool

	// set by EI. interrupts are not accepted at the next boundary
	eiDelay bool

	// no bus activity has happened since the last instruction boundary
	boundary bool

	// the request lines as they are now and as they were when they were
	// last sampled. the sample is taken at the start of every partial cycle
	lines   requests
	sampled requests

	// the NMI input. the rising edge is latched in lines.nmi
	nmiLine bool

	// half-cycles since the request lines were sampled
	sinceSample int

	busRequest bool
	wait       bool

	// logging permission for control events
	Logging logger.Permission

	owner assert.Owner
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// preferences argument can be nil, in which case the CPU is an NMOS variant
// and the registers are zeroed at power-on.
//
// The CPU is created with the power-on condition pending. The first call to
// Advance() will run the reset sequence.
func NewCPU(prefs *preferences.Preferences, bus cpubus.Bus) *CPU {
	v := microcode.NMOS
	if prefs != nil {
		v = prefs.CPUVariant()
	}

	mc := &CPU{
		prefs:   prefs,
		bus:     bus,
		set:     microcode.Get(v),
		Logging: logger.Allow,
	}
	mc.page = mc.set.Pages[instructions.Base]
	mc.seq = mc.set.Fetch
	mc.SetPowerOn()

	return mc
}

// Plumb a new Bus into the CPU.
func (mc *CPU) Plumb(bus cpubus.Bus) {
	mc.bus = bus
}

// Variant returns the variant of the CPU.
func (mc *CPU) Variant() microcode.Variant {
	return mc.set.Variant
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the Bus with the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.owner = assert.Owner{}
	return &n
}

func (mc *CPU) String() string {
	return mc.Reg.String()
}

// HalfCycles returns the number of half-cycles executed since the CPU was
// created.
func (mc *CPU) HalfCycles() uint64 {
	return mc.halfCycles
}

// Instructions returns the number of instructions completed since the CPU was
// created. The reset and interrupt responses are counted as instructions.
func (mc *CPU) Instructions() uint64 {
	return mc.instructions
}

// Halted returns true if the CPU has executed a HALT instruction and has not
// yet been released by an interrupt or reset.
func (mc *CPU) Halted() bool {
	return mc.halted
}

// IsBoundary returns true if the CPU is between instructions.
func (mc *CPU) IsBoundary() bool {
	return mc.boundary || mc.seq[mc.cursor].Kind == microcode.Boundary
}

// Page returns the opcode page currently being decoded from.
func (mc *CPU) Page() instructions.Page {
	return mc.page.ID
}

// resetState is the register state that follows a reset or power-on
func (mc *CPU) resetState() {
	if mc.lines.powerOn {
		if mc.prefs != nil && mc.prefs.RandomState.Get().(bool) {
			for _, w := range []registers.Wide{
				registers.BC, registers.DE, registers.HL,
				registers.AFx, registers.BCx, registers.DEx, registers.HLx,
				registers.IX, registers.IY,
			} {
				mc.Reg.Load16(w, mc.prefs.Random.Uint16())
			}
		} else {
			mc.Reg = registers.File{}
		}
		logger.Log(mc.Logging, "cpu", "power-on")
	} else {
		logger.Log(mc.Logging, "cpu", "reset")
	}

	mc.Reg.Load16(registers.PC, 0x0000)
	mc.Reg.Load16(registers.SP, 0xffff)
	mc.Reg.Load16(registers.AF, 0xffff)
	mc.Reg.Load16(registers.IR, 0x0000)
	mc.Reg.Load16(registers.WZ, 0x0000)
	mc.Reg.IFF1 = false
	mc.Reg.IFF2 = false
	mc.Reg.IM = 0

	mc.halted = false
	mc.suppressPC = false
	mc.eiDelay = false
	mc.lines.powerOn = false
	mc.sampled.powerOn = false
	mc.page = mc.set.Pages[instructions.Base]
}
