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

package hardware

import (
	"io"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/hardware/cpu"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz80/hardware/memory"
	"github.com/jetsetilly/gopherz80/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherz80/hardware/preferences"
	"github.com/jetsetilly/gopherz80/logger"
)

// Sentinel error patterns returned by the hardware package.
const (
	ProgramEnded        = "machine: program has ended"
	HaltedForever       = "machine: halted with interrupts disabled (at %#04x)"
	UnsupportedState    = "machine: unsupported emulation state (%s) in Run() function"
	ProgramTooLarge     = "machine: program too large (%d bytes)"
	UnsupportedFunction = "machine: unsupported bdos function (%d)"
)

// Important addresses in the CP/M memory map.
const (
	WarmBoot    = 0x0000
	BDOS        = 0x0005
	ProgramBase = 0x0100

	// top of the transient program area. CP/M programs commonly read the
	// word at 0x0006 to find it
	TopOfMemory = 0xf000
)

// bdos function numbers
const (
	consoleOutput = 2
	printString   = 9
)

// Machine is the CPU and memory arranged as a minimal CP/M system.
type Machine struct {
	Prefs *preferences.Preferences
	CPU   *cpu.CPU
	Mem   *memory.Memory

	// console output
	Console io.Writer

	// Strict causes unsupported BDOS functions to stop the machine with an
	// error
	Strict bool

	// the program has jumped to the warm boot address
	ended bool

	// an error found by the bus. returned by the next call to Step()
	err error
}

// NewMachine creates a new Machine. The prefs argument can be nil, in which
// case the default preferences are used. Console output is written to the
// console argument, which can also be nil.
func NewMachine(prefs *preferences.Preferences, console io.Writer) *Machine {
	m := &Machine{
		Prefs:   prefs,
		Mem:     memory.NewMemory(),
		Console: console,
	}

	m.CPU = cpu.NewCPU(prefs, m)
	m.Mem.AttachWaitLine(m.CPU)
	if prefs != nil {
		m.Mem.SetWaitStates(prefs.WaitStates.Get().(int))
	}

	// complete the power-on sequence so that the registers can be set
	m.CPU.ExecuteInstruction()

	return m
}

// LoadCOM loads a CP/M program into memory at ProgramBase and prepares the
// CPU to run it.
func (m *Machine) LoadCOM(data []uint8) error {
	if len(data) > TopOfMemory-ProgramBase {
		return curated.Errorf(ProgramTooLarge, len(data))
	}
	if err := m.Mem.Load(ProgramBase, data); err != nil {
		return err
	}

	// the bdos entry point returns immediately. the real work is done by the
	// bus when the RET is fetched
	m.Mem.Poke(BDOS, 0xc9)
	m.Mem.Poke(BDOS+1, uint8(TopOfMemory&0xff))
	m.Mem.Poke(BDOS+2, uint8(TopOfMemory>>8))

	m.CPU.Reg.Load16(registers.PC, ProgramBase)
	m.CPU.Reg.Load16(registers.SP, TopOfMemory)
	m.ended = false
	m.err = nil

	logger.Logf(logger.Allow, "machine", "loaded %d bytes at %#04x", len(data), ProgramBase)

	return nil
}

// Ended returns true if the program has jumped to the warm boot address.
func (m *Machine) Ended() bool {
	return m.ended
}

// PerformCycle implements the cpubus.Bus interface. Every partial cycle is
// passed to the memory after the opcode fetches of interest have been
// inspected.
func (m *Machine) PerformCycle(cycle cpubus.PartialCycle) int {
	if cycle.Operation == cpubus.OpcodeFetch {
		switch cycle.Address {
		case WarmBoot:
			m.ended = true
		case BDOS:
			m.bdos()
		}
	}
	return m.Mem.PerformCycle(cycle)
}

func (m *Machine) bdos() {
	f := m.CPU.Reg.Value8(registers.C)
	switch f {
	case consoleOutput:
		m.write([]uint8{m.CPU.Reg.Value8(registers.E)})
	case printString:
		a := m.CPU.Reg.Value16(registers.DE)
		s := make([]uint8, 0, 64)
		for i := 0; i < len(m.Mem.RAM); i++ {
			c := m.Mem.Peek(a)
			if c == '$' {
				break // for loop
			}
			s = append(s, c)
			a++
		}
		m.write(s)
	default:
		logger.Logf(logger.Allow, "machine", "unsupported bdos function (%d)", f)
		if m.Strict {
			m.err = curated.Errorf(UnsupportedFunction, f)
		}
	}
}

func (m *Machine) write(s []uint8) {
	if m.Console == nil {
		return
	}
	_, _ = m.Console.Write(s)
}
