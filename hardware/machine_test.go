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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/govern"
	"github.com/jetsetilly/gopherz80/hardware"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz80/test"
)

// prints "hello!" with both of the supported bdos functions and then jumps to
// the warm boot address
func helloProgram() []uint8 {
	p := []uint8{
		0x0e, 0x09, // LD C,9
		0x11, 0x20, 0x01, // LD DE,0x0120
		0xcd, 0x05, 0x00, // CALL 5
		0x0e, 0x02, // LD C,2
		0x1e, '!', // LD E,'!'
		0xcd, 0x05, 0x00, // CALL 5
		0xc3, 0x00, 0x00, // JP 0
	}
	p = append(p, make([]uint8, 0x20-len(p))...)
	return append(p, []uint8("hello$")...)
}

func TestHello(t *testing.T) {
	tw := &test.Writer{}
	m := hardware.NewMachine(nil, tw)
	test.DemandSuccess(t, m.LoadCOM(helloProgram()))

	test.ExpectSuccess(t, m.Run(nil))
	test.ExpectSuccess(t, m.Ended())
	test.ExpectEquality(t, tw.String(), "hello!")

	// the stack has been balanced by the two RETs from the bdos
	test.ExpectEquality(t, m.CPU.Reg.Value16(registers.SP), uint16(hardware.TopOfMemory))

	_, err := m.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.ProgramEnded))
}

func TestContinueCheck(t *testing.T) {
	m := hardware.NewMachine(nil, nil)
	test.DemandSuccess(t, m.LoadCOM([]uint8{0x18, 0xfe})) // JR -2

	var checks int
	err := m.Run(func() (govern.State, error) {
		checks++
		if checks == 3 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, checks, 3)
	test.ExpectEquality(t, m.CPU.Instructions(), uint64(1+3*hardware.PerformanceBrake))
	test.ExpectFailure(t, m.Ended())
}

func TestHaltedForever(t *testing.T) {
	m := hardware.NewMachine(nil, nil)
	test.DemandSuccess(t, m.LoadCOM([]uint8{0xf3, 0x76})) // DI; HALT

	err := m.RunFor(10)
	test.ExpectSuccess(t, curated.Is(err, hardware.HaltedForever))
	test.ExpectSuccess(t, m.CPU.Halted())
}

func TestUnsupportedFunction(t *testing.T) {
	program := []uint8{
		0x0e, 0x01, // LD C,1
		0xcd, 0x05, 0x00, // CALL 5
		0xc3, 0x00, 0x00, // JP 0
	}

	// unsupported functions are ignored by default
	m := hardware.NewMachine(nil, nil)
	test.DemandSuccess(t, m.LoadCOM(program))
	test.ExpectSuccess(t, m.Run(nil))
	test.ExpectSuccess(t, m.Ended())

	m = hardware.NewMachine(nil, nil)
	m.Strict = true
	test.DemandSuccess(t, m.LoadCOM(program))
	err := m.Run(nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedFunction))
}

func TestBDOSVector(t *testing.T) {
	m := hardware.NewMachine(nil, nil)
	test.DemandSuccess(t, m.LoadCOM([]uint8{0x00}))

	// programs find the top of the TPA in the two bytes after the bdos entry
	test.ExpectEquality(t, m.Mem.Peek(hardware.BDOS), uint8(0xc9))
	test.ExpectEquality(t, m.Mem.Peek(hardware.BDOS+1), uint8(hardware.TopOfMemory&0xff))
	test.ExpectEquality(t, m.Mem.Peek(hardware.BDOS+2), uint8(hardware.TopOfMemory>>8))
}

func TestProgramTooLarge(t *testing.T) {
	m := hardware.NewMachine(nil, nil)
	err := m.LoadCOM(make([]uint8, 0x10000))
	test.ExpectSuccess(t, curated.Is(err, hardware.ProgramTooLarge))
}

func TestSnapshot(t *testing.T) {
	tw := &test.Writer{}
	m := hardware.NewMachine(nil, tw)
	test.DemandSuccess(t, m.LoadCOM(helloProgram()))

	// LD C,9 and LD DE,0x0120
	test.DemandSuccess(t, m.RunFor(2))
	s := m.Snapshot()
	pc := m.CPU.Reg.Value16(registers.PC)

	test.DemandSuccess(t, m.Run(nil))
	test.ExpectEquality(t, tw.String(), "hello!")

	m.Plumb(s)
	test.ExpectFailure(t, m.Ended())
	test.ExpectEquality(t, m.CPU.Reg.Value16(registers.PC), pc)

	// the snapshot is not changed by running the plumbed machine
	tw.Clear()
	test.DemandSuccess(t, m.Run(nil))
	test.ExpectEquality(t, tw.String(), "hello!")
	test.ExpectEquality(t, s.CPU.Reg.Value16(registers.PC), pc)
}
