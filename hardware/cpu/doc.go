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

// Package cpu emulates the Z80 CPU at the level of the half-cycle.
//
// The behaviour of every instruction is held in the microcode package as a
// sequence of steps. The CPU works through the steps in order, handing every
// bus step to the host through the cpubus.Bus interface. All other steps are
// executed immediately and take no time.
//
// The only way to make the CPU do anything is to call Advance(). The budget
// argument is the number of half-cycles the CPU may use. The CPU can be
// suspended between any two bus steps so Advance() can be called with a
// budget as small as one half-cycle, which will often do nothing at all.
//
//	mc := cpu.NewCPU(nil, mem)
//	for {
//		mc.Advance(2)
//	}
//
// For the convenience of debuggers and test code, ExecuteInstruction() will
// run the CPU to the start of the next instruction regardless of how long
// that takes.
//
// The host affects the CPU through the request lines: SetIRQ(), SetNMI(),
// SetReset(), SetBusRequest() and SetWait(). These can be called at any time,
// including from inside the Bus implementation. The IRQ, NMI and reset lines
// are sampled at the start of every partial cycle and the sample is examined
// at the start of every instruction. The wait line is examined immediately
// before and after every partial cycle that samples it.
//
// The CPU is not safe for concurrent use. If the program is built with the
// "assertions" tag then calling Advance() from more than one goroutine will
// cause a panic.
package cpu
