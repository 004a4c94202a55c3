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

// Package scripting runs Lua scripts against the emulated machine. Scripts
// can load programs, step and run the CPU, and examine and change the
// registers and memory. It is useful for writing small experiments and
// regression checks without recompiling.
//
// The machine is available to the script through the global table "z80":
//
//	z80.load(origin, bytes)   load a table or string of bytes into memory
//	z80.loadcom(bytes)        load a CP/M program
//	z80.step()                execute one instruction. returns half-cycles
//	z80.run()                 run until the program ends
//	z80.advance(n)            advance the CPU by n half-cycles
//	z80.reg(name)             value of register
//	z80.setreg(name, value)   change register
//	z80.peek(addr)            value in memory
//	z80.poke(addr, value)     change memory
//	z80.halfcycles()          half-cycles executed since power-on
//	z80.ended()               program has jumped to the warm boot address
//	z80.irq(bool)             set the IRQ line
//	z80.nmi(bool)             set the NMI line
//
// The Lua print function writes to the output given to NewScript().
//
// Errors from the machine are raised as Lua errors and are returned by
// RunString() and RunFile() if the script does not catch them.
package scripting
