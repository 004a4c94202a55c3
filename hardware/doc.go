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

// Package hardware is the base package for the emulated machine. The Machine
// type collects the CPU and the reference memory and provides the
// environment a CP/M program needs to run: the program is loaded at 0x0100,
// console output through BDOS functions 2 and 9 is written to an io.Writer
// and a jump to 0x0000 ends the program.
//
// The BDOS is not emulated by Z80 code. A RET instruction is placed at 0x0005
// and the Machine watches the bus for the opcode fetch from that address. The
// requested function is serviced at that moment, using the CPU registers as
// they are at the start of the instruction.
//
// Only functions 2 (console output) and 9 (print string) are supported. Other
// functions are logged and otherwise ignored.
//
// The Machine can be run to completion with Run() or stepped one instruction
// at a time with Step().
package hardware
