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

// Package monitor is a simple interactive monitor for the emulated machine.
// Commands are entered one per line and control the execution of the
// machine, examine and change the registers and memory, and set breakpoints
// on the program counter.
//
// Commands are not case sensitive. The available commands are:
//
//	STEP [n]          execute one instruction (or n instructions)
//	RUN               run until a breakpoint or the end of the program
//	BREAK addr        halt when the PC reaches addr
//	DROP addr         remove breakpoint
//	LIST              list breakpoints
//	REGS              show registers
//	MEM addr [len]    show memory
//	DISASM [addr] [n] disassemble n instructions from addr (default PC)
//	SET reg value     change a register
//	POKE addr value   change memory
//	TRACE             toggle bus tracing
//	LABEL [addr name] list labels or add a label for addr
//	DOT file          write a graphviz view of the CPU state
//	QUIT              end the monitor
//
// Numeric arguments can be given in any base recognised by strconv (eg.
// 0x0100 or 256). Addresses can also be given as the name of a label. The
// well known CP/M addresses (eg. BDOS and TPA) are labelled by default.
//
// On terminals that support it, KeyLoop() provides single key control. The
// space key steps one instruction, the 'r' key runs, the 'g' key shows the
// registers and the 'q' key quits. The ':' key reads a full command line.
package monitor
