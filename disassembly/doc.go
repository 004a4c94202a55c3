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

// Package disassembly creates a complete disassembly of a region of memory.
// Unlike the instructions.Disassemble() function, which decodes a single
// instruction, the Disassembly type knows about the flow of the program and
// the labels that have been given to addresses.
//
// The disassembly can be created in one of two ways. FromMemory() with the
// Linear mode decodes every instruction from the start of the region to the
// end. The Flow mode follows the program from the entry points and any byte
// that cannot be reached is treated as data.
//
// The targets of jumps and calls are given labels automatically. Labels are
// kept in a symbols.Symbols instance which can also be loaded from a file.
package disassembly
