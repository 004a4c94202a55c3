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

// Package instructions describes the Z80 instruction set independently of the
// microcode that implements it. It provides the published T-state duration of
// every opcode in every page, and a disassembler.
//
// The timing tables are deliberately written out in full, rather than being
// derived from the microcode, so that they can act as the reference against
// which the microcode is tested.
package instructions
