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

// Package registers implements the register file of the Z80. Every register
// is stored in one of a small number of 16-bit cells. Eight-bit registers are
// views of the high or low half of a cell. Cells and views are identified by
// the closed enumerations Wide and Byte, which is how the microcode refers to
// the registers it operates on.
//
// The flags register is never stored directly. It is reconstructed on demand
// from the Flags type, which holds the intermediate values produced by the
// most recent instruction to affect each flag.
package registers
