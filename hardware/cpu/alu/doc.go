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

// Package alu implements the arithmetic, logical, rotate, bit-test and decimal
// adjust operations of the Z80, together with the flag rules of the block
// transfer, search and I/O instructions.
//
// Every function is pure. The current flags are passed in and the new flags
// are returned, along with the result where there is one. Flags that an
// operation does not affect are copied from the input.
package alu
