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

// Package symbols keeps track of the labels used by the disassembly.
//
// Labels are added by the disassembly for the targets of jumps and calls,
// read from a symbols file with ReadSymbolsFile(), or added directly with
// AddLabel(). The well known addresses of the CP/M memory map are always
// present unless they are removed explicitly.
//
// A symbols file is a list of symbol and address pairs, one pair per line.
// Addresses can be written with a leading $ or 0x to indicate hexadecimal
// or without a prefix for decimal. Anything following a semicolon is a
// comment.
//
//	; bdos functions
//	PRINT_STRING  $0109
//	COUNTER       0x0200
package symbols
