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

// Package microcode compiles the behaviour of every Z80 instruction into
// sequences of primitive steps.
//
// A Step is a small tagged value. Bus steps describe one partial machine
// cycle and are handed to the host by the CPU's scheduler. All other steps
// are executed immediately by the scheduler: register moves, ALU operations,
// conditional skips, page switches and so on.
//
// There are seven opcode pages (see the instructions.Page type). Each page
// is compiled into a single contiguous slice of steps along with a table of
// start offsets indexed by opcode. Every sequence ends with a MoveToNext step,
// or with a Decode step for the entries that are themselves prefixes.
//
// Conditional instructions are compiled with two tails. A Test step that
// finds its condition false skips over the first (taken) tail into the
// second (declined) tail. Both tails end with MoveToNext.
//
// Compilation happens once per variant, the first time a Set is requested.
// The resulting Set is never modified and can be shared by any number of CPU
// instances.
package microcode
