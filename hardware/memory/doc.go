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

// Package memory is a reference host for the CPU. It provides 64K of RAM and
// 64K of I/O ports and implements the cpubus.Bus interface.
//
// The memory can insert a fixed number of wait states into every memory
// access by asserting the CPU's wait line at the start of the machine cycle
// and releasing it after the required number of wait sampling partial
// cycles. The CPU must be attached with AttachWaitLine() for this to work.
//
// Every data transfer can optionally be recorded. The trace is useful for
// testing that the CPU generates the correct bus activity.
package memory
