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

// Package cpubus defines the contract between the CPU and the machine that
// hosts it. The CPU never touches memory or peripherals directly. Instead,
// every machine cycle is divided into partial machine cycles, each of which is
// offered to the host through the Bus interface.
//
// Data is transferred only on the final partial cycle of a machine cycle
// (OpcodeFetch, Read, Write, Input, Output and Interrupt). The start and wait
// partial cycles carry the same address and value reference so that a host
// can observe the bus, but the host should not transfer data on them.
//
// For reads the value is preset to 0xff, which is what a floating data bus
// will usually return.
package cpubus
