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

package cpu

import (
	"github.com/jetsetilly/gopherz80/logger"
)

// SetIRQ sets the level of the maskable interrupt request line.
func (mc *CPU) SetIRQ(asserted bool) {
	mc.lines.irq = asserted
}

// SetNMI sets the level of the non-maskable interrupt line. A rising edge is
// latched and stays pending until the NMI is serviced.
//
// The backdate argument is the number of half-cycles ago that the line
// changed. If the change happened before the request lines were last sampled
// then the edge is treated as having been seen by that sample.
func (mc *CPU) SetNMI(asserted bool, backdate int) {
	if asserted && !mc.nmiLine {
		mc.lines.nmi = true
		if backdate > mc.sinceSample {
			mc.sampled.nmi = true
			logger.Logf(mc.Logging, "cpu", "NMI backdated by %d half-cycles", backdate)
		}
	}
	mc.nmiLine = asserted
}

// SetReset sets the level of the reset line. The reset sequence is repeated
// at every instruction boundary while the line is asserted.
func (mc *CPU) SetReset(asserted bool) {
	mc.lines.reset = asserted
}

// SetPowerOn causes the power-on sequence to run at the next instruction
// boundary. Unlike the other request lines the condition is seen immediately.
func (mc *CPU) SetPowerOn() {
	mc.lines.powerOn = true
	mc.sampled.powerOn = true
}

// SetBusRequest sets the level of the bus request line. While asserted the
// CPU offers bus acknowledge cycles at the start of every machine cycle
// instead of continuing.
func (mc *CPU) SetBusRequest(asserted bool) {
	mc.busRequest = asserted
}

// SetWait sets the level of the wait line. While asserted the wait sampling
// partial cycles are repeated.
func (mc *CPU) SetWait(asserted bool) {
	mc.wait = asserted
}
