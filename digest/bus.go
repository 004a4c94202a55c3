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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopherz80/hardware/memory/cpubus"
)

// the number of bytes used to describe a partial cycle in the digest buffer
const cycleLen = 8

// Bus wraps a cpubus.Bus and fingerprints every partial cycle that passes
// through it. The partial cycle is fingerprinted after the wrapped bus has
// serviced it so that the data placed on the bus by a read is included.
type Bus struct {
	cpubus.Bus
	digest [sha1.Size]byte
	buffer []byte
	cycles int
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(bus cpubus.Bus) *Bus {
	return &Bus{
		Bus:    bus,
		buffer: make([]byte, sha1.Size+cycleLen),
	}
}

// Hash implements the Digest interface.
func (dig *Bus) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Bus) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.cycles = 0
}

// Cycles returns the number of partial cycles in the digest.
func (dig *Bus) Cycles() int {
	return dig.cycles
}

// PerformCycle implements the cpubus.Bus interface.
func (dig *Bus) PerformCycle(cycle cpubus.PartialCycle) int {
	stretch := dig.Bus.PerformCycle(cycle)

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the buffer
	n := copy(dig.buffer, dig.digest[:])

	b := dig.buffer[n:]
	b[0] = byte(cycle.Operation)
	b[1] = byte(cycle.Length)
	b[2] = byte(cycle.Address >> 8)
	b[3] = byte(cycle.Address)
	b[4] = 0
	b[5] = 0
	if cycle.Value != nil {
		b[4] = 1
		b[5] = *cycle.Value
	}
	b[6] = 0
	if cycle.SampleWait {
		b[6] = 1
	}
	b[7] = byte(stretch)

	dig.digest = sha1.Sum(dig.buffer)
	dig.cycles++

	return stretch
}
