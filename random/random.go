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

package random

import (
	"math/rand"
	"time"
)

// Random is a seeded random number generator.
type Random struct {
	seed int64
	src  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
// A seed of zero will cause the generator to be seeded from the current time.
func NewRandom(seed int64) *Random {
	rnd := &Random{}
	rnd.Reseed(seed)
	return rnd
}

// Reseed restarts the sequence of random numbers. A seed of zero will cause
// the generator to be seeded from the current time.
func (rnd *Random) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd.seed = seed
	rnd.src = rand.New(rand.NewSource(seed))
}

// Seed returns the value used to seed the current sequence.
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Intn returns a number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.src.Intn(n)
}

// Uint8 returns a random 8-bit value.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.src.Intn(0x100))
}

// Uint16 returns a random 16-bit value.
func (rnd *Random) Uint16() uint16 {
	return uint16(rnd.src.Intn(0x10000))
}
