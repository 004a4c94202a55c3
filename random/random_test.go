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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopherz80/random"
	"github.com/jetsetilly/gopherz80/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom(100)
	b := random.NewRandom(a.Seed())

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	// reseeding with the same value restarts the sequence
	a.Reseed(100)
	b.Reseed(100)
	for i := 0; i < 16; i++ {
		test.ExpectEquality(t, a.Uint16(), b.Uint16())
	}
}

func TestTimeSeed(t *testing.T) {
	a := random.NewRandom(0)
	test.ExpectInequality(t, a.Seed(), int64(0))
}
