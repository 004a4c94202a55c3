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

// Package limiter provides a rough and ready way of limiting the emulation to
// the speed of a real Z80.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(clocks.Spectrum)
//
// The emulation is then stalled by calling the Wait() function with the
// number of T-states that have been executed since the previous call:
//
//	for {
//		n := executeSomeInstructions()
//		lim.Wait(n)
//	}
package limiter

import (
	"time"

	"github.com/jetsetilly/gopherz80/curated"
)

// TicksPerSecond is the number of times per second that a slice of T-states
// is granted.
const TicksPerSecond = 50

// InvalidSpeed is returned when the clock speed is not a positive value.
const InvalidSpeed = "limiter: invalid clock speed (%.3f MHz)"

// this is a rough attempt at speed limiting. probably only any good if the
// base performance of the host is well above the required rate.

// Limiter grants a slice of T-states on every tick. The Wait() function
// blocks if more T-states have been executed than have been granted.
type Limiter struct {
	mhz     float64
	perTick uint64

	ticker *time.Ticker

	granted  uint64
	consumed uint64
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The speed is in MHz.
func NewLimiter(mhz float64) (*Limiter, error) {
	lim := &Limiter{}
	if err := lim.SetLimit(mhz); err != nil {
		return nil, err
	}

	lim.ticker = time.NewTicker(time.Second / TicksPerSecond)

	// the first slice is available immediately
	lim.granted = lim.perTick

	return lim, nil
}

// SetLimit changes the speed at which the emulation is allowed to run.
func (lim *Limiter) SetLimit(mhz float64) error {
	if mhz <= 0 {
		return curated.Errorf(InvalidSpeed, mhz)
	}
	lim.mhz = mhz
	lim.perTick = uint64(mhz * 1000000 / TicksPerSecond)
	return nil
}

// Limit returns the speed in MHz.
func (lim *Limiter) Limit() float64 {
	return lim.mhz
}

// Wait blocks until enough T-states have been granted to cover the T-states
// that have been executed.
func (lim *Limiter) Wait(tstates uint64) {
	lim.consumed += tstates
	for lim.consumed > lim.granted {
		<-lim.ticker.C
		lim.granted += lim.perTick
	}
}

// HasWaited returns true if the T-states can be executed without waiting.
// The T-states are counted as executed only if the function returns true.
func (lim *Limiter) HasWaited(tstates uint64) bool {
	for lim.consumed+tstates > lim.granted {
		select {
		case <-lim.ticker.C:
			lim.granted += lim.perTick
		default:
			// default case means that the channel receiving case doesn't block
			return false
		}
	}
	lim.consumed += tstates
	return true
}

// Stop the limiter. The limiter should not be used after Stop() has been
// called.
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
