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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/govern"
	"github.com/jetsetilly/gopherz80/hardware"
	"github.com/jetsetilly/gopherz80/hardware/clocks"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// UnknownClock is returned by Check() when the reference clock is not
// recognised.
const UnknownClock = "performance: unknown reference clock (%s)"

// CalcMHz takes the number of T-states and the duration (in seconds) and
// returns the effective clock speed in MHz and the accuracy of that value as
// a percentage of the reference clock speed (also in MHz).
func CalcMHz(tstates uint64, duration float64, reference float64) (mhz float64, accuracy float64) {
	if duration <= 0 || reference <= 0 {
		return 0, 0
	}
	mhz = float64(tstates) / duration / 1000000
	accuracy = 100 * mhz / reference
	return mhz, accuracy
}

// Check the performance of the emulation by running the machine for the
// specified duration. The program loaded into the machine will end the check
// early if it jumps to the warm boot address.
//
// The accuracy is measured against the clock speed of the named machine. See
// the clocks package for the list of names.
//
// A cpu or memory profile (or a combination of those) is created as defined
// by the Profile argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine, clock string, duration string) error {
	reference, ok := clocks.FromString(clock)
	if !ok {
		return curated.Errorf(UnknownClock, clock)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startCycles := m.CPU.HalfCycles()
	startTime := time.Now()

	runner := func() error {
		// the timer channel is checked every hardware.PerformanceBrake
		// instructions by the Run() function
		timerChan := time.After(dur)

		return m.Run(func() (govern.State, error) {
			select {
			case <-timerChan:
				return govern.Ending, timedOut
			default:
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(startTime).Seconds()
	tstates := (m.CPU.HalfCycles() - startCycles) / 2
	mhz, accuracy := CalcMHz(tstates, elapsed, reference)

	fmt.Fprintf(output, "%.2f MHz (%d T-states in %.2f seconds) %.1f%% of %s\n", mhz, tstates, elapsed, accuracy, clock)
	if m.Ended() {
		fmt.Fprintln(output, "program ended before the measurement period")
	}

	return nil
}
