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

package performance_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/hardware"
	"github.com/jetsetilly/gopherz80/performance"
	"github.com/jetsetilly/gopherz80/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, Mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU,MEM,TRACE")

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(8000000, 2.0, 4.0)
	test.ExpectEquality(t, mhz, 4.0)
	test.ExpectEquality(t, accuracy, 100.0)

	mhz, accuracy = performance.CalcMHz(100, 0, 4.0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestCheck(t *testing.T) {
	m := hardware.NewMachine(nil, nil)

	// JR -2
	test.DemandSuccess(t, m.LoadCOM([]uint8{0x18, 0xfe}))

	w := &test.Writer{}
	test.ExpectSuccess(t, performance.Check(w, performance.ProfileNone, m, "cpm", "20ms"))
	test.ExpectSuccess(t, strings.Contains(w.String(), " MHz ("))
	test.ExpectInequality(t, m.CPU.Instructions(), 0)
	test.ExpectSuccess(t, !m.Ended())

	test.ExpectFailure(t, performance.Check(w, performance.ProfileNone, m, "cpm", "twenty"))

	err := performance.Check(w, performance.ProfileNone, m, "vcs", "20ms")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownClock))
}

func TestCheckEnded(t *testing.T) {
	m := hardware.NewMachine(nil, nil)

	// JP 0
	test.DemandSuccess(t, m.LoadCOM([]uint8{0xc3, 0x00, 0x00}))

	w := &test.Writer{}
	test.ExpectSuccess(t, performance.Check(w, performance.ProfileNone, m, "spectrum", "1s"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "program ended"))
}
