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

package functional_test

import (
	"os"
	"runtime/pprof"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherz80/hardware"
	"github.com/jetsetilly/gopherz80/test"
)

// whether to create a CPU profile of the host computer when running the test
const profiling = false

// the exerciser prints this when every test has been run
const complete = "Tests complete"

func TestZEXDOC(t *testing.T) {
	exercise(t, "zexdoc.com")
}

func TestZEXALL(t *testing.T) {
	exercise(t, "zexall.com")
}

func exercise(t *testing.T, filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Skipf("%s not available", filename)
	}
	if testing.Short() {
		t.Skip("skipping in short mode")
	}

	if profiling {
		f, err := os.Create("cpu_performance.profile")
		test.DemandSuccess(t, err)
		defer f.Close()
		test.DemandSuccess(t, pprof.StartCPUProfile(f))
		defer pprof.StopCPUProfile()
	}

	console := &strings.Builder{}
	m := hardware.NewMachine(nil, console)
	test.DemandSuccess(t, m.LoadCOM(data))

	startTime := time.Now()
	err = m.Run(nil)
	test.DemandSuccess(t, err)

	t.Logf("%s", console.String())
	t.Logf("%d half-cycles in %v", m.CPU.HalfCycles(), time.Since(startTime))

	test.ExpectSuccess(t, strings.Contains(console.String(), complete))
	test.ExpectFailure(t, strings.Contains(console.String(), "ERROR"))
}
