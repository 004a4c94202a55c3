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

package monitor_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/govern"
	"github.com/jetsetilly/gopherz80/hardware"
	"github.com/jetsetilly/gopherz80/monitor"
	"github.com/jetsetilly/gopherz80/test"
)

func newMonitor(t *testing.T) (*monitor.Monitor, *test.Writer, *test.Writer) {
	t.Helper()

	program := []uint8{
		0x0e, 0x09, // LD C,9
		0x11, 0x20, 0x01, // LD DE,0x0120
		0xcd, 0x05, 0x00, // CALL 5
		0xc3, 0x00, 0x00, // JP 0
	}
	program = append(program, make([]uint8, 0x20-len(program))...)
	program = append(program, []uint8("hello$")...)

	console := &test.Writer{}
	m := hardware.NewMachine(nil, console)
	test.DemandSuccess(t, m.LoadCOM(program))

	tw := &test.Writer{}
	return monitor.NewMonitor(m, tw), tw, console
}

func TestStep(t *testing.T) {
	mon, tw, _ := newMonitor(t)
	test.ExpectEquality(t, mon.State(), govern.Initialising)

	test.ExpectSuccess(t, mon.Command("step"))
	test.ExpectEquality(t, tw.String(), "0102 (14)\n")
	test.ExpectEquality(t, mon.State(), govern.Paused)

	tw.Clear()
	test.ExpectSuccess(t, mon.Command("S 2"))
	test.ExpectEquality(t, tw.String(), "0105 (20)\n0005 (34)\n")

	test.ExpectFailure(t, mon.Command("step x"))
}

func TestBreakAndRun(t *testing.T) {
	mon, tw, console := newMonitor(t)

	test.ExpectSuccess(t, mon.Command("break 0x0108"))
	test.ExpectSuccess(t, mon.Command("list"))
	test.ExpectEquality(t, tw.String(), "0x0108\n")

	tw.Clear()
	test.ExpectSuccess(t, mon.Command("run"))
	test.ExpectEquality(t, tw.String(), "break at 0x0108\n")
	test.ExpectEquality(t, console.String(), "hello")

	tw.Clear()
	test.ExpectSuccess(t, mon.Command("drop 264"))
	test.ExpectSuccess(t, mon.Command("list"))
	test.ExpectEquality(t, tw.String(), "no breakpoints\n")

	tw.Clear()
	test.ExpectSuccess(t, mon.Command("run"))
	test.ExpectEquality(t, tw.String(), "program ended\n")

	// stepping after the end of the program prints the error
	tw.Clear()
	test.ExpectSuccess(t, mon.Command("step"))
	test.ExpectEquality(t, tw.String(), hardware.ProgramEnded+"\nprogram ended\n")
}

func TestRegisters(t *testing.T) {
	mon, tw, _ := newMonitor(t)

	test.ExpectSuccess(t, mon.Command("set a 0x42"))
	test.ExpectSuccess(t, mon.Command("regs"))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "AF=42"))

	test.ExpectFailure(t, mon.Command("set"))
	test.ExpectFailure(t, mon.Command("set xy 1"))
	test.ExpectFailure(t, mon.Command("set a 0x10000"))
}

func TestMemory(t *testing.T) {
	mon, tw, _ := newMonitor(t)

	test.ExpectSuccess(t, mon.Command("poke 0x8000 0xaa"))
	test.ExpectSuccess(t, mon.Command("mem 0x8000 16"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "8000|  aa 00"))

	test.ExpectFailure(t, mon.Command("poke 0x8000 0x100"))
	test.ExpectFailure(t, mon.Command("mem"))
}

func TestDisassembly(t *testing.T) {
	mon, tw, _ := newMonitor(t)

	test.ExpectSuccess(t, mon.Command("disasm 0x0100 2"))
	lines := strings.Split(strings.TrimSpace(tw.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "TPA:")
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "0100  0e 09"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "0102  11 20 01"))

	// defaults to the PC
	tw.Clear()
	test.ExpectSuccess(t, mon.Command("disasm"))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "TPA:\n0100  0e 09"))
}

func TestTrace(t *testing.T) {
	mon, tw, _ := newMonitor(t)

	test.ExpectSuccess(t, mon.Command("trace"))
	test.ExpectSuccess(t, mon.Command("step"))
	test.ExpectEquality(t, tw.String(), "tracing on\n  OpcodeFetch 0100 0e\n  Read 0101 09\n0102 (14)\n")

	tw.Clear()
	test.ExpectSuccess(t, mon.Command("trace"))
	test.ExpectEquality(t, tw.String(), "tracing off\n")
}

func TestCommandErrors(t *testing.T) {
	mon, _, _ := newMonitor(t)

	err := mon.Command("foo")
	test.ExpectSuccess(t, curated.Is(err, monitor.UnknownCommand))
	err = mon.Command("break")
	test.ExpectSuccess(t, curated.Is(err, monitor.MissingArgument))
	err = mon.Command("break zz")
	test.ExpectSuccess(t, curated.Is(err, monitor.InvalidNumber))

	// empty lines are ignored
	test.ExpectSuccess(t, mon.Command("   "))
}

func TestLoop(t *testing.T) {
	mon, tw, _ := newMonitor(t)

	err := mon.Loop(strings.NewReader("step\nfoo\nquit\nstep\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mon.State(), govern.Ending)

	expected := "[0100] > 0102 (14)\n" +
		"[0102] > * monitor: unknown command (foo)\n" +
		"[0102] > "
	test.ExpectEquality(t, tw.String(), expected)
}

func TestDot(t *testing.T) {
	mon, _, _ := newMonitor(t)

	fn := filepath.Join(t.TempDir(), "cpu.dot")
	test.ExpectSuccess(t, mon.Command("dot "+fn))

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestLabels(t *testing.T) {
	mon, tw, _ := newMonitor(t)

	test.ExpectSuccess(t, mon.Command("label 0x0108 finish"))
	test.ExpectSuccess(t, mon.Command("break FINISH"))
	test.ExpectSuccess(t, mon.Command("list"))
	test.ExpectEquality(t, tw.String(), "0x0108\n")

	tw.Clear()
	test.ExpectSuccess(t, mon.Command("disasm finish 1"))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "finish:\n0108  c3 00 00"))

	tw.Clear()
	test.ExpectSuccess(t, mon.Command("label"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "0x0005 -> BDOS\n"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "0x0108 -> finish\n"))

	err := mon.Command("label 0x0108")
	test.ExpectSuccess(t, curated.Is(err, monitor.MissingArgument))
}
