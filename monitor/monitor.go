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

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/disassembly/symbols"
	"github.com/jetsetilly/gopherz80/govern"
	"github.com/jetsetilly/gopherz80/hardware"
	"github.com/jetsetilly/gopherz80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
)

// Sentinel error patterns returned by the monitor.
const (
	UnknownCommand  = "monitor: unknown command (%s)"
	MissingArgument = "monitor: %s requires %d argument(s)"
	InvalidNumber   = "monitor: invalid number (%s)"
)

// the default number of bytes shown by the MEM command
const defaultDumpLength = 0x40

// the default number of instructions shown by the DISASM command
const defaultDisasmLength = 8

// Monitor controls a Machine with text commands.
type Monitor struct {
	m      *hardware.Machine
	output io.Writer

	state  govern.State
	breaks map[uint16]bool
	trace  bool

	// labels can be used in place of addresses in commands
	Sym *symbols.Symbols
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(m *hardware.Machine, output io.Writer) *Monitor {
	return &Monitor{
		m:      m,
		output: output,
		state:  govern.Initialising,
		breaks: make(map[uint16]bool),
		Sym:    symbols.NewSymbols(),
	}
}

// State returns the state of the emulation as seen by the monitor.
func (mon *Monitor) State() govern.State {
	return mon.state
}

func (mon *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(mon.output, format, args...)
}

func (mon *Monitor) pc() uint16 {
	return mon.m.CPU.Reg.Value16(registers.PC)
}

func number(s string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, curated.Errorf(InvalidNumber, s)
	}
	return v, nil
}

// address is a number or the name of a label.
func (mon *Monitor) address(s string) (uint16, error) {
	if _, a, ok := mon.Sym.SearchLabel(s); ok {
		return a, nil
	}
	v, err := number(s, 16)
	return uint16(v), err
}

// Command processes a single line of input. Errors in the command are
// returned. The monitor is still usable after an error.
func (mon *Monitor) Command(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	need := func(n int) error {
		if len(args) < n {
			return curated.Errorf(MissingArgument, cmd, n)
		}
		return nil
	}

	switch cmd {
	case "STEP", "S":
		n := uint64(1)
		if len(args) > 0 {
			var err error
			n, err = number(args[0], 32)
			if err != nil {
				return err
			}
		}
		mon.state = govern.Stepping
		for i := uint64(0); i < n; i++ {
			if !mon.step() {
				break // for loop
			}
		}
		mon.halt()

	case "RUN", "R":
		mon.state = govern.Running
		for mon.step() {
			if mon.breaks[mon.pc()] {
				mon.printf("break at %#04x\n", mon.pc())
				break // for loop
			}
		}
		mon.halt()

	case "BREAK", "B":
		if err := need(1); err != nil {
			return err
		}
		a, err := mon.address(args[0])
		if err != nil {
			return err
		}
		mon.breaks[a] = true

	case "DROP":
		if err := need(1); err != nil {
			return err
		}
		a, err := mon.address(args[0])
		if err != nil {
			return err
		}
		delete(mon.breaks, a)

	case "LIST":
		l := make([]int, 0, len(mon.breaks))
		for a := range mon.breaks {
			l = append(l, int(a))
		}
		sort.Ints(l)
		if len(l) == 0 {
			mon.printf("no breakpoints\n")
		}
		for _, a := range l {
			mon.printf("%#04x\n", a)
		}

	case "REGS", "G":
		mon.printf("%s\n", mon.m.CPU.String())
		mon.printf("half-cycles=%d instructions=%d\n", mon.m.CPU.HalfCycles(), mon.m.CPU.Instructions())

	case "MEM", "M":
		if err := need(1); err != nil {
			return err
		}
		a, err := mon.address(args[0])
		if err != nil {
			return err
		}
		l := uint64(defaultDumpLength)
		if len(args) > 1 {
			l, err = number(args[1], 16)
			if err != nil {
				return err
			}
		}
		mon.printf("%s\n", mon.m.Mem.Dump(a, int(l)))

	case "DISASM", "D":
		addr := mon.pc()
		n := uint64(defaultDisasmLength)
		var err error
		if len(args) > 0 {
			addr, err = mon.address(args[0])
			if err != nil {
				return err
			}
		}
		if len(args) > 1 {
			n, err = number(args[1], 16)
			if err != nil {
				return err
			}
		}
		for i := uint64(0); i < n; i++ {
			if l, ok := mon.Sym.GetLabel(addr); ok {
				mon.printf("%s:\n", l)
			}
			ins := instructions.Disassemble(mon.m.Mem.Peek, addr)
			mon.printf("%s\n", ins)
			addr += uint16(len(ins.Bytes))
		}

	case "LABEL":
		if len(args) == 0 {
			mon.printf("%s", mon.Sym)
			return nil
		}
		if err := need(2); err != nil {
			return err
		}
		a, err := number(args[0], 16)
		if err != nil {
			return err
		}
		mon.Sym.RemoveLabel(uint16(a))
		mon.Sym.AddLabel(uint16(a), strings.Join(args[1:], " "))

	case "SET":
		if err := need(2); err != nil {
			return err
		}
		v, err := number(args[1], 16)
		if err != nil {
			return err
		}
		return mon.m.CPU.Set(args[0], uint16(v))

	case "POKE":
		if err := need(2); err != nil {
			return err
		}
		a, err := mon.address(args[0])
		if err != nil {
			return err
		}
		v, err := number(args[1], 8)
		if err != nil {
			return err
		}
		mon.m.Mem.Poke(a, uint8(v))

	case "TRACE":
		mon.trace = !mon.trace
		mon.m.Mem.SetTracing(mon.trace)
		if mon.trace {
			mon.printf("tracing on\n")
		} else {
			mon.printf("tracing off\n")
		}

	case "DOT":
		if err := need(1); err != nil {
			return err
		}
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		defer f.Close()
		mon.dot(f)

	case "QUIT", "Q":
		mon.state = govern.Ending

	default:
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	return nil
}

// step the machine one instruction. returns false if the machine can not
// continue.
func (mon *Monitor) step() bool {
	n, err := mon.m.Step()
	if mon.trace {
		for _, t := range mon.m.Mem.Trace() {
			mon.printf("  %s\n", t)
		}
		mon.m.Mem.SetTracing(true)
	}
	if err != nil {
		mon.printf("%v\n", err)
		return false
	}
	if mon.state == govern.Stepping {
		mon.printf("%04x (%d)\n", mon.pc(), n)
	}
	return !mon.m.Ended()
}

func (mon *Monitor) halt() {
	if mon.m.Ended() {
		mon.printf("program ended\n")
	}
	mon.state = govern.Paused
}

// Loop reads commands from the input until the QUIT command or the end of
// the input.
func (mon *Monitor) Loop(input io.Reader) error {
	scanner := bufio.NewScanner(input)
	for mon.state != govern.Ending {
		mon.printf("[%04x] > ", mon.pc())
		if !scanner.Scan() {
			break // for loop
		}
		if err := mon.Command(scanner.Text()); err != nil {
			mon.printf("* %v\n", err)
		}
	}
	return scanner.Err()
}
