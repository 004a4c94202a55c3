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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// the part of the machine shown by the DOT command. the memory is left out
type dotState struct {
	Registers   map[string]uint16
	Flags       string
	Page        string
	Halted      bool
	HalfCycles  uint64
	Breakpoints []uint16
}

// dot writes a graphviz representation of the CPU state to the writer.
func (mon *Monitor) dot(w io.Writer) {
	s := &dotState{
		Registers:  mon.m.CPU.State(),
		Flags:      mon.m.CPU.Reg.Flags.String(),
		Page:       mon.m.CPU.Page().String(),
		Halted:     mon.m.CPU.Halted(),
		HalfCycles: mon.m.CPU.HalfCycles(),
	}
	for a := range mon.breaks {
		s.Breakpoints = append(s.Breakpoints, a)
	}
	memviz.Map(w, s)
}
