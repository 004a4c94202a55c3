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

package disassembly

import (
	"fmt"
	"sort"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/disassembly/symbols"
	"github.com/jetsetilly/gopherz80/logger"
)

// Mode specifies how the disassembly is created.
type Mode int

// List of valid Mode values.
const (
	Linear Mode = iota
	Flow
)

// InvalidRegion is returned by FromMemory() when the region does not fit in
// the address space.
const InvalidRegion = "disassembly: invalid region (%#04x, %d bytes)"

// the maximum number of bytes in a single data entry
const dataLineLen = 8

// Disassembly represents the annotated disassembly of a region of memory.
type Disassembly struct {
	// labels for the disassembly. the targets of jumps and calls are added
	// during disassembly
	Sym *symbols.Symbols

	peek   func(uint16) uint8
	origin uint16
	length int

	entries map[uint16]*Entry
}

// FromMemory disassembles the region of memory starting at origin. The peek
// function should return the value at an address without side effects.
//
// For the Flow mode, the program is followed from the entry points. If there
// are no entry points then the origin is used.
//
// The sym argument can be nil, in which case a new instance of Symbols is
// created.
func FromMemory(peek func(uint16) uint8, origin uint16, length int, mode Mode, sym *symbols.Symbols, entryPoints ...uint16) (*Disassembly, error) {
	if length <= 0 || int(origin)+length > 0x10000 {
		return nil, curated.Errorf(InvalidRegion, origin, length)
	}

	if sym == nil {
		sym = symbols.NewSymbols()
	}

	dsm := &Disassembly{
		Sym:     sym,
		peek:    peek,
		origin:  origin,
		length:  length,
		entries: make(map[uint16]*Entry),
	}

	switch mode {
	case Linear:
		dsm.linear()
	case Flow:
		if len(entryPoints) == 0 {
			entryPoints = []uint16{origin}
		}
		for _, a := range entryPoints {
			if !dsm.inRegion(a) {
				logger.Logf(logger.Allow, "disassembly", "entry point outside of region (%#04x)", a)
				continue
			}
			dsm.flow(a)
		}
		dsm.linkPrev()
	}

	dsm.data()
	dsm.labels()

	return dsm, nil
}

func (dsm *Disassembly) inRegion(addr uint16) bool {
	return int(addr) >= int(dsm.origin) && int(addr) < int(dsm.origin)+dsm.length
}

// decode every instruction in the region from the origin.
func (dsm *Disassembly) linear() {
	end := int(dsm.origin) + dsm.length
	for a := int(dsm.origin); a < end; {
		e := newEntry(dsm.peek, uint16(a))
		dsm.entries[uint16(a)] = e
		a += e.Len()
	}
}

// create data entries for the bytes in the region not covered by an
// instruction.
func (dsm *Disassembly) data() {
	covered := make([]bool, dsm.length)
	for a, e := range dsm.entries {
		for i := 0; i < e.Len(); i++ {
			o := int(a) - int(dsm.origin) + i
			if o < len(covered) {
				covered[o] = true
			}
		}
	}

	var run []uint8
	var start uint16
	flush := func() {
		if len(run) > 0 {
			dsm.entries[start] = newData(start, run)
			run = nil
		}
	}

	for o := 0; o < dsm.length; o++ {
		if covered[o] {
			flush()
			continue
		}
		a := dsm.origin + uint16(o)
		if len(run) == 0 {
			start = a
		}
		run = append(run, dsm.peek(a))
		if len(run) == dataLineLen {
			flush()
		}
	}
	flush()
}

// add labels for the targets of jumps and calls that are inside the region.
func (dsm *Disassembly) labels() {
	for _, e := range dsm.entries {
		if e.Type == EntryTypeData || !e.HasTarget || !dsm.inRegion(e.Target) {
			continue
		}
		if _, ok := dsm.Sym.GetLabel(e.Target); !ok {
			dsm.Sym.AddLabel(e.Target, fmt.Sprintf("L%04x", e.Target))
		}
	}
}

func (dsm *Disassembly) sortedAddresses() []uint16 {
	addrs := make([]uint16, 0, len(dsm.entries))
	for a := range dsm.entries {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// Entries returns the entries of the disassembly in address order.
func (dsm *Disassembly) Entries() []*Entry {
	var es []*Entry
	for _, a := range dsm.sortedAddresses() {
		es = append(es, dsm.entries[a])
	}
	return es
}

// Get returns the entry at the address.
func (dsm *Disassembly) Get(addr uint16) (*Entry, bool) {
	e, ok := dsm.entries[addr]
	return e, ok
}
