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

package microcode

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/gopherz80/assert"
	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz80/hardware/memory/cpubus"
)

// Variant of the Z80. The variants differ only in the value output by the
// undocumented OUT (C),0 instruction.
type Variant int

// List of valid Variant values.
const (
	NMOS Variant = iota
	CMOS
	NumVariants
)

func (v Variant) String() string {
	switch v {
	case NMOS:
		return "NMOS"
	case CMOS:
		return "CMOS"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// VariantFromString returns the Variant with the name returned by String().
func VariantFromString(s string) (Variant, error) {
	switch s {
	case "NMOS":
		return NMOS, nil
	case "CMOS":
		return CMOS, nil
	}
	return NMOS, curated.Errorf("microcode: unknown variant (%s)", s)
}

// Page is the compiled form of one of the opcode pages.
type Page struct {
	ID instructions.Page

	// every sequence in the page, end to end
	Steps []Step

	// offset into Steps of the sequence for each opcode
	Starts [256]int
	ends   [256]int

	// amount the refresh counter is increased by on decoding an opcode from
	// this page. zero for the indexed bit pages because the final opcode is
	// not read with an M1 cycle
	RefreshStep uint8

	// addresses of the (HL) operand include a displacement
	Indexed bool
}

// Sequence returns the steps for the opcode.
func (p *Page) Sequence(opcode uint8) []Step {
	return p.Steps[p.Starts[opcode]:p.ends[opcode]]
}

// Set is the complete microcode for a variant.
type Set struct {
	Variant Variant
	Pages   [instructions.NumPages]*Page

	// sequences that are not reached through an opcode
	Fetch []Step
	Reset []Step
	NMI   []Step
	IRQ   [3][]Step
}

var (
	sets     [NumVariants]*Set
	setsOnce [NumVariants]sync.Once
)

// Get returns the microcode for the variant. The Set is compiled on first
// use. The returned value must not be modified.
func Get(v Variant) *Set {
	if v < 0 || v >= NumVariants {
		v = NMOS
	}
	setsOnce[v].Do(func() {
		sets[v] = compile(v)
	})
	return sets[v]
}

func compile(v Variant) *Set {
	set := &Set{
		Variant: v,
		Fetch:   fetchProgram(),
		Reset:   resetProgram(),
		NMI:     nmiProgram(),
		IRQ:     [3][]Step{mode0Program(), mode1Program(), mode2Program()},
	}
	for p := instructions.Page(0); p < instructions.NumPages; p++ {
		set.Pages[p] = compilePage(p, v)
	}

	err := set.Validate()
	assert.Check(err == nil, "%v", err)

	return set
}

func compilePage(id instructions.Page, v Variant) *Page {
	page := &Page{
		ID:          id,
		RefreshStep: 1,
		Indexed:     id.Indexed(),
	}
	if id == instructions.IndexXBit || id == instructions.IndexYBit {
		page.RefreshStep = 0
	}

	b := builder{page: id, variant: v, index: registers.HL}
	switch id {
	case instructions.IndexX, instructions.IndexXBit:
		b.index = registers.IX
	case instructions.IndexY, instructions.IndexYBit:
		b.index = registers.IY
	}

	for op := 0; op <= 0xff; op++ {
		page.Starts[op] = len(b.steps)

		switch id {
		case instructions.Base, instructions.IndexX, instructions.IndexY:
			b.base(uint8(op))
		case instructions.Extended:
			b.extended(uint8(op))
		case instructions.Bit:
			b.bit(uint8(op))
		case instructions.IndexXBit, instructions.IndexYBit:
			b.indexBit(uint8(op))
		}

		if n := len(b.steps); n == page.Starts[op] || !terminal(b.steps[n-1]) {
			b.add(end())
		}

		page.ends[op] = len(b.steps)
	}

	page.Steps = b.steps
	return page
}

func terminal(s Step) bool {
	return s.Kind == MoveToNext || s.Kind == Decode
}

// Validate checks the structure of every sequence in the Set.
func (set *Set) Validate() error {
	for _, page := range set.Pages {
		for op := 0; op <= 0xff; op++ {
			if err := validate(page.Sequence(uint8(op))); err != nil {
				return curated.Errorf("microcode: %s %02x: %v", page.ID, op, err)
			}
		}
	}

	programs := map[string][]Step{
		"fetch": set.Fetch,
		"reset": set.Reset,
		"nmi":   set.NMI,
		"im0":   set.IRQ[0],
		"im1":   set.IRQ[1],
		"im2":   set.IRQ[2],
	}
	for name, seq := range programs {
		if err := validate(seq); err != nil {
			return curated.Errorf("microcode: %s: %v", name, err)
		}
	}

	return nil
}

func validate(seq []Step) error {
	if len(seq) == 0 {
		return fmt.Errorf("empty sequence")
	}
	if !terminal(seq[len(seq)-1]) {
		return fmt.Errorf("sequence does not end with MoveToNext or Decode")
	}
	for i, s := range seq {
		switch s.Kind {
		case Bus:
			if s.Length <= 0 {
				return fmt.Errorf("step %d: bus step has no length", i)
			}
			if s.Operation.Transfers() && s.Data == NoData {
				return fmt.Errorf("step %d: %s has no data register", i, s.Operation)
			}
			if s.Operation == cpubus.Refresh && s.Addr != registers.IR {
				return fmt.Errorf("step %d: refresh does not address IR", i)
			}
		case Test:
			if s.Skip <= 0 || i+s.Skip+1 >= len(seq) {
				return fmt.Errorf("step %d: test skips out of sequence", i)
			}
			if !terminal(seq[i+s.Skip]) {
				return fmt.Errorf("step %d: taken tail does not end the instruction", i)
			}
		}
	}
	return nil
}
