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

package microcode_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherz80/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherz80/hardware/cpu/microcode"
	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz80/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherz80/test"
)

// duration of the nominal bus activity in a sequence, with every Test step
// resolving to the supplied condition. sampled wait steps are not counted
// because they take no time when the wait line is not asserted
func duration(seq []microcode.Step, condition bool) (int, microcode.Kind) {
	var n int
	for i := 0; i < len(seq); i++ {
		s := seq[i]
		switch s.Kind {
		case microcode.Bus:
			if !s.SampleWait {
				n += s.Length
			}
		case microcode.Test:
			if !condition {
				i += s.Skip
			}
		case microcode.MoveToNext, microcode.Decode:
			return n, s.Kind
		}
	}
	return n, microcode.Bus
}

// half-cycles spent reaching the decode of an opcode in the page
func prefixDuration(set *microcode.Set, p instructions.Page) int {
	const fetch = 8
	switch p {
	case instructions.Base:
		return fetch
	case instructions.IndexXBit:
		n, _ := duration(set.Pages[instructions.IndexX].Sequence(0xcb), true)
		return fetch*2 + n
	case instructions.IndexYBit:
		n, _ := duration(set.Pages[instructions.IndexY].Sequence(0xcb), true)
		return fetch*2 + n
	}
	return fetch * 2
}

func TestValidate(t *testing.T) {
	for v := microcode.Variant(0); v < microcode.NumVariants; v++ {
		test.ExpectSuccess(t, microcode.Get(v).Validate(), v)
	}
}

func TestShared(t *testing.T) {
	a := microcode.Get(microcode.NMOS)
	b := microcode.Get(microcode.NMOS)
	test.ExpectEquality(t, a, b)
	test.ExpectInequality(t, a, microcode.Get(microcode.CMOS))
}

func TestTiming(t *testing.T) {
	set := microcode.Get(microcode.NMOS)

	for p := instructions.Page(0); p < instructions.NumPages; p++ {
		page := set.Pages[p]
		pre := prefixDuration(set, p)

		for op := 0; op <= 0xff; op++ {
			tag := fmt.Sprintf("%s %02x", p, op)
			tm := instructions.Lookup(p, uint8(op))
			seq := page.Sequence(uint8(op))

			taken, term := duration(seq, true)
			if tm.Prefix {
				test.ExpectEquality(t, term, microcode.Decode, tag)
				continue
			}
			test.ExpectEquality(t, term, microcode.MoveToNext, tag)

			declined, _ := duration(seq, false)
			test.ExpectEquality(t, pre+taken, tm.Taken*2, tag, "taken")
			test.ExpectEquality(t, pre+declined, tm.Declined*2, tag, "declined")
		}
	}
}

func TestPrograms(t *testing.T) {
	set := microcode.Get(microcode.NMOS)

	n, _ := duration(set.Fetch, true)
	test.ExpectEquality(t, n, 8)
	test.ExpectEquality(t, set.Fetch[0].Kind, microcode.Boundary)

	// the NMI response is eleven T-states
	n, _ = duration(set.NMI, true)
	test.ExpectEquality(t, n, 22)

	// thirteen T-states for mode 1 and nineteen for mode 2. mode 0 stops at
	// the decode of the supplied opcode, after the six T-state acknowledge
	n, term := duration(set.IRQ[0], true)
	test.ExpectEquality(t, n, 12)
	test.ExpectEquality(t, term, microcode.Decode)
	n, _ = duration(set.IRQ[1], true)
	test.ExpectEquality(t, n, 26)
	n, _ = duration(set.IRQ[2], true)
	test.ExpectEquality(t, n, 38)
}

func TestRefreshStep(t *testing.T) {
	set := microcode.Get(microcode.NMOS)
	for p := instructions.Page(0); p < instructions.NumPages; p++ {
		page := set.Pages[p]
		test.ExpectEquality(t, page.ID, p)
		test.ExpectEquality(t, page.Indexed, p.Indexed(), p)
		if p == instructions.IndexXBit || p == instructions.IndexYBit {
			test.ExpectEquality(t, page.RefreshStep, uint8(0), p)
		} else {
			test.ExpectEquality(t, page.RefreshStep, uint8(1), p)
		}
	}
}

// collect the bus transfers of a sequence for one outcome of any Test steps
func transfers(seq []microcode.Step, condition bool) []microcode.Step {
	var t []microcode.Step
	for i := 0; i < len(seq); i++ {
		s := seq[i]
		switch s.Kind {
		case microcode.Bus:
			if s.Operation.Transfers() {
				t = append(t, s)
			}
		case microcode.Test:
			if !condition {
				i += s.Skip
			}
		case microcode.MoveToNext:
			return t
		}
	}
	return t
}

func TestConditionalCall(t *testing.T) {
	set := microcode.Get(microcode.NMOS)
	seq := set.Pages[instructions.Base].Sequence(0xc4)

	// taken: both bytes of the target and the two bytes of the return address
	taken := transfers(seq, true)
	test.DemandEquality(t, len(taken), 4)
	test.ExpectEquality(t, taken[0].Operation, cpubus.Read)
	test.ExpectEquality(t, taken[0].Data, registers.WZ.Low())
	test.ExpectEquality(t, taken[1].Operation, cpubus.Read)
	test.ExpectEquality(t, taken[1].Data, registers.WZ.High())
	test.ExpectEquality(t, taken[2].Operation, cpubus.Write)
	test.ExpectEquality(t, taken[2].Data, registers.PC.High())
	test.ExpectEquality(t, taken[3].Operation, cpubus.Write)
	test.ExpectEquality(t, taken[3].Data, registers.PC.Low())

	// declined: only the low byte of the target
	declined := transfers(seq, false)
	test.DemandEquality(t, len(declined), 1)
	test.ExpectEquality(t, declined[0].Operation, cpubus.Read)
	test.ExpectEquality(t, declined[0].Addr, registers.PC)
	test.ExpectEquality(t, declined[0].Data, registers.WZ.Low())
}

func TestIndexRegisters(t *testing.T) {
	set := microcode.Get(microcode.NMOS)

	uses := func(seq []microcode.Step, w registers.Wide) bool {
		for _, s := range seq {
			if s.Dst16 == w || (s.Kind != microcode.Bus && s.Src16 == w) {
				return true
			}
			if s.Kind == microcode.Move8 && (s.Dst8.Wide() == w || s.Src8.Wide() == w) {
				return true
			}
			if s.Kind == microcode.Bus && (s.Addr == w || (s.Data != microcode.NoData && s.Data.Wide() == w)) {
				return true
			}
		}
		return false
	}

	// LD HL,nn becomes LD IX,nn and LD IY,nn
	test.ExpectSuccess(t, uses(set.Pages[instructions.Base].Sequence(0x21), registers.HL))
	test.ExpectSuccess(t, uses(set.Pages[instructions.IndexX].Sequence(0x21), registers.IX))
	test.ExpectSuccess(t, uses(set.Pages[instructions.IndexY].Sequence(0x21), registers.IY))
	test.ExpectFailure(t, uses(set.Pages[instructions.IndexX].Sequence(0x21), registers.HL))

	// LD H,(IX+d) loads H and not IXH
	seq := set.Pages[instructions.IndexX].Sequence(0x66)
	tr := transfers(seq, true)
	test.DemandEquality(t, len(tr), 2)
	test.ExpectEquality(t, tr[1].Addr, registers.Address)
	test.ExpectEquality(t, tr[1].Data, registers.H)

	// EX DE,HL is not affected by the prefix
	test.ExpectEquality(t, set.Pages[instructions.IndexX].Sequence(0xeb)[0].Kind, microcode.ExchangeDEHL)
}

func TestUndocumentedCopy(t *testing.T) {
	set := microcode.Get(microcode.NMOS)

	find := func(seq []microcode.Step, k microcode.Kind) (microcode.Step, bool) {
		for _, s := range seq {
			if s.Kind == k {
				return s, true
			}
		}
		return microcode.Step{}, false
	}

	// RLC (IX+d),B
	s, ok := find(set.Pages[instructions.IndexXBit].Sequence(0x00), microcode.Shift)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.Copy, registers.B)

	// RLC (IX+d)
	s, ok = find(set.Pages[instructions.IndexXBit].Sequence(0x06), microcode.Shift)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.Copy, microcode.NoData)

	// SET 0,A on the CB page has no copy
	s, ok = find(set.Pages[instructions.Bit].Sequence(0xc7), microcode.SetBit)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.Copy, microcode.NoData)
	test.ExpectEquality(t, s.Dst8, registers.A)
}

func TestVariant(t *testing.T) {
	for _, v := range []microcode.Variant{microcode.NMOS, microcode.CMOS} {
		seq := microcode.Get(v).Pages[instructions.Extended].Sequence(0x71)
		test.DemandEquality(t, seq[0].Kind, microcode.Const8, v)
		if v == microcode.NMOS {
			test.ExpectEquality(t, seq[0].N, 0x00)
		} else {
			test.ExpectEquality(t, seq[0].N, 0xff)
		}

		w, err := microcode.VariantFromString(v.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, w, v)
	}

	_, err := microcode.VariantFromString("HMOS")
	test.ExpectFailure(t, err)
}
