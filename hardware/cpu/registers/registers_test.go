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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopherz80/hardware/cpu/registers"
	"github.com/jetsetilly/gopherz80/test"
)

func TestHalves(t *testing.T) {
	var f registers.File

	f.Load16(registers.BC, 0x1234)
	test.ExpectEquality(t, f.Value8(registers.B), uint8(0x12))
	test.ExpectEquality(t, f.Value8(registers.C), uint8(0x34))

	f.Load8(registers.C, 0xff)
	test.ExpectEquality(t, f.Value16(registers.BC), uint16(0x12ff))

	f.Load8(registers.IXH, 0xab)
	f.Load8(registers.IXL, 0xcd)
	test.ExpectEquality(t, f.Value16(registers.IX), uint16(0xabcd))

	test.ExpectEquality(t, registers.IXH.Label(), "IXH")
	test.ExpectEquality(t, registers.H.Label(), "H")
	test.ExpectEquality(t, registers.R.Label(), "R")
	test.ExpectEquality(t, registers.HL.Low(), registers.L)
	test.ExpectEquality(t, registers.IY.High(), registers.IYH)
}

func TestFlagsReconstruction(t *testing.T) {
	var f registers.File

	for v := 0; v <= 0xff; v++ {
		f.Load8(registers.F, uint8(v))
		test.ExpectEquality(t, f.Value8(registers.F), uint8(v))
	}

	f.Load16(registers.AF, 0x55d5)
	test.ExpectEquality(t, f.Value16(registers.AF), uint16(0x55d5))
	test.ExpectEquality(t, f.Flags.IsSign(), true)
	test.ExpectEquality(t, f.Flags.IsZero(), true)
	test.ExpectEquality(t, f.Flags.IsHalf(), true)
	test.ExpectEquality(t, f.Flags.IsParity(), true)
	test.ExpectEquality(t, f.Flags.IsSubtract(), false)
	test.ExpectEquality(t, f.Flags.IsCarry(), true)
	test.ExpectEquality(t, f.Flags.String(), "SZyHxPnC")
}

func TestPartialFlagUpdate(t *testing.T) {
	var f registers.File
	f.Load8(registers.F, 0x00)

	// a non-zero probe clears the zero flag but leaves everything else alone
	f.Flags.Zero = 0x10
	f.Flags.Carry = registers.FlagCarry
	test.ExpectEquality(t, f.Value8(registers.F), uint8(0x01))

	f.Flags.Zero = 0
	test.ExpectEquality(t, f.Value8(registers.F), uint8(0x41))
}

func TestRefresh(t *testing.T) {
	var f registers.File

	f.Load8(registers.R, 0xff)
	f.IncR(1)
	test.ExpectEquality(t, f.Value8(registers.R), uint8(0x80))

	f.Load8(registers.R, 0x7f)
	f.IncR(2)
	test.ExpectEquality(t, f.Value8(registers.R), uint8(0x01))
}

func TestExchange(t *testing.T) {
	var f registers.File

	f.Load16(registers.AF, 0x1234)
	f.Load16(registers.AFx, 0x5678)
	f.ExchangeAF()
	test.ExpectEquality(t, f.Value16(registers.AF), uint16(0x5678))
	test.ExpectEquality(t, f.Value16(registers.AFx), uint16(0x1234))

	f.Load16(registers.HL, 0x1111)
	f.Load16(registers.HLx, 0x2222)
	f.Exchange()
	test.ExpectEquality(t, f.Value16(registers.HL), uint16(0x2222))
	test.ExpectEquality(t, f.Value16(registers.HLx), uint16(0x1111))
}

func TestNames(t *testing.T) {
	var f registers.File

	test.ExpectSuccess(t, f.Set("hl", 0xbeef))
	v, ok := f.Get("HL")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0xbeef))

	v, ok = f.Get("L")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0xef))

	test.ExpectSuccess(t, f.Set("MEMPTR", 0x0102))
	test.ExpectEquality(t, f.Value16(registers.WZ), uint16(0x0102))

	test.ExpectSuccess(t, f.Set("IFF2", 1))
	test.ExpectEquality(t, f.IFF2, true)

	test.ExpectSuccess(t, f.Set("IM", 2))
	test.ExpectFailure(t, f.Set("IM", 3))
	test.ExpectEquality(t, f.IM, uint8(2))

	_, ok = f.Get("Q")
	test.ExpectFailure(t, ok)

	for _, n := range registers.Names() {
		_, ok := f.Get(n)
		test.ExpectSuccess(t, ok, n)
	}
}
