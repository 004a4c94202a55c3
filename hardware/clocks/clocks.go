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

// Package clocks defines the constant values for the clock speed of the Z80
// in some well known machines. Values are in MHz.
package clocks

import "strings"

const (
	Spectrum    = 3.5
	Spectrum128 = 3.5469
	MSX         = 3.579545
	CPC         = 4.0
	TRS80       = 1.77408
	CPM         = 4.0
)

var names = map[string]float64{
	"SPECTRUM":    Spectrum,
	"SPECTRUM128": Spectrum128,
	"MSX":         MSX,
	"CPC":         CPC,
	"TRS80":       TRS80,
	"CPM":         CPM,
}

// FromString returns the clock speed of the named machine. The name is not
// case sensitive.
func FromString(name string) (float64, bool) {
	mhz, ok := names[strings.ToUpper(name)]
	return mhz, ok
}
