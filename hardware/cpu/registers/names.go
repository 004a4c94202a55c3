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

package registers

import (
	"sort"
	"strings"
)

type nameKind int

const (
	name8 nameKind = iota
	name16
	nameIFF1
	nameIFF2
	nameIM
)

type name struct {
	kind nameKind
	b    Byte
	w    Wide
}

var names = map[string]name{
	"A": {kind: name8, b: A}, "F": {kind: name8, b: F},
	"B": {kind: name8, b: B}, "C": {kind: name8, b: C},
	"D": {kind: name8, b: D}, "E": {kind: name8, b: E},
	"H": {kind: name8, b: H}, "L": {kind: name8, b: L},
	"I": {kind: name8, b: I}, "R": {kind: name8, b: R},
	"IXH": {kind: name8, b: IXH}, "IXL": {kind: name8, b: IXL},
	"IYH": {kind: name8, b: IYH}, "IYL": {kind: name8, b: IYL},

	"AF": {kind: name16, w: AF}, "BC": {kind: name16, w: BC},
	"DE": {kind: name16, w: DE}, "HL": {kind: name16, w: HL},
	"AF'": {kind: name16, w: AFx}, "BC'": {kind: name16, w: BCx},
	"DE'": {kind: name16, w: DEx}, "HL'": {kind: name16, w: HLx},
	"IX": {kind: name16, w: IX}, "IY": {kind: name16, w: IY},
	"SP": {kind: name16, w: SP}, "PC": {kind: name16, w: PC},
	"IR": {kind: name16, w: IR}, "WZ": {kind: name16, w: WZ},

	"IFF1": {kind: nameIFF1}, "IFF2": {kind: nameIFF2}, "IM": {kind: nameIM},
}

// aliases in common use
var aliases = map[string]string{
	"MEMPTR": "WZ",
	"AFX":    "AF'",
	"BCX":    "BC'",
	"DEX":    "DE'",
	"HLX":    "HL'",
}

func lookup(s string) (name, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if a, ok := aliases[s]; ok {
		s = a
	}
	n, ok := names[s]
	return n, ok
}

// Names returns the symbolic names accepted by Get() and Set(), sorted
// alphabetically.
func Names() []string {
	l := make([]string, 0, len(names))
	for k := range names {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}

// Get returns the value of the register with the symbolic name. The IFF1 and
// IFF2 flip-flops are returned as zero or one. Names are not case sensitive.
func (f *File) Get(s string) (uint16, bool) {
	n, ok := lookup(s)
	if !ok {
		return 0, false
	}
	switch n.kind {
	case name8:
		return uint16(f.Value8(n.b)), true
	case name16:
		return f.Value16(n.w), true
	case nameIFF1:
		return boolValue(f.IFF1), true
	case nameIFF2:
		return boolValue(f.IFF2), true
	case nameIM:
		return uint16(f.IM), true
	}
	return 0, false
}

// Set changes the value of the register with the symbolic name. Values that
// are too large for the register are truncated. The interrupt mode is
// limited to the values 0, 1 and 2.
func (f *File) Set(s string, v uint16) bool {
	n, ok := lookup(s)
	if !ok {
		return false
	}
	switch n.kind {
	case name8:
		f.Load8(n.b, uint8(v))
	case name16:
		f.Load16(n.w, v)
	case nameIFF1:
		f.IFF1 = v != 0
	case nameIFF2:
		f.IFF2 = v != 0
	case nameIM:
		if v > 2 {
			return false
		}
		f.IM = uint8(v)
	}
	return true
}

func boolValue(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
