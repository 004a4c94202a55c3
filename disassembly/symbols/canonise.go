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

package symbols

// the well known addresses of the CP/M memory map.
var canonical = map[uint16]string{
	0x0000: "WBOOT",
	0x0003: "IOBYTE",
	0x0004: "CDISK",
	0x0005: "BDOS",
	0x005c: "FCB",
	0x0080: "DMA",
	0x0100: "TPA",
}

// put canonical symbols into the label table. the canonical names supercede
// any existing label.
//
// should be called in critical section.
func (sym *Symbols) canonise() {
	for k, v := range canonical {
		sym.label.remove(k)
		sym.label.add(k, v)
	}
}
