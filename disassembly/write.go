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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	FlowInfo bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries() {
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// Operand returns the text of the instruction with the target replaced by
// its label.
func (dsm *Disassembly) Operand(e *Entry) string {
	if e.Type == EntryTypeData {
		s := make([]string, len(e.Bytes))
		for i, v := range e.Bytes {
			s[i] = fmt.Sprintf("$%02x", v)
		}
		return "DB " + strings.Join(s, ",")
	}

	if e.HasTarget {
		if l, ok := dsm.Sym.GetLabel(e.Target); ok {
			return strings.Replace(e.Mnemonic, fmt.Sprintf("$%04x", e.Target), l, 1)
		}
	}
	return e.Mnemonic
}

// WriteLine writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	s := strings.Builder{}

	if l, ok := dsm.Sym.GetLabel(e.Address); ok {
		s.WriteString(fmt.Sprintf("%s:\n", l))
	}

	s.WriteString(fmt.Sprintf("    %04x  ", e.Address))

	if attr.ByteCode {
		b := make([]string, len(e.Bytes))
		for i, v := range e.Bytes {
			b[i] = fmt.Sprintf("%02x", v)
		}
		if e.Type == EntryTypeData {
			b = nil
		}
		s.WriteString(fmt.Sprintf("%-12s ", strings.Join(b, " ")))
	}

	s.WriteString(dsm.Operand(e))

	if attr.FlowInfo {
		if len(e.Next) > 0 {
			s.WriteString(" ->")
			for _, n := range e.Next {
				s.WriteString(fmt.Sprintf(" %04x", n))
			}
		}
		if len(e.Prev) > 0 {
			s.WriteString(" <-")
			for _, p := range e.Prev {
				s.WriteString(fmt.Sprintf(" %04x", p))
			}
		}
	}

	s.WriteString("\n")

	_, err := io.WriteString(output, s.String())
	return err
}
