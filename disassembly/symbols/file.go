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

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/logger"
)

// Sentinel error patterns returned by ReadSymbolsFile().
const (
	SymbolsFileError = "symbols: %v"
	InvalidSymbol    = "symbols: invalid entry at line %d (%s)"
)

// ParseAddress converts a string to an address. The string can be prefixed
// with $ or 0x for hexadecimal.
func ParseAddress(s string) (uint16, error) {
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 16)
	return uint16(v), err
}

// ReadSymbolsFile reads the symbols file and adds the symbols to a new
// instance of Symbols. The canonical symbols are included.
func ReadSymbolsFile(filename string) (*Symbols, error) {
	sym := NewSymbols()

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(SymbolsFileError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	ln := 0
	for scanner.Scan() {
		ln++

		l := scanner.Text()
		if i := strings.Index(l, ";"); i >= 0 {
			l = l[:i]
		}

		flds := strings.Fields(l)
		if len(flds) == 0 {
			continue
		}
		if len(flds) != 2 {
			return nil, curated.Errorf(InvalidSymbol, ln, strings.TrimSpace(l))
		}

		addr, err := ParseAddress(flds[1])
		if err != nil {
			return nil, curated.Errorf(InvalidSymbol, ln, strings.TrimSpace(l))
		}

		// symbols from the file take priority over the canonical symbols
		sym.RemoveLabel(addr)
		if !sym.AddLabel(addr, flds[0]) {
			logger.Logf(logger.Allow, "symbols", "label not added at %#04x (%s)", addr, flds[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(SymbolsFileError, err)
	}

	return sym, nil
}
