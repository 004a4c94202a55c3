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
	"sync"
)

// Symbols contains the all currently defined symbols.
type Symbols struct {
	label *table
	crit  sync.Mutex
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
// In many instances however, ReadSymbolsFile() might be more appropriate.
func NewSymbols() *Symbols {
	sym := &Symbols{
		label: newTable(),
	}
	sym.canonise()
	return sym
}

func (sym *Symbols) String() string {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.String()
}

// LabelWidth returns the maximum number of characters required by a label.
func (sym *Symbols) LabelWidth() int {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.maxWidth
}

// GetLabel returns the label for the address.
func (sym *Symbols) GetLabel(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.get(addr)
}

// AddLabel adds a label for the address. Returns false if the address
// already has a label or if the label is empty. The label will be altered if
// it is already in use at another address.
func (sym *Symbols) AddLabel(addr uint16, symbol string) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.add(addr, symbol)
}

// RemoveLabel removes the label for the address.
func (sym *Symbols) RemoveLabel(addr uint16) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.remove(addr)
}

// UpdateLabel changes the label at the address. The old label must match the
// existing label.
func (sym *Symbols) UpdateLabel(addr uint16, oldSymbol string, newSymbol string) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.update(addr, oldSymbol, newSymbol)
}

// SearchLabel returns the address of the label. The search is not case
// sensitive. The returned label has the case as stored.
func (sym *Symbols) SearchLabel(symbol string) (string, uint16, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.search(symbol)
}
