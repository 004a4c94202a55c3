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

package prefs

// preference keys that are no longer used. the value is the reason, which is
// logged when the key is dropped from the preferences file.
var defunct = map[string]string{
	"hardware.cmos":      "replaced by hardware.variant",
	"hardware.extrawait": "replaced by hardware.waitstates",
}

// returns the reason if the key is defunct.
func isDefunct(key string) (string, bool) {
	reason, ok := defunct[key]
	return reason, ok
}
