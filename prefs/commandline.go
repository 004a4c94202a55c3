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

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the separator between a key and a value in a command line preferences
// string. pairs are separated by semicolons.
const commandLineSeparator = "::"

// a group of preference values given on the command line. values are kept as
// strings and are converted by the Set() function of the preference type.
type commandLineGroup map[string]string

// parse the preferences string. pairs without a separator are ignored.
func parseCommandLineGroup(prefs string) commandLineGroup {
	grp := make(commandLineGroup)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, commandLineSeparator)
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		grp[k] = strings.TrimSpace(v)
	}
	return grp
}

// the values in the group as a preferences string. the pairs are sorted by
// key.
func (grp commandLineGroup) String() string {
	keys := make([]string, 0, len(grp))
	for k := range grp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprintf("%s%s%s", k, commandLineSeparator, grp[k])
	}
	return strings.Join(s, "; ")
}

var commandLine struct {
	crit  sync.Mutex
	stack []commandLineGroup
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a preferences string and adds it as a new
// group. The string is made up of key/value pairs separated by semicolons.
// For example:
//
//	hardware.variant::CMOS; hardware.waitstates::1
//
// Only the group at the top of the stack is used by GetCommandLinePref().
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, parseCommandLineGroup(prefs))
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the values of the group that were never requested by
// GetCommandLinePref(), in the same form as the string given to
// PushCommandLineStack().
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	top := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	return top.String()
}

// GetCommandLinePref returns the value for the key from the group at the top
// of the stack. A value can only be returned once.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false, nil
	}

	top := commandLine.stack[len(commandLine.stack)-1]
	v, ok := top[key]
	if !ok {
		return false, nil
	}
	delete(top, key)

	return true, v
}
