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
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// Sentinal errors returned by the Disk type.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	InvalidEntry = "prefs: invalid entry (%s)"
)

// the separator between key and value in the preferences file.
const separator = " :: "

// Disk represents preference values as stored on disk. Values are associated
// with a key, which is written alongside the value.
//
// Values are added to a Disk instance with the Add() function. Entries in the
// preferences file that have not been added to the Disk instance are
// preserved when the file is saved.
type Disk struct {
	path    string
	entries map[string]pref

	// keys whose value was taken from the command line stack. the value in
	// the preferences file is ignored for these keys
	commandLine map[string]bool
}

func (dsk Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:        path,
		entries:     make(map[string]pref),
		commandLine: make(map[string]bool),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, separator) {
		return curated.Errorf(InvalidEntry, key)
	}

	// any value on the command line stack overrides the current value
	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		dsk.commandLine[key] = true
	}

	dsk.entries[key] = p
	return nil
}

// Reset all preferences to the default value of the type. For example, a Bool
// will be reset to false.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// read the preferences file into a map of key to value strings. entries with
// a defunct key are dropped.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line == WarningBoilerPlate {
			continue
		}

		k, v, ok := strings.Cut(line, separator)
		if !ok {
			return nil, curated.Errorf(InvalidEntry, line)
		}

		if reason, ok := isDefunct(k); ok {
			logger.Logf(logger.Allow, "prefs", "dropping %s: %s", k, reason)
			continue
		}
		entries[k] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return entries, nil
}

// Save current preference values to disk. Entries in the existing file that
// are not known to this Disk instance are written back unchanged.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, entries[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFirstUse is true and the
// preferences file does not exist, the current values are saved and the
// NoPrefsFile error is still returned.
//
// Values set on the command line stack are not overwritten by values in the
// preferences file.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	entries, err := dsk.read()
	if err != nil {
		if saveOnFirstUse && curated.Is(err, NoPrefsFile) {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
		return err
	}

	for k, v := range entries {
		p, ok := dsk.entries[k]
		if !ok || dsk.commandLine[k] {
			continue
		}
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	return nil
}
