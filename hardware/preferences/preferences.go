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

package preferences

import (
	"github.com/jetsetilly/gopherz80/curated"
	"github.com/jetsetilly/gopherz80/hardware/cpu/microcode"
	"github.com/jetsetilly/gopherz80/paths"
	"github.com/jetsetilly/gopherz80/prefs"
	"github.com/jetsetilly/gopherz80/random"
)

// Preferences defines and collates all the preference values used by the
// hardware packages.
type Preferences struct {
	dsk *prefs.Disk

	// the variant of the CPU. either "NMOS" or "CMOS"
	Variant prefs.String

	// initialise the general purpose registers to an unknown state on power-on
	RandomState prefs.Bool

	// the number of wait states inserted by the reference memory on every
	// memory access
	WaitStates prefs.Int

	// random values generated in the hardware package should use the following
	// number source
	Random *random.Random
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// initialise random number generator
	p.Random = random.NewRandom(0)

	p.Variant.SetHookPre(func(v prefs.Value) error {
		// an empty string is the reset value and means the default variant
		if v.(string) == "" {
			return nil
		}
		_, err := microcode.VariantFromString(v.(string))
		return err
	})
	p.WaitStates.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("preferences: wait states cannot be negative")
		}
		return nil
	})

	// setup preferences and load from disk
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.variant", &p.Variant)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.waitstates", &p.WaitStates)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Variant.Set(microcode.NMOS.String())
	_ = p.RandomState.Set(false)
	_ = p.WaitStates.Set(0)
}

// CPUVariant returns the Variant preference as a microcode.Variant.
func (p *Preferences) CPUVariant() microcode.Variant {
	v, err := microcode.VariantFromString(p.Variant.Get().(string))
	if err != nil {
		return microcode.NMOS
	}
	return v
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	p.Random.Reseed(seed)
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.dsk.Reset()
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
