// This file is part of Gopher16.
//
// Gopher16 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher16 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher16.  If not, see <https://www.gnu.org/licenses/>.

package preferences

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher16/prefs"
)

// List of valid values for the Region preference.
const (
	RegionAuto = "AUTO"
	RegionNTSC = "NTSC"
	RegionPAL  = "PAL"
)

// the smallest and largest number of audio samples per batch
const (
	minAudioBatch = 32
	maxAudioBatch = 8192
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// initialise WRAM and CPU registers to an unknown state at power-on
	RandomState prefs.Bool

	// television specification. AUTO selects the specification from the
	// cartridge header
	Region prefs.String

	// number of stereo samples in each audio batch handed to the audio
	// mixers
	AudioBatch prefs.Int

	// frames and audio batches are handed to renderers and mixers from a
	// separate goroutine
	AsyncOutput prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the preferences are not backed by a
// file.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.Region.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case RegionAuto, RegionNTSC, RegionPAL:
			return nil
		}
		return fmt.Errorf("preferences: unknown region %q", v)
	})

	p.AudioBatch.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n < minAudioBatch || n > maxAudioBatch {
			return fmt.Errorf("preferences: audio batch size %d out of range", n)
		}
		return nil
	})

	p.SetDefaults()

	if path == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.randstate", &p.RandomState); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.region", &p.Region); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.audioBatch", &p.AudioBatch); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("television.async", &p.AsyncOutput); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		if !errors.Is(err, prefs.ErrNoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.RandomState.Set(false)
	_ = p.Region.Set(RegionAuto)
	_ = p.AudioBatch.Set(512)
	_ = p.AsyncOutput.Set(false)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	if err := p.dsk.Load(); err != nil && !errors.Is(err, prefs.ErrNoPrefsFile) {
		return err
	}
	return nil
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
