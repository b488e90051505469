// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package rewind

import (
	"github.com/jetsetilly/gopherdmg/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	r     *Rewind
	group *prefs.Group

	// the maximum number of entries to store before the earliest entries are
	// forgotten
	MaxEntries prefs.Int

	// the number of cycles between entries
	Freq prefs.Int
}

func (p *Preferences) String() string {
	return p.group.String()
}

// default values
const (
	maxEntries = 100

	// the number of cycles in a single frame of the display
	snapshotFreq = 17556
)

// newPreferences is the preferred method of initialisation for the Preferences type.
func newPreferences(r *Rewind) (*Preferences, error) {
	p := &Preferences{
		r:     r,
		group: prefs.NewGroup(),
	}

	p.SetDefaults()

	if err := p.group.Add("rewind.maxentries", &p.MaxEntries); err != nil {
		return nil, err
	}
	if err := p.group.Add("rewind.freq", &p.Freq); err != nil {
		return nil, err
	}
	if err := p.group.ApplyCommandLine(); err != nil {
		return nil, err
	}

	// changing the number of entries discards the history
	p.MaxEntries.SetHookPost(func(_ prefs.Value) error {
		return r.Reset()
	})

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.MaxEntries.Set(maxEntries)
	_ = p.Freq.Set(snapshotFreq)
}

// Set the preference identified by key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.group.Set(key, v)
}
