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

package preferences

import (
	"os"

	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware emulation.
type Preferences struct {
	group *prefs.Group

	// initialise registers to an unknown state on reset rather than the
	// values left by the boot ROM
	RandomState prefs.Bool

	// emulate the HALT bug. when HALT is executed with interrupts disabled
	// and an interrupt already pending, the byte after the HALT is read twice
	HaltBug prefs.Bool

	// emulate the OAM corruption caused by the 16-bit inc/dec unit while the
	// display is searching OAM
	OAMBug prefs.Bool

	// echo new entries of the central log to stderr
	LogEcho prefs.Bool
}

func (p *Preferences) String() string {
	return p.group.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values on the current command line stack are applied after the
// defaults are set.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		group: prefs.NewGroup(),
	}

	p.LogEcho.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(os.Stderr)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})

	p.SetDefaults()

	if err := p.group.Add("cpu.randomstate", &p.RandomState); err != nil {
		return nil, err
	}
	if err := p.group.Add("cpu.haltbug", &p.HaltBug); err != nil {
		return nil, err
	}
	if err := p.group.Add("cpu.oambug", &p.OAMBug); err != nil {
		return nil, err
	}

	if err := p.group.Add("logger.echo", &p.LogEcho); err != nil {
		return nil, err
	}

	if err := p.group.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.RandomState.Set(false)
	_ = p.HaltBug.Set(true)
	_ = p.OAMBug.Set(true)
	_ = p.LogEcho.Set(false)
}

// Set the preference identified by key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.group.Set(key, v)
}
