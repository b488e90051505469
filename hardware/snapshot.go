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

package hardware

import (
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/oambug"
)

// MalformedState is returned by Plumb() when the state is incomplete or does
// not fit the machine.
const MalformedState = "machine: malformed state: %s"

// State stores the machine's sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// Devices attached to the bus by the host are not part of the snapshot.
type State struct {
	CPU cpu.State

	OAM  *oambug.Table
	WRAM *bus.RAM
	HRAM *bus.RAM
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	return &State{
		CPU:  s.CPU,
		OAM:  s.OAM.Snapshot(),
		WRAM: s.WRAM.Snapshot(),
		HRAM: s.HRAM.Snapshot(),
	}
}

// Snapshot the state of the machine. Fails if the CPU is in the middle of an
// instruction.
func (m *Machine) Snapshot() (*State, error) {
	c, err := m.CPU.Snapshot()
	if err != nil {
		return nil, err
	}
	return &State{
		CPU:  c,
		OAM:  m.OAM.Snapshot(),
		WRAM: m.WRAM.Snapshot(),
		HRAM: m.HRAM.Snapshot(),
	}, nil
}

// Plumb a previously snapshotted state into the machine. The state is copied
// and can be plumbed again later. The machine is unchanged if an error is
// returned.
func (m *Machine) Plumb(state *State) error {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	switch {
	case state.OAM == nil:
		return curated.Errorf(MalformedState, "no OAM")
	case !m.WRAM.Matches(state.WRAM):
		return curated.Errorf(MalformedState, "WRAM does not match")
	case !m.HRAM.Matches(state.HRAM):
		return curated.Errorf(MalformedState, "HRAM does not match")
	}

	// the CPU checks its own state before changing anything
	if err := m.CPU.Restore(state.CPU); err != nil {
		return err
	}

	m.OAM.Plumb(state.OAM)
	m.WRAM.Plumb(state.WRAM)
	m.HRAM.Plumb(state.HRAM)

	return nil
}
