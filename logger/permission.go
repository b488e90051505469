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

package logger

// Permission implementations indicate whether the caller is allowed to make
// new log entries. The main emulation instance allows logging and any other
// instance does not.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow is the Permission to use when an entry should always be made.
var Allow Permission = allow{}

// Gate wraps a Permission so that logging can be muted for a while. The
// machine mutes its gate while rewind replays cycles that have already been
// emulated, so that lock-ups and OAM corruption are not logged twice.
type Gate struct {
	perm  Permission
	muted bool
}

// NewGate returns an open Gate for the Permission. A nil Permission is
// treated as Allow.
func NewGate(perm Permission) *Gate {
	if perm == nil {
		perm = Allow
	}
	return &Gate{perm: perm}
}

// AllowLogging implements the Permission interface.
func (g *Gate) AllowLogging() bool {
	return !g.muted && g.perm.AllowLogging()
}

// Mute stops entries being made through the Gate until Mute(false) is
// called.
func (g *Gate) Mute(muted bool) {
	g.muted = muted
}

// Muted returns true if the Gate is muted.
func (g *Gate) Muted() bool {
	return g.muted
}
