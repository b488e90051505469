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

// Package rewind keeps a history of machine states. The history can be used
// to move the emulation to an earlier point in time.
//
// States are recorded by calling Check() at the end of every instruction. A
// new state is recorded whenever the configured number of cycles has passed
// since the previous state. A state can also be recorded at any instruction
// boundary with ExecutionState(). Only the most recent execution state is
// kept.
//
// Moving to a cycle that falls between two recorded states plumbs in the
// earlier state and then runs the emulation forward. The emulation is run with
// the Runner given to NewRewind(). A host that needs devices outside the core
// to be stepped along with the machine must supply a Runner that does so.
//
// The number of states kept and the distance between states are set with the
// "rewind.maxentries" and "rewind.freq" preferences.
package rewind
