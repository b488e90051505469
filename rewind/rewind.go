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
	"fmt"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Runner provides the rewind package the opportunity to run the emulation.
type Runner interface {
	// CatchUp implementations will run the emulation until the CPU cycle
	// count is at least the specified value. The emulation must be left at an
	// instruction boundary.
	CatchUp(cycle uint64) error
}

// level indicates the reason an entry was recorded.
type level int

// List of valid level values.
const (
	levelReset level = iota
	levelPeriodic
	levelExecution
)

// State is an entry in the rewind history.
type State struct {
	level level

	// the CPU cycle count at the time the entry was recorded
	Cycle uint64

	Machine *hardware.State
}

func (s State) String() string {
	if s.level == levelExecution {
		return "c"
	}
	return fmt.Sprintf("%d", s.Cycle)
}

// snapshot creates a deep copy of the State.
func (s *State) snapshot() *State {
	if s == nil {
		return nil
	}
	return &State{
		level:   s.level,
		Cycle:   s.Cycle,
		Machine: s.Machine.Snapshot(),
	}
}

// the entries array has one more element than can be in use at any one time.
// the unused element separates the end of the history from the start
const overhead = 1

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	m      *hardware.Machine
	runner Runner

	Prefs *Preferences

	// circular array of snapshotted entries
	entries []*State
	start   int
	end     int

	// the position of the current rewind entry
	curr int

	// the cycle count at which the next periodic entry is due
	next uint64

	comparison       *State
	comparisonLocked bool
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The runner argument can be nil in which case the machine is run by
// itself with Machine.ExecuteInstruction().
//
// The history is reset and the current state of the machine becomes the
// first entry.
func NewRewind(m *hardware.Machine, runner Runner) (*Rewind, error) {
	r := &Rewind{
		m:      m,
		runner: runner,
	}
	if r.runner == nil {
		r.runner = machineRunner{m: m}
	}

	var err error
	r.Prefs, err = newPreferences(r)
	if err != nil {
		return nil, curated.Errorf("rewind: %v", err)
	}

	if err := r.Reset(); err != nil {
		return nil, err
	}

	return r, nil
}

// machineRunner is the Runner used when one is not supplied.
type machineRunner struct {
	m *hardware.Machine
}

func (mr machineRunner) CatchUp(cycle uint64) error {
	for mr.m.CPU.CycleCount() < cycle {
		mr.m.ExecuteInstruction(nil)
	}
	return nil
}

// allocate the array of entries according to the current preference.
func (r *Rewind) allocate() {
	n := r.Prefs.MaxEntries.Get().(int)
	if n < 1 {
		n = 1
	}
	r.entries = make([]*State, n+overhead)
	r.start = 0
	r.end = 0
	r.curr = len(r.entries) - 1
}

// Reset removes all entries and takes a snapshot of the current state. It
// should be called whenever the machine is reset. It is an error to reset
// the rewind system while the CPU is in the middle of an instruction.
func (r *Rewind) Reset() error {
	s, err := r.m.Snapshot()
	if err != nil {
		return curated.Errorf("rewind: %v", err)
	}

	r.allocate()
	r.append(&State{
		level:   levelReset,
		Cycle:   r.m.CPU.CycleCount(),
		Machine: s,
	})
	r.schedule()

	// first comparison is to the snapshot of the reset machine
	r.comparison = r.entries[r.curr]

	return nil
}

// schedule the next periodic entry
func (r *Rewind) schedule() {
	freq := r.Prefs.Freq.Get().(int)
	if freq < 1 {
		freq = 1
	}
	r.next = r.entries[r.curr].Cycle + uint64(freq)
}

// Check should be called at the end of every CPU instruction. A new entry is
// added to the history if enough cycles have passed since the previous entry.
func (r *Rewind) Check() error {
	if r.m.CPU.CycleCount() < r.next {
		return nil
	}

	s, err := r.m.Snapshot()
	if err != nil {
		// the dispatch sequence has been queued at the boundary. try again at
		// the end of the next instruction
		if curated.Is(err, cpu.MidInstruction) {
			return nil
		}
		return curated.Errorf("rewind: %v", err)
	}

	r.trim()
	r.append(&State{
		level:   levelPeriodic,
		Cycle:   r.m.CPU.CycleCount(),
		Machine: s,
	})
	r.schedule()

	return nil
}

// ExecutionState adds the current state of the machine to the end of the
// history. A previous execution state at the end of the history is replaced.
func (r *Rewind) ExecutionState() error {
	s, err := r.m.Snapshot()
	if err != nil {
		return curated.Errorf("rewind: %v", err)
	}

	r.trim()
	r.append(&State{
		level:   levelExecution,
		Cycle:   r.m.CPU.CycleCount(),
		Machine: s,
	})

	return nil
}

// wrap an index into the entries array
func (r *Rewind) wrap(idx int) int {
	for idx < 0 {
		idx += len(r.entries)
	}
	return idx % len(r.entries)
}

// append entry after the current position. any entries after the current
// position are lost
func (r *Rewind) append(s *State) {
	r.curr = r.wrap(r.curr + 1)
	r.entries[r.curr] = s
	r.end = r.wrap(r.curr + 1)

	// push start index along
	if r.end == r.start {
		r.start = r.wrap(r.start + 1)
	}
}

// chop off the most recent entry if it is an execution entry.
func (r *Rewind) trim() {
	if r.curr == r.start {
		return
	}
	if r.entries[r.curr].level == levelExecution {
		r.end = r.curr
		r.curr = r.wrap(r.curr - 1)
	}
}

// the number of entries in the history
func (r *Rewind) len() int {
	return r.wrap(r.end - r.start)
}

// the entry at the logical position in the history. position zero is the
// earliest entry
func (r *Rewind) at(pos int) *State {
	return r.entries[r.wrap(r.start+pos)]
}

// Timeline is a summary of the current state of the rewind system.
type Timeline struct {
	// the cycle counts of the earliest and latest entries in the history
	Start uint64
	End   uint64

	// the current cycle count of the machine
	Current uint64

	// the number of entries in the history
	Entries int
}

// GetTimeline returns a summary of the history.
func (r *Rewind) GetTimeline() Timeline {
	n := r.len()
	return Timeline{
		Start:   r.at(0).Cycle,
		End:     r.at(n - 1).Cycle,
		Current: r.m.CPU.CycleCount(),
		Entries: n,
	}
}

// plumb the entry at the logical position into the machine and run the
// emulation to the target cycle
func (r *Rewind) plumb(pos int, cycle uint64) error {
	r.curr = r.wrap(r.start + pos)
	s := r.entries[r.curr]

	// the machine copies the state so the entry is not changed by the
	// emulation
	if err := r.m.Plumb(s.Machine); err != nil {
		return curated.Errorf("rewind: %v", err)
	}
	r.schedule()

	// the cycles between the entry and the target have already been
	// emulated and logged once
	if cycle > s.Cycle {
		muted := r.m.Log.Muted()
		r.m.Log.Mute(true)
		err := r.runner.CatchUp(cycle)
		r.m.Log.Mute(muted)
		if err != nil {
			return curated.Errorf("rewind: %v", err)
		}
	}

	logger.Logf(r.m.Log, "rewind", "plumbed entry %s (now at cycle %d)", s, r.m.CPU.CycleCount())

	return nil
}

// GotoLast sets the position to the last entry in the history.
func (r *Rewind) GotoLast() error {
	n := r.len()
	return r.plumb(n-1, r.at(n-1).Cycle)
}

// GotoCycle moves the emulation to the cycle count. The cycle count reached
// is returned. This will be the requested cycle count unless it is outside
// the range of the history, in which case the nearest entry is plumbed in,
// or it is not on an instruction boundary.
func (r *Rewind) GotoCycle(cycle uint64) (uint64, error) {
	n := r.len()

	if cycle <= r.at(0).Cycle {
		err := r.plumb(0, r.at(0).Cycle)
		return r.m.CPU.CycleCount(), err
	}
	if cycle >= r.at(n-1).Cycle {
		err := r.plumb(n-1, r.at(n-1).Cycle)
		return r.m.CPU.CycleCount(), err
	}

	// binary search for the latest entry that is not after the cycle
	s := 0
	e := n - 1
	for s < e {
		m := (s + e + 1) / 2
		if r.at(m).Cycle <= cycle {
			s = m
		} else {
			e = m - 1
		}
	}

	err := r.plumb(s, cycle)
	return r.m.CPU.CycleCount(), err
}
