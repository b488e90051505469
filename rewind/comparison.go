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

// ComparisonState is returned by GetComparisonState().
type ComparisonState struct {
	State  *State
	Locked bool
}

// GetComparisonState gets a copy of the current comparison point.
func (r *Rewind) GetComparisonState() ComparisonState {
	return ComparisonState{
		State:  r.comparison.snapshot(),
		Locked: r.comparisonLocked,
	}
}

// UpdateComparison points comparison to the current state of the machine.
// Does nothing if the comparison is locked.
func (r *Rewind) UpdateComparison() error {
	if r.comparisonLocked {
		return nil
	}
	s, err := r.m.Snapshot()
	if err != nil {
		return err
	}
	r.comparison = &State{
		level:   levelExecution,
		Cycle:   r.m.CPU.CycleCount(),
		Machine: s,
	}
	return nil
}

// SetComparison points comparison to the latest entry in the history that is
// not after the cycle count.
func (r *Rewind) SetComparison(cycle uint64) {
	c := r.at(0)
	for i := 1; i < r.len(); i++ {
		if r.at(i).Cycle > cycle {
			break
		}
		c = r.at(i)
	}
	r.comparison = c.snapshot()
}

// LockComparison stops the comparison point from being updated.
func (r *Rewind) LockComparison(locked bool) {
	r.comparisonLocked = locked
}
