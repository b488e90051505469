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

package cpu

import (
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
)

// StateVersion is the current version of the State type.
const StateVersion = 1

// Sentinal error patterns for Snapshot() and Restore().
const (
	MidInstruction       = "cpu: cannot %s in the middle of an instruction"
	StateVersionMismatch = "cpu: state version mismatch (%d, want %d)"
)

// State is a copy of the CPU and the interrupt controller at an instruction
// boundary.
type State struct {
	Version int

	Registers  registers.File
	Interrupts interrupts.State

	Halted  bool
	Stopped bool
	Locked  bool
	HaltBug bool

	Cycles uint64
}

// Snapshot returns the state of the CPU. It is an error to take a snapshot in
// the middle of an instruction.
func (mc *CPU) Snapshot() (State, error) {
	if mc.midInstruction() {
		return State{}, curated.Errorf(MidInstruction, "snapshot")
	}
	return State{
		Version:    StateVersion,
		Registers:  mc.Regs,
		Interrupts: mc.ints.Snapshot(),
		Halted:     mc.halted,
		Stopped:    mc.stopped,
		Locked:     mc.locked,
		HaltBug:    mc.haltBug,
		Cycles:     mc.cycles,
	}, nil
}

// Restore replaces the state of the CPU and the interrupt controller. Nothing
// is changed if an error is returned.
func (mc *CPU) Restore(s State) error {
	if mc.midInstruction() {
		return curated.Errorf(MidInstruction, "restore")
	}
	if s.Version != StateVersion {
		return curated.Errorf(StateVersionMismatch, s.Version, StateVersion)
	}
	if err := mc.ints.Restore(s.Interrupts); err != nil {
		return curated.Errorf("cpu: %v", err)
	}

	mc.Regs = s.Registers
	mc.halted = s.Halted
	mc.stopped = s.Stopped
	mc.locked = s.Locked
	mc.haltBug = s.HaltBug
	mc.cycles = s.Cycles

	mc.steps = nil
	mc.stepIdx = 0
	mc.dispatching = false
	mc.boundary = false

	return nil
}
