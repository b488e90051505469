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

package interrupts

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// Source of an interrupt request. Sources are listed in priority order.
type Source int

// List of valid Source values.
const (
	VBlank Source = iota
	LCDStat
	Timer
	Serial
	Joypad

	NumSources
)

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCD STAT"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "unknown interrupt"
}

// Bit returns the bit in the IE and IF registers for the interrupt source.
func (s Source) Bit() uint8 {
	return 1 << uint8(s)
}

// Vector returns the address the CPU jumps to when servicing the interrupt.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*8
}

// only the lower five bits of IF and IE are connected to interrupt sources
const sourceMask = uint8(0x1f)

// the unused bits of the IF register always read as one
const unusedFlags = uint8(0xe0)

// the value of the countdown when armed by EI. decremented at the end of the
// EI instruction and again at the end of the following instruction
const enableDelay = 2

// StateVersion is the current version of the State type.
const StateVersion = 1

// StateVersionMismatch is returned by Restore() if the State was not created
// by this version of the controller.
const StateVersionMismatch = "interrupts: state version mismatch (%d, want %d)"

// State is a copy of the controller's state. It is created by Snapshot() and
// restored by Restore().
type State struct {
	Version int

	Enable uint8
	Flags  uint8
	IME    bool
	Delay  int
}

// Controller is the interrupt controller.
type Controller struct {
	// the IE register. all bits can be written and read but only the lower
	// five bits have any effect
	enable uint8

	// the IF register. only the lower five bits are stored
	flags uint8

	ime bool

	// countdown to setting the IME. zero means the countdown is not armed
	delay int
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

func (ic *Controller) String() string {
	return fmt.Sprintf("IE=%02x IF=%02x IME=%v", ic.enable, ic.flags, ic.ime)
}

// Reset the controller to the state it is in at power on. The boot ROM leaves
// VBlank requested.
func (ic *Controller) Reset() {
	ic.enable = 0
	ic.flags = VBlank.Bit()
	ic.ime = false
	ic.delay = 0
}

// Request an interrupt from the specified source.
func (ic *Controller) Request(s Source) {
	ic.flags |= s.Bit()
}

// Pending returns the interrupt sources that are both requested and enabled.
// The IME has no effect on the result.
func (ic *Controller) Pending() uint8 {
	return ic.enable & ic.flags & sourceMask
}

// IME returns the state of the interrupt master enable.
func (ic *Controller) IME() bool {
	return ic.ime
}

// ShouldService returns true if the CPU should service an interrupt at the
// current instruction boundary.
func (ic *Controller) ShouldService() bool {
	return ic.ime && ic.Pending() != 0
}

// Acknowledge selects the highest priority pending interrupt and clears its
// bit in the IF register. The vector of the interrupt is returned. If no
// interrupt is pending the function returns false and the vector is 0x0000.
func (ic *Controller) Acknowledge() (uint16, bool) {
	p := ic.Pending()
	for s := VBlank; s < NumSources; s++ {
		if p&s.Bit() != 0 {
			ic.flags &^= s.Bit()
			return s.Vector(), true
		}
	}
	return 0x0000, false
}

// BeginService clears the IME. Called when the CPU starts servicing an
// interrupt.
func (ic *Controller) BeginService() {
	ic.ime = false
	ic.delay = 0
}

// EnableDelayed arms the countdown for the IME. Implements the EI instruction.
func (ic *Controller) EnableDelayed() {
	if !ic.ime && ic.delay == 0 {
		ic.delay = enableDelay
	}
}

// EnableImmediate sets the IME without delay. Implements the RETI
// instruction.
func (ic *Controller) EnableImmediate() {
	ic.ime = true
	ic.delay = 0
}

// Disable clears the IME immediately and cancels any armed countdown.
// Implements the DI instruction.
func (ic *Controller) Disable() {
	ic.ime = false
	ic.delay = 0
}

// Tick should be called at every instruction boundary. It advances the
// countdown armed by EnableDelayed().
func (ic *Controller) Tick() {
	if ic.delay > 0 {
		ic.delay--
		if ic.delay == 0 {
			ic.ime = true
		}
	}
}

// Claims implements the bus.Claimant interface.
func (ic *Controller) Claims(address uint16) bool {
	return address == memorymap.InterruptFlags || address == memorymap.InterruptEnableRegister
}

// Read implements the bus.Memory interface.
func (ic *Controller) Read(address uint16) uint8 {
	switch address {
	case memorymap.InterruptFlags:
		return ic.flags | unusedFlags
	case memorymap.InterruptEnableRegister:
		return ic.enable
	}
	return 0xff
}

// Write implements the bus.Memory interface.
func (ic *Controller) Write(address uint16, data uint8) {
	switch address {
	case memorymap.InterruptFlags:
		ic.flags = data & sourceMask
	case memorymap.InterruptEnableRegister:
		ic.enable = data
	}
}

// Snapshot returns a copy of the controller's state.
func (ic *Controller) Snapshot() State {
	return State{
		Version: StateVersion,
		Enable:  ic.enable,
		Flags:   ic.flags,
		IME:     ic.ime,
		Delay:   ic.delay,
	}
}

// Restore replaces the state of the controller with the State. The
// controller is unchanged if the State is of the wrong version.
func (ic *Controller) Restore(s State) error {
	if s.Version != StateVersion {
		return curated.Errorf(StateVersionMismatch, s.Version, StateVersion)
	}
	*ic = Controller{
		enable: s.Enable,
		flags:  s.Flags & sourceMask,
		ime:    s.IME,
		delay:  s.Delay,
	}
	return nil
}
