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

package interrupts_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestVectors(t *testing.T) {
	test.ExpectEquality(t, interrupts.VBlank.Vector(), 0x0040)
	test.ExpectEquality(t, interrupts.LCDStat.Vector(), 0x0048)
	test.ExpectEquality(t, interrupts.Timer.Vector(), 0x0050)
	test.ExpectEquality(t, interrupts.Serial.Vector(), 0x0058)
	test.ExpectEquality(t, interrupts.Joypad.Vector(), 0x0060)
	test.ExpectEquality(t, interrupts.Joypad.Bit(), 0x10)
}

func TestPriority(t *testing.T) {
	ic := interrupts.NewController()
	ic.Write(memorymap.InterruptEnableRegister, 0x1f)
	ic.Request(interrupts.Serial)
	ic.Request(interrupts.Timer)

	v, ok := ic.Acknowledge()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, interrupts.Timer.Vector())

	// lower priority interrupt is still pending
	test.ExpectEquality(t, ic.Pending(), interrupts.Serial.Bit())

	v, ok = ic.Acknowledge()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, interrupts.Serial.Vector())

	v, ok = ic.Acknowledge()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, v, 0x0000)
}

func TestDisabledSourcesAreNotPending(t *testing.T) {
	ic := interrupts.NewController()
	ic.Request(interrupts.VBlank)
	test.ExpectEquality(t, ic.Pending(), 0x00)

	ic.Write(memorymap.InterruptEnableRegister, interrupts.VBlank.Bit())
	test.ExpectEquality(t, ic.Pending(), 0x01)

	// the IME does not affect whether an interrupt is pending
	test.ExpectFailure(t, ic.IME())
	test.ExpectFailure(t, ic.ShouldService())
}

func TestDelayedEnable(t *testing.T) {
	ic := interrupts.NewController()

	ic.EnableDelayed()
	test.ExpectFailure(t, ic.IME())

	// end of the EI instruction
	ic.Tick()
	test.ExpectFailure(t, ic.IME())

	// end of the following instruction
	ic.Tick()
	test.ExpectSuccess(t, ic.IME())

	// DI is immediate
	ic.Disable()
	test.ExpectFailure(t, ic.IME())

	// DI cancels a pending EI
	ic.EnableDelayed()
	ic.Tick()
	ic.Disable()
	ic.Tick()
	test.ExpectFailure(t, ic.IME())

	// RETI is immediate
	ic.EnableImmediate()
	test.ExpectSuccess(t, ic.IME())
}

func TestBusRegisters(t *testing.T) {
	ic := interrupts.NewController()
	b := bus.NewBus(ic)

	// unused bits of IF read as one
	test.ExpectEquality(t, b.Read(memorymap.InterruptFlags), 0xe0)
	b.Write(memorymap.InterruptFlags, 0xff)
	test.ExpectEquality(t, b.Read(memorymap.InterruptFlags), 0xff)
	b.Write(memorymap.InterruptFlags, 0x04)
	test.ExpectEquality(t, b.Read(memorymap.InterruptFlags), 0xe4)

	// all bits of IE can be read back
	b.Write(memorymap.InterruptEnableRegister, 0xff)
	test.ExpectEquality(t, b.Read(memorymap.InterruptEnableRegister), 0xff)
	test.ExpectEquality(t, ic.Pending(), interrupts.Timer.Bit())

	// the controller does not claim neighbouring addresses
	test.ExpectFailure(t, ic.Claims(0xff0e))
	test.ExpectFailure(t, ic.Claims(0xfffe))
}

func TestReset(t *testing.T) {
	ic := interrupts.NewController()
	ic.Reset()
	test.ExpectEquality(t, ic.Read(memorymap.InterruptFlags), 0xe1)
	test.ExpectEquality(t, ic.Read(memorymap.InterruptEnableRegister), 0x00)
}

func TestSnapshot(t *testing.T) {
	ic := interrupts.NewController()
	ic.Write(memorymap.InterruptEnableRegister, 0x05)
	ic.Request(interrupts.Timer)
	ic.EnableDelayed()
	ic.Tick()

	s := ic.Snapshot()
	test.ExpectEquality(t, s.Version, interrupts.StateVersion)

	// change everything
	ic.Disable()
	ic.Write(memorymap.InterruptEnableRegister, 0x00)
	ic.Write(memorymap.InterruptFlags, 0x00)

	test.DemandSuccess(t, ic.Restore(s))
	test.ExpectEquality(t, ic.Snapshot(), s)

	// the countdown survived the round trip
	ic.Tick()
	test.ExpectSuccess(t, ic.IME())
}

func TestSnapshotVersion(t *testing.T) {
	ic := interrupts.NewController()
	ic.Write(memorymap.InterruptEnableRegister, 0x05)
	before := ic.Snapshot()

	err := ic.Restore(interrupts.State{Enable: 0xff})
	test.ExpectSuccess(t, curated.Is(err, interrupts.StateVersionMismatch))

	// controller is unchanged
	test.ExpectEquality(t, ic.Snapshot(), before)
}
