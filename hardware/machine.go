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
	"github.com/jetsetilly/gopherdmg/assert"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/instance"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/oambug"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Machine is the DMG processing core.
type Machine struct {
	Instance *instance.Instance

	// all logging by the core goes through the gate. it is muted by rewind
	// while cycles are being replayed
	Log *logger.Gate

	CPU        *cpu.CPU
	Interrupts *interrupts.Controller
	Mem        *bus.Bus

	OAM    *oambug.Table
	OAMBug *oambug.Model

	WRAM *bus.RAM
	HRAM *bus.RAM

	goroutine assert.Goroutine
}

// NewMachine creates a new Machine and everything associated with the
// core. The instance argument can be nil, in which case a new main instance
// is created.
//
// The claimants are attached to the bus after the core's own devices. The
// core's devices therefore take priority for the addresses they claim: the
// interrupt registers, OAM, work RAM, echo RAM and high RAM.
//
// The machine is reset before it is returned.
func NewMachine(ins *instance.Instance, claimants ...bus.Claimant) (*Machine, error) {
	if ins == nil {
		var err error
		ins, err = instance.NewInstance(nil)
		if err != nil {
			return nil, curated.Errorf("machine: %v", err)
		}
	}

	m := &Machine{
		Instance:   ins,
		Log:        logger.NewGate(ins),
		Interrupts: interrupts.NewController(),
		OAM:        oambug.NewTable(),
		WRAM:       bus.NewRAM("WRAM", memorymap.OriginWRAM, memorymap.MemtopWRAM),
		HRAM:       bus.NewRAM("HRAM", memorymap.OriginHRAM, memorymap.MemtopHRAM),
	}

	core := []bus.Claimant{
		m.Interrupts,
		m.OAM,
		m.WRAM,
		bus.NewMirror(m.WRAM, memorymap.OriginEcho, memorymap.MemtopEcho, memorymap.OriginWRAM),
		m.HRAM,
	}
	m.Mem = bus.NewBus(append(core, claimants...)...)

	m.CPU = cpu.NewCPU(ins, m.Mem, m.Interrupts)
	m.CPU.SetLogPermission(m.Log)
	ins.Random.SetClock(m.CPU)

	m.OAMBug = oambug.NewModel(m.Log, m.OAM, oambug.DMG)
	m.OAMBug.Enabled = func() bool {
		return ins.Prefs.OAMBug.Get().(bool)
	}
	m.CPU.AttachOAMBug(m.OAMBug)

	m.Reset()

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Reset the machine to the state left by the boot ROM. Memory is not
// cleared.
func (m *Machine) Reset() {
	m.CPU.Reset()
	logger.Logf(m.Log, "machine", "reset (oam bug patterns %s)", m.OAMBug.Version())
}

// AttachScanner connects the display to the OAM bug model. A nil value
// detaches the current scanner, after which the OAM bug never triggers.
func (m *Machine) AttachScanner(s oambug.Scanner) {
	m.OAMBug.AttachScanner(s)
}

// RequestInterrupt is called by devices outside the core to raise an
// interrupt.
func (m *Machine) RequestInterrupt(s interrupts.Source) {
	m.Interrupts.Request(s)
}

// Wake the CPU from the stopped state. Should be called when a joypad button
// is pressed.
func (m *Machine) Wake() {
	m.CPU.Wake()
}
