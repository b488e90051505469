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

package hardware_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/instance"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/oambug"
	"github.com/jetsetilly/gopherdmg/test"
)

// newMachine creates a machine with a ROM over the cartridge area. The
// program is placed at the reset address
func newMachine(t *testing.T, program ...uint8) *hardware.Machine {
	t.Helper()

	rom := make([]uint8, 0x8000)
	copy(rom[0x0100:], program)

	ins, err := instance.NewInstance(nil)
	test.DemandSuccess(t, err)
	ins.Normalise()

	m, err := hardware.NewMachine(ins, bus.NewROM(0x0000, rom))
	test.DemandSuccess(t, err)
	return m
}

type scanner struct {
	row    int
	active bool
}

func (s *scanner) SpriteSearch() (int, bool) {
	return s.row, s.active
}

func TestNewMachine(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.CPU.Regs.PC.Address(), 0x0100)
	test.ExpectEquality(t, m.CPU.Regs.SP.Address(), 0xfffe)
	test.ExpectEquality(t, m.CPU.Mode(), cpu.Fetching)

	// a machine can be created without an instance
	n, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.Mem.Read(0x0100), bus.OpenBus)
}

func TestMemoryMap(t *testing.T) {
	// a host device that claims the entire address space is consulted after
	// the core's own devices
	host := bus.NewRAM("host", 0x0000, 0xffff)
	m, err := hardware.NewMachine(nil, host)
	test.DemandSuccess(t, err)

	// work RAM and its echo
	m.Mem.Write(0xc010, 0x11)
	test.ExpectEquality(t, m.Mem.Read(0xe010), 0x11)
	m.Mem.Write(0xfdff, 0x22)
	test.ExpectEquality(t, m.WRAM.Read(0xddff), 0x22)
	test.ExpectEquality(t, host.Read(0xc010), 0x00)

	// OAM
	m.Mem.Write(0xfe9f, 0x33)
	test.ExpectEquality(t, m.OAM.Peek(0x9f), 0x33)
	test.ExpectEquality(t, host.Read(0xfe9f), 0x00)

	// the unusable area after OAM falls through to the host
	m.Mem.Write(0xfea0, 0x44)
	test.ExpectEquality(t, host.Read(0xfea0), 0x44)

	// high RAM
	m.Mem.Write(0xff80, 0x55)
	test.ExpectEquality(t, m.HRAM.Read(0xff80), 0x55)

	// interrupt registers
	test.ExpectEquality(t, m.Mem.Read(0xff0f), 0xe1)
	m.Mem.Write(0xffff, 0x1f)
	test.ExpectEquality(t, m.Mem.Read(0xffff), 0x1f)
	test.ExpectEquality(t, host.Read(0xffff), 0x00)

	// I/O registers not owned by the core
	m.Mem.Write(0xff40, 0x91)
	test.ExpectEquality(t, host.Read(0xff40), 0x91)
}

func TestExecuteInstruction(t *testing.T) {
	// NOP; JP 0x0150
	m := newMachine(t, 0x00, 0xc3, 0x50, 0x01)

	var callbacks int
	cb := func() {
		callbacks++
	}

	test.ExpectEquality(t, m.ExecuteInstruction(cb), 1)
	test.ExpectEquality(t, m.ExecuteInstruction(cb), 4)
	test.ExpectEquality(t, callbacks, 5)
	test.ExpectEquality(t, m.CPU.Regs.PC.Address(), 0x0150)
	test.ExpectEquality(t, m.CPU.CycleCount(), uint64(5))
}

func TestPrefixedInstruction(t *testing.T) {
	// SWAP A
	m := newMachine(t, 0xcb, 0x37)
	test.ExpectEquality(t, m.ExecuteInstruction(nil), 2)
	test.ExpectEquality(t, m.CPU.Regs.A.Value(), 0x10)
}

func TestRequestInterrupt(t *testing.T) {
	// EI; NOP; NOP
	m := newMachine(t, 0xfb, 0x00, 0x00)
	m.Mem.Write(0xffff, interrupts.Timer.Bit())
	m.RequestInterrupt(interrupts.Timer)

	test.ExpectEquality(t, m.ExecuteInstruction(nil), 1)
	test.ExpectEquality(t, m.ExecuteInstruction(nil), 1)

	// the dispatch sequence
	test.ExpectEquality(t, m.ExecuteInstruction(nil), 5)
	test.ExpectEquality(t, m.CPU.Regs.PC.Address(), interrupts.Timer.Vector())
	test.ExpectEquality(t, m.CPU.Regs.SP.Address(), 0xfffc)
	test.ExpectEquality(t, m.HRAM.Read(0xfffd), 0x01)
	test.ExpectEquality(t, m.HRAM.Read(0xfffc), 0x02)

	// VBlank was left requested by the reset but it is not enabled
	test.ExpectEquality(t, m.Mem.Read(0xff0f), 0xe1)
}

func TestStopAndWake(t *testing.T) {
	// STOP; NOP
	m := newMachine(t, 0x10, 0x00, 0x00)
	m.ExecuteInstruction(nil)
	test.ExpectEquality(t, m.CPU.Mode(), cpu.Stopped)

	// a stopped CPU consumes one cycle per call
	test.ExpectEquality(t, m.ExecuteInstruction(nil), 1)
	test.ExpectEquality(t, m.CPU.Regs.PC.Address(), 0x0102)

	m.Wake()
	test.ExpectEquality(t, m.ExecuteInstruction(nil), 1)
	test.ExpectEquality(t, m.CPU.Regs.PC.Address(), 0x0103)
}

func TestRun(t *testing.T) {
	// INC A; JR -3
	m := newMachine(t, 0x3c, 0x18, 0xfd)

	var instructions int
	err := m.Run(func() (bool, error) {
		instructions++
		return instructions < 10, nil
	})
	test.ExpectSuccess(t, err)

	// five iterations of the loop
	test.ExpectEquality(t, m.CPU.Regs.A.Value(), 0x06)
	test.ExpectEquality(t, m.CPU.CycleCount(), uint64(20))

	// errors from the continue check are returned
	err = m.Run(func() (bool, error) {
		return true, curated.Errorf("stop")
	})
	test.ExpectSuccess(t, curated.Is(err, "stop"))
}

func TestRunForCycles(t *testing.T) {
	// INC A; JR -3
	m := newMachine(t, 0x3c, 0x18, 0xfd)

	// the JR is not interrupted
	test.ExpectEquality(t, m.RunForCycles(2, nil), 4)
	test.ExpectEquality(t, m.CPU.Regs.PC.Address(), 0x0100)
	test.ExpectEquality(t, m.RunForCycles(10, nil), 12)
	test.ExpectEquality(t, m.CPU.Regs.A.Value(), 0x05)
}

func TestSnapshotPlumb(t *testing.T) {
	// LD A,0x42; LD (0xc000),A; LD (0xff90),A; INC A; JR -3
	m := newMachine(t, 0x3e, 0x42, 0xea, 0x00, 0xc0, 0xe0, 0x90, 0x3c, 0x18, 0xfd)
	m.Mem.Write(0xfe00, 0x99)
	for i := 0; i < 3; i++ {
		m.ExecuteInstruction(nil)
	}

	s, err := m.Snapshot()
	test.DemandSuccess(t, err)

	// copies of a state are independent of each other
	c := s.Snapshot()
	c.WRAM.Write(0xc000, 0x00)
	test.ExpectEquality(t, s.WRAM.Read(0xc000), 0x42)

	// change the machine
	m.RunForCycles(50, nil)
	m.Mem.Write(0xc000, 0x01)
	m.Mem.Write(0xff90, 0x02)
	m.Mem.Write(0xfe00, 0x03)
	test.ExpectInequality(t, m.CPU.Regs.A.Value(), 0x42)

	test.DemandSuccess(t, m.Plumb(s))
	test.ExpectEquality(t, m.CPU.Regs.A.Value(), 0x42)
	test.ExpectEquality(t, m.CPU.Regs.PC.Address(), 0x0107)
	test.ExpectEquality(t, m.Mem.Read(0xc000), 0x42)
	test.ExpectEquality(t, m.Mem.Read(0xe000), 0x42)
	test.ExpectEquality(t, m.Mem.Read(0xff90), 0x42)
	test.ExpectEquality(t, m.Mem.Read(0xfe00), 0x99)

	// changing the machine does not change the state
	m.Mem.Write(0xc000, 0x01)
	test.ExpectEquality(t, s.WRAM.Read(0xc000), 0x42)
}

func TestPlumbMidInstruction(t *testing.T) {
	// JP 0x0150
	m := newMachine(t, 0xc3, 0x50, 0x01)
	s, err := m.Snapshot()
	test.DemandSuccess(t, err)

	m.Mem.Write(0xc000, 0x01)
	m.Step()

	_, err = m.Snapshot()
	test.ExpectSuccess(t, curated.Is(err, cpu.MidInstruction))
	test.ExpectSuccess(t, curated.Is(m.Plumb(s), cpu.MidInstruction))

	// memory was not touched by the failed plumb
	test.ExpectEquality(t, m.Mem.Read(0xc000), 0x01)
}

func TestPlumbMalformedState(t *testing.T) {
	m := newMachine(t)
	s, err := m.Snapshot()
	test.DemandSuccess(t, err)
	s.CPU.Registers.PC.Load(0x1234)
	s.WRAM.Write(0xc000, 0x42)

	m.Mem.Write(0xc000, 0x01)

	bad := &hardware.State{CPU: s.CPU, OAM: s.OAM}
	test.ExpectSuccess(t, curated.Is(m.Plumb(bad), hardware.MalformedState))

	bad = s.Snapshot()
	bad.OAM = nil
	test.ExpectSuccess(t, curated.Is(m.Plumb(bad), hardware.MalformedState))

	bad = s.Snapshot()
	bad.HRAM = bus.NewRAM("HRAM", 0xff80, 0xffef)
	test.ExpectSuccess(t, curated.Is(m.Plumb(bad), hardware.MalformedState))

	bad = s.Snapshot()
	bad.WRAM = bus.NewRAM("WRAM", 0xd000, 0xefff)
	test.ExpectSuccess(t, curated.Is(m.Plumb(bad), hardware.MalformedState))

	bad = s.Snapshot()
	bad.CPU.Version++
	test.ExpectSuccess(t, curated.Is(m.Plumb(bad), cpu.StateVersionMismatch))

	// the machine is unchanged by any of the failed plumbs
	test.ExpectEquality(t, m.CPU.Regs.PC.Address(), 0x0100)
	test.ExpectEquality(t, m.Mem.Read(0xc000), 0x01)

	test.DemandSuccess(t, m.Plumb(s))
	test.ExpectEquality(t, m.CPU.Regs.PC.Address(), 0x1234)
	test.ExpectEquality(t, m.Mem.Read(0xc000), 0x42)
}

func TestVisualise(t *testing.T) {
	m := newMachine(t)
	s, err := m.Snapshot()
	test.DemandSuccess(t, err)

	var b bytes.Buffer
	s.Visualise(&b)
	test.ExpectSuccess(t, strings.Contains(b.String(), "digraph"))
}

func TestOAMBug(t *testing.T) {
	// LD HL,0xfe10; INC HL
	m := newMachine(t, 0x21, 0x10, 0xfe, 0x23)
	for i := 0; i < oambug.Size; i++ {
		m.Mem.Write(0xfe00+uint16(i), uint8(i*3))
	}
	m.AttachScanner(&scanner{row: 5, active: true})
	test.ExpectEquality(t, m.OAMBug.Version(), "dmg/pandocs-1")

	before := m.OAM.Snapshot()
	m.ExecuteInstruction(nil)
	test.ExpectEquality(t, *m.OAM, *before)

	m.ExecuteInstruction(nil)
	test.ExpectEquality(t, m.CPU.Regs.Pair(registers.HL), 0xfe11)

	expected := before.Snapshot()
	oambug.DMG.Apply(expected, oambug.Write, 5)
	test.ExpectEquality(t, *m.OAM, *expected)
}

func TestOAMBugPreference(t *testing.T) {
	// LD HL,0xfe10; INC HL
	m := newMachine(t, 0x21, 0x10, 0xfe, 0x23)
	for i := 0; i < oambug.Size; i++ {
		m.Mem.Write(0xfe00+uint16(i), uint8(i*3))
	}
	m.AttachScanner(&scanner{row: 5, active: true})
	test.DemandSuccess(t, m.Instance.Prefs.Set("cpu.oambug", false))

	before := m.OAM.Snapshot()
	m.ExecuteInstruction(nil)
	m.ExecuteInstruction(nil)
	test.ExpectEquality(t, *m.OAM, *before)
}
