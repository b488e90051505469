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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/instance"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// mockMem is RAM over the entire address space with the exception of the
// interrupt registers, which are claimed by the interrupt controller
type mockMem struct {
	*bus.Bus
	ram *bus.RAM
}

func newMockMem(ic *interrupts.Controller) *mockMem {
	ram := bus.NewRAM("mock", 0x0000, 0xfffe)
	return &mockMem{
		Bus: bus.NewBus(ic, ram),
		ram: ram,
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.ram.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if d := mem.Read(address); d != value {
		t.Errorf("memory assertion failed (%02x  - wanted %02x at address %04x)", d, value, address)
	}
}

// newCPU returns a CPU that has been reset to the state left by the boot ROM.
// the interrupt enable register is cleared
func newCPU(ins *instance.Instance) (*cpu.CPU, *mockMem, *interrupts.Controller) {
	ic := interrupts.NewController()
	mem := newMockMem(ic)
	mc := cpu.NewCPU(ins, mem, ic)
	mc.Reset()
	return mc, mem, ic
}

func enable(mem *mockMem, sources ...interrupts.Source) {
	var ie uint8
	for _, s := range sources {
		ie |= s.Bit()
	}
	mem.Write(memorymap.InterruptEnableRegister, ie)
}

// step runs the CPU until the end of the current instruction and returns the
// number of cycles taken
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	n := mc.ExecuteInstruction()
	if mc.Locked() {
		t.Fatalf("cpu locked: %s", mc.Instruction())
	}
	return n
}
