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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
)

// mockMem is a flat 64k memory that counts accesses
type mockMem struct {
	data   [0x10000]uint8
	reads  int
	writes int
}

func (mem *mockMem) Read(address uint16) uint8 {
	mem.reads++
	return mem.data[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.writes++
	mem.data[address] = data
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.data[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

// run the instruction at the PC to completion. an instruction preceded by the
// 0xcb prefix is run as part of the same call. returns the number of cycles
// taken
func run(t *testing.T, regs *registers.File, mem *mockMem) int {
	t.Helper()

	var cycles int
	var isPrefixed bool

	for {
		op := mem.data[regs.PC.Address()]
		regs.PC.Increment()

		defn := instructions.Lookup(op, isPrefixed)
		if defn.Undefined {
			t.Fatalf("undefined opcode: %s", defn)
		}

		var ctx instructions.Context
		for _, s := range defn.Steps {
			var data uint8
			if s.Operand {
				data = mem.data[regs.PC.Address()]
				regs.PC.Increment()
			}
			if s.Exec != nil {
				ctx = s.Exec(regs, mem, data, ctx)
			}
			cycles++
			if s.Condition != nil && !s.Condition(regs) {
				break
			}
		}

		if ctx.Control != instructions.Prefix {
			return cycles
		}
		isPrefixed = true
	}
}

func newFile() registers.File {
	regs := registers.NewFile()
	regs.SP.Load(0xfffe)
	return regs
}
