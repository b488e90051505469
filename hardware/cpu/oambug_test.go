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

	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/oambug"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/test"
)

type scanner struct {
	row    int
	active bool
}

func (s *scanner) SpriteSearch() (int, bool) {
	return s.row, s.active
}

func newTable() *oambug.Table {
	tbl := oambug.NewTable()
	for i := 0; i < oambug.Size; i++ {
		tbl.Poke(i, uint8(i*7))
	}
	return tbl
}

func TestOAMBugTrigger(t *testing.T) {
	mc, mem, _ := newCPU(nil)
	tbl := newTable()
	scn := &scanner{row: 5, active: true}
	model := oambug.NewModel(logger.Allow, tbl, oambug.DMG)
	model.AttachScanner(scn)
	mc.AttachOAMBug(model)

	// INC HL; INC HL
	mem.putInstructions(0x0100, 0x23, 0x23)

	// HL is not in the OAM area
	before := tbl.Snapshot()
	step(t, mc)
	test.ExpectEquality(t, *tbl, *before)

	// HL is in the OAM area during the sprite search
	mc.Regs.SetPair(registers.HL, 0xfe10)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Pair(registers.HL), 0xfe11)

	expected := before.Snapshot()
	oambug.DMG.Apply(expected, oambug.Write, 5)
	test.ExpectEquality(t, *tbl, *expected)
}

func TestOAMBugOutsideSpriteSearch(t *testing.T) {
	mc, mem, _ := newCPU(nil)
	tbl := newTable()
	scn := &scanner{row: 5, active: false}
	model := oambug.NewModel(logger.Allow, tbl, oambug.DMG)
	model.AttachScanner(scn)
	mc.AttachOAMBug(model)

	// INC HL; LD A,(HL+); PUSH BC
	mem.putInstructions(0x0100, 0x23, 0x2a, 0xc5)
	mc.Regs.SetPair(registers.HL, 0xfe10)
	mc.Regs.SP.Load(0xfe80)

	before := tbl.Snapshot()
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Pair(registers.HL), 0xfe12)
	test.ExpectEquality(t, mc.Regs.SP.Address(), 0xfe7e)
	test.ExpectEquality(t, *tbl, *before)
}

func TestOAMBugReadIncrement(t *testing.T) {
	mc, mem, _ := newCPU(nil)
	tbl := newTable()
	scn := &scanner{row: 8, active: true}
	model := oambug.NewModel(logger.Allow, tbl, oambug.DMG)
	model.AttachScanner(scn)
	mc.AttachOAMBug(model)

	// LD A,(HL+)
	mem.putInstructions(0x0100, 0x2a)
	mc.Regs.SetPair(registers.HL, 0xfe20)

	before := tbl.Snapshot()
	step(t, mc)
	test.ExpectEquality(t, mc.Regs.Pair(registers.HL), 0xfe21)

	expected := before.Snapshot()
	oambug.DMG.Apply(expected, oambug.ReadIncDec, 8)
	test.ExpectEquality(t, *tbl, *expected)
}

func TestOAMBugDisabled(t *testing.T) {
	mc, mem, _ := newCPU(nil)
	tbl := newTable()
	scn := &scanner{row: 5, active: true}
	model := oambug.NewModel(logger.Allow, tbl, oambug.DMG)
	model.AttachScanner(scn)
	model.Enabled = func() bool { return false }
	mc.AttachOAMBug(model)

	// INC HL
	mem.putInstructions(0x0100, 0x23)
	mc.Regs.SetPair(registers.HL, 0xfe10)

	before := tbl.Snapshot()
	step(t, mc)
	test.ExpectEquality(t, *tbl, *before)
}
