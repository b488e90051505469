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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/test"
)

const validMemMap = `0000 -> 7fff	ROM
8000 -> 9fff	VRAM
a000 -> bfff	External RAM
c000 -> dfff	WRAM
e000 -> fdff	Echo
fe00 -> fe9f	OAM
fea0 -> feff	Unusable
ff00 -> ff7f	IO
ff80 -> fffe	HRAM
ffff -> ffff	IE
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestMapAddress(t *testing.T) {
	a, area := memorymap.MapAddress(0xe123)
	test.ExpectEquality(t, a, 0xc123)
	test.ExpectEquality(t, area, memorymap.Echo)

	a, area = memorymap.MapAddress(0xfe00)
	test.ExpectEquality(t, a, 0xfe00)
	test.ExpectEquality(t, area, memorymap.OAM)

	test.ExpectSuccess(t, memorymap.IsArea(memorymap.InterruptFlags, memorymap.IO))
	test.ExpectSuccess(t, memorymap.IsArea(memorymap.InterruptEnableRegister, memorymap.InterruptEnable))
}
