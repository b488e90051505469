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

package oambug

// Kind classifies the bus activity that triggers the corruption.
type Kind int

// List of valid Kind values.
const (
	// the bus activity does not trigger corruption
	None Kind = iota

	// the IDU is used for a write or on its own (INC rr, DEC rr, PUSH)
	Write

	// the IDU is used for a read
	Read

	// the IDU is used for a read and the register is then incremented or
	// decremented (LD A,(HL+), POP)
	ReadIncDec
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Write:
		return "write"
	case Read:
		return "read"
	case ReadIncDec:
		return "read inc/dec"
	}
	return "unknown kind"
}

// Pattern corrupts the table at the row being read by the display.
type Pattern func(t *Table, row int)

// PatternSet is a versioned collection of patterns, one for each Kind.
type PatternSet struct {
	Version  string
	patterns map[Kind]Pattern
}

// Apply the pattern for the Kind to the table. Row zero is never corrupted and
// rows outside of the table are ignored.
func (ps PatternSet) Apply(t *Table, k Kind, row int) {
	if row <= 0 || row >= NumRows {
		return
	}
	if p, ok := ps.patterns[k]; ok {
		p(t, row)
	}
}

// DMG is the pattern set for the original handheld, as documented by the Pan
// Docs and verified by the oam_bug test ROMs.
var DMG = PatternSet{
	Version: "dmg/pandocs-1",
	patterns: map[Kind]Pattern{
		Write:      writeCorruption,
		Read:       readCorruption,
		ReadIncDec: readIncDecCorruption,
	},
}

func writeCorruption(t *Table, row int) {
	a := t.word(row, 0)
	b := t.word(row-1, 0)
	c := t.word(row-1, 2)
	t.setWord(row, 0, ((a^c)&(b^c))^c)
	t.copyTail(row, row-1)
}

func readCorruption(t *Table, row int) {
	a := t.word(row, 0)
	b := t.word(row-1, 0)
	c := t.word(row-1, 2)
	t.setWord(row, 0, b|(a&c))
	t.copyTail(row, row-1)
}

// the extra corruption only happens when the row is not one of the first four
// or the last row. the read corruption is applied in all cases
func readIncDecCorruption(t *Table, row int) {
	if row >= 4 && row < NumRows-1 {
		a := t.word(row-2, 0)
		b := t.word(row-1, 0)
		c := t.word(row, 0)
		d := t.word(row-1, 2)
		t.setWord(row-1, 0, (b&(a|c|d))|(a&c&d))
		t.copyRow(row, row-1)
		t.copyRow(row-2, row-1)
	}
	readCorruption(t, row)
}
