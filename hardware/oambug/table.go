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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
)

// Layout of the OAM.
const (
	Size     = 160
	RowSize  = 8
	NumRows  = Size / RowSize
	wordsRow = RowSize / 2
)

// Table is the sprite attribute table. It implements the bus.Claimant
// interface.
type Table struct {
	data [Size]uint8
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{}
}

func (t *Table) String() string {
	s := strings.Builder{}
	for r := 0; r < NumRows; r++ {
		if r > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("%02d |", r))
		for w := 0; w < wordsRow; w++ {
			s.WriteString(fmt.Sprintf(" %04x", t.word(r, w)))
		}
	}
	return s.String()
}

// Snapshot creates a copy of the Table in its current state.
func (t *Table) Snapshot() *Table {
	n := *t
	return &n
}

// Plumb replaces the contents of the table with the contents of another
// table.
func (t *Table) Plumb(n *Table) {
	t.data = n.data
}

// Claims implements the bus.Claimant interface.
func (t *Table) Claims(address uint16) bool {
	return address >= memorymap.OriginOAM && address <= memorymap.MemtopOAM
}

// Read implements the bus.Memory interface.
func (t *Table) Read(address uint16) uint8 {
	return t.data[address-memorymap.OriginOAM]
}

// Write implements the bus.Memory interface.
func (t *Table) Write(address uint16, data uint8) {
	t.data[address-memorymap.OriginOAM] = data
}

// Peek returns the byte at the index without going through the bus. The index
// is in the range 0 to Size-1.
func (t *Table) Peek(idx int) uint8 {
	return t.data[idx]
}

// Poke sets the byte at the index without going through the bus.
func (t *Table) Poke(idx int, data uint8) {
	t.data[idx] = data
}

func (t *Table) word(row int, w int) uint16 {
	i := row*RowSize + w*2
	return uint16(t.data[i]) | uint16(t.data[i+1])<<8
}

func (t *Table) setWord(row int, w int, v uint16) {
	i := row*RowSize + w*2
	t.data[i] = uint8(v)
	t.data[i+1] = uint8(v >> 8)
}

// copies words 1 to 3 of the src row to the dest row
func (t *Table) copyTail(dest int, src int) {
	copy(t.data[dest*RowSize+2:(dest+1)*RowSize], t.data[src*RowSize+2:(src+1)*RowSize])
}

// copies the entire src row to the dest row
func (t *Table) copyRow(dest int, src int) {
	copy(t.data[dest*RowSize:(dest+1)*RowSize], t.data[src*RowSize:(src+1)*RowSize])
}
