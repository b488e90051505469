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

package bus

import (
	"fmt"
	"strings"
)

// RAM is a block of read/write memory starting at an origin address.
type RAM struct {
	label  string
	origin uint16
	memtop uint16
	data   []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(label string, origin uint16, memtop uint16) *RAM {
	return &RAM{
		label:  label,
		origin: origin,
		memtop: memtop,
		data:   make([]uint8, int(memtop)-int(origin)+1),
	}
}

func (ram *RAM) String() string {
	return dump(ram.label, ram.origin, ram.data)
}

// Claims implements the Claimant interface.
func (ram *RAM) Claims(address uint16) bool {
	return address >= ram.origin && address <= ram.memtop
}

// Read implements the Memory interface.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.data[address-ram.origin]
}

// Write implements the Memory interface.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.data[address-ram.origin] = data
}

// Snapshot creates a copy of the RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.data = make([]uint8, len(ram.data))
	copy(n.data, ram.data)
	return &n
}

// Matches returns true if the snapshot covers the same addresses as the RAM
// and can be plumbed into it.
func (ram *RAM) Matches(n *RAM) bool {
	return n != nil && n.origin == ram.origin && len(n.data) == len(ram.data)
}

// Plumb copies the contents of a snapshot into the RAM. The RAM keeps its
// place on the bus. It is a programming error to plumb a snapshot that does
// not match the RAM.
func (ram *RAM) Plumb(n *RAM) {
	if !ram.Matches(n) {
		panic(fmt.Sprintf("bus: cannot plumb %s into %s", n.label, ram.label))
	}
	copy(ram.data, n.data)
}

// ROM is a block of read-only memory. Writes to a ROM are ignored.
type ROM struct {
	origin uint16
	data   []uint8
}

// NewROM is the preferred method of initialisation for the ROM type. The data
// is copied.
func NewROM(origin uint16, data []uint8) *ROM {
	rom := &ROM{
		origin: origin,
		data:   make([]uint8, len(data)),
	}
	copy(rom.data, data)
	return rom
}

// Claims implements the Claimant interface.
func (rom *ROM) Claims(address uint16) bool {
	return address >= rom.origin && int(address)-int(rom.origin) < len(rom.data)
}

// Read implements the Memory interface.
func (rom *ROM) Read(address uint16) uint8 {
	return rom.data[address-rom.origin]
}

// Write implements the Memory interface. Writing to ROM does nothing.
func (rom *ROM) Write(_ uint16, _ uint8) {
}

// Mirror claims a range of addresses and passes accesses to another memory
// device, offset to the primary address.
type Mirror struct {
	target Memory
	origin uint16
	memtop uint16
	offset uint16
}

// NewMirror is the preferred method of initialisation for the Mirror type.
// The primary argument is the address in the target that the origin of the
// mirror maps to.
func NewMirror(target Memory, origin uint16, memtop uint16, primary uint16) *Mirror {
	return &Mirror{
		target: target,
		origin: origin,
		memtop: memtop,
		offset: origin - primary,
	}
}

// Claims implements the Claimant interface.
func (m *Mirror) Claims(address uint16) bool {
	return address >= m.origin && address <= m.memtop
}

// Read implements the Memory interface.
func (m *Mirror) Read(address uint16) uint8 {
	return m.target.Read(address - m.offset)
}

// Write implements the Memory interface.
func (m *Mirror) Write(address uint16, data uint8) {
	m.target.Write(address-m.offset, data)
}

// dump formats memory as a table of hex values, sixteen values to a row
func dump(label string, origin uint16, data []uint8) string {
	s := strings.Builder{}
	if label != "" {
		s.WriteString(label)
		s.WriteString("\n")
	}
	for i, d := range data {
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04x |", int(origin)+i))
		}
		s.WriteString(fmt.Sprintf(" %02x", d))
	}
	return s.String()
}
