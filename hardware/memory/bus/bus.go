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

// OpenBus is the value returned when reading from an address that no device
// claims.
const OpenBus = uint8(0xff)

// Memory defines the operations for the memory system when accessed from the
// CPU. Accesses never fail.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Claimant is a device that can be attached to the Bus.
type Claimant interface {
	Memory

	// Claims returns true if the address belongs to the device
	Claims(address uint16) bool
}

// Bus routes memory accesses to the attached claimants. It implements the
// Memory interface.
type Bus struct {
	claimants []Claimant
}

// NewBus is the preferred method of initialisation for the Bus type. Claimants
// are consulted in the order they are specified. The first claimant to claim
// an address is the owner of that address.
func NewBus(claimants ...Claimant) *Bus {
	return &Bus{
		claimants: claimants,
	}
}

func (b *Bus) owner(address uint16) Claimant {
	for _, c := range b.claimants {
		if c.Claims(address) {
			return c
		}
	}
	return nil
}

// Read implements the Memory interface.
func (b *Bus) Read(address uint16) uint8 {
	if c := b.owner(address); c != nil {
		return c.Read(address)
	}
	return OpenBus
}

// Write implements the Memory interface.
func (b *Bus) Write(address uint16, data uint8) {
	if c := b.owner(address); c != nil {
		c.Write(address, data)
	}
}
