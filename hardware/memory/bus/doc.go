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

// Package bus defines the memory bus as seen by the CPU.
//
// The Memory interface is the contract the CPU uses to access memory. The Bus
// type implements the interface by routing each access to the first attached
// Claimant that claims the address. Claimants are attached when the bus is
// created and the routing never changes afterwards. This mirrors the fixed
// address decoding of the hardware.
//
// An address that no claimant claims is not an error. Reading such an address
// returns OpenBus and writing to it does nothing, which is how the floating
// data bus of the hardware behaves.
//
// The RAM, ROM and Mirror types are simple claimants suitable for the work RAM,
// high RAM and echo RAM areas of the machine, and for tests.
package bus
