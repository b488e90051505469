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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// The DMG address space is divided into areas by fixed address decoding. The
// only mirrored area is the echo of work RAM at 0xe000 to 0xfdff. The
// MapAddress() function returns the primary address and the area of any
// address.
//
// Memory implementations may need to drag the address down into the range of
// an array. This can be done by subtracting the origin of the area.
package memorymap
