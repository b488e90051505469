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

// Package oambug emulates the corruption of the sprite attribute table (OAM)
// that occurs when the CPU's 16-bit increment/decrement unit places an
// address in the range 0xfe00 to 0xfeff on the bus while the display is
// searching OAM for the sprites on the current scanline.
//
// The Table type is the OAM itself and is attached to the bus like any other
// memory. The Model type decides whether a trigger from the CPU results in
// corruption and, if so, applies a pattern from the PatternSet.
//
// For the purposes of corruption OAM is viewed as twenty rows of eight bytes.
// Each row is four little-endian 16-bit words. The display reads one row at a
// time during the search and it is the row being read that is corrupted.
package oambug
