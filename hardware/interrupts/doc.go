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

// Package interrupts implements the interrupt controller of the SM83.
//
// The controller holds the interrupt enable register (IE), the interrupt
// flags register (IF) and the interrupt master enable (IME). The IE and IF
// registers are visible on the memory bus and the Controller type implements
// the bus.Claimant interface for those two addresses.
//
// Any device can request an interrupt with the Request() function. Whether
// and when the request is serviced is decided by the CPU at instruction
// boundaries.
//
// The EI instruction does not set the IME immediately. The EnableDelayed()
// function arms a countdown that is decremented by Tick() at every
// instruction boundary. The countdown is armed with a value of two, so the IME
// is set at the end of the instruction following the EI instruction.
package interrupts
