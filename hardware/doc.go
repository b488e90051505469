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

// Package hardware is the base package for the DMG processing core. The
// Machine type wires the CPU, the interrupt controller, the OAM and the
// internal RAM together on a single bus.
//
// Devices outside the core (the cartridge, the display, the timer, the
// joypad) are attached as bus claimants when the Machine is created. They
// raise interrupts with RequestInterrupt(). The display tells the OAM bug
// model when it is searching OAM by way of AttachScanner().
//
// The host advances the machine one cycle at a time with Step(), or one
// instruction at a time with ExecuteInstruction(). Nothing in the package
// blocks and nothing depends on wall-clock time.
//
// The Machine must only ever be stepped from one goroutine. When the
// "assertions" build tag is present, stepping from a second goroutine
// causes a panic.
package hardware
