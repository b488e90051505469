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

// Package cpu emulates the SM83 processor found in the DMG. The CPU is
// stepped one machine cycle at a time with the Step() function. Every call to
// Step() advances the emulation by exactly one cycle and the function always
// returns the number one.
//
// Instructions are defined in the instructions package as lists of
// micro-operations, one for each cycle. When no micro-operations are waiting,
// the CPU reads the opcode at the PC and queues the micro-operations for that
// opcode. The first micro-operation of an instruction runs in the same cycle
// as the opcode fetch.
//
// Interrupts are checked when an instruction completes. If an interrupt is to
// be serviced then a five cycle dispatch sequence is queued in place of the
// next instruction. See the interrupts package for the interrupt controller.
//
// The ExecuteInstruction() function is a convenience that steps the CPU until
// the next instruction boundary. It is useful for tests and for debuggers that
// want to step by instruction.
//
// Let's assume mem is an instance of the bus.Memory interface loaded with SM83
// instructions.
//
//	ic := interrupts.NewController()
//	mc := cpu.NewCPU(nil, mem, ic)
//	mc.Reset()
//
//	for {
//		mc.Step()
//	}
//
// The CPU can lock up if it encounters an undefined opcode. In this state the
// CPU reports that it is halted and will never leave that state except by a
// Reset() or by restoring a State captured with Snapshot().
//
// Snapshot() and Restore() can only be used at an instruction boundary. An
// error is returned if they are called in the middle of an instruction.
package cpu
