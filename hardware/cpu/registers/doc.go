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

// Package registers implements the register file of the SM83 CPU.
//
// The eight bit registers are implemented by the Register type. The Register
// type implements the arithmetic and bitwise operations of the CPU and returns
// the carry and half-carry results of those operations. It is the
// responsibility of the calling function to transfer those results to the
// Flags register. For instance, in the CPU we might have this sequence of
// function calls:
//
//	a.Load(10)
//	carry, half := a.Subtract(11, false)
//	f.Zero = a.IsZero()
//	f.Carry = carry
//	f.HalfCarry = half
//
// The program counter and stack pointer are 16 bits wide and define only
// load, add, increment and decrement operations.
//
// The File type collates all the registers and provides the 16-bit pair views
// (AF, BC, DE and HL) of the eight bit registers. Registers in the file can
// be selected with the Reg8 and Reg16 types, which allows instruction tables
// to be built from the register fields of an opcode.
package registers
