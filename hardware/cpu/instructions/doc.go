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

// Package instructions defines the instruction set of the SM83 as tables of
// micro-operations. Each micro-operation is the work of exactly one machine
// cycle.
//
// There are two tables of 256 definitions. The primary table is indexed by the
// opcode byte. The prefixed table is indexed by the byte that follows the 0xcb
// prefix. Both tables are built once when the package is initialised and are
// never changed.
//
// The first micro-operation of every definition runs in the same cycle as the
// opcode fetch. It must not access the bus. Operand bytes are read one per
// cycle by micro-operations with the Operand field set. The number of
// micro-operations in a definition is therefore the number of cycles the
// instruction takes.
//
// For conditional instructions the micro-operation with a Condition decides
// whether the rest of the instruction is performed. When the condition fails
// the remaining micro-operations are dropped and the instruction takes fewer
// cycles.
//
// The 0xcb prefix is itself a one cycle instruction in the primary table. Its
// only effect is to tell the CPU that the next opcode should be looked up in
// the prefixed table. The cycle counts of the definitions in the prefixed
// table do not include the cycle taken by the prefix.
package instructions
