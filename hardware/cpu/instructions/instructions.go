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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/oambug"
)

// Access describes how a micro-operation uses the bus.
type Access int

// List of valid Access values.
const (
	NoAccess Access = iota
	Read
	Write
)

func (a Access) String() string {
	switch a {
	case NoAccess:
		return "none"
	case Read:
		return "read"
	case Write:
		return "write"
	}
	return "unknown access"
}

// Control is a signal from a micro-operation to the CPU. The CPU acts on the
// signal after the micro-operation has run.
type Control int

// List of valid Control values.
const (
	NoControl Control = iota

	// HALT instruction
	Halt

	// STOP instruction
	Stop

	// EI instruction. the interrupt master enable is set after the following
	// instruction has completed
	EnableInterrupts

	// DI instruction
	DisableInterrupts

	// RETI instruction. the interrupt master enable is set immediately
	EnableImmediate

	// the 0xcb prefix. the next opcode is looked up in the prefixed table
	Prefix

	// undefined opcode. the CPU locks up
	Lock
)

func (c Control) String() string {
	switch c {
	case NoControl:
		return "none"
	case Halt:
		return "halt"
	case Stop:
		return "stop"
	case EnableInterrupts:
		return "enable interrupts"
	case DisableInterrupts:
		return "disable interrupts"
	case EnableImmediate:
		return "enable interrupts immediately"
	case Prefix:
		return "prefix"
	case Lock:
		return "lock"
	}
	return "unknown control"
}

// Context is threaded through the micro-operations of a single instruction.
// It is discarded when the instruction completes.
type Context struct {
	// operand bytes or intermediate values
	Lo uint8
	Hi uint8

	// intermediate address or result
	Addr uint16

	// signal to the CPU
	Control Control
}

// Word returns the Hi and Lo fields as a 16-bit value.
func (ctx Context) Word() uint16 {
	return uint16(ctx.Hi)<<8 | uint16(ctx.Lo)
}

// Exec is the work performed by a micro-operation. The data argument is the
// operand byte if the micro-operation has the Operand field set. Otherwise it
// is zero.
type Exec func(regs *registers.File, mem bus.Memory, data uint8, ctx Context) Context

// Classifier returns the kind of OAM corruption that a micro-operation can
// cause and the address the IDU places on the bus. It is called before Exec so
// it sees the registers as they were before the micro-operation.
type Classifier func(regs *registers.File) (oambug.Kind, uint16)

// MicroOp is the work of the CPU in a single cycle.
type MicroOp struct {
	// read the byte at PC and advance PC before calling Exec
	Operand bool

	// how Exec uses the bus
	Access Access

	// the micro-operation occupies the bus for the entire cycle. true for any
	// micro-operation that accesses the bus. the micro-operation that runs in
	// the opcode-fetch cycle must not have this set
	EndCycle bool

	// nil if the cycle is purely internal
	Exec Exec

	// if Condition is not nil and returns false then the remaining
	// micro-operations of the instruction are dropped. it is called after
	// Exec
	Condition func(regs *registers.File) bool

	// nil if the micro-operation can not trigger OAM corruption
	Corrupts Classifier
}

// Definition defines each instruction in the instruction set.
type Definition struct {
	OpCode   uint8
	Prefixed bool
	Mnemonic string

	// number of bytes including the opcode and any prefix
	Bytes int

	// number of cycles if the instruction is not conditional or if the
	// condition is met. this is the same as the length of the Steps slice
	Cycles int

	// number of cycles if the condition is not met. the same as Cycles if
	// the instruction is not conditional
	CyclesNotTaken int

	Steps []MicroOp

	Undefined bool
}

func (defn Definition) String() string {
	if defn.Undefined {
		if defn.Prefixed {
			return fmt.Sprintf("cb %02x undefined", defn.OpCode)
		}
		return fmt.Sprintf("%02x undefined", defn.OpCode)
	}
	op := fmt.Sprintf("%02x", defn.OpCode)
	if defn.Prefixed {
		op = fmt.Sprintf("cb %02x", defn.OpCode)
	}
	if defn.IsConditional() {
		return fmt.Sprintf("%s %s +%dbytes (%d/%d cycles)", op, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.CyclesNotTaken)
	}
	return fmt.Sprintf("%s %s +%dbytes (%d cycles)", op, defn.Mnemonic, defn.Bytes, defn.Cycles)
}

// IsConditional returns true if the number of cycles taken by the instruction
// depends on the state of the flags.
func (defn Definition) IsConditional() bool {
	return defn.Cycles != defn.CyclesNotTaken
}

// the tables are built once and are never changed
var primary, prefixed = buildPrimary(), buildPrefixed()

// Lookup returns the definition for the opcode. If prefixed is true the
// definition is taken from the table for opcodes following the 0xcb prefix.
func Lookup(opcode uint8, isPrefixed bool) *Definition {
	if isPrefixed {
		return prefixed[opcode]
	}
	return primary[opcode]
}

// GetDefinitions returns every definition in both tables. The primary table
// comes first.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 0, len(primary)+len(prefixed))
	defs = append(defs, primary[:]...)
	defs = append(defs, prefixed[:]...)
	return defs
}

// finalise fills in the fields of the definition that can be derived from the
// list of micro-operations
func finalise(defn *Definition) *Definition {
	defn.Cycles = len(defn.Steps)
	defn.CyclesNotTaken = defn.Cycles
	if defn.Bytes == 0 {
		defn.Bytes = 1
		if defn.Prefixed {
			defn.Bytes = 2
		}
		for _, s := range defn.Steps {
			if s.Operand {
				defn.Bytes++
			}
		}
	}
	for i, s := range defn.Steps {
		if s.Condition != nil {
			defn.CyclesNotTaken = i + 1
			break
		}
	}
	return defn
}
