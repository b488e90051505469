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
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/oambug"
)

// the micro-operation that runs in the opcode-fetch cycle of an instruction
// that has no other work to do in that cycle
var fetch = MicroOp{}

// work in the opcode-fetch cycle, or in any cycle without bus access
func work(f func(regs *registers.File)) MicroOp {
	return MicroOp{
		Exec: func(regs *registers.File, _ bus.Memory, _ uint8, ctx Context) Context {
			f(regs)
			return ctx
		},
	}
}

// internal cycle that uses the context
func internal(f func(regs *registers.File, ctx Context) Context) MicroOp {
	return MicroOp{
		Exec: func(regs *registers.File, _ bus.Memory, _ uint8, ctx Context) Context {
			return f(regs, ctx)
		},
	}
}

// signal sends a control signal to the CPU. it is always the only
// micro-operation of an instruction
func signal(c Control) MicroOp {
	return MicroOp{
		Exec: func(_ *registers.File, _ bus.Memory, _ uint8, ctx Context) Context {
			ctx.Control = c
			return ctx
		},
	}
}

// operand read
func operand(f func(regs *registers.File, data uint8, ctx Context) Context) MicroOp {
	return MicroOp{
		Operand:  true,
		EndCycle: true,
		Exec: func(regs *registers.File, _ bus.Memory, data uint8, ctx Context) Context {
			return f(regs, data, ctx)
		},
	}
}

var operandLo = operand(func(_ *registers.File, data uint8, ctx Context) Context {
	ctx.Lo = data
	return ctx
})

var operandHi = operand(func(_ *registers.File, data uint8, ctx Context) Context {
	ctx.Hi = data
	return ctx
})

// read from memory. the address function is called before the read and the
// result function is called with the value read
func read(address func(regs *registers.File, ctx Context) uint16,
	result func(regs *registers.File, v uint8, ctx Context) Context) MicroOp {
	return MicroOp{
		Access:   Read,
		EndCycle: true,
		Exec: func(regs *registers.File, mem bus.Memory, _ uint8, ctx Context) Context {
			return result(regs, mem.Read(address(regs, ctx)), ctx)
		},
	}
}

// write to memory
func write(address func(regs *registers.File, ctx Context) uint16,
	value func(regs *registers.File, ctx Context) uint8) MicroOp {
	return MicroOp{
		Access:   Write,
		EndCycle: true,
		Exec: func(regs *registers.File, mem bus.Memory, _ uint8, ctx Context) Context {
			mem.Write(address(regs, ctx), value(regs, ctx))
			return ctx
		},
	}
}

// the address pointed to by a register pair
func at(r registers.Reg16) func(regs *registers.File, _ Context) uint16 {
	return func(regs *registers.File, _ Context) uint16 {
		return regs.Pair(r)
	}
}

// the address formed by the operand bytes
func atOperand(_ *registers.File, ctx Context) uint16 {
	return ctx.Word()
}

// an address in the high page of memory
func atHigh(lo func(regs *registers.File, ctx Context) uint8) func(regs *registers.File, ctx Context) uint16 {
	return func(regs *registers.File, ctx Context) uint16 {
		return 0xff00 | uint16(lo(regs, ctx))
	}
}

func valueOf(r registers.Reg8) func(regs *registers.File, _ Context) uint8 {
	return func(regs *registers.File, _ Context) uint8 {
		return regs.Reg(r).Value()
	}
}

func valueLo(_ *registers.File, ctx Context) uint8 {
	return ctx.Lo
}

// the IDU places the value of the register pair on the bus
func corrupts(k oambug.Kind, r registers.Reg16) Classifier {
	return func(regs *registers.File) (oambug.Kind, uint16) {
		return k, regs.Pair(r)
	}
}

// the internal cycle before a push. the stack pointer is decremented
var decSP = MicroOp{
	Corrupts: corrupts(oambug.Write, registers.SP),
	Exec: func(regs *registers.File, _ bus.Memory, _ uint8, ctx Context) Context {
		regs.SP.Decrement()
		return ctx
	},
}

// push the high byte and decrement the stack pointer ready for the low byte
func pushHi(value func(regs *registers.File, ctx Context) uint8) MicroOp {
	return MicroOp{
		Access:   Write,
		EndCycle: true,
		Corrupts: corrupts(oambug.Write, registers.SP),
		Exec: func(regs *registers.File, mem bus.Memory, _ uint8, ctx Context) Context {
			mem.Write(regs.SP.Address(), value(regs, ctx))
			regs.SP.Decrement()
			return ctx
		},
	}
}

// push the low byte. the then function is called after the write and can be
// nil
func pushLo(value func(regs *registers.File, ctx Context) uint8, then func(regs *registers.File, ctx Context)) MicroOp {
	return MicroOp{
		Access:   Write,
		EndCycle: true,
		Corrupts: corrupts(oambug.Write, registers.SP),
		Exec: func(regs *registers.File, mem bus.Memory, _ uint8, ctx Context) Context {
			mem.Write(regs.SP.Address(), value(regs, ctx))
			if then != nil {
				then(regs, ctx)
			}
			return ctx
		},
	}
}

// pop a byte into the context. the then function is called after the read
// and can be nil
func pop(hi bool, then func(regs *registers.File, ctx Context)) MicroOp {
	return MicroOp{
		Access:   Read,
		EndCycle: true,
		Corrupts: corrupts(oambug.ReadIncDec, registers.SP),
		Exec: func(regs *registers.File, mem bus.Memory, _ uint8, ctx Context) Context {
			v := mem.Read(regs.SP.Address())
			regs.SP.Increment()
			if hi {
				ctx.Hi = v
			} else {
				ctx.Lo = v
			}
			if then != nil {
				then(regs, ctx)
			}
			return ctx
		},
	}
}

func jumpToOperand(regs *registers.File, ctx Context) Context {
	regs.PC.Load(ctx.Word())
	return ctx
}

func pcHi(regs *registers.File, _ Context) uint8 {
	return uint8(regs.PC.Address() >> 8)
}

func pcLo(regs *registers.File, _ Context) uint8 {
	return uint8(regs.PC.Address())
}

// with a condition the remaining micro-operations are dropped if the condition
// is false
func (op MicroOp) when(cond func(regs *registers.File) bool) MicroOp {
	op.Condition = cond
	return op
}

// classified for the OAM bug
func (op MicroOp) corrupting(c Classifier) MicroOp {
	op.Corrupts = c
	return op
}

// ordered by the condition field (bits 3 and 4) of the opcode
var conditions = [4]func(regs *registers.File) bool{
	func(regs *registers.File) bool { return !regs.F.Zero },
	func(regs *registers.File) bool { return regs.F.Zero },
	func(regs *registers.File) bool { return !regs.F.Carry },
	func(regs *registers.File) bool { return regs.F.Carry },
}

var conditionMnemonics = [4]string{"NZ", "Z", "NC", "C"}
