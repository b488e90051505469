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

// UndefinedOpcodes lists the opcodes of the primary table that have no
// instruction. Executing any of them locks the CPU.
var UndefinedOpcodes = []uint8{0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd}

// the register pairs in the order of the pair field (bits 4 and 5) of the
// opcode. PUSH and POP use AF in place of SP
var pairs = [4]registers.Reg16{registers.BC, registers.DE, registers.HL, registers.SP}
var stackPairs = [4]registers.Reg16{registers.BC, registers.DE, registers.HL, registers.AF}

func buildPrimary() [256]*Definition {
	var t [256]*Definition

	def := func(op uint8, mnemonic string, steps ...MicroOp) *Definition {
		t[op] = finalise(&Definition{OpCode: op, Mnemonic: mnemonic, Steps: steps})
		return t[op]
	}

	def(0x00, "NOP", fetch)

	for i, r := range pairs {
		p := uint8(i) << 4

		def(0x01|p, fmt.Sprintf("LD %s,nn", r), fetch, operandLo,
			operand(func(regs *registers.File, data uint8, ctx Context) Context {
				ctx.Hi = data
				regs.SetPair(r, ctx.Word())
				return ctx
			}))

		def(0x03|p, fmt.Sprintf("INC %s", r), fetch,
			work(func(regs *registers.File) {
				regs.SetPair(r, regs.Pair(r)+1)
			}).corrupting(corrupts(oambug.Write, r)))

		def(0x0b|p, fmt.Sprintf("DEC %s", r), fetch,
			work(func(regs *registers.File) {
				regs.SetPair(r, regs.Pair(r)-1)
			}).corrupting(corrupts(oambug.Write, r)))

		def(0x09|p, fmt.Sprintf("ADD HL,%s", r), fetch,
			work(func(regs *registers.File) {
				addHL(regs, regs.Pair(r))
			}))
	}

	// loads between A and memory addressed by a register pair
	indirect := []struct {
		op     uint8
		name   string
		pair   registers.Reg16
		adjust int
		read   oambug.Kind
	}{
		{op: 0x02, name: "(BC)", pair: registers.BC, read: oambug.Read},
		{op: 0x12, name: "(DE)", pair: registers.DE, read: oambug.Read},
		{op: 0x22, name: "(HL+)", pair: registers.HL, adjust: 1, read: oambug.ReadIncDec},
		{op: 0x32, name: "(HL-)", pair: registers.HL, adjust: -1, read: oambug.ReadIncDec},
	}
	for _, ind := range indirect {
		store := write(at(ind.pair), valueOf(registers.A)).corrupting(corrupts(oambug.Write, ind.pair))
		store.Exec = adjustAfter(store.Exec, ind.pair, ind.adjust)
		def(ind.op, fmt.Sprintf("LD %s,A", ind.name), fetch, store)

		load := read(at(ind.pair), loadA).corrupting(corrupts(ind.read, ind.pair))
		load.Exec = adjustAfter(load.Exec, ind.pair, ind.adjust)
		def(ind.op|0x08, fmt.Sprintf("LD A,%s", ind.name), fetch, load)
	}

	for r := registers.B; r <= registers.A; r++ {
		y := uint8(r) << 3

		if r == registers.IndirectHL {
			def(0x34, "INC (HL)", fetch,
				read(at(registers.HL), storeLo).corrupting(corrupts(oambug.Read, registers.HL)),
				write(at(registers.HL), func(regs *registers.File, ctx Context) uint8 {
					v := registers.NewRegister(ctx.Lo, "")
					inc8(&v, &regs.F)
					return v.Value()
				}).corrupting(corrupts(oambug.Write, registers.HL)),
			)
			def(0x35, "DEC (HL)", fetch,
				read(at(registers.HL), storeLo).corrupting(corrupts(oambug.Read, registers.HL)),
				write(at(registers.HL), func(regs *registers.File, ctx Context) uint8 {
					v := registers.NewRegister(ctx.Lo, "")
					dec8(&v, &regs.F)
					return v.Value()
				}).corrupting(corrupts(oambug.Write, registers.HL)),
			)
			def(0x36, "LD (HL),n", fetch, operandLo,
				write(at(registers.HL), valueLo).corrupting(corrupts(oambug.Write, registers.HL)),
			)
			continue
		}

		def(0x04|y, fmt.Sprintf("INC %s", r), work(func(regs *registers.File) {
			inc8(regs.Reg(r), &regs.F)
		}))
		def(0x05|y, fmt.Sprintf("DEC %s", r), work(func(regs *registers.File) {
			dec8(regs.Reg(r), &regs.F)
		}))
		def(0x06|y, fmt.Sprintf("LD %s,n", r), fetch,
			operand(func(regs *registers.File, data uint8, ctx Context) Context {
				regs.Reg(r).Load(data)
				return ctx
			}))
	}

	def(0x07, "RLCA", work(rotateA(rlc)))
	def(0x0f, "RRCA", work(rotateA(rrc)))
	def(0x17, "RLA", work(rotateA(rl)))
	def(0x1f, "RRA", work(rotateA(rr)))

	def(0x08, "LD (nn),SP", fetch, operandLo, operandHi,
		write(atOperand, func(regs *registers.File, _ Context) uint8 {
			return uint8(regs.SP.Address())
		}),
		write(func(_ *registers.File, ctx Context) uint16 {
			return ctx.Word() + 1
		}, func(regs *registers.File, _ Context) uint8 {
			return uint8(regs.SP.Address() >> 8)
		}),
	)

	// the byte following STOP is skipped
	stop := def(0x10, "STOP", MicroOp{
		Exec: func(regs *registers.File, _ bus.Memory, _ uint8, ctx Context) Context {
			regs.PC.Increment()
			ctx.Control = Stop
			return ctx
		},
	})
	stop.Bytes = 2

	def(0x18, "JR e", fetch, operandLo, internal(relativeJump))
	for cc, cond := range conditions {
		def(0x20|uint8(cc)<<3, fmt.Sprintf("JR %s,e", conditionMnemonics[cc]), fetch,
			operandLo.when(cond), internal(relativeJump))
	}

	def(0x27, "DAA", work(daa))
	def(0x2f, "CPL", work(cpl))
	def(0x37, "SCF", work(scf))
	def(0x3f, "CCF", work(ccf))

	// register to register loads. the opcode that would be LD (HL),(HL) is
	// HALT
	for dst := registers.B; dst <= registers.A; dst++ {
		for src := registers.B; src <= registers.A; src++ {
			op := 0x40 | uint8(dst)<<3 | uint8(src)
			mnemonic := fmt.Sprintf("LD %s,%s", dst, src)
			switch {
			case dst == registers.IndirectHL && src == registers.IndirectHL:
				def(op, "HALT", signal(Halt))
			case src == registers.IndirectHL:
				def(op, mnemonic, fetch,
					read(at(registers.HL), func(regs *registers.File, v uint8, ctx Context) Context {
						regs.Reg(dst).Load(v)
						return ctx
					}).corrupting(corrupts(oambug.Read, registers.HL)))
			case dst == registers.IndirectHL:
				def(op, mnemonic, fetch,
					write(at(registers.HL), valueOf(src)).corrupting(corrupts(oambug.Write, registers.HL)))
			default:
				def(op, mnemonic, work(func(regs *registers.File) {
					regs.Reg(dst).Load(regs.Reg(src).Value())
				}))
			}
		}
	}

	for g, alu := range aluOps {
		for src := registers.B; src <= registers.A; src++ {
			op := 0x80 | uint8(g)<<3 | uint8(src)
			mnemonic := fmt.Sprintf("%s%s", aluMnemonics[g], src)
			if src == registers.IndirectHL {
				def(op, mnemonic, fetch,
					read(at(registers.HL), func(regs *registers.File, v uint8, ctx Context) Context {
						alu(regs, v)
						return ctx
					}).corrupting(corrupts(oambug.Read, registers.HL)))
				continue
			}
			def(op, mnemonic, work(func(regs *registers.File) {
				alu(regs, regs.Reg(src).Value())
			}))
		}

		def(0xc6|uint8(g)<<3, fmt.Sprintf("%sn", aluMnemonics[g]), fetch,
			operand(func(regs *registers.File, data uint8, ctx Context) Context {
				alu(regs, data)
				return ctx
			}))
	}

	for cc, cond := range conditions {
		y := uint8(cc) << 3
		name := conditionMnemonics[cc]

		def(0xc0|y, fmt.Sprintf("RET %s", name), fetch,
			MicroOp{Condition: cond},
			pop(false, nil), pop(true, nil), internal(jumpToOperand))

		def(0xc2|y, fmt.Sprintf("JP %s,nn", name), fetch,
			operandLo, operandHi.when(cond), internal(jumpToOperand))

		def(0xc4|y, fmt.Sprintf("CALL %s,nn", name), fetch,
			operandLo, operandHi.when(cond),
			decSP, pushHi(pcHi), pushLo(pcLo, loadPC))
	}

	for i, r := range stackPairs {
		p := uint8(i) << 4

		def(0xc1|p, fmt.Sprintf("POP %s", r), fetch,
			pop(false, nil),
			pop(true, func(regs *registers.File, ctx Context) {
				regs.SetPair(r, ctx.Word())
			}))

		def(0xc5|p, fmt.Sprintf("PUSH %s", r), fetch, decSP,
			pushHi(func(regs *registers.File, _ Context) uint8 {
				return uint8(regs.Pair(r) >> 8)
			}),
			pushLo(func(regs *registers.File, _ Context) uint8 {
				return uint8(regs.Pair(r))
			}, nil))
	}

	for n := uint16(0); n < 8; n++ {
		vector := n * 8
		def(0xc7|uint8(n)<<3, fmt.Sprintf("RST %02xh", vector), fetch, decSP,
			pushHi(pcHi),
			pushLo(pcLo, func(regs *registers.File, _ Context) {
				regs.PC.Load(vector)
			}))
	}

	def(0xc3, "JP nn", fetch, operandLo, operandHi, internal(jumpToOperand))
	def(0xc9, "RET", fetch, pop(false, nil), pop(true, nil), internal(jumpToOperand))
	def(0xd9, "RETI", fetch, pop(false, nil), pop(true, nil),
		internal(func(regs *registers.File, ctx Context) Context {
			ctx = jumpToOperand(regs, ctx)
			ctx.Control = EnableImmediate
			return ctx
		}))
	def(0xcd, "CALL nn", fetch, operandLo, operandHi, decSP, pushHi(pcHi), pushLo(pcLo, loadPC))
	def(0xcb, "PREFIX CB", signal(Prefix))

	def(0xe0, "LDH (n),A", fetch, operandLo, write(atHigh(valueLo), valueOf(registers.A)))
	def(0xf0, "LDH A,(n)", fetch, operandLo, read(atHigh(valueLo), loadA))
	def(0xe2, "LD (C),A", fetch, write(atHigh(valueOf(registers.C)), valueOf(registers.A)))
	def(0xf2, "LD A,(C)", fetch, read(atHigh(valueOf(registers.C)), loadA))
	def(0xea, "LD (nn),A", fetch, operandLo, operandHi, write(atOperand, valueOf(registers.A)))
	def(0xfa, "LD A,(nn)", fetch, operandLo, operandHi, read(atOperand, loadA))

	def(0xe8, "ADD SP,e", fetch, operandLo,
		internal(func(regs *registers.File, ctx Context) Context {
			ctx.Addr = addSP(regs, ctx.Lo)
			return ctx
		}),
		internal(func(regs *registers.File, ctx Context) Context {
			regs.SP.Load(ctx.Addr)
			return ctx
		}))
	def(0xf8, "LD HL,SP+e", fetch, operandLo,
		internal(func(regs *registers.File, ctx Context) Context {
			regs.SetPair(registers.HL, addSP(regs, ctx.Lo))
			return ctx
		}))
	def(0xf9, "LD SP,HL", fetch, work(func(regs *registers.File) {
		regs.SP.Load(regs.Pair(registers.HL))
	}))
	def(0xe9, "JP HL", work(func(regs *registers.File) {
		regs.PC.Load(regs.Pair(registers.HL))
	}))

	def(0xf3, "DI", signal(DisableInterrupts))
	def(0xfb, "EI", signal(EnableInterrupts))

	for _, op := range UndefinedOpcodes {
		d := def(op, "undefined", signal(Lock))
		d.Undefined = true
	}

	return t
}

func storeLo(_ *registers.File, v uint8, ctx Context) Context {
	ctx.Lo = v
	return ctx
}

func loadA(regs *registers.File, v uint8, ctx Context) Context {
	regs.A.Load(v)
	return ctx
}

func loadPC(regs *registers.File, ctx Context) {
	regs.PC.Load(ctx.Word())
}

func relativeJump(regs *registers.File, ctx Context) Context {
	regs.PC.Add(int8(ctx.Lo))
	return ctx
}

// adjustAfter wraps the Exec function so that the register pair is adjusted
// after the memory access. used by the (HL+) and (HL-) addressing modes
func adjustAfter(exec Exec, r registers.Reg16, adjust int) Exec {
	if adjust == 0 {
		return exec
	}
	return func(regs *registers.File, mem bus.Memory, data uint8, ctx Context) Context {
		ctx = exec(regs, mem, data, ctx)
		regs.SetPair(r, regs.Pair(r)+uint16(adjust))
		return ctx
	}
}
