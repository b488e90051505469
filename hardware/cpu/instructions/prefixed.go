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
	"github.com/jetsetilly/gopherdmg/hardware/oambug"
)

// every opcode following the 0xcb prefix is defined. the opcode is divided
// into three fields: the group (bits 6 and 7), the operation or bit number
// (bits 3 to 5) and the register (bits 0 to 2)
func buildPrefixed() [256]*Definition {
	var t [256]*Definition

	def := func(op uint8, mnemonic string, steps ...MicroOp) {
		t[op] = finalise(&Definition{OpCode: op, Prefixed: true, Mnemonic: mnemonic, Steps: steps})
	}

	// read-modify-write of the byte at HL. three cycles
	modifyHL := func(op uint8, mnemonic string, f func(r *registers.Register, flags *registers.Flags)) {
		def(op, mnemonic, fetch,
			read(at(registers.HL), storeLo).corrupting(corrupts(oambug.Read, registers.HL)),
			write(at(registers.HL), func(regs *registers.File, ctx Context) uint8 {
				v := registers.NewRegister(ctx.Lo, "")
				f(&v, &regs.F)
				return v.Value()
			}).corrupting(corrupts(oambug.Write, registers.HL)),
		)
	}

	for y := uint8(0); y < 8; y++ {
		for r := registers.B; r <= registers.A; r++ {
			z := uint8(r)

			// rotates and shifts
			shift := shiftOps[y]
			op := y<<3 | z
			mnemonic := fmt.Sprintf("%s %s", shiftMnemonics[y], r)
			if r == registers.IndirectHL {
				modifyHL(op, mnemonic, shift)
			} else {
				def(op, mnemonic, work(func(regs *registers.File) {
					shift(regs.Reg(r), &regs.F)
				}))
			}

			// bit test. there is no write so the (HL) form is one cycle
			// shorter than the other groups
			n := y
			op = 0x40 | y<<3 | z
			mnemonic = fmt.Sprintf("BIT %d,%s", n, r)
			if r == registers.IndirectHL {
				def(op, mnemonic, fetch,
					read(at(registers.HL), func(regs *registers.File, v uint8, ctx Context) Context {
						bit(n, v, &regs.F)
						return ctx
					}).corrupting(corrupts(oambug.Read, registers.HL)))
			} else {
				def(op, mnemonic, work(func(regs *registers.File) {
					bit(n, regs.Reg(r).Value(), &regs.F)
				}))
			}

			// bit reset
			res := func(v *registers.Register, _ *registers.Flags) {
				v.ResetBit(n)
			}
			op = 0x80 | y<<3 | z
			mnemonic = fmt.Sprintf("RES %d,%s", n, r)
			if r == registers.IndirectHL {
				modifyHL(op, mnemonic, res)
			} else {
				def(op, mnemonic, work(func(regs *registers.File) {
					res(regs.Reg(r), &regs.F)
				}))
			}

			// bit set
			set := func(v *registers.Register, _ *registers.Flags) {
				v.SetBit(n)
			}
			op = 0xc0 | y<<3 | z
			mnemonic = fmt.Sprintf("SET %d,%s", n, r)
			if r == registers.IndirectHL {
				modifyHL(op, mnemonic, set)
			} else {
				def(op, mnemonic, work(func(regs *registers.File) {
					set(regs.Reg(r), &regs.F)
				}))
			}
		}
	}

	return t
}
