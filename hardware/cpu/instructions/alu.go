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
)

// aluOp performs an operation on the accumulator with the value.
type aluOp func(regs *registers.File, v uint8)

// ordered by the operation field (bits 3 to 5) of the opcode
var aluOps = [8]aluOp{aluAdd, aluAdc, aluSub, aluSbc, aluAnd, aluXor, aluOr, aluCp}

var aluMnemonics = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}

func aluAdd(regs *registers.File, v uint8) {
	c, h := regs.A.Add(v, false)
	regs.F.Zero = regs.A.IsZero()
	regs.F.Subtract = false
	regs.F.HalfCarry = h
	regs.F.Carry = c
}

func aluAdc(regs *registers.File, v uint8) {
	c, h := regs.A.Add(v, regs.F.Carry)
	regs.F.Zero = regs.A.IsZero()
	regs.F.Subtract = false
	regs.F.HalfCarry = h
	regs.F.Carry = c
}

func aluSub(regs *registers.File, v uint8) {
	c, h := regs.A.Subtract(v, false)
	regs.F.Zero = regs.A.IsZero()
	regs.F.Subtract = true
	regs.F.HalfCarry = h
	regs.F.Carry = c
}

func aluSbc(regs *registers.File, v uint8) {
	c, h := regs.A.Subtract(v, regs.F.Carry)
	regs.F.Zero = regs.A.IsZero()
	regs.F.Subtract = true
	regs.F.HalfCarry = h
	regs.F.Carry = c
}

func aluAnd(regs *registers.File, v uint8) {
	regs.A.AND(v)
	regs.F.Zero = regs.A.IsZero()
	regs.F.Subtract = false
	regs.F.HalfCarry = true
	regs.F.Carry = false
}

func aluXor(regs *registers.File, v uint8) {
	regs.A.XOR(v)
	regs.F.Zero = regs.A.IsZero()
	regs.F.Subtract = false
	regs.F.HalfCarry = false
	regs.F.Carry = false
}

func aluOr(regs *registers.File, v uint8) {
	regs.A.OR(v)
	regs.F.Zero = regs.A.IsZero()
	regs.F.Subtract = false
	regs.F.HalfCarry = false
	regs.F.Carry = false
}

// compare is a subtraction that discards the result
func aluCp(regs *registers.File, v uint8) {
	a := regs.A
	c, h := a.Subtract(v, false)
	regs.F.Zero = a.IsZero()
	regs.F.Subtract = true
	regs.F.HalfCarry = h
	regs.F.Carry = c
}

// the carry flag is not affected by 8-bit increment and decrement
func inc8(r *registers.Register, f *registers.Flags) {
	h := r.Increment()
	f.Zero = r.IsZero()
	f.Subtract = false
	f.HalfCarry = h
}

func dec8(r *registers.Register, f *registers.Flags) {
	h := r.Decrement()
	f.Zero = r.IsZero()
	f.Subtract = true
	f.HalfCarry = h
}

// daa adjusts the accumulator after a BCD addition or subtraction. the
// subtract and half-carry flags of the previous operation decide the
// adjustment
func daa(regs *registers.File) {
	a := regs.A.Value()
	if regs.F.Subtract {
		if regs.F.Carry {
			a -= 0x60
		}
		if regs.F.HalfCarry {
			a -= 0x06
		}
	} else {
		if regs.F.Carry || a > 0x99 {
			a += 0x60
			regs.F.Carry = true
		}
		if regs.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	}
	regs.A.Load(a)
	regs.F.Zero = a == 0
	regs.F.HalfCarry = false
}

func cpl(regs *registers.File) {
	regs.A.XOR(0xff)
	regs.F.Subtract = true
	regs.F.HalfCarry = true
}

func scf(regs *registers.File) {
	regs.F.Subtract = false
	regs.F.HalfCarry = false
	regs.F.Carry = true
}

func ccf(regs *registers.File) {
	regs.F.Subtract = false
	regs.F.HalfCarry = false
	regs.F.Carry = !regs.F.Carry
}

// addHL adds a 16-bit value to HL. half-carry is from bit 11 and carry is
// from bit 15. the zero flag is not affected
func addHL(regs *registers.File, v uint16) {
	hl := regs.Pair(registers.HL)
	regs.F.Subtract = false
	regs.F.HalfCarry = (hl&0x0fff)+(v&0x0fff) > 0x0fff
	regs.F.Carry = uint32(hl)+uint32(v) > 0xffff
	regs.SetPair(registers.HL, hl+v)
}

// addSP returns the stack pointer plus the signed offset. the flags are set
// from an unsigned addition of the offset to the low byte of the stack
// pointer. used by ADD SP,e and LD HL,SP+e
func addSP(regs *registers.File, e uint8) uint16 {
	sp := regs.SP.Address()
	regs.F.Zero = false
	regs.F.Subtract = false
	regs.F.HalfCarry = (sp&0x0f)+uint16(e&0x0f) > 0x0f
	regs.F.Carry = (sp&0xff)+uint16(e) > 0xff
	return uint16(int32(sp) + int32(int8(e)))
}

// shiftOp is one of the shift and rotate operations of the prefixed table.
type shiftOp func(r *registers.Register, f *registers.Flags)

// ordered by the operation field (bits 3 to 5) of the prefixed opcode
var shiftOps = [8]shiftOp{rlc, rrc, rl, rr, sla, sra, swap, srl}

var shiftMnemonics = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func shiftFlags(r *registers.Register, f *registers.Flags, carry bool) {
	f.Zero = r.IsZero()
	f.Subtract = false
	f.HalfCarry = false
	f.Carry = carry
}

func rlc(r *registers.Register, f *registers.Flags) {
	shiftFlags(r, f, r.RLC())
}

func rrc(r *registers.Register, f *registers.Flags) {
	shiftFlags(r, f, r.RRC())
}

func rl(r *registers.Register, f *registers.Flags) {
	shiftFlags(r, f, r.RL(f.Carry))
}

func rr(r *registers.Register, f *registers.Flags) {
	shiftFlags(r, f, r.RR(f.Carry))
}

func sla(r *registers.Register, f *registers.Flags) {
	shiftFlags(r, f, r.SLA())
}

func sra(r *registers.Register, f *registers.Flags) {
	shiftFlags(r, f, r.SRA())
}

func swap(r *registers.Register, f *registers.Flags) {
	r.Swap()
	shiftFlags(r, f, false)
}

func srl(r *registers.Register, f *registers.Flags) {
	shiftFlags(r, f, r.SRL())
}

// the accumulator rotates of the primary table always clear the zero flag
func rotateA(op shiftOp) func(regs *registers.File) {
	return func(regs *registers.File) {
		op(&regs.A, &regs.F)
		regs.F.Zero = false
	}
}

func bit(n uint8, v uint8, f *registers.Flags) {
	f.Zero = v&(1<<n) == 0
	f.Subtract = false
	f.HalfCarry = true
}
