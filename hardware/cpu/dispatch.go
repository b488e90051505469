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

package cpu

import (
	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/oambug"
)

// the stack pointer is placed on the bus by the IDU in each of the cycles that
// change it
func stackCorruption(regs *registers.File) (oambug.Kind, uint16) {
	return oambug.Write, regs.SP.Address()
}

// dispatchSequence returns the micro-operations that service an interrupt. The
// sequence is five cycles long:
//
//	1. internal
//	2. decrement SP
//	3. push high byte of PC, decrement SP
//	4. acknowledge interrupt, push low byte of PC
//	5. jump to vector
//
// The interrupt is acknowledged after the high byte of the PC has been
// pushed. If the push has overwritten the IE register such that no interrupt is
// pending any longer then the PC is set to zero.
func (mc *CPU) dispatchSequence() []instructions.MicroOp {
	return []instructions.MicroOp{
		{},
		{
			Corrupts: stackCorruption,
			Exec: func(regs *registers.File, _ bus.Memory, _ uint8, ctx instructions.Context) instructions.Context {
				regs.SP.Decrement()
				return ctx
			},
		},
		{
			Access:   instructions.Write,
			EndCycle: true,
			Corrupts: stackCorruption,
			Exec: func(regs *registers.File, mem bus.Memory, _ uint8, ctx instructions.Context) instructions.Context {
				mem.Write(regs.SP.Address(), uint8(regs.PC.Address()>>8))
				regs.SP.Decrement()
				return ctx
			},
		},
		{
			Access:   instructions.Write,
			EndCycle: true,
			Corrupts: stackCorruption,
			Exec: func(regs *registers.File, mem bus.Memory, _ uint8, ctx instructions.Context) instructions.Context {
				// vector is zero if there is no interrupt to acknowledge
				ctx.Addr, _ = mc.ints.Acknowledge()
				mem.Write(regs.SP.Address(), uint8(regs.PC.Address()))
				return ctx
			},
		},
		{
			Exec: func(regs *registers.File, _ bus.Memory, _ uint8, ctx instructions.Context) instructions.Context {
				regs.PC.Load(ctx.Addr)
				return ctx
			},
		},
	}
}

// start the dispatch sequence. the IME is cleared immediately
func (mc *CPU) beginDispatch() {
	mc.ints.BeginService()
	mc.steps = mc.dispatch
	mc.stepIdx = 0
	mc.ctx = instructions.Context{}
	mc.dispatching = true
}
