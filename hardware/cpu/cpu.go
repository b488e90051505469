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
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/instance"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/oambug"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Mode is the state of the CPU between cycles.
type Mode int

// List of valid Mode values.
const (
	// the next cycle will fetch an opcode
	Fetching Mode = iota

	// the next cycle will run a queued micro-operation
	Executing

	// the CPU is waiting for an interrupt. also reported when the CPU has
	// locked up
	Halted

	// the CPU is waiting for a joypad press
	Stopped
)

func (m Mode) String() string {
	switch m {
	case Fetching:
		return "fetching"
	case Executing:
		return "executing"
	case Halted:
		return "halted"
	case Stopped:
		return "stopped"
	}
	return "unknown mode"
}

// OAMBug is implemented by the OAM corruption model. Trigger is called when a
// micro-operation causes the IDU to place an address on the bus.
type OAMBug interface {
	Trigger(k oambug.Kind, address uint16) bool
}

// CPU implements the SM83 as found in the DMG.
type CPU struct {
	instance *instance.Instance
	perm     logger.Permission

	Regs registers.File

	mem  bus.Memory
	ints *interrupts.Controller
	oam  OAMBug

	// the definition of the current or most recent instruction
	defn *instructions.Definition

	// the micro-operations being executed and the index of the next one to
	// run. when the index is equal to the length of the slice the CPU is at an
	// instruction boundary
	steps   []instructions.MicroOp
	stepIdx int
	ctx     instructions.Context

	// the 0xcb prefix has been executed and the next opcode is to be looked
	// up in the prefixed table
	prefixed bool

	// the micro-operations being run are the interrupt dispatch sequence
	dispatching bool
	dispatch    []instructions.MicroOp

	halted  bool
	stopped bool
	locked  bool

	// the next opcode fetch does not increment the PC
	haltBug bool

	// an instruction or the dispatch sequence completed in the most recent
	// cycle
	boundary bool

	cycles uint64
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// instance argument can be nil in which case the default preferences are used
// and logging is always allowed.
//
// The CPU is not reset. Call Reset() before stepping the CPU for the first
// time.
func NewCPU(instance *instance.Instance, mem bus.Memory, ints *interrupts.Controller) *CPU {
	mc := &CPU{
		instance: instance,
		perm:     logger.Allow,
		Regs:     registers.NewFile(),
		mem:      mem,
		ints:     ints,
	}
	if instance != nil {
		mc.perm = instance
	}
	mc.dispatch = mc.dispatchSequence()
	return mc
}

// SetLogPermission changes the permission used when the CPU makes a log
// entry. By default the instance given to NewCPU() is used.
func (mc *CPU) SetLogPermission(perm logger.Permission) {
	mc.perm = perm
}

// AttachOAMBug connects the OAM corruption model to the CPU. A nil value
// detaches the current model.
func (mc *CPU) AttachOAMBug(oam OAMBug) {
	mc.oam = oam
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s", mc.Regs, mc.Mode())
}

// Reset the CPU to the state left by the boot ROM. If the RandomState
// preference is set then the registers other than PC are given random values.
// The interrupt controller is also reset.
func (mc *CPU) Reset() {
	mc.Regs = registers.NewFile()
	mc.steps = nil
	mc.stepIdx = 0
	mc.ctx = instructions.Context{}
	mc.defn = nil
	mc.prefixed = false
	mc.dispatching = false
	mc.halted = false
	mc.stopped = false
	mc.locked = false
	mc.haltBug = false
	mc.boundary = false

	if mc.instance != nil && mc.instance.Prefs.RandomState.Get().(bool) {
		var r [9]uint8
		mc.instance.Random.Bytes(r[:])
		mc.Regs.SetPair(registers.AF, uint16(r[0])<<8|uint16(r[1]))
		mc.Regs.SetPair(registers.BC, uint16(r[2])<<8|uint16(r[3]))
		mc.Regs.SetPair(registers.DE, uint16(r[4])<<8|uint16(r[5]))
		mc.Regs.SetPair(registers.HL, uint16(r[6])<<8|uint16(r[7]))
		mc.Regs.SP.Load(0xff00 | uint16(r[8]))
	} else {
		mc.Regs.SetPair(registers.AF, 0x01b0)
		mc.Regs.SetPair(registers.BC, 0x0013)
		mc.Regs.SetPair(registers.DE, 0x00d8)
		mc.Regs.SetPair(registers.HL, 0x014d)
		mc.Regs.SP.Load(0xfffe)
	}
	mc.Regs.PC.Load(0x0100)

	mc.ints.Reset()
}

// CycleCount returns the number of cycles since the CPU was created. It
// implements the random.Clock interface.
func (mc *CPU) CycleCount() uint64 {
	return mc.cycles
}

// Mode returns the state of the CPU.
func (mc *CPU) Mode() Mode {
	switch {
	case mc.locked || mc.halted:
		return Halted
	case mc.stopped:
		return Stopped
	case mc.stepIdx < len(mc.steps):
		return Executing
	}
	return Fetching
}

// Locked returns true if the CPU has executed an undefined opcode.
func (mc *CPU) Locked() bool {
	return mc.locked
}

// Instruction returns the definition of the instruction currently being
// executed or the most recently completed instruction. Returns nil if no
// instruction has been fetched since the last reset.
func (mc *CPU) Instruction() *instructions.Definition {
	return mc.defn
}

// Dispatching returns true if the CPU is running the interrupt dispatch
// sequence.
func (mc *CPU) Dispatching() bool {
	return mc.dispatching && mc.stepIdx < len(mc.steps)
}

// Boundary returns true if an instruction or the dispatch sequence completed
// in the most recent cycle.
func (mc *CPU) Boundary() bool {
	return mc.boundary
}

// midInstruction returns true if the CPU is not at an instruction boundary
func (mc *CPU) midInstruction() bool {
	return mc.stepIdx < len(mc.steps) || mc.prefixed
}

// Wake the CPU from the stopped state. Called when a joypad button is
// pressed.
func (mc *CPU) Wake() {
	mc.stopped = false
}

// Step the CPU by one cycle. The return value is the number of cycles
// consumed, which is always one.
func (mc *CPU) Step() int {
	mc.cycles++
	mc.boundary = false

	if mc.locked || mc.stopped {
		return 1
	}

	if mc.halted {
		// an enabled interrupt wakes the CPU regardless of the IME
		if mc.ints.Pending() == 0 {
			return 1
		}
		mc.halted = false
		if mc.ints.ShouldService() {
			mc.beginDispatch()
		}
	}

	if mc.stepIdx >= len(mc.steps) {
		mc.fetch()
	}

	mc.run()

	return 1
}

// ExecuteInstruction steps the CPU until the current instruction has
// completed. The interrupt dispatch sequence counts as an instruction. If the
// CPU is halted, stopped or locked then only one cycle is run. Returns the
// number of cycles consumed.
func (mc *CPU) ExecuteInstruction() int {
	var n int
	for {
		n += mc.Step()
		if mc.boundary || mc.halted || mc.stopped || mc.locked {
			return n
		}
	}
}

// fetch the opcode at the PC and queue its micro-operations
func (mc *CPU) fetch() {
	opcode := mc.mem.Read(mc.Regs.PC.Address())
	if mc.haltBug {
		mc.haltBug = false
	} else {
		mc.Regs.PC.Increment()
	}

	mc.defn = instructions.Lookup(opcode, mc.prefixed)
	mc.prefixed = false
	mc.dispatching = false
	mc.steps = mc.defn.Steps
	mc.stepIdx = 0
	mc.ctx = instructions.Context{}
}

// run the next micro-operation
func (mc *CPU) run() {
	s := &mc.steps[mc.stepIdx]
	mc.stepIdx++

	var data uint8
	if s.Operand {
		data = mc.mem.Read(mc.Regs.PC.Address())
		mc.Regs.PC.Increment()
	}

	// the classifier must see the registers before the micro-operation
	// changes them
	kind := oambug.None
	var address uint16
	if s.Corrupts != nil && mc.oam != nil {
		kind, address = s.Corrupts(&mc.Regs)
	}

	if s.Exec != nil {
		mc.ctx = s.Exec(&mc.Regs, mc.mem, data, mc.ctx)
	}

	if kind != oambug.None {
		mc.oam.Trigger(kind, address)
	}

	if s.Condition != nil && !s.Condition(&mc.Regs) {
		mc.stepIdx = len(mc.steps)
	}

	if mc.ctx.Control != instructions.NoControl {
		mc.control()
		mc.ctx.Control = instructions.NoControl
	}

	if mc.stepIdx >= len(mc.steps) {
		mc.endInstruction()
	}
}

// act on the control signal from the micro-operation
func (mc *CPU) control() {
	switch mc.ctx.Control {
	case instructions.Halt:
		// with the IME clear and an interrupt already pending the CPU does
		// not halt. on hardware the byte following the HALT is then read
		// twice
		if !mc.ints.IME() && mc.ints.Pending() != 0 {
			if mc.instance == nil || mc.instance.Prefs.HaltBug.Get().(bool) {
				mc.haltBug = true
			}
			return
		}
		mc.halted = true
	case instructions.Stop:
		mc.stopped = true
	case instructions.EnableInterrupts:
		mc.ints.EnableDelayed()
	case instructions.DisableInterrupts:
		mc.ints.Disable()
	case instructions.EnableImmediate:
		mc.ints.EnableImmediate()
	case instructions.Prefix:
		mc.prefixed = true
	case instructions.Lock:
		mc.locked = true
		logger.Logf(mc.perm, "cpu", "locked by undefined opcode %02x at %04x",
			mc.defn.OpCode, mc.Regs.PC.Address()-1)
	}
}

// the queue of micro-operations is empty. interrupts are checked unless the
// instruction was the 0xcb prefix or the dispatch sequence
func (mc *CPU) endInstruction() {
	if mc.prefixed || mc.locked {
		return
	}
	mc.boundary = true

	if mc.dispatching {
		mc.dispatching = false
		return
	}

	mc.ints.Tick()
	if !mc.stopped && mc.ints.ShouldService() {
		// EI immediately before a HALT that did not halt. the interrupt is
		// serviced with the return address pointing at the HALT
		if mc.haltBug {
			mc.haltBug = false
			mc.Regs.PC.Decrement()
		}
		mc.halted = false
		mc.beginDispatch()
	}
}
