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

package registers

import (
	"fmt"
)

// Reg8 selects an eight bit register of the File. The numbering matches the
// register field of the SM83 opcode encoding. Value 6 in that encoding is the
// memory location pointed to by HL and is represented by IndirectHL, which
// is not a register and cannot be used with the File.Reg() function.
type Reg8 int

// List of valid Reg8 values.
const (
	B Reg8 = iota
	C
	D
	E
	H
	L
	IndirectHL
	A
)

func (r Reg8) String() string {
	switch r {
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	case IndirectHL:
		return "(HL)"
	case A:
		return "A"
	}
	return "unknown register"
}

// Reg16 selects a register pair of the File.
type Reg16 int

// List of valid Reg16 values. The first four values match the register pair
// field of the SM83 opcode encoding for 16-bit loads and arithmetic. PUSH and
// POP use AF in place of SP.
const (
	BC Reg16 = iota
	DE
	HL
	SP
	AF
)

func (r Reg16) String() string {
	switch r {
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	case AF:
		return "AF"
	}
	return "unknown register pair"
}

// File is the complete register set of the SM83. The zero value is usable
// but does not have register labels. Use NewFile() for a fully initialised
// instance.
type File struct {
	A Register
	F Flags
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	SP StackPointer
	PC ProgramCounter
}

// NewFile is the preferred method of initialisation for the File type. All
// registers are zero.
func NewFile() File {
	return File{
		A: NewRegister(0, "A"),
		B: NewRegister(0, "B"),
		C: NewRegister(0, "C"),
		D: NewRegister(0, "D"),
		E: NewRegister(0, "E"),
		H: NewRegister(0, "H"),
		L: NewRegister(0, "L"),
	}
}

func (f File) String() string {
	return fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x SP=%04x PC=%04x %s",
		f.Pair(AF), f.Pair(BC), f.Pair(DE), f.Pair(HL),
		f.SP.Address(), f.PC.Address(), f.F)
}

// Reg returns a pointer to the eight bit register selected by r. It is a
// programming error to select IndirectHL and the function will panic.
func (f *File) Reg(r Reg8) *Register {
	switch r {
	case B:
		return &f.B
	case C:
		return &f.C
	case D:
		return &f.D
	case E:
		return &f.E
	case H:
		return &f.H
	case L:
		return &f.L
	case A:
		return &f.A
	}
	panic(fmt.Sprintf("registers: %s is not a register", r))
}

// Pair returns the 16-bit value of the register pair selected by r.
func (f *File) Pair(r Reg16) uint16 {
	switch r {
	case BC:
		return uint16(f.B.value)<<8 | uint16(f.C.value)
	case DE:
		return uint16(f.D.value)<<8 | uint16(f.E.value)
	case HL:
		return uint16(f.H.value)<<8 | uint16(f.L.value)
	case SP:
		return f.SP.value
	case AF:
		return uint16(f.A.value)<<8 | uint16(f.F.Value())
	}
	panic(fmt.Sprintf("registers: unknown register pair (%d)", r))
}

// SetPair loads a 16-bit value into the register pair selected by r. For AF
// the lower nibble of the value is discarded.
func (f *File) SetPair(r Reg16, v uint16) {
	hi := uint8(v >> 8)
	lo := uint8(v)
	switch r {
	case BC:
		f.B.value, f.C.value = hi, lo
	case DE:
		f.D.value, f.E.value = hi, lo
	case HL:
		f.H.value, f.L.value = hi, lo
	case SP:
		f.SP.value = v
	case AF:
		f.A.value = hi
		f.F.Load(lo)
	default:
		panic(fmt.Sprintf("registers: unknown register pair (%d)", r))
	}
}
