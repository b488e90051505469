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

// Register is an eight bit register.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for the Register type.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%#02x", r.value)
}

// Label returns the canonical name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Bit returns the state of bit n of the register.
func (r Register) Bit(n uint8) bool {
	return r.value&(1<<(n&0x07)) != 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns carry and half-carry states.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, half bool) {
	var c uint8
	if carry {
		c = 1
	}
	v := r.value
	sum := uint16(v) + uint16(val) + uint16(c)
	half = (v&0x0f)+(val&0x0f)+c > 0x0f
	r.value = uint8(sum)
	return sum > 0xff, half
}

// Subtract value from register. Returns borrow and half-borrow states. The
// SM83 carry flag holds the borrow after a subtraction.
func (r *Register) Subtract(val uint8, borrow bool) (rborrow bool, half bool) {
	var c uint8
	if borrow {
		c = 1
	}
	v := r.value
	half = int(v&0x0f)-int(val&0x0f)-int(c) < 0
	rborrow = int(v)-int(val)-int(c) < 0
	r.value = v - val - c
	return rborrow, half
}

// Increment register by one. Returns the half-carry state.
func (r *Register) Increment() (half bool) {
	half = r.value&0x0f == 0x0f
	r.value++
	return half
}

// Decrement register by one. Returns the half-borrow state.
func (r *Register) Decrement() (half bool) {
	half = r.value&0x0f == 0x00
	r.value--
	return half
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// RLC rotates register one bit to the left. Bit 7 is copied to bit 0 and is
// returned as the new carry state.
func (r *Register) RLC() bool {
	carry := r.value&0x80 == 0x80
	r.value = (r.value << 1) | (r.value >> 7)
	return carry
}

// RRC rotates register one bit to the right. Bit 0 is copied to bit 7 and is
// returned as the new carry state.
func (r *Register) RRC() bool {
	carry := r.value&0x01 == 0x01
	r.value = (r.value >> 1) | (r.value << 7)
	return carry
}

// RL rotates register one bit to the left through the carry. Returns new
// carry state.
func (r *Register) RL(carry bool) bool {
	rcarry := r.value&0x80 == 0x80
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// RR rotates register one bit to the right through the carry. Returns new
// carry state.
func (r *Register) RR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}

// SLA shifts register one bit to the left. Returns new carry state.
func (r *Register) SLA() bool {
	carry := r.value&0x80 == 0x80
	r.value <<= 1
	return carry
}

// SRA shifts register one bit to the right, preserving bit 7. Returns new
// carry state.
func (r *Register) SRA() bool {
	carry := r.value&0x01 == 0x01
	r.value = (r.value >> 1) | (r.value & 0x80)
	return carry
}

// SRL shifts register one bit to the right. Returns new carry state.
func (r *Register) SRL() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// Swap the upper and lower nibbles of the register.
func (r *Register) Swap() {
	r.value = (r.value << 4) | (r.value >> 4)
}

// SetBit sets bit n of the register.
func (r *Register) SetBit(n uint8) {
	r.value |= 1 << (n & 0x07)
}

// ResetBit clears bit n of the register.
func (r *Register) ResetBit(n uint8) {
	r.value &^= 1 << (n & 0x07)
}
