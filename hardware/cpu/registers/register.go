// This file is part of Gopher16.
//
// Gopher16 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher16 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher16.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"fmt"
)

// Register is a 16 bit register of the CPU. Operations take a Width argument
// which says how much of the register is involved.
type Register struct {
	value uint16
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint16, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%04x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the full 16 bit value of the register regardless of width.
func (r Register) Value() uint16 {
	return r.value
}

// Low returns the low byte of the register.
func (r Register) Low() uint8 {
	return uint8(r.value)
}

// High returns the high byte of the register.
func (r Register) High() uint8 {
	return uint8(r.value >> 8)
}

// Get returns the value of the register at the width.
func (r Register) Get(w Width) uint16 {
	return r.value & w.Mask()
}

// IsNegative checks the sign bit of the register at the width.
func (r Register) IsNegative(w Width) bool {
	return w.IsNegative(r.value)
}

// IsZero checks if register is zero at the width.
func (r Register) IsZero(w Width) bool {
	return w.IsZero(r.value)
}

// Load all 16 bits of the register.
func (r *Register) Load(val uint16) {
	r.value = val
}

// Set the register at the width. At Width8 the high byte is preserved.
func (r *Register) Set(val uint16, w Width) {
	if w == Width8 {
		r.value = (r.value & 0xff00) | (val & 0x00ff)
		return
	}
	r.value = val
}

// SetHigh sets the high byte of the register, preserving the low byte.
func (r *Register) SetHigh(val uint8) {
	r.value = (r.value & 0x00ff) | uint16(val)<<8
}

// Swap the high and low bytes of the register.
func (r *Register) Swap() {
	r.value = r.value<<8 | r.value>>8
}

// Add value to register at the width. Returns carry and overflow states.
func (r *Register) Add(val uint16, carry bool, w Width) (rcarry bool, overflow bool) {
	a := uint32(r.Get(w))
	d := uint32(val & w.Mask())

	result := a + d
	if carry {
		result++
	}

	// overflow is set when the operands have the same sign and the sign of
	// the result is different
	sign := uint32(w.SignBit())
	overflow = ^(a^d)&(a^result)&sign != 0
	rcarry = result > uint32(w.Mask())

	r.Set(uint16(result), w)
	return rcarry, overflow
}

// Subtract value from register at the width. Returns carry and overflow
// states.
func (r *Register) Subtract(val uint16, carry bool, w Width) (rcarry bool, overflow bool) {
	return r.Add(^val, carry, w)
}

// AND value with register.
func (r *Register) AND(val uint16, w Width) {
	r.Set(r.value&val, w)
}

// ORA (or accumulator) value with register.
func (r *Register) ORA(val uint16, w Width) {
	r.Set(r.value|val, w)
}

// EOR (exclusive or) value with register.
func (r *Register) EOR(val uint16, w Width) {
	r.Set(r.value^val, w)
}

// ASL (arithmetic shift left) shifts register one bit to the left. Returns
// the most significant bit as it was before the shift.
func (r *Register) ASL(w Width) bool {
	carry := r.IsNegative(w)
	r.Set(r.value<<1, w)
	return carry
}

// LSR (logical shift right) shifts register one bit to the right. Returns the
// least significant bit as it was before the shift.
func (r *Register) LSR(w Width) bool {
	carry := r.value&0x0001 == 0x0001
	r.Set(r.Get(w)>>1, w)
	return carry
}

// ROL rotates register 1 bit to the left. Returns new carry status.
func (r *Register) ROL(carry bool, w Width) bool {
	rcarry := r.IsNegative(w)
	v := r.value << 1
	if carry {
		v |= 0x0001
	}
	r.Set(v, w)
	return rcarry
}

// ROR rotates register 1 bit to the right. Returns new carry status.
func (r *Register) ROR(carry bool, w Width) bool {
	rcarry := r.value&0x0001 == 0x0001
	v := r.Get(w) >> 1
	if carry {
		v |= w.SignBit()
	}
	r.Set(v, w)
	return rcarry
}

// Increment the register at the width, wrapping as required.
func (r *Register) Increment(w Width) {
	r.Set(r.value+1, w)
}

// Decrement the register at the width, wrapping as required.
func (r *Register) Decrement(w Width) {
	r.Set(r.value-1, w)
}
