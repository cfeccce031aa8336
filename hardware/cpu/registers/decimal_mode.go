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

// AddDecimal adds value to register as though both are binary coded decimal
// representations. Returns new carry and overflow states.
//
// Each nibble is corrected in turn, from the least significant upwards. The
// overflow flag is computed before the correction of the most significant
// nibble. Invalid BCD values produce the same results as the hardware.
func (r *Register) AddDecimal(val uint16, carry bool, w Width) (rcarry bool, overflow bool) {
	a := int(r.Get(w))
	d := int(val & w.Mask())

	result := 0
	nibbles := w.Bytes() * 2
	for i := range nibbles {
		shift := uint(i * 4)
		nibble := 0xf << shift
		top := (0x10 << shift) - 1

		result = (a & nibble) + (d & nibble) + (result & ((1 << shift) - 1))
		if rcarry {
			result += 1 << shift
		} else if i == 0 && carry {
			result++
		}

		if i == nibbles-1 {
			overflow = ^(a^d)&(a^result)&int(w.SignBit()) != 0
		}

		if result > (0xa<<shift)-1 {
			result += 0x6 << shift
		}

		rcarry = result > top
	}

	r.Set(uint16(result), w)
	return rcarry, overflow
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal representations. Returns new carry and overflow states.
func (r *Register) SubtractDecimal(val uint16, carry bool, w Width) (rcarry bool, overflow bool) {
	a := int(r.Get(w))
	d := int(^val & w.Mask())

	result := 0
	nibbles := w.Bytes() * 2
	for i := range nibbles {
		shift := uint(i * 4)
		nibble := 0xf << shift
		top := (0x10 << shift) - 1

		result = (a & nibble) + (d & nibble) + (result & ((1 << shift) - 1))
		if rcarry {
			result += 1 << shift
		} else if i == 0 && carry {
			result++
		}

		if i == nibbles-1 {
			overflow = ^(a^d)&(a^result)&int(w.SignBit()) != 0
		}

		if result <= top {
			result -= 0x6 << shift
		}

		rcarry = result > top
	}

	r.Set(uint16(result), w)
	return rcarry, overflow
}
