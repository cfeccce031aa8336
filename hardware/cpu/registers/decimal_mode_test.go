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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/cpu/registers"
	"github.com/jetsetilly/gopher16/test"
)

func TestDecimalModeCarry(t *testing.T) {
	var rcarry bool

	r8 := registers.NewRegister(0, "test")

	// addition without carry
	rcarry, _ = r8.AddDecimal(1, false, registers.Width8)
	test.ExpectEquality(t, r8.Value(), uint16(0x01))
	test.ExpectFailure(t, rcarry)

	// addition with carry
	rcarry, _ = r8.AddDecimal(1, true, registers.Width8)
	test.ExpectEquality(t, r8.Value(), uint16(0x03))
	test.ExpectFailure(t, rcarry)

	// subtraction with carry (subtract value)
	r8.Load(9)
	r8.SubtractDecimal(1, true, registers.Width8)
	test.ExpectEquality(t, r8.Value(), uint16(0x08))

	// subtraction without carry (subtract value and another 1)
	r8.SubtractDecimal(1, false, registers.Width8)
	test.ExpectEquality(t, r8.Value(), uint16(0x06))

	// addition on tens boundary
	r8.Load(9)
	r8.AddDecimal(1, false, registers.Width8)
	test.ExpectEquality(t, r8.Value(), uint16(0x10))

	// subtraction on tens boundary
	r8.SubtractDecimal(1, true, registers.Width8)
	test.ExpectEquality(t, r8.Value(), uint16(0x09))

	// addition on hundreds boundary
	r8.Load(0x99)
	rcarry, _ = r8.AddDecimal(1, false, registers.Width8)
	test.ExpectEquality(t, r8.Value(), uint16(0x00))
	test.ExpectSuccess(t, rcarry)

	// subtraction on hundreds boundary
	r8.Load(0x00)
	rcarry, _ = r8.SubtractDecimal(1, true, registers.Width8)
	test.ExpectEquality(t, r8.Value(), uint16(0x99))
	test.ExpectFailure(t, rcarry)
}

func TestDecimalMode16(t *testing.T) {
	var rcarry bool

	r16 := registers.NewRegister(0x0999, "test")
	rcarry, _ = r16.AddDecimal(0x0001, false, registers.Width16)
	test.ExpectEquality(t, r16.Value(), uint16(0x1000))
	test.ExpectFailure(t, rcarry)

	r16.Load(0x9999)
	rcarry, _ = r16.AddDecimal(0x0001, false, registers.Width16)
	test.ExpectEquality(t, r16.Value(), uint16(0x0000))
	test.ExpectSuccess(t, rcarry)

	r16.Load(0x1000)
	rcarry, _ = r16.SubtractDecimal(0x0001, true, registers.Width16)
	test.ExpectEquality(t, r16.Value(), uint16(0x0999))
	test.ExpectSuccess(t, rcarry)

	r16.Load(0x1234)
	r16.AddDecimal(0x4321, true, registers.Width16)
	test.ExpectEquality(t, r16.Value(), uint16(0x5556))
}

func TestDecimalModeWidth8PreservesHighByte(t *testing.T) {
	r := registers.NewRegister(0xab45, "test")
	r.AddDecimal(0x05, false, registers.Width8)
	test.ExpectEquality(t, r.Value(), uint16(0xab50))
}
