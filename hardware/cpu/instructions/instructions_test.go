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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher16/test"
)

func TestOpcodesMatchIndex(t *testing.T) {
	tab := instructions.NewTable()
	for m := range instructions.NumWidthModes {
		for op := range 256 {
			defn := tab.Lookup(m, uint8(op))
			test.ExpectEquality(t, defn.OpCode, uint8(op))
			test.ExpectInequality(t, defn.Operator.String(), "???")
		}
	}
}

func TestWidthMode(t *testing.T) {
	test.ExpectEquality(t, instructions.NewWidthMode(true, true), instructions.Mode8A8X)
	test.ExpectEquality(t, instructions.NewWidthMode(false, false), instructions.Mode16A16X)
	test.ExpectEquality(t, instructions.NewWidthMode(true, false), instructions.Mode8A16X)
	test.ExpectEquality(t, instructions.NewWidthMode(false, true), instructions.Mode16A8X)
	test.ExpectSuccess(t, instructions.Mode16A8X.Accumulator16())
	test.ExpectFailure(t, instructions.Mode16A8X.Index16())
}

func TestWidthAdjustments(t *testing.T) {
	tab := instructions.NewTable()

	type expected struct {
		opcode uint8
		mode   instructions.WidthMode
		bytes  int
		cycles int
	}

	for _, e := range []expected{
		// LDA #
		{0xa9, instructions.Mode8A8X, 2, 2},
		{0xa9, instructions.Mode16A8X, 3, 3},

		// LDX #
		{0xa2, instructions.Mode16A8X, 2, 2},
		{0xa2, instructions.Mode8A16X, 3, 3},

		// ASL dp
		{0x06, instructions.Mode8A8X, 2, 5},
		{0x06, instructions.Mode16A8X, 2, 7},

		// LDA abs,X
		{0xbd, instructions.Mode8A8X, 3, 4},
		{0xbd, instructions.Mode8A16X, 3, 5},
		{0xbd, instructions.Mode16A16X, 3, 6},

		// STA abs,X has no page sensitivity
		{0x9d, instructions.Mode8A16X, 3, 5},

		// LDX abs,Y
		{0xbe, instructions.Mode8A16X, 3, 6},

		// REP is unaffected by width
		{0xc2, instructions.Mode16A16X, 2, 3},

		// MVN
		{0x54, instructions.Mode16A16X, 3, 7},

		// PHA and PLA
		{0x48, instructions.Mode16A8X, 1, 4},
		{0x68, instructions.Mode16A8X, 1, 5},

		// WDM
		{0x42, instructions.Mode8A8X, 2, 2},
	} {
		defn := tab.Lookup(e.mode, e.opcode)
		test.ExpectEquality(t, defn.Bytes, e.bytes, defn)
		test.ExpectEquality(t, defn.Cycles, e.cycles, defn)
	}
}

func TestPageSensitivity(t *testing.T) {
	tab := instructions.NewTable()
	test.ExpectSuccess(t, tab.Lookup(instructions.Mode8A8X, 0xbd).PageSensitive)
	test.ExpectFailure(t, tab.Lookup(instructions.Mode8A16X, 0xbd).PageSensitive)
	test.ExpectFailure(t, tab.Lookup(instructions.Mode8A8X, 0x9d).PageSensitive)
	test.ExpectSuccess(t, tab.Lookup(instructions.Mode8A8X, 0xd0).IsBranch())
}
