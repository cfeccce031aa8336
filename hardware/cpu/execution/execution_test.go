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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/cpu/execution"
	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher16/test"
)

func TestValidity(t *testing.T) {
	tab := instructions.NewTable()

	// LDA abs,X with a page fault
	r := execution.Result{
		Defn:      tab.Lookup(instructions.Mode8A8X, 0xbd),
		Final:     true,
		ByteCount: 3,
		Cycles:    5,
		PageFault: true,
		Emulation: true,
	}
	test.ExpectSuccess(t, r.IsValid())

	r.PageFault = false
	test.ExpectFailure(t, r.IsValid())

	// page fault on an instruction that is not page sensitive
	r = execution.Result{
		Defn:      tab.Lookup(instructions.Mode8A8X, 0x9d),
		Final:     true,
		ByteCount: 3,
		Cycles:    5,
		PageFault: true,
	}
	test.ExpectFailure(t, r.IsValid())

	// not finalised
	r.PageFault = false
	test.ExpectSuccess(t, r.IsValid())
	r.Final = false
	test.ExpectFailure(t, r.IsValid())
}

func TestBranchValidity(t *testing.T) {
	tab := instructions.NewTable()

	r := execution.Result{
		Defn:        tab.Lookup(instructions.Mode8A8X, 0xd0),
		Final:       true,
		ByteCount:   2,
		Cycles:      4,
		BranchTaken: true,
		PageFault:   true,
		Emulation:   true,
	}
	test.ExpectSuccess(t, r.IsValid())

	// no page penalty for branches in native mode
	r.Emulation = false
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())
}

func TestNativePenalty(t *testing.T) {
	tab := instructions.NewTable()

	r := execution.Result{
		Defn:      tab.Lookup(instructions.Mode16A16X, 0x00),
		Final:     true,
		ByteCount: 2,
		Cycles:    8,
	}
	test.ExpectSuccess(t, r.IsValid())
	r.Emulation = true
	test.ExpectFailure(t, r.IsValid())
}

func TestOperand(t *testing.T) {
	tab := instructions.NewTable()

	r := execution.Result{
		Defn:            tab.Lookup(instructions.Mode16A8X, 0xa9),
		Address:         0x008000,
		InstructionData: 0x1234,
		ByteCount:       3,
	}
	test.ExpectEquality(t, r.String(), "008000 LDA #$1234")

	r.Defn = tab.Lookup(instructions.Mode8A8X, 0x54)
	r.InstructionData = 0x7e7f
	test.ExpectEquality(t, r.Operand(), "$7e,$7f")
}
