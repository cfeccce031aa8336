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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// a reference to the instruction definition for the width mode the
	// instruction was decoded in
	Defn *instructions.Definition

	// the 24 bit address (PB:PC) at which the instruction began
	Address uint32

	// whether this data has been finalised - note that the values of the
	// following fields in this struct maybe undefined unless Final is true
	Final bool

	// the operand of the instruction, little-endian ordered from the byte
	// after the opcode
	InstructionData uint32

	// the number of bytes read during instruction decode. for instructions
	// with an immediate operand this depends on the width mode
	ByteCount int

	// the number of CPU cycles (bus cycles) taken by the instruction
	Cycles int

	// the number of master clock cycles taken by the instruction. the length
	// of each bus cycle depends on the address being accessed
	MasterCycles int

	// whether the instruction was executed in emulation mode
	Emulation bool

	// an extra cycle was taken because the low byte of the direct page
	// register was not zero
	DirectPagePenalty bool

	// an extra cycle was taken because indexing crossed a page boundary
	PageFault bool

	// the branch was taken
	BranchTaken bool

	// the result is for an interrupt sequence and not for an instruction
	// fetched from memory. Defn will be nil
	Interrupt bool
}

// Reset the result in preparation for the next instruction.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Interrupt {
		return fmt.Sprintf("%06x interrupt (%d cycles)", r.Address, r.Cycles)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%06x ???", r.Address)
	}
	return fmt.Sprintf("%06x %s %s", r.Address, r.Defn.Operator, r.Operand())
}

// Operand returns the operand of the instruction formatted according to the
// addressing mode.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	v := r.InstructionData
	imm := "$%02x"
	if r.ByteCount == 3 {
		imm = "$%04x"
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied, instructions.Stack:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#"+imm, v)
	case instructions.Relative:
		return fmt.Sprintf("%+d", int8(v))
	case instructions.RelativeLong:
		return fmt.Sprintf("%+d", int16(v))
	case instructions.Direct:
		return fmt.Sprintf("$%02x", v)
	case instructions.DirectX:
		return fmt.Sprintf("$%02x,X", v)
	case instructions.DirectY:
		return fmt.Sprintf("$%02x,Y", v)
	case instructions.DirectIndirect:
		return fmt.Sprintf("($%02x)", v)
	case instructions.DirectIndirectX:
		return fmt.Sprintf("($%02x,X)", v)
	case instructions.DirectIndirectY:
		return fmt.Sprintf("($%02x),Y", v)
	case instructions.DirectIndirectLong:
		return fmt.Sprintf("[$%02x]", v)
	case instructions.DirectIndirectLongY:
		return fmt.Sprintf("[$%02x],Y", v)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", v)
	case instructions.AbsoluteX:
		return fmt.Sprintf("$%04x,X", v)
	case instructions.AbsoluteY:
		return fmt.Sprintf("$%04x,Y", v)
	case instructions.AbsoluteLong:
		return fmt.Sprintf("$%06x", v)
	case instructions.AbsoluteLongX:
		return fmt.Sprintf("$%06x,X", v)
	case instructions.AbsoluteIndirect:
		return fmt.Sprintf("($%04x)", v)
	case instructions.AbsoluteIndirectX:
		return fmt.Sprintf("($%04x,X)", v)
	case instructions.AbsoluteIndirectLong:
		return fmt.Sprintf("[$%04x]", v)
	case instructions.StackRelative:
		return fmt.Sprintf("$%02x,S", v)
	case instructions.StackRelativeIndirectY:
		return fmt.Sprintf("($%02x,S),Y", v)
	case instructions.BlockMove:
		return fmt.Sprintf("$%02x,$%02x", v>>8, v&0xff)
	}

	return ""
}
