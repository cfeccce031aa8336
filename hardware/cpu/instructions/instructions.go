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

package instructions

import "fmt"

// AddressingMode describes the method by which data for the instruction is
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative
	RelativeLong
	Direct                 // dp
	DirectX                // dp,X
	DirectY                // dp,Y
	DirectIndirect         // (dp)
	DirectIndirectX        // (dp,X)
	DirectIndirectY        // (dp),Y
	DirectIndirectLong     // [dp]
	DirectIndirectLongY    // [dp],Y
	Absolute               // abs
	AbsoluteX              // abs,X
	AbsoluteY              // abs,Y
	AbsoluteLong           // long
	AbsoluteLongX          // long,X
	AbsoluteIndirect       // (abs)
	AbsoluteIndirectX      // (abs,X)
	AbsoluteIndirectLong   // [abs]
	StackRelative          // sr,S
	StackRelativeIndirectY // (sr,S),Y
	BlockMove              // src,dst
	Stack
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case RelativeLong:
		return "RelativeLong"
	case Direct:
		return "Direct"
	case DirectX:
		return "DirectX"
	case DirectY:
		return "DirectY"
	case DirectIndirect:
		return "DirectIndirect"
	case DirectIndirectX:
		return "DirectIndirectX"
	case DirectIndirectY:
		return "DirectIndirectY"
	case DirectIndirectLong:
		return "DirectIndirectLong"
	case DirectIndirectLongY:
		return "DirectIndirectLongY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case AbsoluteLong:
		return "AbsoluteLong"
	case AbsoluteLongX:
		return "AbsoluteLongX"
	case AbsoluteIndirect:
		return "AbsoluteIndirect"
	case AbsoluteIndirectX:
		return "AbsoluteIndirectX"
	case AbsoluteIndirectLong:
		return "AbsoluteIndirectLong"
	case StackRelative:
		return "StackRelative"
	case StackRelativeIndirectY:
		return "StackRelativeIndirectY"
	case BlockMove:
		return "BlockMove"
	case Stack:
		return "Stack"
	}
	return "unknown addressing mode"
}

// IsDirect returns true if the addressing mode uses the direct page register.
func (m AddressingMode) IsDirect() bool {
	switch m {
	case Direct, DirectX, DirectY, DirectIndirect, DirectIndirectX, DirectIndirectY,
		DirectIndirectLong, DirectIndirectLongY:
		return true
	}
	return false
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW
	Flow
	Subroutine
	Interrupt
	Push
	Pull
	Internal
	Move
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	case Push:
		return "Push"
	case Pull:
		return "Pull"
	case Internal:
		return "Internal"
	case Move:
		return "Move"
	}
	return "unknown effect"
}

// Modifier flags indicate the conditions under which an instruction takes
// more cycles (and sometimes more bytes) than the base definition.
type Modifier uint8

// List of modifiers.
const (
	// +1 cycle when the low byte of the direct page register is not zero
	ModDirect Modifier = 1 << iota

	// +1 cycle when indexing crosses a page boundary. the cycle is always
	// taken when the index registers are 16 bit
	ModPage

	// +1 cycle in native mode
	ModNative

	// +1 cycle (and +1 byte for immediate mode) when the accumulator is 16
	// bit
	ModAccumulator

	// +2 cycles when the accumulator is 16 bit. for read-modify-write
	// instructions
	ModAccumulatorRMW

	// +1 cycle (and +1 byte for immediate mode) when the index registers are
	// 16 bit
	ModIndex
)

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         EffectCategory
	Modifiers      Modifier

	// true if the number of cycles in this definition depends on whether an
	// index crosses a page boundary. note that this is different to
	// whether the definition has the ModPage modifier because the page
	// penalty is always taken when the index registers are 16 bit
	PageSensitive bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// Has returns true if the definition includes the modifier.
func (defn Definition) Has(mod Modifier) bool {
	return defn.Modifiers&mod == mod
}

// IsBranch returns true if instruction is a conditional or unconditional
// short branch.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative
}
