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

package cpu

import (
	"github.com/jetsetilly/gopher16/hardware/cpu/instructions"
)

// indexPenalty adds the extra cycle for indexed addressing. the cycle is taken
// by page sensitive instructions only when the index crosses a page
// boundary. all other instructions take the cycle unconditionally
func (mc *CPU) indexPenalty(defn *instructions.Definition, base uint32, indexed uint32) {
	crossed := base>>8 != indexed>>8
	if !defn.PageSensitive || crossed {
		mc.io()
		if defn.PageSensitive {
			mc.LastResult.PageFault = true
		}
	}
}

// readPointer reads a 16 bit pointer from the direct page
func (mc *CPU) readPointer(offset uint16) uint16 {
	lo := mc.read(mc.directAddress(offset))
	hi := mc.read(mc.directAddress(offset + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// dataBank returns the data bank register as the high byte of a 24 bit
// address
func (mc *CPU) dataBank() uint32 {
	return uint32(mc.DB) << 16
}

// effectiveAddress returns the address of the operand according to the
// addressing mode of the instruction definition. for immediate mode the
// returned address indicates that the value should be read from the program
func (mc *CPU) effectiveAddress(defn *instructions.Definition) address {
	switch defn.AddressingMode {
	case instructions.Immediate:
		return address{immediate: true}

	case instructions.Direct:
		dp := mc.fetch()
		mc.directPenalty()
		return address{direct: true, dpOffset: uint16(dp)}

	case instructions.DirectX:
		dp := mc.fetch()
		mc.directPenalty()
		mc.io()
		return address{direct: true, dpOffset: uint16(dp) + mc.X.Value()}

	case instructions.DirectY:
		dp := mc.fetch()
		mc.directPenalty()
		mc.io()
		return address{direct: true, dpOffset: uint16(dp) + mc.Y.Value()}

	case instructions.DirectIndirect:
		dp := mc.fetch()
		mc.directPenalty()
		ptr := mc.readPointer(uint16(dp))
		return address{addr: mc.dataBank() | uint32(ptr)}

	case instructions.DirectIndirectX:
		dp := mc.fetch()
		mc.directPenalty()
		mc.io()
		ptr := mc.readPointer(uint16(dp) + mc.X.Value())
		return address{addr: mc.dataBank() | uint32(ptr)}

	case instructions.DirectIndirectY:
		dp := mc.fetch()
		mc.directPenalty()
		ptr := mc.readPointer(uint16(dp))
		base := mc.dataBank() | uint32(ptr)
		ea := (base + uint32(mc.Y.Value())) & 0xffffff
		mc.indexPenalty(defn, base, ea)
		return address{addr: ea}

	case instructions.DirectIndirectLong, instructions.DirectIndirectLongY:
		dp := uint16(mc.fetch())
		mc.directPenalty()
		lo := mc.read(mc.directAddress(dp))
		hi := mc.read(mc.directAddress(dp + 1))
		bank := mc.read(mc.directAddress(dp + 2))
		ea := uint32(bank)<<16 | uint32(hi)<<8 | uint32(lo)
		if defn.AddressingMode == instructions.DirectIndirectLongY {
			ea = (ea + uint32(mc.Y.Value())) & 0xffffff
		}
		return address{addr: ea}

	case instructions.Absolute:
		abs := mc.fetch16()
		return address{addr: mc.dataBank() | uint32(abs)}

	case instructions.AbsoluteX, instructions.AbsoluteY:
		abs := mc.fetch16()
		idx := mc.X.Value()
		if defn.AddressingMode == instructions.AbsoluteY {
			idx = mc.Y.Value()
		}
		base := mc.dataBank() | uint32(abs)
		ea := (base + uint32(idx)) & 0xffffff
		mc.indexPenalty(defn, base, ea)
		return address{addr: ea}

	case instructions.AbsoluteLong, instructions.AbsoluteLongX:
		abs := mc.fetch16()
		bank := mc.fetch()
		ea := uint32(bank)<<16 | uint32(abs)
		if defn.AddressingMode == instructions.AbsoluteLongX {
			ea = (ea + uint32(mc.X.Value())) & 0xffffff
		}
		return address{addr: ea}

	case instructions.StackRelative:
		sr := mc.fetch()
		mc.io()
		return address{addr: uint32(mc.S.Value() + uint16(sr)), bankZero: true}

	case instructions.StackRelativeIndirectY:
		sr := uint16(mc.fetch())
		mc.io()
		lo := mc.read(uint32(mc.S.Value() + sr))
		hi := mc.read(uint32(mc.S.Value() + sr + 1))
		mc.io()
		ptr := uint16(hi)<<8 | uint16(lo)
		ea := (mc.dataBank() | uint32(ptr)) + uint32(mc.Y.Value())
		return address{addr: ea & 0xffffff}
	}

	return address{}
}
