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
	"github.com/jetsetilly/gopher16/hardware/cpu/registers"
)

// read returns 8bit value from the 24 bit address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read(address uint32) uint8 {
	address &= 0xffffff
	v := mc.mem.Read(address)
	mc.tick(mc.mem.AccessTime(address))
	return v
}

// write 8bit value to the 24 bit address
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) write(address uint32, data uint8) {
	address &= 0xffffff
	mc.mem.Write(address, data)
	mc.tick(mc.mem.AccessTime(address))
}

// fetch reads 8 bits from PB:PC
//
// side-effects:
//   - increments PC, wrapping within the program bank
//   - updates LastResult.ByteCount
func (mc *CPU) fetch() uint8 {
	v := mc.read(mc.ProgramAddress())
	mc.PC.Load(mc.PC.Value() + 1)
	if mc.LastResult.ByteCount > 0 {
		mc.LastResult.InstructionData |= uint32(v) << (8 * (mc.LastResult.ByteCount - 1))
	}
	mc.LastResult.ByteCount++
	return v
}

// fetch16 reads two bytes from PB:PC, little-endian
func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch()
	hi := mc.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// fetchWidth reads one or two bytes from PB:PC depending on the width
func (mc *CPU) fetchWidth(w registers.Width) uint16 {
	if w == registers.Width8 {
		return uint16(mc.fetch())
	}
	return mc.fetch16()
}

// push a byte onto the stack. in emulation mode the stack pointer is confined
// to page one
func (mc *CPU) push(data uint8) {
	mc.write(uint32(mc.S.Value()), data)
	if mc.Status.Emulation {
		mc.S.Set(mc.S.Value()-1, registers.Width8)
	} else {
		mc.S.Load(mc.S.Value() - 1)
	}
}

// pull a byte from the stack
func (mc *CPU) pull() uint8 {
	if mc.Status.Emulation {
		mc.S.Set(mc.S.Value()+1, registers.Width8)
	} else {
		mc.S.Load(mc.S.Value() + 1)
	}
	return mc.read(uint32(mc.S.Value()))
}

// push16 pushes the high byte first so that the value is little-endian in
// memory
func (mc *CPU) push16(data uint16) {
	mc.push(uint8(data >> 8))
	mc.push(uint8(data))
}

func (mc *CPU) pull16() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// the 65816-only stack instructions do not wrap within page one in emulation
// mode. the high byte of the stack pointer is restored to one by
// fixStackPage() at the end of the instruction
func (mc *CPU) pushLong(data uint8) {
	mc.write(uint32(mc.S.Value()), data)
	mc.S.Load(mc.S.Value() - 1)
}

func (mc *CPU) pullLong() uint8 {
	mc.S.Load(mc.S.Value() + 1)
	return mc.read(uint32(mc.S.Value()))
}

func (mc *CPU) pushLong16(data uint16) {
	mc.pushLong(uint8(data >> 8))
	mc.pushLong(uint8(data))
}

func (mc *CPU) pullLong16() uint16 {
	lo := mc.pullLong()
	hi := mc.pullLong()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) fixStackPage() {
	if mc.Status.Emulation {
		mc.S.SetHigh(0x01)
	}
}

// pushWidth pushes one or two bytes depending on width
func (mc *CPU) pushWidth(data uint16, w registers.Width) {
	if w == registers.Width16 {
		mc.push(uint8(data >> 8))
	}
	mc.push(uint8(data))
}

// pullWidth pulls one or two bytes depending on width
func (mc *CPU) pullWidth(w registers.Width) uint16 {
	if w == registers.Width8 {
		return uint16(mc.pull())
	}
	return mc.pull16()
}

// directAddress returns the bank zero address for an offset into the direct
// page. in emulation mode, when the low byte of D is zero, the address wraps
// within the page
func (mc *CPU) directAddress(offset uint16) uint32 {
	if mc.Status.Emulation && mc.D.Low() == 0 {
		return uint32(mc.D.Value()&0xff00 | offset&0x00ff)
	}
	return uint32(mc.D.Value() + offset)
}

// directPenalty adds the extra cycle for a direct page that is not page
// aligned
func (mc *CPU) directPenalty() {
	if mc.D.Low() != 0 {
		mc.io()
		mc.LastResult.DirectPagePenalty = true
	}
}

// address is the effective address of an operand. bank zero addresses (direct
// page and stack relative) wrap at 16 bits. all other addresses wrap at 24
// bits
type address struct {
	addr      uint32
	bankZero  bool
	direct    bool
	dpOffset  uint16
	immediate bool
}

func (ea address) next() uint32 {
	if ea.bankZero {
		return uint32(uint16(ea.addr + 1))
	}
	return (ea.addr + 1) & 0xffffff
}

// readData reads a value of the width from the effective address
func (mc *CPU) readData(ea address, w registers.Width) uint16 {
	if ea.immediate {
		return mc.fetchWidth(w)
	}
	if ea.direct {
		lo := mc.read(mc.directAddress(ea.dpOffset))
		if w == registers.Width8 {
			return uint16(lo)
		}
		hi := mc.read(mc.directAddress(ea.dpOffset + 1))
		return uint16(hi)<<8 | uint16(lo)
	}
	lo := mc.read(ea.addr)
	if w == registers.Width8 {
		return uint16(lo)
	}
	hi := mc.read(ea.next())
	return uint16(hi)<<8 | uint16(lo)
}

// writeData writes a value of the width to the effective address. the low
// byte is written first
func (mc *CPU) writeData(ea address, data uint16, w registers.Width) {
	if ea.direct {
		mc.write(mc.directAddress(ea.dpOffset), uint8(data))
		if w == registers.Width16 {
			mc.write(mc.directAddress(ea.dpOffset+1), uint8(data>>8))
		}
		return
	}
	mc.write(ea.addr, uint8(data))
	if w == registers.Width16 {
		mc.write(ea.next(), uint8(data>>8))
	}
}

// writeDataRMW writes a value of the width to the effective address. for read
// modify write instructions, the high byte is written first
func (mc *CPU) writeDataRMW(ea address, data uint16, w registers.Width) {
	if ea.direct {
		if w == registers.Width16 {
			mc.write(mc.directAddress(ea.dpOffset+1), uint8(data>>8))
		}
		mc.write(mc.directAddress(ea.dpOffset), uint8(data))
		return
	}
	if w == registers.Width16 {
		mc.write(ea.next(), uint8(data>>8))
	}
	mc.write(ea.addr, uint8(data))
}
