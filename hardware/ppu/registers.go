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

package ppu

import (
	"github.com/jetsetilly/gopher16/hardware/memory/chipbus"
)

// PPU register addresses. Only the registers with side effects or that are
// readable are listed.
const (
	INIDISP    = 0x00
	OAMADDL    = 0x02
	OAMADDH    = 0x03
	OAMDATA    = 0x04
	VMAIN      = 0x15
	VMADDL     = 0x16
	VMADDH     = 0x17
	VMDATAL    = 0x18
	VMDATAH    = 0x19
	M7A        = 0x1b
	M7B        = 0x1c
	CGADD      = 0x21
	CGDATA     = 0x22
	SETINI     = 0x33
	MPYL       = 0x34
	MPYM       = 0x35
	MPYH       = 0x36
	SLHV       = 0x37
	RDOAM      = 0x38
	RDVRAML    = 0x39
	RDVRAMH    = 0x3a
	RDCGRAM    = 0x3b
	OPHCT      = 0x3c
	OPVCT      = 0x3d
	STAT77     = 0x3e
	STAT78     = 0x3f
	numRegs    = 0x40
	vramWords  = VRAMSize / 2
	oamLowSize = 512
)

var vramIncrements = [4]uint16{1, 32, 128, 128}

func (ppu *PPU) vramRead(address uint16) uint16 {
	a := uint32(address%vramWords) * 2
	return uint16(ppu.VRAM[a]) | uint16(ppu.VRAM[a+1])<<8
}

// the 24 bit result of the mode 7 multiply
func (ppu *PPU) mpy() uint32 {
	return uint32(int32(int16(ppu.m7a)) * int32(int8(ppu.m7b>>8)))
}

// ChipRead implements the chipbus.ChipBus interface.
func (ppu *PPU) ChipRead(address uint32) (uint8, uint8) {
	reg := uint8(address) & (numRegs - 1)

	switch reg {
	case SLHV:
		ppu.LatchCounters()
		return 0, 0
	case RDOAM:
		d := ppu.OAM[ppu.oamAddress]
		ppu.oamAddress = (ppu.oamAddress + 1) % OAMSize
		return d, chipbus.DriveAll
	case RDVRAML:
		d := uint8(ppu.vramPrefetch)
		if !ppu.vramIncHigh {
			ppu.vramPrefetch = ppu.vramRead(ppu.vramAddress)
			ppu.vramAddress += ppu.vramIncrement
		}
		return d, chipbus.DriveAll
	case RDVRAMH:
		d := uint8(ppu.vramPrefetch >> 8)
		if ppu.vramIncHigh {
			ppu.vramPrefetch = ppu.vramRead(ppu.vramAddress)
			ppu.vramAddress += ppu.vramIncrement
		}
		return d, chipbus.DriveAll
	case RDCGRAM:
		c := ppu.CGRAM[ppu.cgramAddress]
		if ppu.cgramHigh {
			ppu.cgramHigh = false
			ppu.cgramAddress++
			return uint8(c >> 8), 0x7f
		}
		ppu.cgramHigh = true
		return uint8(c), chipbus.DriveAll
	case OPHCT:
		ppu.ophctHigh = !ppu.ophctHigh
		if ppu.ophctHigh {
			return uint8(ppu.ophct), chipbus.DriveAll
		}
		return uint8(ppu.ophct >> 8), 0x01
	case OPVCT:
		ppu.opvctHigh = !ppu.opvctHigh
		if ppu.opvctHigh {
			return uint8(ppu.opvct), chipbus.DriveAll
		}
		return uint8(ppu.opvct >> 8), 0x01
	case STAT78:
		d, mask := ppu.ChipPeek(address)
		ppu.ophctHigh = false
		ppu.opvctHigh = false
		ppu.countLatched = false
		return d, mask
	}

	return ppu.ChipPeek(address)
}

// ChipPeek implements the chipbus.Peeker interface.
func (ppu *PPU) ChipPeek(address uint32) (uint8, uint8) {
	reg := uint8(address) & (numRegs - 1)

	switch reg {
	case MPYL:
		return uint8(ppu.mpy()), chipbus.DriveAll
	case MPYM:
		return uint8(ppu.mpy() >> 8), chipbus.DriveAll
	case MPYH:
		return uint8(ppu.mpy() >> 16), chipbus.DriveAll
	case RDOAM:
		return ppu.OAM[ppu.oamAddress], chipbus.DriveAll
	case RDVRAML:
		return uint8(ppu.vramPrefetch), chipbus.DriveAll
	case RDVRAMH:
		return uint8(ppu.vramPrefetch >> 8), chipbus.DriveAll
	case RDCGRAM:
		c := ppu.CGRAM[ppu.cgramAddress]
		if ppu.cgramHigh {
			return uint8(c >> 8), 0x7f
		}
		return uint8(c), chipbus.DriveAll
	case OPHCT:
		if ppu.ophctHigh {
			return uint8(ppu.ophct >> 8), 0x01
		}
		return uint8(ppu.ophct), chipbus.DriveAll
	case OPVCT:
		if ppu.opvctHigh {
			return uint8(ppu.opvct >> 8), 0x01
		}
		return uint8(ppu.opvct), chipbus.DriveAll
	case STAT77:
		return ppu1Version, 0xef
	case STAT78:
		var d uint8 = ppu2Version
		if ppu.countLatched {
			d |= 0x40
		}
		if ppu.spec.ID == "PAL" {
			d |= 0x10
		}
		return d, 0xdf
	}

	// write only registers
	return 0, 0
}

// ChipWrite implements the chipbus.ChipBus interface.
func (ppu *PPU) ChipWrite(address uint32, data uint8) {
	reg := uint8(address) & (numRegs - 1)
	ppu.Regs[reg] = data

	switch reg {
	case INIDISP:
		ppu.forcedBlank = data&0x80 == 0x80
		ppu.brightness = data & 0x0f
	case OAMADDL:
		ppu.oamReload = ppu.oamReload&0x200 | uint16(data)<<1
		ppu.oamAddress = ppu.oamReload
	case OAMADDH:
		ppu.oamReload = ppu.oamReload&0x1fe | uint16(data&0x01)<<9
		ppu.oamAddress = ppu.oamReload
	case OAMDATA:
		ppu.writeOAM(data)
	case VMAIN:
		ppu.vramIncHigh = data&0x80 == 0x80
		ppu.vramIncrement = vramIncrements[data&0x03]
	case VMADDL:
		ppu.vramAddress = ppu.vramAddress&0xff00 | uint16(data)
		ppu.vramPrefetch = ppu.vramRead(ppu.vramAddress)
	case VMADDH:
		ppu.vramAddress = ppu.vramAddress&0x00ff | uint16(data)<<8
		ppu.vramPrefetch = ppu.vramRead(ppu.vramAddress)
	case VMDATAL:
		ppu.VRAM[uint32(ppu.vramAddress%vramWords)*2] = data
		if !ppu.vramIncHigh {
			ppu.vramAddress += ppu.vramIncrement
		}
	case VMDATAH:
		ppu.VRAM[uint32(ppu.vramAddress%vramWords)*2+1] = data
		if ppu.vramIncHigh {
			ppu.vramAddress += ppu.vramIncrement
		}
	case M7A:
		ppu.m7a = uint16(data)<<8 | uint16(ppu.m7latch)
		ppu.m7latch = data
	case M7B:
		ppu.m7b = uint16(data)<<8 | uint16(ppu.m7latch)
		ppu.m7latch = data
	case CGADD:
		ppu.cgramAddress = data
		ppu.cgramHigh = false
	case CGDATA:
		if ppu.cgramHigh {
			ppu.CGRAM[ppu.cgramAddress] = (uint16(data)<<8 | uint16(ppu.cgramLatch)) & 0x7fff
			ppu.cgramAddress++
		} else {
			ppu.cgramLatch = data
		}
		ppu.cgramHigh = !ppu.cgramHigh
	case SETINI:
		ppu.overscan = data&0x04 == 0x04
		ppu.interlace = data&0x01 == 0x01
	}
}

// writes to the low table of OAM are made a word at a time. the even byte is
// held until the odd byte is written
func (ppu *PPU) writeOAM(data uint8) {
	a := ppu.oamAddress
	switch {
	case a >= oamLowSize:
		ppu.OAM[a] = data
	case a&0x01 == 0x00:
		ppu.oamLatch = data
	default:
		ppu.OAM[a-1] = ppu.oamLatch
		ppu.OAM[a] = data
	}
	ppu.oamAddress = (a + 1) % OAMSize
}
