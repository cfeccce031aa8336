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

package cartridge

import (
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
)

// Mapping is the method by which the cartridge data is placed in the address
// space.
type Mapping int

// List of supported mappings.
const (
	LoROM Mapping = iota
	HiROM
	ExHiROM
)

func (m Mapping) String() string {
	switch m {
	case LoROM:
		return "LoROM"
	case HiROM:
		return "HiROM"
	case ExHiROM:
		return "ExHiROM"
	}
	return "unknown mapping"
}

func mappingFromMode(mode uint8) (Mapping, bool) {
	if mode&0xe0 != 0x20 {
		return 0, false
	}
	switch mode & 0x0f {
	case 0x00:
		return LoROM, true
	case 0x01:
		return HiROM, true
	case 0x05:
		return ExHiROM, true
	}
	return 0, false
}

// mirror the address into data of the specified size. data with a size that
// is not a power of two is mirrored in power of two sized pieces
func mirror(address uint32, size uint32) uint32 {
	if size == 0 {
		return 0
	}

	base := uint32(0)
	mask := uint32(1 << 23)
	for address >= size {
		for address&mask == 0 {
			mask >>= 1
		}
		address -= mask
		if size > mask {
			size -= mask
			base += mask
		}
		mask >>= 1
	}

	return base + address
}

// the address ranges occupied by the cartridge. banks 7e and 7f are never
// included because they are always WRAM
type mapper interface {
	regions(hasSRAM bool) []memorymap.Region
	romOffset(address uint32) uint32
	sramOffset(address uint32) uint32
}

// bankRange adds the same address range in every bank from start to end
// inclusive
func bankRange(regions []memorymap.Region, start, end uint8, lo, hi uint16, area memorymap.Area) []memorymap.Region {
	for b := int(start); b <= int(end); b++ {
		if b == 0x7e || b == 0x7f {
			continue
		}
		base := uint32(b) << 16
		regions = append(regions, memorymap.Region{
			Start: base | uint32(lo),
			End:   base | uint32(hi),
			Area:  area,
		})
	}
	return regions
}

type loROM struct{}

func (loROM) regions(hasSRAM bool) []memorymap.Region {
	var r []memorymap.Region
	r = bankRange(r, 0x00, 0x7d, 0x8000, 0xffff, memorymap.ROM)
	r = bankRange(r, 0x80, 0xff, 0x8000, 0xffff, memorymap.ROM)
	r = bankRange(r, 0x40, 0x6f, 0x0000, 0x7fff, memorymap.ROM)
	r = bankRange(r, 0xc0, 0xef, 0x0000, 0x7fff, memorymap.ROM)
	if hasSRAM {
		r = bankRange(r, 0x70, 0x7d, 0x0000, 0x7fff, memorymap.SRAM)
		r = bankRange(r, 0xf0, 0xff, 0x0000, 0x7fff, memorymap.SRAM)
	} else {
		r = bankRange(r, 0x70, 0x7d, 0x0000, 0x7fff, memorymap.ROM)
		r = bankRange(r, 0xf0, 0xff, 0x0000, 0x7fff, memorymap.ROM)
	}
	return r
}

func (loROM) romOffset(address uint32) uint32 {
	bank := (address >> 16) & 0x7f
	return bank<<15 | address&0x7fff
}

func (loROM) sramOffset(address uint32) uint32 {
	bank := (address >> 16) & 0x0f
	return bank<<15 | address&0x7fff
}

type hiROM struct{}

func (hiROM) regions(hasSRAM bool) []memorymap.Region {
	var r []memorymap.Region
	r = bankRange(r, 0x00, 0x3f, 0x8000, 0xffff, memorymap.ROM)
	r = bankRange(r, 0x80, 0xbf, 0x8000, 0xffff, memorymap.ROM)
	r = bankRange(r, 0x40, 0x7d, 0x0000, 0xffff, memorymap.ROM)
	r = bankRange(r, 0xc0, 0xff, 0x0000, 0xffff, memorymap.ROM)
	if hasSRAM {
		r = bankRange(r, 0x20, 0x3f, 0x6000, 0x7fff, memorymap.SRAM)
		r = bankRange(r, 0xa0, 0xbf, 0x6000, 0x7fff, memorymap.SRAM)
	}
	return r
}

func (hiROM) romOffset(address uint32) uint32 {
	return address & 0x3fffff
}

func (hiROM) sramOffset(address uint32) uint32 {
	bank := (address >> 16) & 0x1f
	return bank<<13 | (address-0x6000)&0x1fff
}

// ExHiROM is the same as HiROM except that the upper four megabytes of the
// ROM are placed in the banks with bit 7 clear
type exHiROM struct {
	hiROM
}

func (exHiROM) regions(hasSRAM bool) []memorymap.Region {
	var r []memorymap.Region
	r = bankRange(r, 0x00, 0x3f, 0x8000, 0xffff, memorymap.ROM)
	r = bankRange(r, 0x80, 0xbf, 0x8000, 0xffff, memorymap.ROM)
	r = bankRange(r, 0x40, 0x7d, 0x0000, 0xffff, memorymap.ROM)
	r = bankRange(r, 0xc0, 0xff, 0x0000, 0xffff, memorymap.ROM)
	if hasSRAM {
		r = bankRange(r, 0x80, 0xbf, 0x6000, 0x7fff, memorymap.SRAM)
	}
	return r
}

func (exHiROM) romOffset(address uint32) uint32 {
	offset := address & 0x3fffff
	if address&0x800000 == 0 {
		offset |= 0x400000
	}
	return offset
}
