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

package memorymap

// the regions in each of the system banks (00-3f and 80-bf), excluding the
// cartridge areas
var systemBank = []Region{
	{Start: 0x0000, End: 0x1fff, Area: WRAM},
	{Start: 0x2100, End: 0x213f, Area: PPU},
	{Start: 0x2140, End: 0x217f, Area: APU},
	{Start: 0x2180, End: 0x2183, Area: WRAMPort},
	{Start: 0x4016, End: 0x4017, Area: Joypad},
	{Start: 0x4200, End: 0x420a, Area: CPUIO},
	{Start: 0x420b, End: 0x420c, Area: DMA},
	{Start: 0x420d, End: 0x420d, Area: MemSel},
	{Start: 0x4210, End: 0x421f, Area: CPUIO},
	{Start: 0x4300, End: 0x437f, Area: DMA},
}

// IsSystemBank returns true if the bank contains the system areas in the
// lower half of the bank.
func IsSystemBank(bank uint8) bool {
	return bank&0x40 == 0
}

// SystemRegions returns the regions of the address space that are fixed by
// the console: the WRAM, the mirror of the first 8KiB of WRAM and the
// register windows of the chips.
func SystemRegions() []Region {
	var regions []Region

	for b := range 0x100 {
		bank := uint8(b)
		if !IsSystemBank(bank) {
			continue
		}
		base := uint32(bank) << 16
		for _, r := range systemBank {
			r.Start |= base
			r.End |= base
			regions = append(regions, r)
		}
	}

	// the full 128KiB of WRAM
	regions = append(regions, Region{Start: 0x7e0000, End: 0x7fffff, Area: WRAM})

	return regions
}
