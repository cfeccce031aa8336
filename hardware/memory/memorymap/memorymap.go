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

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Area represents the different areas of memory.
type Area int

// The different memory areas in the console.
const (
	Unmapped Area = iota
	WRAM
	ROM
	SRAM
	PPU
	APU
	WRAMPort
	Joypad
	CPUIO
	DMA
	MemSel
)

func (a Area) String() string {
	switch a {
	case Unmapped:
		return "Unmapped"
	case WRAM:
		return "WRAM"
	case ROM:
		return "ROM"
	case SRAM:
		return "SRAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case WRAMPort:
		return "WRAM Port"
	case Joypad:
		return "Joypad"
	case CPUIO:
		return "CPU IO"
	case DMA:
		return "DMA"
	case MemSel:
		return "MEMSEL"
	}
	return "undefined"
}

// Linear returns true if the area is accessed by a simple offset from the
// start of the region.
func (a Area) Linear() bool {
	return a == WRAM
}

// Memtop is the highest address in the address space.
const Memtop = uint32(0xffffff)

// Region is a contiguous range of addresses, all of which are handled by the
// same memory area.
type Region struct {
	Start uint32
	End   uint32
	Area  Area

	// for linear areas, Offset is the offset into the area's storage of the
	// Start address
	Offset uint32
}

func (r Region) String() string {
	return fmt.Sprintf("%06x-%06x %s", r.Start, r.End, r.Area)
}

// Contains returns true if address is in the region.
func (r Region) Contains(address uint32) bool {
	return address >= r.Start && address <= r.End
}

// Sentinal errors returned by NewMap() and Validate().
var (
	ErrOverlap = errors.New("memorymap: regions overlap")
	ErrGap     = errors.New("memorymap: address space not covered")
	ErrInvalid = errors.New("memorymap: invalid region")
)

// Map of the address space.
type Map struct {
	regions []Region

	// index of the most recently found region. memory accesses tend to be
	// grouped together so this saves a search most of the time
	last int
}

// NewMap creates a Map from the list of regions. The regions can be in any
// order. Gaps between the regions are filled with Unmapped regions.
// Overlapping regions result in an error.
func NewMap(regions []Region) (*Map, error) {
	rs := slices.Clone(regions)
	for _, r := range rs {
		if r.End < r.Start || r.End > Memtop {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, r)
		}
	}

	slices.SortFunc(rs, func(a, b Region) int {
		return int(a.Start) - int(b.Start)
	})

	m := &Map{}
	next := uint32(0)
	for i, r := range rs {
		if i > 0 && r.Start <= rs[i-1].End {
			return nil, fmt.Errorf("%w: %s and %s", ErrOverlap, rs[i-1], r)
		}
		if r.Start > next {
			m.add(Region{Start: next, End: r.Start - 1, Area: Unmapped})
		}
		m.add(r)
		next = r.End + 1
	}
	if len(rs) == 0 || rs[len(rs)-1].End < Memtop {
		m.add(Region{Start: next, End: Memtop, Area: Unmapped})
	}

	return m, m.Validate()
}

// add region to the end of the map, merging it with the previous region if
// possible
func (m *Map) add(r Region) {
	if len(m.regions) > 0 {
		p := &m.regions[len(m.regions)-1]
		if p.Area == r.Area && p.End+1 == r.Start {
			if !r.Area.Linear() || p.Offset+(p.End-p.Start+1) == r.Offset {
				p.End = r.End
				return
			}
		}
	}
	m.regions = append(m.regions, r)
}

// Validate the map. The regions must cover the entire address space, in
// order, without overlapping.
func (m *Map) Validate() error {
	next := uint32(0)
	for _, r := range m.regions {
		if r.Start < next {
			return fmt.Errorf("%w: %s", ErrOverlap, r)
		}
		if r.Start > next {
			return fmt.Errorf("%w: %06x-%06x", ErrGap, next, r.Start-1)
		}
		next = r.End + 1
	}
	if next != Memtop+1 {
		return fmt.Errorf("%w: %06x-%06x", ErrGap, next, Memtop)
	}
	return nil
}

// Lookup returns the region that contains the address. Addresses outside the
// 24 bit address space are masked.
func (m *Map) Lookup(address uint32) Region {
	address &= Memtop

	if m.regions[m.last].Contains(address) {
		return m.regions[m.last]
	}

	i, _ := slices.BinarySearchFunc(m.regions, address, func(r Region, a uint32) int {
		if r.End < a {
			return -1
		}
		if r.Start > a {
			return 1
		}
		return 0
	})

	m.last = i
	return m.regions[i]
}

// Regions returns a copy of all regions in the map.
func (m *Map) Regions() []Region {
	return slices.Clone(m.regions)
}

// Summary returns a string listing the regions of the map in a single bank.
func (m *Map) Summary(bank uint8) string {
	s := strings.Builder{}
	start := uint32(bank) << 16
	end := start | 0xffff
	for _, r := range m.regions {
		if r.End < start || r.Start > end {
			continue
		}
		s.WriteString(fmt.Sprintf("%06x-%06x %s\n", max(r.Start, start), min(r.End, end), r.Area))
	}
	return s.String()
}
