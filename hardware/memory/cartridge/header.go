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
	"fmt"
	"strings"
)

// offsets into the header
const (
	hdrTitle      = 0x00
	hdrMapMode    = 0x15
	hdrType       = 0x16
	hdrROMSize    = 0x17
	hdrRAMSize    = 0x18
	hdrRegion     = 0x19
	hdrComplement = 0x1c
	hdrChecksum   = 0x1e
	hdrResetVec   = 0x3c
	hdrLen        = 0x40

	titleLen = 21
)

// possible locations of the header in the image
const (
	loROMHeader   = 0x7fc0
	hiROMHeader   = 0xffc0
	exHiROMHeader = 0x40ffc0
)

// Header is the decoded cartridge header.
type Header struct {
	// location of the header in the image
	Location int

	Title      string
	MapMode    uint8
	Type       uint8
	ROMSize    uint8
	RAMSize    uint8
	Region     uint8
	Complement uint16
	Checksum   uint16
	ResetVec   uint16
}

func (h Header) String() string {
	return fmt.Sprintf("%q mode=%02x type=%02x rom=%02x ram=%02x region=%02x", h.Title, h.MapMode, h.Type, h.ROMSize, h.RAMSize, h.Region)
}

// FastROM returns true if the map mode indicates that the ROM can be
// accessed at the faster speed.
func (h Header) FastROM() bool {
	return h.MapMode&0x10 == 0x10
}

// SRAMSize returns the size of the SRAM in bytes. Zero if the cartridge has
// no SRAM.
func (h Header) SRAMSize() int {
	if h.RAMSize == 0 || h.RAMSize > 0x0a {
		return 0
	}
	return 1024 << h.RAMSize
}

// PAL returns true if the region code of the header indicates a PAL
// console.
func (h Header) PAL() bool {
	return h.Region >= 0x02 && h.Region <= 0x0c
}

func decodeHeader(data []byte, location int) Header {
	d := data[location : location+hdrLen]
	word := func(o int) uint16 {
		return uint16(d[o]) | uint16(d[o+1])<<8
	}

	title := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, string(d[hdrTitle:hdrTitle+titleLen]))

	return Header{
		Location:   location,
		Title:      strings.TrimSpace(title),
		MapMode:    d[hdrMapMode],
		Type:       d[hdrType],
		ROMSize:    d[hdrROMSize],
		RAMSize:    d[hdrRAMSize],
		Region:     d[hdrRegion],
		Complement: word(hdrComplement),
		Checksum:   word(hdrChecksum),
		ResetVec:   word(hdrResetVec),
	}
}

// the map mode expected for each of the header locations
func expectedMapping(location int) Mapping {
	switch location {
	case loROMHeader:
		return LoROM
	case hiROMHeader:
		return HiROM
	}
	return ExHiROM
}

// score the header at location. a higher score means the header is more
// likely to be genuine
func scoreHeader(data []byte, location int) int {
	if location+hdrLen > len(data) {
		return -1
	}

	h := decodeHeader(data, location)
	score := 0

	if h.Checksum^h.Complement == 0xffff {
		score += 4
	}

	if m, ok := mappingFromMode(h.MapMode); ok {
		score++
		if m == expectedMapping(location) {
			score += 2
		}
	}

	// the reset vector must point at the ROM in bank zero
	if h.ResetVec >= 0x8000 {
		score++
	}

	if h.ROMSize >= 0x07 && h.ROMSize <= 0x0d {
		score++
	}

	if h.RAMSize <= 0x07 {
		score++
	}

	if h.Region <= 0x14 {
		score++
	}

	return score
}

// the minimum score required for a header to be accepted
const minScore = 4

// findHeader returns the location of the best scoring header
func findHeader(data []byte) (int, bool) {
	best := -1
	bestScore := minScore - 1
	for _, l := range []int{loROMHeader, hiROMHeader, exHiROMHeader} {
		s := scoreHeader(data, l)
		if s > bestScore {
			best = l
			bestScore = s
		}
	}
	return best, best != -1
}
