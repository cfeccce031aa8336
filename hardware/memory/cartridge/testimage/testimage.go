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

// Package testimage builds small cartridge images for use in tests.
package testimage

import (
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
)

// Options for the Build() function.
type Options struct {
	Mapping cartridge.Mapping

	// size of the image in bytes. defaults to 128KiB
	Size int

	FastROM   bool
	SRAMClass uint8
	Region    uint8

	// program placed at 00:8000. the reset vector points to the start of
	// the program
	Program []uint8

	// interrupt vectors in bank zero. used for both native and emulation
	// modes. a zero value points to the reset address
	NMI uint16
	IRQ uint16
}

// HeaderLocation returns the image offset of the header for the mapping.
func HeaderLocation(m cartridge.Mapping) int {
	switch m {
	case cartridge.HiROM:
		return 0xffc0
	case cartridge.ExHiROM:
		return 0x40ffc0
	}
	return 0x7fc0
}

// the image offset of the address 00:8000
func programLocation(m cartridge.Mapping) int {
	switch m {
	case cartridge.HiROM:
		return 0x8000
	case cartridge.ExHiROM:
		return 0x408000
	}
	return 0
}

// Build a cartridge image with a valid header.
func Build(opts Options) []uint8 {
	if opts.Size == 0 {
		opts.Size = 0x20000
	}
	data := make([]uint8, opts.Size)

	prg := programLocation(opts.Mapping)
	copy(data[prg:], opts.Program)

	hdr := HeaderLocation(opts.Mapping)
	copy(data[hdr:], []byte("GOPHER16 TEST ROM    "))

	var mode uint8
	switch opts.Mapping {
	case cartridge.LoROM:
		mode = 0x20
	case cartridge.HiROM:
		mode = 0x21
	case cartridge.ExHiROM:
		mode = 0x25
	}
	if opts.FastROM {
		mode |= 0x10
	}
	data[hdr+0x15] = mode

	sizeClass := uint8(0)
	for 1024<<sizeClass < opts.Size {
		sizeClass++
	}
	data[hdr+0x17] = sizeClass
	data[hdr+0x18] = opts.SRAMClass
	data[hdr+0x19] = opts.Region

	// placeholder checksum. the four bytes sum to the same value whatever
	// the final checksum is
	data[hdr+0x1c] = 0xff
	data[hdr+0x1d] = 0xff

	vector := func(offset int, v uint16) {
		if v == 0 {
			v = 0x8000
		}
		data[hdr+offset] = uint8(v)
		data[hdr+offset+1] = uint8(v >> 8)
	}

	// native vectors
	vector(0x24, opts.IRQ)
	vector(0x26, opts.IRQ)
	vector(0x28, opts.IRQ)
	vector(0x2a, opts.NMI)
	vector(0x2e, opts.IRQ)

	// emulation vectors
	vector(0x34, opts.IRQ)
	vector(0x38, opts.IRQ)
	vector(0x3a, opts.NMI)
	vector(0x3c, 0x8000)
	vector(0x3e, opts.IRQ)

	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	data[hdr+0x1c] = uint8(^sum)
	data[hdr+0x1d] = uint8(^sum >> 8)
	data[hdr+0x1e] = uint8(sum)
	data[hdr+0x1f] = uint8(sum >> 8)

	return data
}
