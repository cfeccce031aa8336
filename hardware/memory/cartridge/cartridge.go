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
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher16/cartridgeloader"
	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher16/logger"
)

// Sentinal errors returned by NewCartridge().
var (
	ErrImageTooSmall     = errors.New("cartridge: image too small")
	ErrNoHeader          = errors.New("cartridge: no header found")
	ErrUnsupportedMapper = errors.New("cartridge: unsupported mapper")
)

// size of the header added to images by some copier devices
const copierHeaderLen = 512

// the smallest possible image
const minImageLen = 0x8000

// Cartridge is the ROM and SRAM of a loaded cartridge image.
type Cartridge struct {
	env *environment.Environment

	Filename string
	Hash     string

	Header  Header
	Mapping Mapping

	mapper mapper
	rom    []uint8
	sram   []uint8
}

// NewCartridge decodes the data in the loader. The loader should already
// have been loaded with Load().
func NewCartridge(env *environment.Environment, cl cartridgeloader.Loader) (*Cartridge, error) {
	cart := &Cartridge{
		env:      env,
		Filename: cl.Filename,
		Hash:     cl.Hash,
	}

	data := cl.Data
	if len(data)%1024 == copierHeaderLen {
		logger.Logf(env, "cartridge", "removing copier header from %s", cl.ShortName())
		data = data[copierHeaderLen:]
	}

	if len(data) < minImageLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrImageTooSmall, len(data))
	}

	var location int
	var ok bool

	switch cl.Mapping {
	case cartridgeloader.MappingLoROM:
		location, ok = loROMHeader, true
	case cartridgeloader.MappingHiROM:
		location, ok = hiROMHeader, len(data) >= hiROMHeader+hdrLen
	case cartridgeloader.MappingExHiROM:
		location, ok = exHiROMHeader, len(data) >= exHiROMHeader+hdrLen
	default:
		location, ok = findHeader(data)
	}
	if !ok {
		return nil, ErrNoHeader
	}
	cart.Header = decodeHeader(data, location)

	switch cl.Mapping {
	case cartridgeloader.MappingLoROM:
		cart.Mapping = LoROM
	case cartridgeloader.MappingHiROM:
		cart.Mapping = HiROM
	case cartridgeloader.MappingExHiROM:
		cart.Mapping = ExHiROM
	default:
		cart.Mapping, ok = mappingFromMode(cart.Header.MapMode)
		if !ok {
			return nil, fmt.Errorf("%w: map mode %02x", ErrUnsupportedMapper, cart.Header.MapMode)
		}
	}

	switch cart.Mapping {
	case LoROM:
		cart.mapper = loROM{}
	case HiROM:
		cart.mapper = hiROM{}
	case ExHiROM:
		cart.mapper = exHiROM{}
	}

	cart.rom = make([]uint8, len(data))
	copy(cart.rom, data)

	if n := cart.Header.SRAMSize(); n > 0 {
		cart.sram = make([]uint8, n)
	}

	if sum := cart.checksum(); sum != cart.Header.Checksum {
		logger.Logf(env, "cartridge", "checksum mismatch (header %04x, calculated %04x)", cart.Header.Checksum, sum)
	}

	logger.Logf(env, "cartridge", "%s: %s %s", cart.Mapping, cart.Header.Title, cart.sizes())

	return cart, nil
}

func (cart *Cartridge) sizes() string {
	return fmt.Sprintf("rom=%dK sram=%dK", len(cart.rom)/1024, len(cart.sram)/1024)
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s (%s) %s", cart.Header.Title, cart.Mapping, cart.sizes())
}

// the sum of every byte in the ROM. ROMs that are not a power of two in
// size are summed as though mirrored up to the next power of two
func (cart *Cartridge) checksum() uint16 {
	size := uint32(1)
	for size < uint32(len(cart.rom)) {
		size <<= 1
	}

	var sum uint16
	for i := range size {
		sum += uint16(cart.rom[mirror(i, uint32(len(cart.rom)))])
	}
	return sum
}

// ValidChecksum returns true if the checksum in the header matches the
// contents of the ROM.
func (cart *Cartridge) ValidChecksum() bool {
	return cart.checksum() == cart.Header.Checksum
}

// Regions returns the memory regions occupied by the cartridge.
func (cart *Cartridge) Regions() []memorymap.Region {
	return cart.mapper.regions(len(cart.sram) > 0)
}

// FastROM returns true if the cartridge supports fast ROM access.
func (cart *Cartridge) FastROM() bool {
	return cart.Header.FastROM()
}

// PAL returns true if the cartridge is intended for a PAL console.
func (cart *Cartridge) PAL() bool {
	return cart.Header.PAL()
}

// ROMOffset returns the offset into the ROM data for the address.
func (cart *Cartridge) ROMOffset(address uint32) uint32 {
	return mirror(cart.mapper.romOffset(address), uint32(len(cart.rom)))
}

// SRAMOffset returns the offset into the SRAM data for the address.
func (cart *Cartridge) SRAMOffset(address uint32) uint32 {
	return mirror(cart.mapper.sramOffset(address), uint32(len(cart.sram)))
}

// Read the value at the address in the specified area. The area should be
// the one given for the address by the memory map.
func (cart *Cartridge) Read(area memorymap.Area, address uint32) uint8 {
	switch area {
	case memorymap.ROM:
		return cart.rom[cart.ROMOffset(address)]
	case memorymap.SRAM:
		if len(cart.sram) == 0 {
			return 0
		}
		return cart.sram[cart.SRAMOffset(address)]
	}
	return 0
}

// Write the value to the address. Writes to ROM are ignored.
func (cart *Cartridge) Write(area memorymap.Area, address uint32, data uint8) {
	if area == memorymap.SRAM && len(cart.sram) > 0 {
		cart.sram[cart.SRAMOffset(address)] = data
	}
}

// Poke is the same as Write() except that ROM can be changed.
func (cart *Cartridge) Poke(area memorymap.Area, address uint32, data uint8) {
	if area == memorymap.ROM {
		cart.rom[cart.ROMOffset(address)] = data
		return
	}
	cart.Write(area, address, data)
}

// SRAM returns a copy of the SRAM data.
func (cart *Cartridge) SRAM() []uint8 {
	s := make([]uint8, len(cart.sram))
	copy(s, cart.sram)
	return s
}

// Snapshot creates a copy of the cartridge. The ROM is shared between the
// copies.
func (cart *Cartridge) Snapshot() *Cartridge {
	n := *cart
	n.sram = cart.SRAM()
	return &n
}
