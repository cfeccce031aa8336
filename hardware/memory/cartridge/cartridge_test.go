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

package cartridge_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher16/cartridgeloader"
	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge/testimage"
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher16/test"
)

func newCart(t *testing.T, data []uint8, mapping string) (*cartridge.Cartridge, error) {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	cl := cartridgeloader.NewLoaderFromData("test", data)
	if mapping != "" {
		cl.Mapping = mapping
	}
	return cartridge.NewCartridge(env, cl)
}

func TestLoROM(t *testing.T) {
	data := testimage.Build(testimage.Options{
		Mapping: cartridge.LoROM,
		Program: []uint8{0xa9, 0x42},
	})
	cart, err := newCart(t, data, "")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cart.Mapping, cartridge.LoROM)
	test.ExpectEquality(t, cart.Header.Title, "GOPHER16 TEST ROM")
	test.ExpectEquality(t, cart.FastROM(), false)
	test.ExpectEquality(t, cart.PAL(), false)

	test.ExpectEquality(t, cart.ROMOffset(0x008000), uint32(0))
	test.ExpectEquality(t, cart.ROMOffset(0x018000), uint32(0x8000))
	test.ExpectEquality(t, cart.ROMOffset(0x808000), uint32(0))
	test.ExpectEquality(t, cart.Read(memorymap.ROM, 0x008000), uint8(0xa9))
	test.ExpectEquality(t, cart.Read(memorymap.ROM, 0x008001), uint8(0x42))

	// 128KiB image is mirrored every four banks
	test.ExpectEquality(t, cart.ROMOffset(0x048000), uint32(0))

	// writes to ROM are ignored
	cart.Write(memorymap.ROM, 0x008000, 0x00)
	test.ExpectEquality(t, cart.Read(memorymap.ROM, 0x008000), uint8(0xa9))
	cart.Poke(memorymap.ROM, 0x008000, 0x00)
	test.ExpectEquality(t, cart.Read(memorymap.ROM, 0x008000), uint8(0x00))
}

func TestHiROM(t *testing.T) {
	data := testimage.Build(testimage.Options{
		Mapping:   cartridge.HiROM,
		FastROM:   true,
		SRAMClass: 3,
		Region:    0x02,
		Program:   []uint8{0xea},
	})
	cart, err := newCart(t, data, "")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cart.Mapping, cartridge.HiROM)
	test.ExpectEquality(t, cart.FastROM(), true)
	test.ExpectEquality(t, cart.PAL(), true)
	test.ExpectEquality(t, len(cart.SRAM()), 8192)

	test.ExpectEquality(t, cart.ROMOffset(0x008000), uint32(0x8000))
	test.ExpectEquality(t, cart.ROMOffset(0xc00000), uint32(0))
	test.ExpectEquality(t, cart.ROMOffset(0x410123), uint32(0x10123))
	test.ExpectEquality(t, cart.Read(memorymap.ROM, 0x008000), uint8(0xea))

	cart.Write(memorymap.SRAM, 0x206000, 0x55)
	test.ExpectEquality(t, cart.Read(memorymap.SRAM, 0xa06000), uint8(0x55))
	test.ExpectEquality(t, cart.SRAMOffset(0x207fff), uint32(0x1fff))
}

func TestRegions(t *testing.T) {
	data := testimage.Build(testimage.Options{Mapping: cartridge.LoROM, SRAMClass: 1})
	cart, err := newCart(t, data, "")
	test.DemandSuccess(t, err)

	m, err := memorymap.NewMap(append(memorymap.SystemRegions(), cart.Regions()...))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Lookup(0x008000).Area, memorymap.ROM)
	test.ExpectEquality(t, m.Lookup(0x7e8000).Area, memorymap.WRAM)
	test.ExpectEquality(t, m.Lookup(0x700000).Area, memorymap.SRAM)
	test.ExpectEquality(t, m.Lookup(0x400000).Area, memorymap.ROM)
	test.ExpectEquality(t, m.Lookup(0x006000).Area, memorymap.Unmapped)

	data = testimage.Build(testimage.Options{Mapping: cartridge.HiROM, SRAMClass: 1})
	cart, err = newCart(t, data, "")
	test.DemandSuccess(t, err)

	m, err = memorymap.NewMap(append(memorymap.SystemRegions(), cart.Regions()...))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Lookup(0x306000).Area, memorymap.SRAM)
	test.ExpectEquality(t, m.Lookup(0x006000).Area, memorymap.Unmapped)
	test.ExpectEquality(t, m.Lookup(0xc01234).Area, memorymap.ROM)
}

func TestCopierHeader(t *testing.T) {
	data := testimage.Build(testimage.Options{Mapping: cartridge.LoROM, Program: []uint8{0x18}})
	data = append(make([]uint8, 512), data...)
	cart, err := newCart(t, data, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Read(memorymap.ROM, 0x008000), uint8(0x18))
}

func TestErrors(t *testing.T) {
	_, err := newCart(t, make([]uint8, 0x4000), "")
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrImageTooSmall))

	_, err = newCart(t, make([]uint8, 0x20000), "")
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrNoHeader))

	// SA-1 map mode
	data := testimage.Build(testimage.Options{Mapping: cartridge.LoROM})
	hdr := testimage.HeaderLocation(cartridge.LoROM)
	data[hdr+0x15] = 0x23
	_, err = newCart(t, data, "")
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnsupportedMapper))

	// forcing the mapping ignores the map mode
	cart, err := newCart(t, data, cartridgeloader.MappingLoROM)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Mapping, cartridge.LoROM)

	// HiROM header cannot exist in a small image
	_, err = newCart(t, make([]uint8, 0x8000), cartridgeloader.MappingHiROM)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrNoHeader))
}
