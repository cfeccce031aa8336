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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher16/assert"
	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher16/hardware/memory/chipbus"
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
)

// WRAMSize is the amount of work RAM in the console.
const WRAMSize = 0x20000

// Memory is the address bus of the console.
type Memory struct {
	env *environment.Environment

	Map *memorymap.Map

	WRAM []uint8
	Cart *cartridge.Cartridge

	chips map[memorymap.Area]chipbus.ChipBus

	// address used by the WRAM port. 17 bits
	wramAddress uint32

	// ROM in banks 80 to ff is accessed at the fast speed. set by MEMSEL
	fastROM bool

	// the last value to have been driven onto the data bus
	LastData uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment) (*Memory, error) {
	mem := &Memory{
		env:   env,
		WRAM:  make([]uint8, WRAMSize),
		chips: make(map[memorymap.Area]chipbus.ChipBus),
	}

	var err error
	mem.Map, err = memorymap.NewMap(memorymap.SystemRegions())
	if err != nil {
		return nil, err
	}

	mem.Reset()

	return mem, nil
}

func (mem *Memory) String() string {
	return fmt.Sprintf("wram port=%05x fastrom=%v bus=%02x", mem.wramAddress, mem.fastROM, mem.LastData)
}

// Reset the memory to the power-on state. The contents of WRAM are zeroed or
// randomised depending on the random state preference.
func (mem *Memory) Reset() {
	if mem.env != nil && mem.env.Prefs.RandomState.Get().(bool) {
		mem.env.Random.Fill(mem.WRAM)
	} else {
		clear(mem.WRAM)
	}
	mem.wramAddress = 0
	mem.fastROM = false
	mem.LastData = 0
}

// SoftReset resets the registers owned by the memory package but leaves the
// contents of WRAM intact.
func (mem *Memory) SoftReset() {
	mem.wramAddress = 0
	mem.fastROM = false
}

// AttachCartridge places the cartridge in the address space. A nil
// cartridge removes the current cartridge.
func (mem *Memory) AttachCartridge(cart *cartridge.Cartridge) error {
	regions := memorymap.SystemRegions()
	if cart != nil {
		regions = append(regions, cart.Regions()...)
	}

	m, err := memorymap.NewMap(regions)
	if err != nil {
		return fmt.Errorf("memory: %w", err)
	}

	mem.Map = m
	mem.Cart = cart
	return nil
}

// AttachChip connects a chip to the area of the address space.
func (mem *Memory) AttachChip(area memorymap.Area, chip chipbus.ChipBus) {
	mem.chips[area] = chip
}

// Env returns the environment of the memory.
func (mem *Memory) Env() *environment.Environment {
	return mem.env
}

// FastROM returns true if MEMSEL has selected the fast ROM speed.
func (mem *Memory) FastROM() bool {
	return mem.fastROM
}

// the offset into WRAM of an address in a WRAM region
func wramOffset(r memorymap.Region, address uint32) uint32 {
	return (r.Offset + address - r.Start) & (WRAMSize - 1)
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint32) uint8 {
	address &= memorymap.Memtop
	r := mem.Map.Lookup(address)

	data := mem.LastData

	switch r.Area {
	case memorymap.Unmapped, memorymap.MemSel:
	case memorymap.WRAM:
		data = mem.WRAM[wramOffset(r, address)]
	case memorymap.ROM, memorymap.SRAM:
		if mem.Cart != nil {
			data = mem.Cart.Read(r.Area, address)
		}
	case memorymap.WRAMPort:
		if address&0xffff == 0x2180 {
			data = mem.WRAM[mem.wramAddress]
			mem.wramAddress = (mem.wramAddress + 1) & (WRAMSize - 1)
		}
	default:
		if chip, ok := mem.chips[r.Area]; ok {
			d, mask := chip.ChipRead(address)
			data = chipbus.Merge(d, mask, mem.LastData)
		}
	}

	mem.LastData = data
	return data
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint32, data uint8) {
	address &= memorymap.Memtop
	r := mem.Map.Lookup(address)

	mem.LastData = data

	switch r.Area {
	case memorymap.Unmapped:
	case memorymap.WRAM:
		mem.WRAM[wramOffset(r, address)] = data
	case memorymap.ROM, memorymap.SRAM:
		if mem.Cart != nil {
			mem.Cart.Write(r.Area, address, data)
		}
	case memorymap.WRAMPort:
		mem.writePort(address, data)
	case memorymap.MemSel:
		mem.fastROM = data&0x01 == 0x01
	default:
		if chip, ok := mem.chips[r.Area]; ok {
			chip.ChipWrite(address, data)
		}
	}
}

func (mem *Memory) writePort(address uint32, data uint8) {
	switch address & 0xffff {
	case 0x2180:
		mem.WRAM[mem.wramAddress] = data
		mem.wramAddress = (mem.wramAddress + 1) & (WRAMSize - 1)
	case 0x2181:
		mem.wramAddress = mem.wramAddress&0x1ff00 | uint32(data)
	case 0x2182:
		mem.wramAddress = mem.wramAddress&0x100ff | uint32(data)<<8
	case 0x2183:
		mem.wramAddress = mem.wramAddress&0x0ffff | uint32(data&0x01)<<16
	default:
		assert.Check(false, "memory: unexpected WRAM port address %06x", address)
	}
}

// ReadB reads the register on the B-bus. The B-bus is the $21xx page of the
// address space.
func (mem *Memory) ReadB(register uint8) uint8 {
	return mem.Read(0x2100 | uint32(register))
}

// WriteB writes the register on the B-bus.
func (mem *Memory) WriteB(register uint8, data uint8) {
	mem.Write(0x2100|uint32(register), data)
}

// DataBus returns the last value driven onto the data bus.
func (mem *Memory) DataBus() uint8 {
	return mem.LastData
}

// AccessTime implements the cpubus.Memory interface.
func (mem *Memory) AccessTime(address uint32) int {
	bank := uint8(address >> 16)
	offset := uint16(address)

	if memorymap.IsSystemBank(bank) {
		switch {
		case offset < 0x2000:
			return clocks.Slow
		case offset < 0x4000:
			return clocks.Fast
		case offset < 0x4200:
			return clocks.ExtraSlow
		case offset < 0x6000:
			return clocks.Fast
		case offset < 0x8000:
			return clocks.Slow
		}
		if bank&0x80 == 0x80 && mem.fastROM {
			return clocks.Fast
		}
		return clocks.Slow
	}

	// banks 40 to 7f are always slow
	if bank&0x80 == 0x00 {
		return clocks.Slow
	}

	if mem.fastROM {
		return clocks.Fast
	}
	return clocks.Slow
}

// Peek implements the cpubus.Debugger interface.
func (mem *Memory) Peek(address uint32) uint8 {
	address &= memorymap.Memtop
	r := mem.Map.Lookup(address)

	switch r.Area {
	case memorymap.WRAM:
		return mem.WRAM[wramOffset(r, address)]
	case memorymap.ROM, memorymap.SRAM:
		if mem.Cart != nil {
			return mem.Cart.Read(r.Area, address)
		}
	case memorymap.WRAMPort:
		if address&0xffff == 0x2180 {
			return mem.WRAM[mem.wramAddress]
		}
	default:
		if p, ok := mem.chips[r.Area].(chipbus.Peeker); ok {
			d, mask := p.ChipPeek(address)
			return chipbus.Merge(d, mask, mem.LastData)
		}
	}

	return mem.LastData
}

// Poke implements the cpubus.Debugger interface. Only WRAM and the cartridge
// can be poked.
func (mem *Memory) Poke(address uint32, data uint8) {
	address &= memorymap.Memtop
	r := mem.Map.Lookup(address)

	switch r.Area {
	case memorymap.WRAM:
		mem.WRAM[wramOffset(r, address)] = data
	case memorymap.ROM, memorymap.SRAM:
		if mem.Cart != nil {
			mem.Cart.Poke(r.Area, address, data)
		}
	}
}

// Snapshot creates a copy of the memory. Chips are not copied and must be
// reattached.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.WRAM = make([]uint8, len(mem.WRAM))
	copy(n.WRAM, mem.WRAM)
	if mem.Cart != nil {
		n.Cart = mem.Cart.Snapshot()
	}
	n.chips = make(map[memorymap.Area]chipbus.ChipBus)
	return &n
}
