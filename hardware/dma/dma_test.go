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

package dma_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/dma"
	"github.com/jetsetilly/gopher16/test"
)

type bWrite struct {
	register uint8
	data     uint8
}

type mockBus struct {
	a      map[uint32]uint8
	b      map[uint8]uint8
	writes []bWrite
	bus    uint8
}

func newMockBus() *mockBus {
	return &mockBus{
		a: make(map[uint32]uint8),
		b: make(map[uint8]uint8),
	}
}

func (m *mockBus) Read(address uint32) uint8 {
	m.bus = m.a[address]
	return m.bus
}

func (m *mockBus) Write(address uint32, data uint8) {
	m.bus = data
	m.a[address] = data
}

func (m *mockBus) ReadB(register uint8) uint8 {
	m.bus = m.b[register]
	return m.bus
}

func (m *mockBus) WriteB(register uint8, data uint8) {
	m.bus = data
	m.writes = append(m.writes, bWrite{register: register, data: data})
}

func (m *mockBus) DataBus() uint8 {
	return m.bus
}

// write the channel registers through the chip bus interface
func setChannel(eng *dma.Engine, ch int, regs ...uint8) {
	for i, r := range regs {
		eng.ChipWrite(0x4300|uint32(ch)<<4|uint32(i), r)
	}
}

func run(eng *dma.Engine, bus dma.Bus) (units int, cycles int) {
	for eng.Active() {
		cycles += eng.Step(bus)
		units++
	}
	return units, cycles
}

func TestGeneralDMA(t *testing.T) {
	eng := dma.NewEngine()
	bus := newMockBus()
	for i := range 16 {
		bus.a[0x7e1000+uint32(i)] = uint8(i)
	}

	// pattern 1 to VRAM data registers. A address 7e:1000. count 6
	setChannel(eng, 0, 0x01, 0x18, 0x00, 0x10, 0x7e, 0x06, 0x00)
	test.ExpectEquality(t, eng.Active(), false)

	eng.ChipWrite(0x420b, 0x01)
	test.ExpectEquality(t, eng.Active(), true)

	units, cycles := run(eng, bus)
	test.ExpectEquality(t, units, 6)
	test.ExpectEquality(t, cycles, dma.ChannelOverheadCycles+6*dma.ByteCycles)
	test.ExpectEquality(t, len(bus.writes), 6)

	for i, w := range bus.writes {
		test.ExpectEquality(t, w.register, 0x18+uint8(i%2), i)
		test.ExpectEquality(t, w.data, uint8(i), i)
	}

	test.ExpectEquality(t, eng.Channels[0].AAddress, uint16(0x1006))
	test.ExpectEquality(t, eng.Channels[0].Count, uint16(0))
	test.ExpectEquality(t, eng.MDMAEN, uint8(0))
}

func TestPatterns(t *testing.T) {
	expected := [][]uint8{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 1, 0, 1, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0, 1, 1},
		{0, 1, 2, 3, 0, 1, 2, 3},
		{0, 1, 0, 1, 0, 1, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 0, 0, 1, 1},
	}

	for p, e := range expected {
		eng := dma.NewEngine()
		bus := newMockBus()
		setChannel(eng, 3, uint8(p), 0x40, 0x00, 0x00, 0x7e, 0x08, 0x00)
		eng.ChipWrite(0x420b, 0x08)
		run(eng, bus)

		test.DemandEquality(t, len(bus.writes), len(e), p)
		for i, w := range bus.writes {
			test.ExpectEquality(t, w.register, 0x40+e[i], p, i)
		}
	}
}

func TestZeroCount(t *testing.T) {
	eng := dma.NewEngine()
	bus := newMockBus()

	// fixed A address
	setChannel(eng, 0, 0x08, 0x80, 0x00, 0x00, 0x7e, 0x00, 0x00)
	eng.ChipWrite(0x420b, 0x01)
	units, _ := run(eng, bus)
	test.ExpectEquality(t, units, 65536)
	test.ExpectEquality(t, eng.Channels[0].AAddress, uint16(0))
}

func TestChannelOrder(t *testing.T) {
	eng := dma.NewEngine()
	bus := newMockBus()

	setChannel(eng, 5, 0x00, 0x05, 0x00, 0x00, 0x7e, 0x01, 0x00)
	setChannel(eng, 2, 0x00, 0x02, 0x00, 0x00, 0x7e, 0x02, 0x00)
	eng.ChipWrite(0x420b, 0x24)

	units, cycles := run(eng, bus)
	test.ExpectEquality(t, units, 3)
	test.ExpectEquality(t, cycles, 2*dma.ChannelOverheadCycles+3*dma.ByteCycles)
	test.DemandEquality(t, len(bus.writes), 3)
	test.ExpectEquality(t, bus.writes[0].register, uint8(0x02))
	test.ExpectEquality(t, bus.writes[1].register, uint8(0x02))
	test.ExpectEquality(t, bus.writes[2].register, uint8(0x05))
}

func TestDirectionAndDecrement(t *testing.T) {
	eng := dma.NewEngine()
	bus := newMockBus()
	bus.b[0x39] = 0xaa
	bus.b[0x3a] = 0xbb

	// B to A, decrement, pattern 1
	setChannel(eng, 0, 0x91, 0x39, 0x10, 0x00, 0x7e, 0x02, 0x00)
	eng.ChipWrite(0x420b, 0x01)
	run(eng, bus)

	test.ExpectEquality(t, bus.a[0x7e0010], uint8(0xaa))
	test.ExpectEquality(t, bus.a[0x7e000f], uint8(0xbb))
}

func TestInvalidABus(t *testing.T) {
	eng := dma.NewEngine()
	bus := newMockBus()
	bus.a[0x002118] = 0x12
	bus.bus = 0x77

	setChannel(eng, 0, 0x08, 0x04, 0x18, 0x21, 0x00, 0x01, 0x00)
	eng.ChipWrite(0x420b, 0x01)
	run(eng, bus)

	test.DemandEquality(t, len(bus.writes), 1)
	test.ExpectEquality(t, bus.writes[0].data, uint8(0x77))
}

func TestRegisters(t *testing.T) {
	eng := dma.NewEngine()

	d, mask := eng.ChipRead(0x4300)
	test.ExpectEquality(t, d, uint8(0xff))
	test.ExpectEquality(t, mask, uint8(0xff))

	eng.ChipWrite(0x4375, 0x34)
	eng.ChipWrite(0x4376, 0x12)
	test.ExpectEquality(t, eng.Channels[7].Count, uint16(0x1234))

	_, mask = eng.ChipRead(0x430c)
	test.ExpectEquality(t, mask, uint8(0))
	_, mask = eng.ChipRead(0x420b)
	test.ExpectEquality(t, mask, uint8(0))

	eng.ChipWrite(0x431f, 0x99)
	d, _ = eng.ChipRead(0x431b)
	test.ExpectEquality(t, d, uint8(0x99))
}

func TestHDMARepeat(t *testing.T) {
	eng := dma.NewEngine()
	bus := newMockBus()

	// table at 7e:2000
	// 3 lines with repeat: one byte per line
	// 2 lines without repeat: one byte
	// terminator
	table := []uint8{0x83, 0x10, 0x11, 0x12, 0x02, 0x20, 0x00}
	for i, v := range table {
		bus.a[0x7e2000+uint32(i)] = v
	}

	setChannel(eng, 1, 0x00, 0x21, 0x00, 0x20, 0x7e)
	eng.ChipWrite(0x420c, 0x02)

	eng.StartHDMAInit()
	run(eng, bus)
	test.ExpectEquality(t, eng.Channels[1].LineCounter, uint8(0x83))

	for range 8 {
		eng.StartHDMAScanline()
		run(eng, bus)
	}

	test.DemandEquality(t, len(bus.writes), 4)
	for i, v := range []uint8{0x10, 0x11, 0x12, 0x20} {
		test.ExpectEquality(t, bus.writes[i].data, v, i)
		test.ExpectEquality(t, bus.writes[i].register, uint8(0x21), i)
	}

	test.ExpectSuccess(t, eng.Channels[1].HDMACompleted())

	// nothing more happens until the next frame
	eng.StartHDMAScanline()
	test.ExpectEquality(t, eng.Active(), false)

	eng.StartHDMAInit()
	test.ExpectEquality(t, eng.Active(), true)
	run(eng, bus)
	test.ExpectFailure(t, eng.Channels[1].HDMACompleted())
	test.ExpectEquality(t, eng.Channels[1].TableAddress, uint16(0x2001))
}

func TestHDMAIndirect(t *testing.T) {
	eng := dma.NewEngine()
	bus := newMockBus()

	// table entry: 2 lines repeat, pointer to 7f:3000
	table := []uint8{0x82, 0x00, 0x30, 0x00}
	for i, v := range table {
		bus.a[0x7e2000+uint32(i)] = v
	}
	for i := range 4 {
		bus.a[0x7f3000+uint32(i)] = 0xa0 + uint8(i)
	}

	// indirect, pattern 1
	setChannel(eng, 0, 0x41, 0x22, 0x00, 0x20, 0x7e, 0x00, 0x00, 0x7f)
	eng.ChipWrite(0x420c, 0x01)

	eng.StartHDMAInit()
	_, cycles := run(eng, bus)
	test.ExpectEquality(t, cycles, dma.HDMAOverheadCycles+dma.ChannelOverheadCycles+dma.ByteCycles+dma.IndirectReloadCycles)
	test.ExpectEquality(t, eng.Channels[0].Count, uint16(0x3000))

	for range 3 {
		eng.StartHDMAScanline()
		run(eng, bus)
	}

	test.DemandEquality(t, len(bus.writes), 4)
	for i := range 4 {
		test.ExpectEquality(t, bus.writes[i].data, 0xa0+uint8(i), i)
		test.ExpectEquality(t, bus.writes[i].register, 0x22+uint8(i%2), i)
	}
	test.ExpectSuccess(t, eng.Channels[0].HDMACompleted())
}

func TestHDMAPriority(t *testing.T) {
	eng := dma.NewEngine()
	bus := newMockBus()
	bus.a[0x7e2000] = 0x01
	bus.a[0x7e2001] = 0x55

	setChannel(eng, 0, 0x00, 0x18, 0x00, 0x10, 0x7e, 0x04, 0x00)
	setChannel(eng, 1, 0x00, 0x21, 0x00, 0x20, 0x7e)
	eng.ChipWrite(0x420c, 0x02)
	eng.ChipWrite(0x420b, 0x01)

	// first byte of general DMA
	eng.Step(bus)
	test.ExpectEquality(t, len(bus.writes), 1)

	// HDMA init and scanline are performed before the next byte
	eng.StartHDMAInit()
	eng.Step(bus)
	eng.StartHDMAScanline()
	eng.Step(bus)
	test.DemandEquality(t, len(bus.writes), 2)
	test.ExpectEquality(t, bus.writes[1].register, uint8(0x21))
	test.ExpectEquality(t, bus.writes[1].data, uint8(0x55))

	units, _ := run(eng, bus)
	test.ExpectEquality(t, units, 3)
}
