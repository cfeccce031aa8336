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

package dma

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher16/hardware/memory/chipbus"
)

// Bus is the interface to memory used by the DMA engine. The A-bus is the
// full 24 bit address space. The B-bus is the $21xx page.
type Bus interface {
	Read(address uint32) uint8
	Write(address uint32, data uint8)
	ReadB(register uint8) uint8
	WriteB(register uint8, data uint8)

	// the last value driven onto the data bus
	DataBus() uint8
}

// Cost of DMA and HDMA in master cycles.
const (
	ByteCycles            = 8
	ChannelOverheadCycles = 8
	HDMAOverheadCycles    = 18
	IndirectReloadCycles  = 16
)

// NumChannels is the number of DMA channels.
const NumChannels = 8

// Engine is the DMA controller.
type Engine struct {
	Channels [NumChannels]Channel

	// $420B and $420C. MDMAEN bits are cleared as each channel completes
	MDMAEN uint8
	HDMAEN uint8

	hdmaInitPending bool
	hdmaLinePending bool
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine() *Engine {
	eng := &Engine{}
	eng.Reset()
	return eng
}

func (eng *Engine) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("MDMAEN=%02x HDMAEN=%02x", eng.MDMAEN, eng.HDMAEN))
	for i, ch := range eng.Channels {
		if (eng.MDMAEN|eng.HDMAEN)&(1<<i) != 0 {
			s.WriteString(fmt.Sprintf("\n%d: %s", i, ch.String()))
		}
	}
	return s.String()
}

// Reset the DMA engine. The channel registers are set to their power-on
// values and any transfer in progress is abandoned.
func (eng *Engine) Reset() {
	for i := range eng.Channels {
		eng.Channels[i] = Channel{
			Control:      0xff,
			BAddress:     0xff,
			AAddress:     0xffff,
			ABank:        0xff,
			Count:        0xffff,
			IndirectBank: 0xff,
			TableAddress: 0xffff,
			LineCounter:  0xff,
			Unused:       0xff,
			completed:    true,
		}
	}
	eng.MDMAEN = 0
	eng.HDMAEN = 0
	eng.hdmaInitPending = false
	eng.hdmaLinePending = false
}

// Active returns true if there is a DMA or HDMA transfer waiting to be
// performed.
func (eng *Engine) Active() bool {
	return eng.hdmaInitPending || eng.hdmaLinePending || eng.MDMAEN != 0
}

// StartHDMAInit should be called at the start of every frame.
func (eng *Engine) StartHDMAInit() {
	eng.hdmaInitPending = eng.HDMAEN != 0
}

// StartHDMAScanline should be called once during every visible scanline.
func (eng *Engine) StartHDMAScanline() {
	for i := range eng.Channels {
		if eng.HDMAEN&(1<<i) != 0 && !eng.Channels[i].completed {
			eng.hdmaLinePending = true
			return
		}
	}
}

// ChipRead implements the chipbus.ChipBus interface.
func (eng *Engine) ChipRead(address uint32) (uint8, uint8) {
	return eng.ChipPeek(address)
}

// ChipPeek implements the chipbus.Peeker interface.
func (eng *Engine) ChipPeek(address uint32) (uint8, uint8) {
	address &= 0xffff

	// MDMAEN and HDMAEN are write only
	if address < 0x4300 {
		return 0, 0
	}

	ch := (address >> 4) & 0x07
	if d, ok := eng.Channels[ch].read(uint8(address & 0x0f)); ok {
		return d, chipbus.DriveAll
	}
	return 0, 0
}

// ChipWrite implements the chipbus.ChipBus interface.
func (eng *Engine) ChipWrite(address uint32, data uint8) {
	address &= 0xffff

	switch address {
	case 0x420b:
		eng.MDMAEN = data
		for i := range eng.Channels {
			eng.Channels[i].started = false
			eng.Channels[i].patternIdx = 0
		}
		return
	case 0x420c:
		eng.HDMAEN = data
		return
	}

	ch := (address >> 4) & 0x07
	eng.Channels[ch].write(uint8(address&0x0f), data)
}

// validA returns false if the A-bus address cannot be accessed by the DMA
// engine. these are the B-bus registers and the DMA registers
func validA(address uint32) bool {
	if address&0x400000 != 0 {
		return true
	}
	a := address & 0xffff
	switch {
	case a >= 0x2100 && a <= 0x21ff:
		return false
	case a >= 0x4300 && a <= 0x437f:
		return false
	case a == 0x420b || a == 0x420c:
		return false
	}
	return true
}

// transfer a single byte between the A-bus and the B-bus
func transfer(bus Bus, a uint32, b uint8, bToA bool) {
	if bToA {
		d := bus.ReadB(b)
		if validA(a) {
			bus.Write(a, d)
		}
		return
	}

	var d uint8
	if validA(a) {
		d = bus.Read(a)
	} else {
		d = bus.DataBus()
	}
	bus.WriteB(b, d)
}

// Step performs the next unit of DMA activity. HDMA takes priority over
// general DMA. The return value is the number of master cycles consumed.
//
// A unit of general DMA is a single byte. A unit of HDMA is the transfer for
// every active channel for the scanline.
func (eng *Engine) Step(bus Bus) int {
	if eng.hdmaInitPending {
		eng.hdmaInitPending = false
		return eng.hdmaInit(bus)
	}

	if eng.hdmaLinePending {
		eng.hdmaLinePending = false
		return eng.hdmaScanline(bus)
	}

	for i := range eng.Channels {
		if eng.MDMAEN&(1<<i) != 0 {
			return eng.dmaByte(bus, i)
		}
	}

	return 0
}

// transfer the next byte of a general DMA
func (eng *Engine) dmaByte(bus Bus, i int) int {
	ch := &eng.Channels[i]

	cycles := ByteCycles
	if !ch.started {
		ch.started = true
		ch.patternIdx = 0
		cycles += ChannelOverheadCycles
	}

	pattern := ch.Pattern()
	b := ch.BAddress + pattern[ch.patternIdx]
	ch.patternIdx = (ch.patternIdx + 1) % len(pattern)

	transfer(bus, uint32(ch.ABank)<<16|uint32(ch.AAddress), b, ch.BToA())
	ch.stepAddress()

	// a count of zero on the first byte means 65536 bytes
	ch.Count--
	if ch.Count == 0 {
		eng.MDMAEN &^= 1 << i
		ch.started = false
	}

	return cycles
}

// read the next byte of the HDMA table
func (ch *Channel) readTable(bus Bus) uint8 {
	d := bus.Read(uint32(ch.ABank)<<16 | uint32(ch.TableAddress))
	ch.TableAddress++
	return d
}

// load the next entry of the HDMA table. returns the number of cycles
// consumed
func (ch *Channel) reload(bus Bus) int {
	ch.LineCounter = ch.readTable(bus)
	cycles := ByteCycles

	if ch.LineCounter == 0 {
		ch.completed = true
		ch.doTransfer = false
		return cycles
	}

	if ch.Indirect() {
		lo := ch.readTable(bus)
		hi := ch.readTable(bus)
		ch.Count = uint16(hi)<<8 | uint16(lo)
		cycles += IndirectReloadCycles
	}

	ch.doTransfer = true
	return cycles
}

func (eng *Engine) hdmaInit(bus Bus) int {
	cycles := HDMAOverheadCycles

	for i := range eng.Channels {
		ch := &eng.Channels[i]
		if eng.HDMAEN&(1<<i) == 0 {
			ch.completed = true
			continue
		}

		// HDMA cancels any general DMA on the same channel
		eng.MDMAEN &^= 1 << i

		ch.completed = false
		ch.TableAddress = ch.AAddress
		cycles += ChannelOverheadCycles + ch.reload(bus)
	}

	return cycles
}

func (eng *Engine) hdmaScanline(bus Bus) int {
	cycles := HDMAOverheadCycles

	for i := range eng.Channels {
		ch := &eng.Channels[i]
		if eng.HDMAEN&(1<<i) == 0 || ch.completed {
			continue
		}

		cycles += ChannelOverheadCycles

		if ch.doTransfer {
			for _, o := range ch.Pattern() {
				var a uint32
				if ch.Indirect() {
					a = uint32(ch.IndirectBank)<<16 | uint32(ch.Count)
					ch.Count++
				} else {
					a = uint32(ch.ABank)<<16 | uint32(ch.TableAddress)
					ch.TableAddress++
				}
				transfer(bus, a, ch.BAddress+o, ch.BToA())
				cycles += ByteCycles
			}
		}

		ch.LineCounter--
		ch.doTransfer = ch.LineCounter&0x80 == 0x80
		if ch.LineCounter&0x7f == 0 {
			cycles += ch.reload(bus)
		}
	}

	return cycles
}
