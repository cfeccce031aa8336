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
)

// Control bits of the DMAP register.
const (
	ctrlDirection = 0x80
	ctrlIndirect  = 0x40
	ctrlDecrement = 0x10
	ctrlFixed     = 0x08
	ctrlPattern   = 0x07
)

// the B-bus register offsets for each byte of a transfer unit, for each of
// the eight transfer patterns
var patterns = [8][]uint8{
	{0},
	{0, 1},
	{0, 0},
	{0, 0, 1, 1},
	{0, 1, 2, 3},
	{0, 1, 0, 1},
	{0, 0},
	{0, 0, 1, 1},
}

// Channel is the state of a single DMA channel. The exported fields are the
// values of the channel's registers.
type Channel struct {
	// $43x0 DMAP
	Control uint8

	// $43x1 BBAD
	BAddress uint8

	// $43x2-$43x4 A1T
	AAddress uint16
	ABank    uint8

	// $43x5-$43x6 DAS. the byte count for general DMA and the indirect
	// address for HDMA
	Count uint16

	// $43x7 DASB
	IndirectBank uint8

	// $43x8-$43x9 A2A
	TableAddress uint16

	// $43xA NLTR
	LineCounter uint8

	// $43xB and $43xF. no function but readable and writable
	Unused uint8

	// index into the pattern for the next byte of a general DMA
	patternIdx int

	// general DMA channel overhead has been taken
	started bool

	// HDMA state
	doTransfer bool
	completed  bool
}

func (ch Channel) String() string {
	return fmt.Sprintf("ctrl=%02x b=%02x a=%02x%04x count=%04x tbl=%04x line=%02x", ch.Control, ch.BAddress, ch.ABank, ch.AAddress, ch.Count, ch.TableAddress, ch.LineCounter)
}

// BToA returns true if the direction of the transfer is from the B-bus to
// the A-bus.
func (ch Channel) BToA() bool {
	return ch.Control&ctrlDirection == ctrlDirection
}

// Indirect returns true if HDMA for the channel uses indirect addressing.
func (ch Channel) Indirect() bool {
	return ch.Control&ctrlIndirect == ctrlIndirect
}

// Pattern returns the B-bus register offsets for a transfer unit.
func (ch Channel) Pattern() []uint8 {
	return patterns[ch.Control&ctrlPattern]
}

// step the A-bus address of a general DMA
func (ch *Channel) stepAddress() {
	if ch.Control&ctrlFixed == ctrlFixed {
		return
	}
	if ch.Control&ctrlDecrement == ctrlDecrement {
		ch.AAddress--
	} else {
		ch.AAddress++
	}
}

// HDMACompleted returns true if the HDMA table for the channel has been
// terminated for the current frame.
func (ch Channel) HDMACompleted() bool {
	return ch.completed
}

func (ch *Channel) read(register uint8) (uint8, bool) {
	switch register {
	case 0x0:
		return ch.Control, true
	case 0x1:
		return ch.BAddress, true
	case 0x2:
		return uint8(ch.AAddress), true
	case 0x3:
		return uint8(ch.AAddress >> 8), true
	case 0x4:
		return ch.ABank, true
	case 0x5:
		return uint8(ch.Count), true
	case 0x6:
		return uint8(ch.Count >> 8), true
	case 0x7:
		return ch.IndirectBank, true
	case 0x8:
		return uint8(ch.TableAddress), true
	case 0x9:
		return uint8(ch.TableAddress >> 8), true
	case 0xa:
		return ch.LineCounter, true
	case 0xb, 0xf:
		return ch.Unused, true
	}
	return 0, false
}

func (ch *Channel) write(register uint8, data uint8) {
	switch register {
	case 0x0:
		ch.Control = data
	case 0x1:
		ch.BAddress = data
	case 0x2:
		ch.AAddress = ch.AAddress&0xff00 | uint16(data)
	case 0x3:
		ch.AAddress = ch.AAddress&0x00ff | uint16(data)<<8
	case 0x4:
		ch.ABank = data
	case 0x5:
		ch.Count = ch.Count&0xff00 | uint16(data)
	case 0x6:
		ch.Count = ch.Count&0x00ff | uint16(data)<<8
	case 0x7:
		ch.IndirectBank = data
	case 0x8:
		ch.TableAddress = ch.TableAddress&0xff00 | uint16(data)
	case 0x9:
		ch.TableAddress = ch.TableAddress&0x00ff | uint16(data)<<8
	case 0xa:
		ch.LineCounter = data
	case 0xb, 0xf:
		ch.Unused = data
	}
}
