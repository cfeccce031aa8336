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

package input

import (
	"fmt"
)

// PortID identifies a controller port.
type PortID int

// List of controller ports.
const (
	PortOne PortID = iota
	PortTwo
	NumPorts
)

func (id PortID) String() string {
	switch id {
	case PortOne:
		return "port 1"
	case PortTwo:
		return "port 2"
	}
	return "unknown port"
}

// Ports are the two controller ports and the joypad serial registers.
type Ports struct {
	Pads [NumPorts]*Pad

	// strobe line set by bit 0 of $4016
	strobe bool
}

// NewPorts is the preferred method of initialisation for the Ports type.
// A standard pad is plugged into both ports.
func NewPorts() *Ports {
	return &Ports{
		Pads: [NumPorts]*Pad{{}, {}},
	}
}

func (p *Ports) String() string {
	return fmt.Sprintf("[%s] [%s]", p.Pads[PortOne], p.Pads[PortTwo])
}

// Reset the ports. The state of the buttons is not changed.
func (p *Ports) Reset() {
	p.strobe = false
	for _, pad := range p.Pads {
		pad.latch()
	}
}

// ChipRead implements the chipbus.ChipBus interface. Only bits 0 and 1 are
// driven. Bit 1 is always zero because there is no multitap.
func (p *Ports) ChipRead(address uint32) (uint8, uint8) {
	pad := p.Pads[PortOne]
	if address&0x01 == 0x01 {
		pad = p.Pads[PortTwo]
	}

	if p.strobe {
		pad.latch()
	}

	return pad.serial(), 0x03
}

// ChipWrite implements the chipbus.ChipBus interface. Only $4016 is
// writable.
func (p *Ports) ChipWrite(address uint32, data uint8) {
	if address&0x01 == 0x01 {
		return
	}

	strobe := data&0x01 == 0x01
	if strobe || p.strobe {
		for _, pad := range p.Pads {
			pad.latch()
		}
	}
	p.strobe = strobe
}

// AutoRead implements the timing.Joypads interface. JOY3 and JOY4 are always
// zero.
func (p *Ports) AutoRead() [4]uint16 {
	var joy [4]uint16
	for i, pad := range p.Pads {
		joy[i] = uint16(pad.buttons)
		pad.exhaust()
	}
	return joy
}
