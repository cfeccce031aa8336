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

package timing

import (
	"github.com/jetsetilly/gopher16/hardware/memory/chipbus"
)

// ChipRead implements the chipbus.ChipBus interface.
func (t *Timing) ChipRead(address uint32) (uint8, uint8) {
	d, mask := t.ChipPeek(address)

	switch address & 0xffff {
	case 0x4210:
		t.nmiFlag = false
	case 0x4211:
		t.timeup = false
	}

	return d, mask
}

// ChipPeek implements the chipbus.Peeker interface.
func (t *Timing) ChipPeek(address uint32) (uint8, uint8) {
	switch address & 0xffff {
	case 0x4210:
		var d uint8 = cpuVersion
		if t.nmiFlag {
			d |= 0x80
		}
		return d, 0x8f
	case 0x4211:
		if t.timeup {
			return 0x80, 0x80
		}
		return 0x00, 0x80
	case 0x4212:
		var d uint8
		if t.vblank {
			d |= 0x80
		}
		if t.HBlank() {
			d |= 0x40
		}
		if t.autoJoypad > 0 {
			d |= 0x01
		}
		return d, 0xc1
	case 0x4213:
		return t.WRIO, chipbus.DriveAll
	case 0x4214:
		return uint8(t.RDDIV), chipbus.DriveAll
	case 0x4215:
		return uint8(t.RDDIV >> 8), chipbus.DriveAll
	case 0x4216:
		return uint8(t.RDMPY), chipbus.DriveAll
	case 0x4217:
		return uint8(t.RDMPY >> 8), chipbus.DriveAll
	case 0x4218, 0x4219, 0x421a, 0x421b, 0x421c, 0x421d, 0x421e, 0x421f:
		i := (address - 0x4218) & 0x07
		j := t.JOY[i>>1]
		if i&0x01 == 0x01 {
			return uint8(j >> 8), chipbus.DriveAll
		}
		return uint8(j), chipbus.DriveAll
	}

	// registers $4200 to $420a are write only
	return 0, 0
}

// ChipWrite implements the chipbus.ChipBus interface.
func (t *Timing) ChipWrite(address uint32, data uint8) {
	switch address & 0xffff {
	case 0x4200:
		// enabling NMI while the NMI flag is set raises the NMI immediately
		if t.NMITIMEN&0x80 == 0x00 && data&0x80 == 0x80 && t.nmiFlag {
			t.nmiLine = true
		}
		t.NMITIMEN = data
		if data&0x30 == 0 {
			t.timeup = false
		}
	case 0x4201:
		// falling edge of bit 7 latches the PPU counters
		if t.WRIO&0x80 == 0x80 && data&0x80 == 0x00 && t.display != nil {
			t.display.LatchCounters()
		}
		t.WRIO = data
	case 0x4202:
		t.WRMPYA = data
	case 0x4203:
		t.WRMPYB = data
		t.RDMPY = uint16(t.WRMPYA) * uint16(t.WRMPYB)
		t.RDDIV = uint16(t.WRMPYB)
	case 0x4204:
		t.WRDIV = t.WRDIV&0xff00 | uint16(data)
	case 0x4205:
		t.WRDIV = t.WRDIV&0x00ff | uint16(data)<<8
	case 0x4206:
		if data == 0 {
			t.RDDIV = 0xffff
			t.RDMPY = t.WRDIV
		} else {
			t.RDDIV = t.WRDIV / uint16(data)
			t.RDMPY = t.WRDIV % uint16(data)
		}
	case 0x4207:
		t.HTIME = t.HTIME&0x100 | uint16(data)
	case 0x4208:
		t.HTIME = t.HTIME&0x0ff | uint16(data&0x01)<<8
	case 0x4209:
		t.VTIME = t.VTIME&0x100 | uint16(data)
	case 0x420a:
		t.VTIME = t.VTIME&0x0ff | uint16(data&0x01)<<8
	}
}
