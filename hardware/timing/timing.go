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
	"fmt"

	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware/television/specification"
)

// Display is the part of the PPU that the timing controller needs to know
// about.
type Display interface {
	// overscan changes the scanline on which vblank starts
	Overscan() bool

	// latch the beam position into the PPU's counter registers
	LatchCounters()
}

// Joypads are read automatically at the start of vblank, if enabled.
type Joypads interface {
	// the sixteen bit value for each of JOY1 to JOY4
	AutoRead() [4]uint16
}

// the CPU version number returned in the low bits of RDNMI
const cpuVersion = 0x02

// Timing is the interrupt and timing controller.
type Timing struct {
	env *environment.Environment

	Spec specification.Spec

	display  Display
	joypads  Joypads
	listener Listener

	// total number of master cycles since reset
	MasterCycles uint64

	// position of the beam. the cycle is the master cycle within the
	// scanline
	Frame    int
	Scanline int
	Cycle    int

	// write registers
	NMITIMEN uint8
	WRIO     uint8
	HTIME    uint16
	VTIME    uint16
	WRMPYA   uint8
	WRMPYB   uint8
	WRDIV    uint16

	// results of the multiply and divide unit
	RDDIV uint16
	RDMPY uint16

	// auto-joypad results
	JOY [4]uint16

	// the flag returned by RDNMI
	nmiFlag bool

	// the NMI signal to the CPU. remains set until acknowledged
	nmiLine bool

	// the flag returned by TIMEUP
	timeup bool

	vblank bool

	// number of cycles remaining in the auto-joypad read
	autoJoypad int
}

// NewTiming is the preferred method of initialisation for the Timing type.
func NewTiming(env *environment.Environment, spec specification.Spec) *Timing {
	t := &Timing{
		env:  env,
		Spec: spec,
	}
	t.Reset()
	return t
}

// Plumb the collaborators of the timing controller. Any of the arguments
// can be nil.
func (t *Timing) Plumb(display Display, joypads Joypads, listener Listener) {
	t.display = display
	t.joypads = joypads
	t.listener = listener
}

func (t *Timing) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d", t.Frame, t.Scanline, t.Cycle/specification.CyclesPerDot)
}

// Reset the timing controller. The beam is returned to the top of the
// frame.
func (t *Timing) Reset() {
	t.MasterCycles = 0
	t.Frame = 0
	t.Scanline = 0
	t.Cycle = 0

	t.NMITIMEN = 0
	t.WRIO = 0xff
	t.HTIME = 0x1ff
	t.VTIME = 0x1ff
	t.WRMPYA = 0xff
	t.WRMPYB = 0xff
	t.WRDIV = 0xffff
	t.RDDIV = 0
	t.RDMPY = 0
	t.JOY = [4]uint16{}

	t.nmiFlag = false
	t.nmiLine = false
	t.timeup = false
	t.vblank = false
	t.autoJoypad = 0
}

// Position returns the scanline and the dot of the beam.
func (t *Timing) Position() (int, int) {
	return t.Scanline, t.Cycle / specification.CyclesPerDot
}

// VBlank returns true if the beam is in the vertical blank.
func (t *Timing) VBlank() bool {
	return t.vblank
}

// HBlank returns true if the beam is in the horizontal blank.
func (t *Timing) HBlank() bool {
	return t.Cycle >= specification.HBlankStart || t.Cycle < specification.HBlankEnd
}

// NMI returns true if the NMI signal to the CPU is asserted.
func (t *Timing) NMI() bool {
	return t.nmiLine
}

// AckNMI should be called when the CPU begins servicing the NMI.
func (t *Timing) AckNMI() {
	t.nmiLine = false
}

// IRQLine returns true if the IRQ signal to the CPU is asserted. The signal
// remains asserted until TIMEUP is read or the H/V IRQ is disabled.
func (t *Timing) IRQLine() bool {
	return t.timeup
}

func (t *Timing) vblankStart() int {
	overscan := false
	if t.display != nil {
		overscan = t.display.Overscan()
	}
	return t.Spec.VBlankStart(overscan)
}

func (t *Timing) notify(ev Event, scanline int) {
	if t.listener != nil {
		t.listener.TimingEvent(ev, scanline)
	}
}

// Tick advances the timing controller by the number of master cycles.
func (t *Timing) Tick(n int) {
	for range n {
		t.MasterCycles++
		t.Cycle++

		if t.autoJoypad > 0 {
			t.autoJoypad--
		}

		if t.Cycle >= specification.CyclesPerScanline {
			t.Cycle = 0
			t.Scanline++
			if t.Scanline >= t.Spec.ScanlinesTotal {
				t.notify(FrameComplete, t.Scanline-1)
				t.Scanline = 0
				t.Frame++
			}
			t.startScanline()
		}

		t.checkCycle()
	}
}

func (t *Timing) startScanline() {
	switch t.Scanline {
	case 0:
		t.vblank = false
		t.nmiFlag = false
	case t.vblankStart():
		t.vblank = true
		t.nmiFlag = true
		if t.NMITIMEN&0x80 == 0x80 {
			t.nmiLine = true
		}
		if t.NMITIMEN&0x01 == 0x01 {
			if t.joypads != nil {
				t.JOY = t.joypads.AutoRead()
			}
			t.autoJoypad = specification.AutoJoypadCycles
		}
		t.notify(VBlankStart, t.Scanline)
	}
}

func (t *Timing) checkCycle() {
	switch t.Cycle {
	case specification.HDMAInit:
		if t.Scanline == 0 {
			t.notify(HDMAInit, t.Scanline)
		}
	case specification.HDMAPoint:
		if t.Scanline < t.vblankStart() {
			t.notify(HDMAScanline, t.Scanline)
		}
	case specification.HBlankStart:
		if t.Scanline >= specification.FirstScanline && t.Scanline < t.vblankStart() {
			t.notify(RenderScanline, t.Scanline)
		}
	}

	hmatch := t.Cycle == int(t.HTIME)*specification.CyclesPerDot
	vmatch := t.Scanline == int(t.VTIME)

	switch (t.NMITIMEN >> 4) & 0x03 {
	case 1:
		t.timeup = t.timeup || hmatch
	case 2:
		t.timeup = t.timeup || (vmatch && t.Cycle == 0)
	case 3:
		t.timeup = t.timeup || (vmatch && hmatch)
	}
}
