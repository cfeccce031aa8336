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

package ppu

import (
	"fmt"

	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware/television/specification"
)

// Sizes of the video memories.
const (
	VRAMSize  = 0x10000
	CGRAMSize = 256
	OAMSize   = 544
)

// Beam is the source of the beam position.
type Beam interface {
	Position() (scanline int, dot int)
}

// the version numbers returned by STAT77 and STAT78
const (
	ppu1Version = 0x01
	ppu2Version = 0x03
)

// PPU is the picture processing unit.
type PPU struct {
	env  *environment.Environment
	spec specification.Spec
	beam Beam

	VRAM  []uint8
	CGRAM [CGRAMSize]uint16
	OAM   [OAMSize]uint8

	// registers that have no special behaviour are stored as written
	Regs [0x40]uint8

	// INIDISP
	forcedBlank bool
	brightness  uint8

	// VRAM port. the address is a word address
	vramAddress   uint16
	vramIncrement uint16
	vramIncHigh   bool
	vramPrefetch  uint16

	// CGRAM port
	cgramAddress uint8
	cgramLatch   uint8
	cgramHigh    bool

	// OAM port. the address is a byte address
	oamAddress uint16
	oamReload  uint16
	oamLatch   uint8

	// mode 7 multiply. the register values and the latch for the two write
	// registers
	m7a     uint16
	m7b     uint16
	m7latch uint8

	// SETINI
	overscan  bool
	interlace bool

	// counter latch
	ophct        uint16
	opvct        uint16
	ophctHigh    bool
	opvctHigh    bool
	countLatched bool

	// master cycles received by Tick()
	Cycles uint64

	// RGBA pixels of the current frame
	frame []uint8
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(env *environment.Environment, spec specification.Spec, beam Beam) *PPU {
	ppu := &PPU{
		env:   env,
		spec:  spec,
		beam:  beam,
		VRAM:  make([]uint8, VRAMSize),
		frame: make([]uint8, specification.FrameWidth*specification.FrameHeight*4),
	}
	ppu.Reset()
	return ppu
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("forced=%v bright=%d vram=%04x cgram=%02x oam=%03x", ppu.forcedBlank, ppu.brightness, ppu.vramAddress, ppu.cgramAddress, ppu.oamAddress)
}

// SetSpec changes the television specification.
func (ppu *PPU) SetSpec(spec specification.Spec) {
	ppu.spec = spec
}

// Reset the PPU to its power-on state.
func (ppu *PPU) Reset() {
	if ppu.env != nil && ppu.env.Prefs.RandomState.Get().(bool) {
		ppu.env.Random.Fill(ppu.VRAM)
		ppu.env.Random.Fill(ppu.OAM[:])
	} else {
		clear(ppu.VRAM)
		clear(ppu.OAM[:])
	}
	clear(ppu.CGRAM[:])
	clear(ppu.Regs[:])
	ppu.EndFrame()

	ppu.forcedBlank = true
	ppu.brightness = 0

	ppu.vramAddress = 0
	ppu.vramIncrement = 1
	ppu.vramIncHigh = false
	ppu.vramPrefetch = 0

	ppu.cgramAddress = 0
	ppu.cgramLatch = 0
	ppu.cgramHigh = false

	ppu.oamAddress = 0
	ppu.oamReload = 0
	ppu.oamLatch = 0

	ppu.m7a = 0
	ppu.m7b = 0
	ppu.m7latch = 0

	ppu.overscan = false
	ppu.interlace = false

	ppu.ophct = 0
	ppu.opvct = 0
	ppu.ophctHigh = false
	ppu.opvctHigh = false
	ppu.countLatched = false

	ppu.Cycles = 0
}

// Tick advances the PPU by the number of master cycles.
func (ppu *PPU) Tick(n int) {
	ppu.Cycles += uint64(n)
}

// Overscan implements the timing.Display interface.
func (ppu *PPU) Overscan() bool {
	return ppu.overscan
}

// LatchCounters implements the timing.Display interface.
func (ppu *PPU) LatchCounters() {
	if ppu.beam == nil {
		return
	}
	scanline, dot := ppu.beam.Position()
	ppu.ophct = uint16(dot) & 0x1ff
	ppu.opvct = uint16(scanline) & 0x1ff
	ppu.countLatched = true
}

// ForcedBlank returns true if the display is blanked by INIDISP.
func (ppu *PPU) ForcedBlank() bool {
	return ppu.forcedBlank
}

// Brightness returns the master brightness set by INIDISP.
func (ppu *PPU) Brightness() uint8 {
	return ppu.brightness
}

// Backdrop returns the colour of the backdrop as it will be drawn.
func (ppu *PPU) Backdrop() (r, g, b uint8) {
	if ppu.forcedBlank || ppu.brightness == 0 {
		return 0, 0, 0
	}

	c := ppu.CGRAM[0]
	scale := func(v uint16) uint8 {
		v &= 0x1f
		v8 := uint16(v<<3 | v>>2)
		return uint8(v8 * uint16(ppu.brightness) / 15)
	}

	return scale(c), scale(c >> 5), scale(c >> 10)
}

// RenderScanline draws the scanline into the frame. Scanlines outside the
// frame are ignored.
func (ppu *PPU) RenderScanline(scanline int) {
	y := scanline - specification.FirstScanline
	if y < 0 || y >= specification.FrameHeight {
		return
	}

	r, g, b := ppu.Backdrop()
	row := ppu.frame[y*specification.FrameWidth*4 : (y+1)*specification.FrameWidth*4]
	for x := 0; x < len(row); x += 4 {
		row[x] = r
		row[x+1] = g
		row[x+2] = b
		row[x+3] = 0xff
	}
}

// Frame returns the pixels of the current frame. The slice is reused by the
// PPU and should be copied if it is to be kept.
func (ppu *PPU) Frame() []uint8 {
	return ppu.frame
}

// EndFrame should be called after the frame has been handed to the
// television. Scanlines that are not drawn in the next frame will be black.
func (ppu *PPU) EndFrame() {
	for i := range ppu.frame {
		if i&0x03 == 0x03 {
			ppu.frame[i] = 0xff
		} else {
			ppu.frame[i] = 0x00
		}
	}
}
