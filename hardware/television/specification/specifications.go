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

package specification

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher16/hardware/clocks"
)

// SpecList is the list of specifications that can be requested.
var SpecList = []string{"NTSC", "PAL"}

// Horizontal timings in master cycles. These are the same for NTSC and PAL.
const (
	CyclesPerDot      = 4
	CyclesPerScanline = 1364
	DotsPerScanline   = CyclesPerScanline / CyclesPerDot

	// the horizontal blank is from dot 274 to dot 1 of the next scanline
	HBlankStart = 274 * CyclesPerDot
	HBlankEnd   = 1 * CyclesPerDot

	// HDMA is initialised once per frame and performed once per visible
	// scanline at these points
	HDMAInit  = 12
	HDMAPoint = 1104

	// length of the auto-joypad read
	AutoJoypadCycles = 4224
)

// Dimensions of the frame produced by the PPU. The visible area starts on
// scanline 1.
const (
	FrameWidth       = 256
	FrameHeight      = 239
	FirstScanline    = 1
	ScanlinesVisible = 224

	// number of visible scanlines when overscan is enabled
	ScanlinesOverscan = 239
)

// Spec is a television specification.
type Spec struct {
	ID string

	// master clock in Hz
	MasterClock int

	// number of scanlines in a frame
	ScanlinesTotal int

	// number of frames per second
	FramesPerSecond float32
}

func (spec Spec) String() string {
	return spec.ID
}

// VBlankStart returns the first scanline of the vertical blank.
func (spec Spec) VBlankStart(overscan bool) int {
	if overscan {
		return FirstScanline + ScanlinesOverscan
	}
	return FirstScanline + ScanlinesVisible
}

// CyclesPerFrame returns the number of master cycles in a frame.
func (spec Spec) CyclesPerFrame() int {
	return spec.ScanlinesTotal * CyclesPerScanline
}

// SpecNTSC is the specification for NTSC televisions.
var SpecNTSC = Spec{
	ID:              "NTSC",
	MasterClock:     clocks.NTSC,
	ScanlinesTotal:  262,
	FramesPerSecond: float32(clocks.NTSC) / (262 * CyclesPerScanline),
}

// SpecPAL is the specification for PAL televisions.
var SpecPAL = Spec{
	ID:              "PAL",
	MasterClock:     clocks.PAL,
	ScanlinesTotal:  312,
	FramesPerSecond: float32(clocks.PAL) / (312 * CyclesPerScanline),
}

// SearchSpec returns the specification with the ID. The search is case
// insensitive.
func SearchSpec(id string) (Spec, error) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "NTSC":
		return SpecNTSC, nil
	case "PAL":
		return SpecPAL, nil
	}
	return Spec{}, fmt.Errorf("specification: unknown specification %q", id)
}
