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

import "strings"

// Event is a bit field of the events that can be triggered by the passage of
// time.
type Event uint8

// List of timing events.
const (
	HDMAInit Event = 1 << iota
	HDMAScanline
	RenderScanline
	VBlankStart
	FrameComplete
)

func (ev Event) String() string {
	s := strings.Builder{}
	if ev&HDMAInit == HDMAInit {
		s.WriteString("HDMAInit ")
	}
	if ev&HDMAScanline == HDMAScanline {
		s.WriteString("HDMAScanline ")
	}
	if ev&RenderScanline == RenderScanline {
		s.WriteString("RenderScanline ")
	}
	if ev&VBlankStart == VBlankStart {
		s.WriteString("VBlankStart ")
	}
	if ev&FrameComplete == FrameComplete {
		s.WriteString("FrameComplete ")
	}
	return strings.TrimSpace(s.String())
}

// Listener is notified of timing events as they happen. The scanline is the
// scanline on which the event occurred.
type Listener interface {
	TimingEvent(ev Event, scanline int)
}
