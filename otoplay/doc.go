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

// Package otoplay plays the audio produced by the console through the
// host's audio device. Playback uses "github.com/ebitengine/oto/v3" and is
// only available when the oto build constraint is present.
//
// Audio batches arrive from the emulation and are queued in a Buffer. The
// audio device drains the Buffer from its own goroutine. If the device is
// slower than the emulation the oldest samples are discarded; if it is faster
// the device is given silence.
package otoplay
