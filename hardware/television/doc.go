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

// Package television receives the output of the emulated console and hands it
// on to any number of FrameRenderers and AudioMixers. The television does not
// present anything itself.
//
// By default the renderers and mixers are called on the emulation goroutine.
// When the television.async preference is set, frames and audio batches are
// queued and handed on from a separate goroutine. The emulation never waits
// for the queue; if it is full the item is dropped and the event logged.
package television
