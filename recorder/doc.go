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

// Package recorder records the input events of an emulation to a file and
// plays them back. A playback of a recording with the same cartridge
// produces the same output as the original emulation.
//
// Alongside each event the recording holds a digest of the video output at
// the moment the event happened. The digest is checked during playback and
// any difference is reported as an error. Recording and playback require the
// television to deliver frames synchronously.
package recorder
