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

// Package apu implements the communication ports between the CPU and the
// audio processor.
//
// The audio processor itself is not emulated. Instead, the boot ROM of the
// audio processor (the IPL) is emulated at a high level. The IPL handshake
// and the upload protocol are supported, which means that programs waiting
// for the audio processor to be ready, or uploading data to the audio RAM,
// will run as expected. Once the CPU commands the IPL to jump to the
// uploaded program, the ports keep their last values.
//
// The APU produces a stream of silent stereo samples at 32kHz, which are
// handed to the Mixer in batches.
package apu
