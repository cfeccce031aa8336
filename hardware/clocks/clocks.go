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

// Package clocks defines the constant values that define the speed of the main
// clock in the console and the length of bus cycles measured in master clock
// ticks.
//
// The master clock is divided by 6, 8 or 12 for each CPU bus cycle depending
// on the address being accessed. Internal operation cycles are always 6
// master clocks.
package clocks

// Master clock frequencies in Hz.
const (
	NTSC = 21477272
	PAL  = 21281370
)

// APU is the frequency of the audio processor clock in Hz.
const APU = 1024000

// SampleRate is the rate at which the audio processor produces stereo
// samples. One sample for every 32 audio processor cycles.
const SampleRate = APU / 32

// Length of bus cycles in master clock ticks.
const (
	Fast              = 6
	Slow              = 8
	ExtraSlow         = 12
	InternalOperation = Fast
)
