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

// Package ppu implements the register window of the picture processing unit
// and the video memories behind it: VRAM, CGRAM and OAM.
//
// The PPU does not compose backgrounds or sprites. Each visible scanline is
// drawn in the backdrop colour (CGRAM entry zero) scaled by the master
// brightness, or in black if forced blank is set. Changes to the backdrop
// colour during the frame, for example by HDMA, are therefore visible in the
// frame.
package ppu
