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

// Package dma implements the eight DMA channels of the console. Each channel
// can be used for general purpose DMA or for HDMA.
//
// General purpose DMA is started by writing to MDMAEN ($420B). The transfer
// takes over the bus from the CPU until every byte of every selected channel
// has been transferred.
//
// HDMA is enabled with HDMAEN ($420C). The channels are initialised at the
// start of every frame and then perform a small transfer once per visible
// scanline, according to a table in memory.
//
// The DMA engine does not access memory directly. The Step() function takes
// a Bus implementation, which will normally be the memory package.
package dma
