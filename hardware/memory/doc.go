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

// Package memory implements the address bus of the console. It dispatches
// reads and writes to the WRAM, the cartridge and the registers of the
// different chips according to the memory map.
//
// The memory package also implements the WRAM port registers ($2180 to
// $2183) and the MEMSEL register ($420D), which selects the access speed of
// the ROM in banks 80 to FF.
//
// Addresses with nothing to respond to them return the last value driven
// onto the data bus. This is called open bus.
package memory
