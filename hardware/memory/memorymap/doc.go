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

// Package memorymap describes how the 24 bit address space of the console is
// divided between the different areas of memory.
//
// A Map is an ordered list of non-overlapping regions that covers the entire
// address space. Addresses that have nothing to respond to them are in
// regions with the Unmapped area. The Map is built from the fixed layout of
// the console (SystemRegions) and the layout of the cartridge, which depends
// on the cartridge's mapper.
package memorymap
