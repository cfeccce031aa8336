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

// Package cartridge decodes a cartridge image and maps it into the address
// space of the console.
//
// The header of the image is found by scoring the three possible header
// locations. The best scoring header decides the mapper (LoROM, HiROM or
// ExHiROM) unless the Loader specifies a mapping. The mapper provides the
// memory regions occupied by the cartridge and the transform from a 24 bit
// address to an offset into the ROM or SRAM data.
package cartridge
