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

// Package timing implements the interrupt and timing controller. It counts
// master cycles and derives from them the position of the television beam,
// the NMI and IRQ conditions and the points at which HDMA is performed.
//
// It also implements the registers at $4200 to $421F, which includes the
// multiply and divide unit, the programmable IO port and the auto-joypad
// read registers.
package timing
