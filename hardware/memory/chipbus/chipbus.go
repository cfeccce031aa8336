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

// Package chipbus defines the interface between the memory system and the
// chips that have registers mapped into the address space.
package chipbus

// ChipBus is implemented by every chip that has registers in the address
// space. The address is the full 24 bit address of the access but chips will
// usually only be interested in the low 16 bits.
type ChipBus interface {
	// ChipRead returns the value of the register along with a mask of the
	// data lines driven by the chip. bits not in the mask take their value
	// from the data bus (open bus)
	ChipRead(address uint32) (data uint8, mask uint8)

	// ChipWrite sets the register
	ChipWrite(address uint32, data uint8)
}

// DriveAll is the mask returned by ChipRead when the chip drives all data
// lines.
const DriveAll = uint8(0xff)

// Merge the data returned by ChipRead with the last value on the data bus.
func Merge(data uint8, mask uint8, bus uint8) uint8 {
	return (data & mask) | (bus &^ mask)
}

// Peeker is implemented by chips that can return the value of a register
// without any side effects.
type Peeker interface {
	ChipPeek(address uint32) (data uint8, mask uint8)
}
