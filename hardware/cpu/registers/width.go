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

package registers

// Width of a register operation. Either 8 or 16 bits.
type Width int

// List of valid widths.
const (
	Width8  Width = 8
	Width16 Width = 16
)

// WidthFromFlag converts a status register width flag (true means 8 bit) to a
// Width value.
func WidthFromFlag(eightBit bool) Width {
	if eightBit {
		return Width8
	}
	return Width16
}

// Mask returns the bits of a value that are significant at the width.
func (w Width) Mask() uint16 {
	if w == Width8 {
		return 0x00ff
	}
	return 0xffff
}

// SignBit returns the most significant bit at the width.
func (w Width) SignBit() uint16 {
	if w == Width8 {
		return 0x0080
	}
	return 0x8000
}

// OverflowBit returns the bit used by the BIT instruction to set the overflow
// flag.
func (w Width) OverflowBit() uint16 {
	return w.SignBit() >> 1
}

// Bytes returns the number of bytes at the width.
func (w Width) Bytes() int {
	return int(w) / 8
}

// IsNegative returns true if the sign bit is set in the value.
func (w Width) IsNegative(v uint16) bool {
	return v&w.SignBit() != 0
}

// IsZero returns true if the significant bits of the value are all zero.
func (w Width) IsZero(v uint16) bool {
	return v&w.Mask() == 0
}

func (w Width) String() string {
	if w == Width8 {
		return "8bit"
	}
	return "16bit"
}
