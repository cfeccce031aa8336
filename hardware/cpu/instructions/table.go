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

package instructions

// WidthMode identifies one of the four combinations of accumulator and index
// register width. In emulation mode the width mode is always Mode8A8X.
type WidthMode int

// List of width modes. The value is m<<1|x where m and x are the flags from
// the status register.
const (
	Mode16A16X WidthMode = iota
	Mode16A8X
	Mode8A16X
	Mode8A8X
	NumWidthModes
)

// NewWidthMode returns the WidthMode for the accumulator and index widths.
func NewWidthMode(accumulator8 bool, index8 bool) WidthMode {
	var m WidthMode
	if accumulator8 {
		m |= 0b10
	}
	if index8 {
		m |= 0b01
	}
	return m
}

// Accumulator16 returns true if the accumulator is 16 bit in this mode.
func (m WidthMode) Accumulator16() bool {
	return m&0b10 == 0
}

// Index16 returns true if the index registers are 16 bit in this mode.
func (m WidthMode) Index16() bool {
	return m&0b01 == 0
}

func (m WidthMode) String() string {
	switch m {
	case Mode16A16X:
		return "m=0 x=0"
	case Mode16A8X:
		return "m=0 x=1"
	case Mode8A16X:
		return "m=1 x=0"
	case Mode8A8X:
		return "m=1 x=1"
	}
	return "unknown width mode"
}

// Table is the dispatch table for the CPU. Definitions are indexed by width
// mode and then by opcode.
type Table [NumWidthModes][256]Definition

// NewTable creates the dispatch table from the base definitions. The Bytes
// and Cycles fields of each entry reflect the register widths of the width
// mode. Conditional cycles (direct page alignment, page crossing, branching
// and native mode) are not included.
func NewTable() *Table {
	var tab Table

	for m := range NumWidthModes {
		for op, defn := range definitions {
			if m.Accumulator16() {
				if defn.Has(ModAccumulator) {
					defn.Cycles++
					if defn.AddressingMode == Immediate {
						defn.Bytes++
					}
				}
				if defn.Has(ModAccumulatorRMW) {
					defn.Cycles += 2
				}
			}

			if m.Index16() {
				if defn.Has(ModIndex) {
					defn.Cycles++
					if defn.AddressingMode == Immediate {
						defn.Bytes++
					}
				}

				// page penalty is unconditional with 16 bit index registers
				if defn.Has(ModPage) {
					defn.Cycles++
				}
			}

			defn.PageSensitive = defn.Has(ModPage) && !m.Index16()

			tab[m][op] = defn
		}
	}

	return &tab
}

// Lookup returns the definition for the opcode in the width mode.
func (tab *Table) Lookup(mode WidthMode, opcode uint8) *Definition {
	return &tab[mode][opcode]
}
