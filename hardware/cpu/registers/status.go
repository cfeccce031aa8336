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

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU, including the hidden emulation flag.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	MemoryWidth      bool // M flag. true means the accumulator is 8 bit
	IndexWidth       bool // X flag. true means the index registers are 8 bit
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool

	// the emulation flag is not part of the status byte. it is exchanged with
	// the carry flag by the XCE instruction
	Emulation bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register. The register is in emulation mode.
func NewStatusRegister() StatusRegister {
	sr := StatusRegister{}
	sr.Reset()
	return sr
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(f bool, on rune, off rune) {
		if f {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Sign, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	flag(sr.MemoryWidth, 'M', 'm')
	flag(sr.IndexWidth, 'X', 'x')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')
	s.WriteRune(' ')
	flag(sr.Emulation, 'E', 'e')

	return s.String()
}

// Reset status flags to the power-on state. Emulation mode with interrupts
// disabled.
func (sr *StatusRegister) Reset() {
	sr.Emulation = true
	sr.Load(0x34)
	sr.DecimalMode = false
}

// AccumulatorWidth returns the width of accumulator operations.
func (sr StatusRegister) AccumulatorWidth() Width {
	return WidthFromFlag(sr.Emulation || sr.MemoryWidth)
}

// IndexRegisterWidth returns the width of index register operations.
func (sr StatusRegister) IndexRegisterWidth() Width {
	return WidthFromFlag(sr.Emulation || sr.IndexWidth)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. In emulation mode bit 5 is always set and bit 4 is the
// break flag, which is only set when pushed by BRK or PHP.
func (sr StatusRegister) Value(brk bool) uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Emulation {
		v |= 0x20
		if brk {
			v |= 0x10
		}
	} else {
		if sr.MemoryWidth {
			v |= 0x20
		}
		if sr.IndexWidth {
			v |= 0x10
		}
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// Load converts an 8 bit integer (taken from the stack, for example) to the
// StatusRegister struct receiver. In emulation mode the width flags are
// forced to 8 bit.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.MemoryWidth = v&0x20 == 0x20
	sr.IndexWidth = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01

	if sr.Emulation {
		sr.MemoryWidth = true
		sr.IndexWidth = true
	}
}

// SetNZ sets the sign and zero flags according to the value at the width.
func (sr *StatusRegister) SetNZ(v uint16, w Width) {
	sr.Sign = w.IsNegative(v)
	sr.Zero = w.IsZero(v)
}
