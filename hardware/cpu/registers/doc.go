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

// Package registers implements the registers of the 65816 CPU.
//
// Registers are 16 bits wide but most operations are performed at a Width,
// which is 8 or 16 bits depending on the state of the status register.
// Operations at Width8 leave the high byte of the register untouched. The
// operations do not affect the status register, that is left to the CPU
// which must interpret the results of each operation. For instance, in the
// CPU, we might have this sequence of function calls:
//
//	a.Load(0x1234)
//	a.Set(0x00, registers.Width8)
//	sr.Zero = a.IsZero(registers.Width8)
//
// In this case, the zero flag in the status register will be true even though
// the register as a whole is 0x1200.
package registers
