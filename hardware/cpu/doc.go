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

// Package cpu emulates the 65816 microprocessor as found in the console. The
// CPU type is the main entry point and is driven by ExecuteInstruction(),
// which runs one full instruction.
//
// The supplied callback function is called once per bus cycle with the length
// of that cycle in master clock ticks. This allows the rest of the hardware
// to be advanced in lockstep with the CPU, which is important for reads of
// registers that depend on the position of the raster.
//
// Instructions are decoded with the dispatch table in the instructions
// package. The table is indexed by the width mode of the CPU and so the width
// of the accumulator and index registers is fixed at the moment the opcode is
// decoded. Changes to the width mode by XCE, REP, SEP, PLP and RTI take
// effect from the next instruction.
//
// Interrupts are serviced by the Interrupt() function, which should only be
// called between instructions. The CPU itself knows nothing of the source of
// interrupts.
package cpu
