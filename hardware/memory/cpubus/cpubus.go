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

// Package cpubus defines the interface to the memory system as seen by the
// CPU, along with the locations of the interrupt vectors.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are 24 bit (bank:offset).
//
// Reads never fail. An address that has nothing to respond to it returns the
// last value to have been driven onto the data bus.
type Memory interface {
	Read(address uint32) uint8
	Write(address uint32, data uint8)

	// the number of master clock cycles taken by an access to the address
	AccessTime(address uint32) int
}

// Debugger defines operations that access memory without any side effects.
// Peek and Poke do not affect the data bus and do not trigger any register
// side effects.
type Debugger interface {
	Peek(address uint32) uint8
	Poke(address uint32, data uint8)
}

// Interrupt vectors in bank zero. The emulation mode BRK shares the IRQ
// vector.
const (
	NativeCOP   = uint16(0xffe4)
	NativeBRK   = uint16(0xffe6)
	NativeABORT = uint16(0xffe8)
	NativeNMI   = uint16(0xffea)
	NativeIRQ   = uint16(0xffee)

	EmulationCOP   = uint16(0xfff4)
	EmulationABORT = uint16(0xfff8)
	EmulationNMI   = uint16(0xfffa)
	Reset          = uint16(0xfffc)
	EmulationIRQ   = uint16(0xfffe)
)
