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

// Package instructions defines the instruction set of the 65816 as found in
// the console's CPU. The definitions are data and the Table type arranges the
// definitions by the width mode of the CPU, so that the number of bytes and
// the number of cycles of an instruction can be looked up directly, without
// any calculation at the point of decode.
package instructions
