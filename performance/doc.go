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

// Package performance measures the speed of the emulation.
//
// Check() runs a console for a fixed duration after a short lead time and
// reports the number of frames generated per second, along with how close
// that is to the frame rate of the television specification.
//
// RunProfiler() wraps any function with the CPU, heap and execution trace
// profilers selected by a Profile value. ParseProfile() converts the
// command line form of the Profile value.
package performance
