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

// Package prefs facilitates the storage of preferential values in the
// emulation. Preferences are typed (Bool, Int, String) and safe to access
// from more than one goroutine.
//
// Values can be persisted with the Disk type. The file format is a simple
// list of key/value pairs, one per line, separated by " :: ". A Disk only
// writes the keys it knows about and preserves the keys of other Disk
// instances using the same file.
//
// The command line stack allows preference values to be overridden for the
// duration of a single run. For example:
//
//	prefs.PushCommandLineStack("hardware.region::PAL; hardware.randstate::true")
//
// The values are consumed as each Disk is loaded.
package prefs
