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

// Package digest is used to create fingerprints of the console's output.
// Both video and audio digests chain the fingerprint of the previous frame
// or batch into the next, so a single hash describes the entire run.
//
// Digests are used by the determinism tests. Two emulations with the same
// cartridge, the same input and the same initial state produce the same
// digests.
package digest

// Digest implementations compute a running hash of output.
type Digest interface {
	Hash() string
	ResetDigest()
}
