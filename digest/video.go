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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Video implements the television.FrameRenderer interface.
type Video struct {
	digest [sha1.Size]byte

	// the previous digest followed by the pixels of the frame
	pixels []byte

	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// NewFrame implements the television.FrameRenderer interface.
func (dig *Video) NewFrame(_ int, pixels []uint8) error {
	dig.pixels = append(dig.pixels[:0], dig.digest[:]...)
	dig.pixels = append(dig.pixels, pixels...)
	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
	return nil
}

// EndRendering implements the television.FrameRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
