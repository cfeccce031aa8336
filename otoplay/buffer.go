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

package otoplay

import (
	"encoding/binary"
	"sync"
)

// Buffer is a bounded queue of little-endian 16 bit stereo samples. It
// implements io.Reader for the audio device.
type Buffer struct {
	crit sync.Mutex
	data []byte
	max  int

	// number of bytes discarded because the buffer was full
	Discarded int

	// number of bytes of silence given because the buffer was empty
	Underrun int
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
// The maximum size is in stereo samples.
func NewBuffer(maxSamples int) *Buffer {
	return &Buffer{
		max: maxSamples * 4,
	}
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.data)
}

// Push interleaved stereo samples onto the buffer.
func (b *Buffer) Push(samples []int16) {
	b.crit.Lock()
	defer b.crit.Unlock()

	for _, s := range samples {
		b.data = binary.LittleEndian.AppendUint16(b.data, uint16(s))
	}

	// keep a whole number of stereo samples when discarding
	if over := len(b.data) - b.max; over > 0 {
		over = (over + 3) &^ 3
		b.Discarded += over
		b.data = append(b.data[:0], b.data[over:]...)
	}
}

// Read implements the io.Reader interface. The read never blocks and always
// fills p, with silence if necessary.
func (b *Buffer) Read(p []byte) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()

	n := copy(p, b.data)
	b.data = append(b.data[:0], b.data[n:]...)

	if n < len(p) {
		clear(p[n:])
		b.Underrun += len(p) - n
	}

	return len(p), nil
}
