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

package television

// FrameRenderer implementations display, or otherwise work with, the frames
// produced by the console. For example framedump.Dump and digest.Video.
type FrameRenderer interface {
	// NewFrame is called once per frame. The pixels are RGBA with a stride
	// of specification.FrameWidth*4. The slice should not be kept after the
	// function returns.
	NewFrame(frame int, pixels []uint8) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. the renderer should be considered unusable after EndRendering()
	// has been called
	EndRendering() error
}

// AudioMixer implementations work with sound; most probably playing it. An
// example of an AudioMixer that does not play sound but otherwise works with
// it is the digest.Audio type.
type AudioMixer interface {
	// SetAudio is called with a batch of interleaved stereo samples at
	// 32kHz. The slice should not be kept after the function returns.
	SetAudio(samples []int16) error

	// the mixer should be considered unusable after EndMixing() has been
	// called
	EndMixing() error
}
