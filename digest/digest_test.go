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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/digest"
	"github.com/jetsetilly/gopher16/hardware/television"
	"github.com/jetsetilly/gopher16/test"
)

func TestVideo(t *testing.T) {
	a := digest.NewVideo()
	b := digest.NewVideo()
	test.ExpectImplements[television.FrameRenderer](t, a)
	test.ExpectImplements[digest.Digest](t, a)

	frame := []uint8{1, 2, 3, 4}
	test.ExpectSuccess(t, a.NewFrame(0, frame))
	test.ExpectSuccess(t, b.NewFrame(0, frame))
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// the same frame a second time changes the digest because the digests
	// are chained
	h := a.Hash()
	test.ExpectSuccess(t, a.NewFrame(1, frame))
	test.ExpectInequality(t, a.Hash(), h)
	test.ExpectEquality(t, a.Frames(), 2)

	// a different frame gives a different digest
	test.ExpectSuccess(t, b.NewFrame(1, []uint8{1, 2, 3, 5}))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Frames(), 0)
	test.ExpectEquality(t, a.Hash(), "0000000000000000000000000000000000000000")
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()
	test.ExpectImplements[television.AudioMixer](t, a)

	test.ExpectSuccess(t, a.SetAudio([]int16{0, 0, -1, 1}))
	test.ExpectSuccess(t, b.SetAudio([]int16{0, 0, -1, 1}))
	test.ExpectEquality(t, a.Hash(), b.Hash())

	test.ExpectSuccess(t, b.SetAudio([]int16{0, 0}))
	test.ExpectInequality(t, a.Hash(), b.Hash())
}
