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

package framedump_test

import (
	"image/color"
	"os"
	"testing"

	"github.com/jetsetilly/gopher16/framedump"
	"github.com/jetsetilly/gopher16/hardware/television"
	"github.com/jetsetilly/gopher16/hardware/television/specification"
	"github.com/jetsetilly/gopher16/test"
	"golang.org/x/image/bmp"
)

func TestDump(t *testing.T) {
	d, err := framedump.NewDump(t.TempDir(), 2)
	test.DemandSuccess(t, err)
	test.ExpectImplements[television.FrameRenderer](t, d)

	pixels := make([]uint8, specification.FrameWidth*specification.FrameHeight*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i] = 0xff
		pixels[i+3] = 0xff
	}

	for i := range 3 {
		test.ExpectSuccess(t, d.NewFrame(i, pixels))
	}
	test.ExpectEquality(t, d.Written, 2)
	test.ExpectSuccess(t, d.EndRendering())

	// frame 1 is skipped
	_, err = os.Stat(d.Filename(1))
	test.ExpectFailure(t, err)

	f, err := os.Open(d.Filename(2))
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := bmp.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), specification.FrameWidth)
	test.ExpectEquality(t, img.Bounds().Dy(), specification.FrameHeight)

	r, g, b, _ := img.At(10, 10).RGBA()
	c := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	test.ExpectEquality(t, c, color.RGBA{R: 0xff})
}

func TestShortFrame(t *testing.T) {
	d, err := framedump.NewDump(t.TempDir(), 1)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, d.NewFrame(0, []uint8{0, 0, 0, 0}))
}
