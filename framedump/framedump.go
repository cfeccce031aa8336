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

// Package framedump writes frames produced by the console to disk as BMP
// files. Useful for checking the output of a headless emulation.
package framedump

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher16/hardware/television/specification"
	"github.com/jetsetilly/gopher16/logger"
	"golang.org/x/image/bmp"
)

// Dump implements the television.FrameRenderer interface.
type Dump struct {
	dir string

	// every nth frame is written
	every int

	// number of frames received
	count int

	// number of files written
	Written int
}

// NewDump is the preferred method of initialisation for the Dump type. Every
// nth frame will be written to the directory. The directory is created if it
// does not exist. An every value of less than one is treated as one.
func NewDump(dir string, every int) (*Dump, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("framedump: %w", err)
	}
	if every < 1 {
		every = 1
	}
	return &Dump{
		dir:   dir,
		every: every,
	}, nil
}

// Filename returns the name of the file used for the frame number.
func (d *Dump) Filename(frame int) string {
	return filepath.Join(d.dir, fmt.Sprintf("frame_%06d.bmp", frame))
}

// NewFrame implements the television.FrameRenderer interface.
func (d *Dump) NewFrame(frame int, pixels []uint8) error {
	d.count++
	if (d.count-1)%d.every != 0 {
		return nil
	}

	if len(pixels) < specification.FrameWidth*specification.FrameHeight*4 {
		return fmt.Errorf("framedump: frame %d is too short (%d bytes)", frame, len(pixels))
	}

	img := &image.NRGBA{
		Pix:    pixels,
		Stride: specification.FrameWidth * 4,
		Rect:   image.Rect(0, 0, specification.FrameWidth, specification.FrameHeight),
	}

	f, err := os.Create(d.Filename(frame))
	if err != nil {
		return fmt.Errorf("framedump: %w", err)
	}

	err = bmp.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("framedump: %w", err)
	}

	d.Written++
	return nil
}

// EndRendering implements the television.FrameRenderer interface.
func (d *Dump) EndRendering() error {
	logger.Logf(logger.Allow, "framedump", "%d frames written to %s", d.Written, d.dir)
	return nil
}
