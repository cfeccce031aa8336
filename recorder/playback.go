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

package recorder

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher16/digest"
	"github.com/jetsetilly/gopher16/hardware"
	"github.com/jetsetilly/gopher16/hardware/input"
)

// Playback reperforms the input events in a recording. It implements the
// input.EventPlayback interface.
type Playback struct {
	filename string
	hdr      header

	sequence []entry
	seqCt    int

	digest *digest.Video

	// the frame of the last event
	endFrame int
}

func (plb *Playback) String() string {
	return fmt.Sprintf("%s %d/%d events", plb.filename, plb.seqCt, len(plb.sequence))
}

// NewPlayback reads the recording from the file.
func NewPlayback(filename string) (*Playback, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")

	plb := &Playback{filename: filename}
	plb.hdr, err = parseHeader(lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines); i++ {
		e, err := parseEntry(lines[i], i+1)
		if err != nil {
			return nil, err
		}
		if e.Frame < plb.endFrame {
			return nil, fmt.Errorf("%w: events out of order at line %d", ErrFormat, i+1)
		}
		plb.endFrame = e.Frame
		plb.sequence = append(plb.sequence, e)
	}

	return plb, nil
}

// AttachToConsole checks that the recording was made with the cartridge and
// television specification of the console and attaches the playback.
func (plb *Playback) AttachToConsole(con *hardware.Console) error {
	if con.Mem.Cart == nil {
		return fmt.Errorf("recorder: %w", hardware.ErrNoCartridge)
	}
	if con.TV.Async() {
		return ErrAsyncOutput
	}
	if con.Mem.Cart.Hash != plb.hdr.cartHash {
		return fmt.Errorf("%w: recording was made with cartridge %s", ErrMismatch, plb.hdr.cartName)
	}
	if con.TV.GetSpec().ID != plb.hdr.spec {
		return fmt.Errorf("%w: recording was made with the %s specification", ErrMismatch, plb.hdr.spec)
	}

	if err := con.Input.AttachPlayback(plb); err != nil {
		return fmt.Errorf("recorder: %w", err)
	}

	plb.digest = digest.NewVideo()
	con.TV.AddFrameRenderer(plb.digest)

	return nil
}

// EndFrame returns true if the frame is after the last event in the
// recording.
func (plb *Playback) EndFrame(frame int) bool {
	return frame > plb.endFrame
}

// GetPlayback implements the input.EventPlayback interface.
func (plb *Playback) GetPlayback(frame int) (input.TimedEvent, bool, error) {
	if plb.seqCt >= len(plb.sequence) {
		return input.TimedEvent{}, false, nil
	}

	e := plb.sequence[plb.seqCt]
	if e.Frame > frame {
		return input.TimedEvent{}, false, nil
	}

	plb.seqCt++

	if e.Frame < frame {
		return input.TimedEvent{}, false, fmt.Errorf("%w: event at line %d missed (frame %d)", ErrHash, e.line, frame)
	}

	if plb.digest != nil && e.hash != plb.digest.Hash() {
		return input.TimedEvent{}, false, fmt.Errorf("%w: at line %d (frame %d)", ErrHash, e.line, frame)
	}

	return e.TimedEvent, true, nil
}
