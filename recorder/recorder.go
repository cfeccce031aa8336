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
	"io"
	"os"

	"github.com/jetsetilly/gopher16/digest"
	"github.com/jetsetilly/gopher16/hardware"
	"github.com/jetsetilly/gopher16/hardware/input"
	"github.com/jetsetilly/gopher16/logger"
)

// Recorder transcribes input events to a file. It implements the
// input.EventRecorder interface.
type Recorder struct {
	con    *hardware.Console
	output io.WriteCloser
	digest *digest.Video

	events int
}

// NewRecorder creates the recording file and attaches the recorder to the
// console. The console must have a cartridge attached.
func NewRecorder(filename string, con *hardware.Console) (*Recorder, error) {
	if con.Mem.Cart == nil {
		return nil, fmt.Errorf("recorder: %w", hardware.ErrNoCartridge)
	}
	if con.TV.Async() {
		return nil, ErrAsyncOutput
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}

	rec := &Recorder{
		con:    con,
		output: f,
		digest: digest.NewVideo(),
	}

	h := header{
		cartName: con.Mem.Cart.Filename,
		cartHash: con.Mem.Cart.Hash,
		spec:     con.TV.GetSpec().ID,
	}
	if _, err := io.WriteString(rec.output, h.String()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("recorder: %w", err)
	}

	if err := con.Input.AttachRecorder(rec); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("recorder: %w", err)
	}
	con.TV.AddFrameRenderer(rec.digest)

	return rec, nil
}

// RecordEvent implements the input.EventRecorder interface.
func (rec *Recorder) RecordEvent(ev input.TimedEvent) error {
	e := entry{TimedEvent: ev, hash: rec.digest.Hash()}
	if _, err := io.WriteString(rec.output, e.String()); err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	rec.events++
	return nil
}

// End the recording and close the file.
func (rec *Recorder) End() error {
	logger.Logf(rec.con.Env(), "recorder", "%d events recorded", rec.events)
	if err := rec.output.Close(); err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	return nil
}
