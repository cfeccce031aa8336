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

package recorder_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher16/cartridgeloader"
	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware"
	"github.com/jetsetilly/gopher16/hardware/input"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge/testimage"
	"github.com/jetsetilly/gopher16/recorder"
	"github.com/jetsetilly/gopher16/test"
)

// the program enables the auto-joypad read and copies JOY1 into the CGRAM
// backdrop colour every frame, so the input changes the video output
var program = []uint8{
	0xa9, 0x0f,       // LDA #$0f
	0x8d, 0x00, 0x21, // STA $2100
	0xa9, 0x81,       // LDA #$81
	0x8d, 0x00, 0x42, // STA $4200
	0x80, 0xfe,       // BRA *
}

var nmi = []uint8{
	0x9c, 0x21, 0x21, // STZ $2121
	0xad, 0x18, 0x42, // LDA $4218
	0x8d, 0x22, 0x21, // STA $2122
	0xad, 0x19, 0x42, // LDA $4219
	0x8d, 0x22, 0x21, // STA $2122
	0x40,             // RTI
}

func newConsole(t *testing.T) *hardware.Console {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	con, err := hardware.NewConsole(env, nil)
	test.DemandSuccess(t, err)

	prg := make([]uint8, 0x200)
	copy(prg, program)
	copy(prg[0x100:], nmi)

	data := testimage.Build(testimage.Options{Program: prg, NMI: 0x8100})
	cart, err := cartridge.NewCartridge(env, cartridgeloader.NewLoaderFromData("recorder test", data))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, con.AttachCartridge(cart))

	return con
}

func record(t *testing.T, fn string) {
	t.Helper()

	con := newConsole(t)
	rec, err := recorder.NewRecorder(fn, con)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, con.RunForFrameCount(2, nil))
	test.DemandSuccess(t, con.Input.HandleEvent(input.Event{Port: input.PortOne, Buttons: input.ButtonA}))
	test.DemandSuccess(t, con.RunForFrameCount(2, nil))
	test.DemandSuccess(t, con.Input.HandleEvent(input.Event{Port: input.PortOne, Buttons: input.ButtonB | input.ButtonStart}))
	test.DemandSuccess(t, con.RunForFrameCount(2, nil))

	test.DemandSuccess(t, rec.End())
}

func TestRecordAndPlayback(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.rec")
	record(t, fn)

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)

	con := newConsole(t)
	test.DemandSuccess(t, plb.AttachToConsole(con))

	// input events are ignored while a playback is attached
	test.DemandSuccess(t, con.Input.HandleEvent(input.Event{Port: input.PortOne, Buttons: input.ButtonX}))

	test.ExpectSuccess(t, con.RunForFrameCount(3, nil))
	test.ExpectEquality(t, con.Ports.Pads[input.PortOne].Buttons(), input.ButtonA)
	test.ExpectSuccess(t, con.RunForFrameCount(2, nil))
	test.ExpectEquality(t, con.Ports.Pads[input.PortOne].Buttons(), input.ButtonB|input.ButtonStart)

	test.ExpectEquality(t, plb.EndFrame(con.Timing.Frame), true)
}

func TestPlaybackHashMismatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.rec")
	record(t, fn)

	// corrupt the digest of the second event
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	lines := strings.Split(string(b), "\n")
	lines[5] = lines[5][:len(lines[5])-4] + "0000"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(strings.Join(lines, "\n")), 0o644))

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)

	con := newConsole(t)
	test.DemandSuccess(t, plb.AttachToConsole(con))

	err = con.RunForFrameCount(6, nil)
	test.ExpectEquality(t, errors.Is(err, recorder.ErrHash), true)
}

func TestInvalidRecording(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.rec")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("# not a recording\n"), 0o644))
	_, err := recorder.NewPlayback(fn)
	test.ExpectEquality(t, errors.Is(err, recorder.ErrFormat), true)

	test.DemandSuccess(t, os.WriteFile(fn, []byte("# gopher16 input recording\n# a\n# b\n# NTSC\n1, 0, zz, 00\n"), 0o644))
	_, err = recorder.NewPlayback(fn)
	test.ExpectEquality(t, errors.Is(err, recorder.ErrFormat), true)
}

func TestMismatchedCartridge(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.rec")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("# gopher16 input recording\n# other\n# 1234\n# NTSC\n"), 0o644))

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)
	err = plb.AttachToConsole(newConsole(t))
	test.ExpectEquality(t, errors.Is(err, recorder.ErrMismatch), true)
}
