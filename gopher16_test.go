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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher16/govern"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge/testimage"
	"github.com/jetsetilly/gopher16/test"
	"github.com/jetsetilly/gopher16/version"
)

// writes a cartridge image to a temporary directory and changes the working
// directory to it so that preferences are not written to the source tree
func prepare(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	// BRA -2
	data := testimage.Build(testimage.Options{Program: []uint8{0x80, 0xfe}})
	fn := filepath.Join(dir, "test.sfc")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

	return fn
}

func TestVersion(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch(w, []string{"VERSION"}, &govern.Governor{}), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), version.ApplicationName))
}

func TestHelp(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch(w, []string{"-help"}, &govern.Governor{}), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "RUN"))
}

func TestInfo(t *testing.T) {
	fn := prepare(t)

	w := &test.Writer{}
	test.ExpectEquality(t, launch(w, []string{"INFO", fn}, &govern.Governor{}), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "GOPHER16 TEST ROM"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "mapping:  LoROM"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "region:   NTSC"))
}

func TestMissingCartridge(t *testing.T) {
	prepare(t)

	w := &test.Writer{}
	test.ExpectEquality(t, launch(w, []string{"RUN"}, &govern.Governor{}), exitMode)
	test.ExpectEquality(t, launch(w, []string{"INFO", "missing.sfc"}, &govern.Governor{}), exitMode)
}

func TestRunDigest(t *testing.T) {
	fn := prepare(t)

	args := []string{"RUN", "-log=false", "-fpscap=false", "-frames", "3", "-digest", fn}

	w := &test.Writer{}
	test.ExpectEquality(t, launch(w, args, &govern.Governor{}), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "video: "))

	// a second run produces the same digests
	v := &test.Writer{}
	test.ExpectEquality(t, launch(v, args, &govern.Governor{}), exitOK)
	test.ExpectEquality(t, v.String(), w.String())
}

func TestRunOutputs(t *testing.T) {
	fn := prepare(t)
	dir := filepath.Dir(fn)

	wav := filepath.Join(dir, "out.wav")
	bmp := filepath.Join(dir, "frames")
	mv := filepath.Join(dir, "state.dot")

	args := []string{"RUN", "-log=false", "-fpscap=false", "-frames", "2",
		"-wav", wav, "-bmp", bmp, "-bmpevery", "1", "-memviz", mv, fn}

	w := &test.Writer{}
	test.ExpectEquality(t, launch(w, args, &govern.Governor{}), exitOK)

	_, err := os.Stat(wav)
	test.ExpectSuccess(t, err)

	ents, err := os.ReadDir(bmp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, len(ents) > 0)

	dot, err := os.ReadFile(mv)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(dot), "digraph"))
}

func TestRunEnding(t *testing.T) {
	fn := prepare(t)

	// a governor that has been told to end stops the run after the first
	// instruction
	gov := &govern.Governor{}
	gov.Set(govern.Ending)

	w := &test.Writer{}
	code := launch(w, []string{"RUN", "-log=false", "-fpscap=false", fn}, gov)
	test.ExpectEquality(t, code, exitOK)
}

func TestRecordAndPlaybackExclusive(t *testing.T) {
	fn := prepare(t)

	w := &test.Writer{}
	code := launch(w, []string{"RUN", "-log=false", "-record", "a.rec", "-playback", "b.rec", fn}, &govern.Governor{})
	test.ExpectEquality(t, code, exitMode)
}

func TestPlaybackEndsRun(t *testing.T) {
	fn := prepare(t)
	rec := filepath.Join(filepath.Dir(fn), "test.rec")

	w := &test.Writer{}
	code := launch(w, []string{"RUN", "-log=false", "-fpscap=false", "-frames", "2", "-record", rec, fn}, &govern.Governor{})
	test.DemandEquality(t, code, exitOK)

	// the recording has no events so playback ends after the first frame,
	// well before the requested number of frames
	w = &test.Writer{}
	code = launch(w, []string{"RUN", "-log=false", "-fpscap=false", "-frames", "100", "-digest", "-playback", rec, fn}, &govern.Governor{})
	test.ExpectEquality(t, code, exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "! playback completed"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "frames: 1\n"))
}
