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

package television_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware/apu"
	"github.com/jetsetilly/gopher16/hardware/television"
	"github.com/jetsetilly/gopher16/hardware/television/specification"
	"github.com/jetsetilly/gopher16/test"
)

type renderer struct {
	crit   sync.Mutex
	frames []int
	first  []uint8
	block  chan bool
	fail   error
	ended  bool
}

func (r *renderer) NewFrame(frame int, pixels []uint8) error {
	if r.block != nil {
		<-r.block
	}
	r.crit.Lock()
	defer r.crit.Unlock()
	r.frames = append(r.frames, frame)
	if r.first == nil {
		r.first = append([]uint8(nil), pixels...)
	}
	return r.fail
}

func (r *renderer) EndRendering() error {
	r.ended = true
	return nil
}

type mixer struct {
	batches int
	samples int
	ended   bool
}

func (m *mixer) SetAudio(samples []int16) error {
	m.batches++
	m.samples += len(samples)
	return nil
}

func (m *mixer) EndMixing() error {
	m.ended = true
	return nil
}

func newEnv(t *testing.T, async bool) *environment.Environment {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	test.DemandSuccess(t, env.Prefs.AsyncOutput.Set(async))
	return env
}

func TestInterfaces(t *testing.T) {
	tv := television.NewTelevision(newEnv(t, false), specification.SpecNTSC)
	test.ExpectImplements[apu.Mixer](t, tv)
	test.ExpectSuccess(t, tv.End())
}

func TestSynchronous(t *testing.T) {
	tv := television.NewTelevision(newEnv(t, false), specification.SpecNTSC)
	test.ExpectEquality(t, tv.Async(), false)

	r := &renderer{}
	m := &mixer{}
	tv.AddFrameRenderer(r)
	tv.AddAudioMixer(m)

	pixels := []uint8{1, 2, 3, 4}
	for i := range 3 {
		test.ExpectSuccess(t, tv.NewFrame(i, pixels))
		test.ExpectSuccess(t, tv.SetAudio(make([]int16, 8)))
	}

	// synchronous delivery means the renderer has seen every frame before
	// End() is called
	test.ExpectEquality(t, len(r.frames), 3)
	test.ExpectEquality(t, m.batches, 3)
	test.ExpectEquality(t, m.samples, 24)
	test.ExpectEquality(t, tv.Frames(), 3)

	test.ExpectSuccess(t, tv.End())
	test.ExpectEquality(t, r.ended, true)
	test.ExpectEquality(t, m.ended, true)

	// calling End() a second time is harmless
	test.ExpectSuccess(t, tv.End())
}

func TestRendererError(t *testing.T) {
	tv := television.NewTelevision(newEnv(t, false), specification.SpecNTSC)
	r := &renderer{fail: errors.New("renderer error")}
	tv.AddFrameRenderer(r)
	test.ExpectFailure(t, tv.NewFrame(0, nil))
	test.ExpectSuccess(t, tv.End())
}

func TestAsynchronous(t *testing.T) {
	tv := television.NewTelevision(newEnv(t, true), specification.SpecNTSC)
	test.ExpectEquality(t, tv.Async(), true)

	r := &renderer{}
	m := &mixer{}
	tv.AddFrameRenderer(r)
	tv.AddAudioMixer(m)

	pixels := []uint8{1, 2, 3, 4}
	test.ExpectSuccess(t, tv.NewFrame(0, pixels))

	// the television copies the pixels before queuing them
	pixels[0] = 100

	test.ExpectSuccess(t, tv.SetAudio(make([]int16, 8)))
	test.ExpectSuccess(t, tv.NewFrame(1, pixels))

	test.ExpectSuccess(t, tv.End())
	test.ExpectEquality(t, len(r.frames), 2)
	test.ExpectEquality(t, r.frames[0], 0)
	test.ExpectEquality(t, r.frames[1], 1)
	test.ExpectEquality(t, r.first[0], uint8(1))
	test.ExpectEquality(t, m.batches, 1)
	test.ExpectEquality(t, r.ended, true)
	test.ExpectEquality(t, tv.DroppedFrames.Load(), int64(0))
}

func TestAsynchronousDrop(t *testing.T) {
	tv := television.NewTelevision(newEnv(t, true), specification.SpecNTSC)

	r := &renderer{block: make(chan bool)}
	tv.AddFrameRenderer(r)

	// the renderer is blocked so the queue will fill. the emulation must not
	// wait for the renderer
	const n = 40
	for i := range n {
		test.ExpectSuccess(t, tv.NewFrame(i, []uint8{0}))
	}

	close(r.block)
	test.ExpectSuccess(t, tv.End())

	dropped := int(tv.DroppedFrames.Load())
	test.ExpectInequality(t, dropped, 0)
	test.ExpectEquality(t, len(r.frames)+dropped, n)
}

func TestSpec(t *testing.T) {
	tv := television.NewTelevision(newEnv(t, false), specification.SpecNTSC)
	test.ExpectEquality(t, tv.GetSpec().ID, "NTSC")
	tv.SetSpec(specification.SpecPAL)
	test.ExpectEquality(t, tv.GetSpec().ID, "PAL")
	test.ExpectSuccess(t, tv.End())
}
