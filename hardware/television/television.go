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

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware/television/limiter"
	"github.com/jetsetilly/gopher16/hardware/television/specification"
	"github.com/jetsetilly/gopher16/logger"
)

// length of the queue used when output is asynchronous
const queueLength = 16

// item in the asynchronous queue. only one of pixels or samples will be set
type delivery struct {
	frame   int
	pixels  []uint8
	samples []int16
}

// Television is the presentation collaborator of the console.
type Television struct {
	env *environment.Environment

	spec specification.Spec

	renderers []FrameRenderer
	mixers    []AudioMixer

	lmtr *limiter.Limiter

	// the number of frames passed to NewFrame()
	frames int

	// asynchronous delivery. the queue is nil if the television is in
	// synchronous mode
	queue chan delivery
	wg    sync.WaitGroup

	// the first error returned by a renderer or mixer on the delivery
	// goroutine. reported on the next call to NewFrame(), SetAudio() or End()
	crit     sync.Mutex
	asyncErr error

	// number of frames and audio batches dropped because the queue was full
	DroppedFrames atomic.Int64
	DroppedAudio  atomic.Int64

	ended bool
}

// NewTelevision is the preferred method of initialisation for the Television
// type. The FPS cap is off by default.
func NewTelevision(env *environment.Environment, spec specification.Spec) *Television {
	tv := &Television{
		env:  env,
		spec: spec,
		lmtr: limiter.NewLimiter(spec.FramesPerSecond),
	}
	tv.lmtr.Active.Store(false)

	if env.Prefs.AsyncOutput.Get().(bool) {
		tv.queue = make(chan delivery, queueLength)
		tv.wg.Add(1)
		go tv.deliver()
	}

	return tv
}

func (tv *Television) String() string {
	return fmt.Sprintf("%s frame=%d", tv.spec.ID, tv.frames)
}

// AddFrameRenderer registers an (additional) implementation of FrameRenderer.
func (tv *Television) AddFrameRenderer(r FrameRenderer) {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	tv.renderers = append(tv.renderers, r)
}

// AddAudioMixer registers an (additional) implementation of AudioMixer.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	tv.mixers = append(tv.mixers, m)
}

// SetSpec changes the specification. The FPS limit follows the new
// specification.
func (tv *Television) SetSpec(spec specification.Spec) {
	tv.spec = spec
	tv.lmtr.SetLimit(spec.FramesPerSecond)
	logger.Logf(tv.env, "television", "specification: %s", spec.ID)
}

// GetSpec returns the current specification.
func (tv *Television) GetSpec() specification.Spec {
	return tv.spec
}

// SetFPSCap sets whether NewFrame() should wait for the FPS limiter.
func (tv *Television) SetFPSCap(set bool) {
	tv.lmtr.Active.Store(set)
}

// GetActualFPS returns the measured number of frames per second.
func (tv *Television) GetActualFPS() float32 {
	return tv.lmtr.Measured.Load().(float32)
}

// Frames returns the number of frames received by the television.
func (tv *Television) Frames() int {
	return tv.frames
}

// Async returns true if output is handed on from a separate goroutine.
func (tv *Television) Async() bool {
	return tv.queue != nil
}

// NewFrame is called by the console when a frame is complete.
func (tv *Television) NewFrame(frame int, pixels []uint8) error {
	tv.frames++
	defer tv.lmtr.CheckFrame()

	if tv.queue == nil {
		for _, r := range tv.renderers {
			if err := r.NewFrame(frame, pixels); err != nil {
				return fmt.Errorf("television: %w", err)
			}
		}
		return nil
	}

	if err := tv.takeAsyncErr(); err != nil {
		return err
	}

	select {
	case tv.queue <- delivery{frame: frame, pixels: append([]uint8(nil), pixels...)}:
	default:
		tv.DroppedFrames.Add(1)
		logger.Logf(tv.env, "television", "output queue full: dropped frame %d", frame)
	}

	return nil
}

// SetAudio implements the apu.Mixer interface.
func (tv *Television) SetAudio(samples []int16) error {
	if tv.queue == nil {
		for _, m := range tv.mixers {
			if err := m.SetAudio(samples); err != nil {
				return fmt.Errorf("television: %w", err)
			}
		}
		return nil
	}

	if err := tv.takeAsyncErr(); err != nil {
		return err
	}

	select {
	case tv.queue <- delivery{samples: append([]int16(nil), samples...)}:
	default:
		tv.DroppedAudio.Add(1)
		logger.Log(tv.env, "television", "output queue full: dropped audio batch")
	}

	return nil
}

func (tv *Television) takeAsyncErr() error {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	err := tv.asyncErr
	tv.asyncErr = nil
	return err
}

func (tv *Television) deliver() {
	defer tv.wg.Done()

	for d := range tv.queue {
		tv.crit.Lock()
		renderers := tv.renderers
		mixers := tv.mixers
		tv.crit.Unlock()

		var err error
		if d.pixels != nil {
			for _, r := range renderers {
				if err = r.NewFrame(d.frame, d.pixels); err != nil {
					break
				}
			}
		} else {
			for _, m := range mixers {
				if err = m.SetAudio(d.samples); err != nil {
					break
				}
			}
		}

		if err != nil {
			tv.crit.Lock()
			if tv.asyncErr == nil {
				tv.asyncErr = fmt.Errorf("television: %w", err)
			}
			tv.crit.Unlock()
		}
	}
}

// End the television. Any queued output is delivered before EndRendering()
// and EndMixing() are called on every renderer and mixer. The television
// should not be used after End() has been called.
func (tv *Television) End() error {
	if tv.ended {
		return nil
	}
	tv.ended = true

	if tv.queue != nil {
		close(tv.queue)
		tv.wg.Wait()
	}
	tv.lmtr.Stop()

	errs := []error{tv.takeAsyncErr()}
	for _, r := range tv.renderers {
		errs = append(errs, r.EndRendering())
	}
	for _, m := range tv.mixers {
		errs = append(errs, m.EndMixing())
	}

	if d := tv.DroppedFrames.Load() + tv.DroppedAudio.Load(); d > 0 {
		logger.Logf(tv.env, "television", "%d frames and %d audio batches dropped",
			tv.DroppedFrames.Load(), tv.DroppedAudio.Load())
	}

	return errors.Join(errs...)
}
