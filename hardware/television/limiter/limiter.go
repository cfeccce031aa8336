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

// Package limiter restricts the rate at which frames are produced to the
// frame rate of the television specification, or to a requested rate.
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter waits at the end of each frame so that the emulation runs at the
// requested number of frames per second.
type Limiter struct {
	// whether to wait for the limiter each frame
	Active atomic.Bool

	// the ideal number of frames per second
	IdealFPS atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker will be
	// set when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// checking the pulse every frame is expensive at high frame rates so
	// the pulse is for a number of frames
	pulseCt      int
	pulseCtLimit int

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// the measured number of frames per second
	Measured atomic.Value // float32
}

// NewLimiter is the preferred method of initialisation for the Limiter
// type. The limiter is active after creation.
func NewLimiter(fps float32) *Limiter {
	lmtr := &Limiter{}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0.0))
	lmtr.IdealFPS.Store(float32(0.0))

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)

	lmtr.SetLimit(fps)

	return lmtr
}

// SetLimit changes the number of frames per second. A value of zero or less
// is ignored.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0.0 {
		return
	}

	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame. It will wait if the frame has
// arrived too soon.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if lmtr.Active.Load() {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}

	lmtr.measureActual()
}

func (lmtr *Limiter) measureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter. It should not be used after this.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
