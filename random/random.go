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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed = int64(time.Now().Nanosecond())

// Clock is the source of emulation time.
type Clock interface {
	MasterCycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. required for
	// normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock argument can be nil, in which case the numbers depend only on the seed.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// Plumb a new clock into the Random instance.
func (rnd *Random) Plumb(clock Clock) {
	rnd.clock = clock
}

func (rnd *Random) rand() *rand.Rand {
	var t int64
	if rnd.clock != nil {
		t = int64(rnd.clock.MasterCycles())
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(t))
	}
	return rand.New(rand.NewSource(baseSeed + t))
}

// Intn returns a random number in the range [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Fill the slice with random bytes. The sequence is generated from a single
// source so that the contents of the slice are not all the same.
func (rnd *Random) Fill(b []uint8) {
	src := rnd.rand()
	for i := range b {
		b[i] = uint8(src.Intn(256))
	}
}
