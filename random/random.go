// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of time within the emulation. In practice this is the
// CPU's cycle counter.
type Clock interface {
	CycleCount() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
// The clock argument can be nil in which case time within the emulation is
// always zero.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// SetClock changes the time source of the random number generator. Needed
// because the clock (the CPU) is usually created after the Random instance.
func (rnd *Random) SetClock(clock Clock) {
	rnd.clock = clock
}

func (rnd *Random) rand() *rand.Rand {
	var t int64
	if rnd.clock != nil {
		t = int64(rnd.clock.CycleCount())
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

// Bytes fills the slice with random values. The sequence is consistent for a
// given cycle count.
func (rnd *Random) Bytes(b []uint8) {
	r := rnd.rand()
	for i := range b {
		b[i] = uint8(r.Intn(0x100))
	}
}
