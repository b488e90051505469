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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/random"
	"github.com/jetsetilly/gopherdmg/test"
)

type clock struct {
	cycles uint64
}

func (c *clock) CycleCount() uint64 {
	return c.cycles
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&clock{cycles: 1000})
	b := random.NewRandom(&clock{cycles: 1000})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	ba := make([]uint8, 16)
	bb := make([]uint8, 16)
	a.Bytes(ba)
	b.Bytes(bb)
	for i := range ba {
		test.ExpectEquality(t, ba[i], bb[i])
	}
}

func TestNilClock(t *testing.T) {
	a := random.NewRandom(nil)
	a.ZeroSeed = true
	v := a.Intn(100)
	test.ExpectEquality(t, a.Intn(100), v)
}
