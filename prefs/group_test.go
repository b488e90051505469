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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/prefs"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestBool(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectEquality(t, b.String(), "true")
	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("nonsense"))
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectFailure(t, b.Set(10))

	var hooked bool
	b.SetHookPost(func(v prefs.Value) error {
		hooked = v.(bool)
		return nil
	})
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, hooked)
}

func TestInt(t *testing.T) {
	var i prefs.Int
	test.ExpectEquality(t, i.Get().(int), 0)
	test.ExpectSuccess(t, i.Set(10))
	test.ExpectEquality(t, i.String(), "10")
	test.ExpectSuccess(t, i.Set(" 20"))
	test.ExpectEquality(t, i.Get().(int), 20)
	test.ExpectFailure(t, i.Set("twenty"))
	test.ExpectSuccess(t, i.Reset())
	test.ExpectEquality(t, i.Get().(int), 0)
}

func TestGroup(t *testing.T) {
	var a prefs.Bool
	var b prefs.Int

	g := prefs.NewGroup()
	test.ExpectSuccess(t, g.Add("cpu.haltbug", &a))
	test.ExpectSuccess(t, g.Add("cpu.seed", &b))

	err := g.Add("cpu.seed", &b)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	err = g.Set("cpu.unknown", true)
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))

	test.ExpectSuccess(t, g.Set("cpu.haltbug", true))
	test.ExpectEquality(t, g.String(), "cpu.haltbug::true; cpu.seed::0")

	prefs.PushCommandLineStack("cpu.seed::99; unrelated::true")
	test.ExpectSuccess(t, g.ApplyCommandLine())
	test.ExpectEquality(t, b.Get().(int), 99)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unrelated::true")
}
