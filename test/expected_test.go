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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherdmg/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint16(0x0150), 0x0150)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	fmt.Fprintf(w, "PC=%#04x", 0x100)
	test.ExpectSuccess(t, w.Compare("PC=0x0100"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))

	fmt.Fprintln(w, "cpu: locked by undefined opcode d3 at 0100")
	fmt.Fprintln(w, "oambug: write corruption of row 5 (0xfe28)")
	fmt.Fprintln(w, "oambug: read corruption of row 6 (0xfe30)")
	test.ExpectSuccess(t, w.Contains("opcode d3"))
	test.ExpectFailure(t, w.Contains("opcode fd"))
	test.ExpectEquality(t, w.Count("oambug:"), 2)
	test.ExpectEquality(t, w.Count("rewind:"), 0)
}
