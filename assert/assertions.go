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

//go:build assertions

package assert

import "fmt"

// Enabled is true when the package has been built with the assertions tag.
const Enabled = true

// Check panics if the calling goroutine is not the goroutine that first
// called Check(). The label is used in the panic message.
func (g *Goroutine) Check(label string) {
	id := GetGoRoutineID()
	if g.id == 0 {
		g.id = id
		return
	}
	if g.id != id {
		panic(fmt.Sprintf("%s: called from goroutine %d but owned by goroutine %d", label, id, g.id))
	}
}
