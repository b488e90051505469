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

package hardware

import (
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
)

// Step the machine by one cycle. The return value is the number of cycles
// consumed, which is always one.
//
// The CPU is the only device in the core that is stepped. Devices attached to
// the bus by the host must be stepped by the host, either before or after
// each call to Step().
func (m *Machine) Step() int {
	m.goroutine.Check("machine")
	return m.CPU.Step()
}

// ExecuteInstruction steps the machine until the current instruction has
// completed. See cpu.ExecuteInstruction() for the details. The cycle callback
// can be nil. If it is not nil it is called after every cycle.
func (m *Machine) ExecuteInstruction(cycleCallback func()) int {
	var n int
	for {
		n += m.Step()
		if cycleCallback != nil {
			cycleCallback()
		}
		if m.CPU.Boundary() {
			return n
		}
		switch m.CPU.Mode() {
		case cpu.Halted, cpu.Stopped:
			return n
		}
	}
}
