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

// Run executes instructions until the continueCheck function returns false
// or an error. The continueCheck function is called at the end of every
// instruction and must not be nil.
//
// A halted or stopped CPU still consumes cycles so Run() will not return by
// itself. Devices attached by the host that need stepping every cycle should
// be driven with ExecuteInstruction() instead.
func (m *Machine) Run(continueCheck func() (bool, error)) error {
	for {
		m.ExecuteInstruction(nil)

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForCycles runs whole instructions until at least the number of cycles
// have been consumed. The number of cycles actually consumed is returned. The
// cycle callback can be nil.
func (m *Machine) RunForCycles(cycles int, cycleCallback func()) int {
	var n int
	for n < cycles {
		n += m.ExecuteInstruction(cycleCallback)
	}
	return n
}
