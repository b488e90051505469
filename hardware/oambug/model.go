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

package oambug

import (
	"github.com/jetsetilly/gopherdmg/logger"
)

// Scanner is implemented by the display. SpriteSearch returns true if the
// display is currently searching OAM and the row (0 to 19) being read.
type Scanner interface {
	SpriteSearch() (row int, active bool)
}

// the range of addresses that trigger the corruption. this is wider than the
// OAM itself
const (
	triggerOrigin = uint16(0xfe00)
	triggerMemtop = uint16(0xfeff)
)

// Model connects the CPU's trigger to the table.
type Model struct {
	perm     logger.Permission
	table    *Table
	patterns PatternSet
	scanner  Scanner

	// whether the model is active. the CPU does not need to know
	Enabled func() bool
}

// NewModel is the preferred method of initialisation for the Model type. The
// Scanner is attached separately with AttachScanner(). Until a scanner is
// attached the display is never searching OAM.
func NewModel(perm logger.Permission, table *Table, patterns PatternSet) *Model {
	return &Model{
		perm:     perm,
		table:    table,
		patterns: patterns,
	}
}

// AttachScanner connects the display to the model. A nil value detaches the
// current scanner.
func (m *Model) AttachScanner(s Scanner) {
	m.scanner = s
}

// Version returns the version string of the pattern set in use.
func (m *Model) Version() string {
	return m.patterns.Version
}

// Trigger is called by the CPU when the IDU places address on the bus. The
// return value is true if corruption occurred.
func (m *Model) Trigger(k Kind, address uint16) bool {
	if k == None || address < triggerOrigin || address > triggerMemtop {
		return false
	}
	if m.Enabled != nil && !m.Enabled() {
		return false
	}
	if m.scanner == nil {
		return false
	}
	row, active := m.scanner.SpriteSearch()
	if !active || row <= 0 || row >= NumRows {
		return false
	}

	m.patterns.Apply(m.table, k, row)
	logger.Logf(m.perm, "oambug", "%s corruption of row %d (%#04x)", k, row, address)

	return true
}
