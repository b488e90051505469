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

package prefs

import (
	"sort"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
)

// Sentinel error patterns returned by the Group type.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	UnknownKey   = "prefs: unknown key (%s)"
)

// Group is a collection of named preference values. Unlike a preferences file
// a group does not persist anything. The host application is responsible for
// storing preferences if it wants to.
type Group struct {
	entries map[string]pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]pref),
	}
}

// Add preference value to the group under the specified key.
func (g *Group) Add(key string, p pref) error {
	if _, ok := g.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	g.entries[key] = p
	return nil
}

// Set the preference value identified by key.
func (g *Group) Set(key string, v Value) error {
	p, ok := g.entries[key]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	return p.Set(v)
}

// Get the preference value identified by key.
func (g *Group) Get(key string) (Value, error) {
	p, ok := g.entries[key]
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p.Get(), nil
}

// ApplyCommandLine sets any preference in the group that has a value in the
// current group of the command line stack. Values applied are removed from the
// stack.
func (g *Group) ApplyCommandLine() error {
	for key, p := range g.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// String returns the preferences in the group as a command line prefs string,
// sorted by key.
func (g *Group) String() string {
	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString("::")
		s.WriteString(g.entries[k].String())
		s.WriteString("; ")
	}
	return strings.TrimSuffix(s.String(), "; ")
}
