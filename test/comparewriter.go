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

package test

import "strings"

// CompareWriter is an io.Writer that keeps everything written to it. Use it
// to capture the output of the logger or of a state visualisation and to
// check it against expected text.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	tw.buffer = append(tw.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (tw *CompareWriter) Clear() {
	tw.buffer = tw.buffer[:0]
}

// Compare returns true if the buffer is exactly the string.
func (tw *CompareWriter) Compare(s string) bool {
	return s == string(tw.buffer)
}

// Contains returns true if the string appears anywhere in the buffer.
func (tw *CompareWriter) Contains(s string) bool {
	return strings.Contains(string(tw.buffer), s)
}

// Count returns the number of lines in the buffer that contain the string.
// Log output is one entry per line so Count is the number of matching log
// entries.
func (tw *CompareWriter) Count(s string) int {
	var n int
	for _, l := range strings.Split(string(tw.buffer), "\n") {
		if strings.Contains(l, s) {
			n++
		}
	}
	return n
}

func (tw *CompareWriter) String() string {
	return string(tw.buffer)
}
