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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is what differentiates curated errors, so
// sentinel patterns should be stored as an exported const string, suitably
// named and commented, in the package that raises the error. For example:
//
//	const StateVersionMismatch = "cpu: state version mismatch (%d, want %d)"
//
//	e := curated.Errorf(StateVersionMismatch, 0, 1)
//
//	if curated.Is(e, StateVersionMismatch) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result of the
// function call.
//
// The Error() function normalises the error chain. Specifically, the chain
// will not contain duplicate adjacent parts. For the purposes of this package
// we think of chains as being composed of parts separated by the sub-string
// ': ' as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan). For example:
//
//	part 1: part 2: part 3
//
// Curated errors support errors.Unwrap() so they can be used with errors.Is()
// and errors.As() from the standard library.
package curated
