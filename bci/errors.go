// github.com/sshyran/ttfautohint-mirror - a TrueType auto-hinting bytecode generator
// Copyright (C) 2025  The ttfautohint-mirror Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bci

import "fmt"

// OverflowError indicates that a CVT value exceeded 0xFFFF, the largest
// value a two-byte cvt entry can hold.
type OverflowError struct {
	Style string
	Value int32
}

func (err *OverflowError) Error() string {
	return fmt.Sprintf("bci: cvt value %d overflows style %q", err.Value, err.Style)
}

// InvalidArgumentError indicates a negative or otherwise nonsensical
// glyph index was passed to the driver.
type InvalidArgumentError struct {
	Reason string
}

func (err *InvalidArgumentError) Error() string {
	return "bci: invalid argument: " + err.Reason
}

// IsOverflow reports whether err is an OverflowError, i.e. a CVT entry
// exceeded 0xFFFF.
func IsOverflow(err error) bool {
	_, ok := err.(*OverflowError)
	return ok
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	_, ok := err.(*InvalidArgumentError)
	return ok
}
