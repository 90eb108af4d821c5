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

import "github.com/sshyran/ttfautohint-mirror/hinter"

// BuildCVT lays out one style's cvt table: two big-endian bytes per
// entry, in the order [horiz_std_width, vert_std_width, horiz_widths*,
// vert_widths*, blue_refs*, blue_shoots*, scaling_value], padded with
// zero bytes to a multiple of four. The scaling_value slot starts at
// zero; prep patches it in at runtime (see style.ScalingValueOffset).
func BuildCVT(style *hinter.Style) ([]byte, error) {
	numEntries := 2 + len(style.HorizWidths) + len(style.VertWidths) + 2*len(style.BlueZones) + 1
	rawLen := 2 * numEntries
	padded := (rawLen + 3) &^ 3

	buf := make([]byte, padded)
	pos := 0

	put := func(v int32) error {
		if v > 0xFFFF {
			return &OverflowError{Style: style.Name, Value: v}
		}
		buf[pos] = byte(v >> 8)
		buf[pos+1] = byte(v)
		pos += 2
		return nil
	}

	if err := put(int32(style.HorizStdWidth())); err != nil {
		return nil, err
	}
	if err := put(int32(style.VertStdWidth())); err != nil {
		return nil, err
	}
	for _, w := range style.HorizWidths {
		if err := put(int32(w)); err != nil {
			return nil, err
		}
	}
	for _, w := range style.VertWidths {
		if err := put(int32(w)); err != nil {
			return nil, err
		}
	}
	for _, bz := range style.BlueZones {
		if err := put(int32(bz.Ref)); err != nil {
			return nil, err
		}
	}
	for _, bz := range style.BlueZones {
		if err := put(int32(bz.Shoot)); err != nil {
			return nil, err
		}
	}

	return buf, nil
}
