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

// PointIndexRemap translates point and contour indices computed
// against a glyph's own outline into the flat numbering a composite
// glyph's combined bytecode uses, where every subglyph contributes one
// extra synthetic (phantom) point. Every point or contour index written
// into an emitted stream passes through Remap.
type PointIndexRemap struct {
	pointSums []int
}

// NewPointIndexRemap returns a remapper for a glyph. For a simple
// glyph, pass a nil or empty pointSums and Remap becomes the identity.
func NewPointIndexRemap(pointSums []int) PointIndexRemap {
	return PointIndexRemap{pointSums: pointSums}
}

// Remap returns the composite-adjusted index for raw outline index x.
func (r PointIndexRemap) Remap(x int) int {
	n := 0
	for n < len(r.pointSums) && x >= r.pointSums[n] {
		n++
	}
	return x + n
}

// RemapGlyph builds the remapper for g: identity for simple glyphs,
// pointsum-based translation for composites.
func RemapGlyph(g *hinter.Glyph) PointIndexRemap {
	if g.NumComponents == 0 {
		return PointIndexRemap{}
	}
	return NewPointIndexRemap(g.PointSums)
}
