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

// CompositeShifter emits, for each subglyph of a composite glyph that
// needs it, a bci_shift_subglyph call moving its contours by the
// subglyph's fixed y offset.
type CompositeShifter struct{}

// Emit appends one CALL per eligible subglyph of g to pa, in order.
func (CompositeShifter) Emit(pa *PushAssembler, g *hinter.Glyph) {
	currContour := 0
	for _, sub := range g.Subglyphs {
		numContours := sub.NumContours

		if sub.UsesXYArgs && sub.YOffset != 0 && numContours > 0 {
			needWordsCounts := numContours > 0xFF || currContour > 0xFF
			pa.EmitPush([]uint32{uint32(currContour), uint32(numContours)}, needWordsCounts, true)

			needWordOffset := sub.YOffset > 0xFF || sub.YOffset < 0
			pa.EmitPush([]uint32{uint32(int32(sub.YOffset))}, needWordOffset, true)

			pa.EmitPush([]uint32{uint32(bciShiftSubglyph)}, false, true)
			pa.WriteByte(opCALL)
		}

		currContour += numContours
	}
}
