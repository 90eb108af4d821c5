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

// GlyphScaler emits the "scale only" call used for glyphs assigned to
// the style-less catch-all style: no hinting, just a per-contour
// vertical extremum pair so the rasterizer can apply delta scaling.
type GlyphScaler struct {
	remap PointIndexRemap
}

// NewGlyphScaler prepares a scaler for one glyph.
func NewGlyphScaler(remap PointIndexRemap) GlyphScaler {
	return GlyphScaler{remap: remap}
}

// Emit appends the bci_scale_glyph/bci_scale_composite_glyph call for
// outline to pa. isComposite selects the composite variant.
func (s GlyphScaler) Emit(pa *PushAssembler, outline *hinter.Outline, isComposite bool) {
	numContours := len(outline.Contours)

	funcNumber := bciScaleGlyph
	if isComposite {
		funcNumber = bciScaleCompositeGlyph
	}

	var args []uint32
	args = append(args, uint32(funcNumber))
	args = append(args, uint32(numContours))

	start := 0
	for _, end := range outline.Contours {
		min, max := start, start
		for q := start; q <= end; q++ {
			y := outline.Points[q].Y
			if y < outline.Points[min].Y {
				min = q
			}
			if y >= outline.Points[max].Y {
				max = q
			}
		}

		// the point with the lower original index always comes first
		// in args (so, after the reversal below, it is pushed after
		// the other one and sits nearer the top of the stack),
		// whichever extremum it happens to be.
		lo, hi := min, max
		if hi < lo {
			lo, hi = hi, lo
		}
		args = append(args, uint32(s.remap.Remap(lo)))
		args = append(args, uint32(s.remap.Remap(hi)))

		start = end + 1
	}

	needWords := numContours > 0xFF
	if len(outline.Contours) > 0 {
		last := outline.Contours[len(outline.Contours)-1]
		if s.remap.Remap(last) > 0xFF {
			needWords = true
		}
	}

	reverseUint32(args)
	pa.EmitPush(args, needWords, true)
	pa.WriteByte(opCALL)
}
