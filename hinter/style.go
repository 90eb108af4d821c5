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

package hinter

// BlueZone is a single alignment band: a reference line (the "ref") and
// its overshoot counterpart (the "shoot").
type BlueZone struct {
	Ref   int16
	Shoot int16
}

// Style bundles the per-script hinting configuration that the fpgm,
// prep, and cvt builders need, along with the stem widths the
// auto-hinter measured for this style.
type Style struct {
	Name string

	// None marks the catch-all "no special hinting" style: glyphs
	// assigned to it are only scaled, never hinted (see the glyph
	// scaler in package bci).
	None bool

	HorizWidths []int16
	VertWidths  []int16

	BlueZones []BlueZone

	// BlueZoneAdjustment, if non-negative, selects the blue zone (by
	// index into BlueZones) whose ref line the prep program uses to
	// compute the global scale adjustment; -1 disables the
	// adjustment for this style.
	BlueZoneAdjustment int
}

// cvt layout: two bytes per entry, in this fixed order per style.
//
//	[0]                      horizontal standard stem width (or 50)
//	[1]                      vertical standard stem width (or 50)
//	[2:2+len(HorizWidths)]   all horizontal widths
//	[...:+len(VertWidths)]   all vertical widths
//	[...:+len(BlueZones)]    blue zone ref values
//	[...:+len(BlueZones)]    blue zone shoot values
const (
	cvtStdWidthsOffset = 0
	cvtStdWidthsSize   = 2
)

// fallbackStdWidth is used for an axis that has no measured widths.
const fallbackStdWidth = 50

// HorizWidthsOffset is the CVT index of the first entry in
// HorizWidths (after the two standard-width slots).
func (s *Style) HorizWidthsOffset() int {
	return cvtStdWidthsOffset + cvtStdWidthsSize
}

// VertWidthsOffset is the CVT index of the first entry in VertWidths.
func (s *Style) VertWidthsOffset() int {
	return s.HorizWidthsOffset() + len(s.HorizWidths)
}

// BlueRefsOffset is the CVT index of the first blue-zone ref value.
func (s *Style) BlueRefsOffset() int {
	return s.VertWidthsOffset() + len(s.VertWidths)
}

// BlueShootsOffset is the CVT index of the first blue-zone shoot value.
func (s *Style) BlueShootsOffset() int {
	return s.BlueRefsOffset() + len(s.BlueZones)
}

// BluesSize is the combined CVT footprint of the ref and shoot arrays.
func (s *Style) BluesSize() int {
	return 2 * len(s.BlueZones)
}

// ScalingValueOffset is the CVT index read by the per-glyph segment
// builder to look up the style's scaling factor (patched in by prep).
func (s *Style) ScalingValueOffset() int {
	return s.BlueShootsOffset() + len(s.BlueZones)
}

// HorizStdWidth returns the style's horizontal standard stem width,
// falling back to fallbackStdWidth when the style measured none.
func (s *Style) HorizStdWidth() int16 {
	if len(s.HorizWidths) == 0 {
		return fallbackStdWidth
	}
	return s.HorizWidths[0]
}

// VertStdWidth returns the style's vertical standard stem width,
// falling back to fallbackStdWidth when the style measured none.
func (s *Style) VertStdWidth() int16 {
	if len(s.VertWidths) == 0 {
		return fallbackStdWidth
	}
	return s.VertWidths[0]
}
