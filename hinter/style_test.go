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

import "testing"

func TestStyleOffsetsRunningSums(t *testing.T) {
	s := &Style{
		HorizWidths: []int16{80, 82},
		VertWidths:  []int16{90, 95, 100},
		BlueZones:   []BlueZone{{Ref: 0, Shoot: -10}, {Ref: 500, Shoot: 510}},
	}

	if got := s.HorizWidthsOffset(); got != 2 {
		t.Errorf("HorizWidthsOffset() = %d, want 2", got)
	}
	if got := s.VertWidthsOffset(); got != 4 {
		t.Errorf("VertWidthsOffset() = %d, want 4 (2 std slots + 2 horiz widths)", got)
	}
	if got := s.BlueRefsOffset(); got != 7 {
		t.Errorf("BlueRefsOffset() = %d, want 7 (4 + 3 vert widths)", got)
	}
	if got := s.BlueShootsOffset(); got != 9 {
		t.Errorf("BlueShootsOffset() = %d, want 9 (7 + 2 blue refs)", got)
	}
	if got := s.BluesSize(); got != 4 {
		t.Errorf("BluesSize() = %d, want 4 (2 zones * 2)", got)
	}
	if got := s.ScalingValueOffset(); got != 11 {
		t.Errorf("ScalingValueOffset() = %d, want 11 (9 + 2 blue shoots)", got)
	}
}

func TestStyleOffsetsEmptyStyle(t *testing.T) {
	s := &Style{}

	if got := s.HorizWidthsOffset(); got != 2 {
		t.Errorf("HorizWidthsOffset() = %d, want 2 (just the two std-width slots)", got)
	}
	if got := s.VertWidthsOffset(); got != 2 {
		t.Errorf("VertWidthsOffset() = %d, want 2 (no horiz widths)", got)
	}
	if got := s.BlueRefsOffset(); got != 2 {
		t.Errorf("BlueRefsOffset() = %d, want 2 (no vert widths)", got)
	}
	if got := s.ScalingValueOffset(); got != 2 {
		t.Errorf("ScalingValueOffset() = %d, want 2 (no blues)", got)
	}
}

func TestStyleStdWidthFallback(t *testing.T) {
	cases := []struct {
		name  string
		style *Style
		want  int16
	}{
		{"measured horiz", &Style{HorizWidths: []int16{77}}, 77},
		{"no horiz widths falls back", &Style{}, fallbackStdWidth},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.style.HorizStdWidth(); got != c.want {
				t.Errorf("HorizStdWidth() = %d, want %d", got, c.want)
			}
		})
	}

	vcases := []struct {
		name  string
		style *Style
		want  int16
	}{
		{"measured vert", &Style{VertWidths: []int16{88}}, 88},
		{"no vert widths falls back", &Style{}, fallbackStdWidth},
	}
	for _, c := range vcases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.style.VertStdWidth(); got != c.want {
				t.Errorf("VertStdWidth() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestStyleStdWidthUsesFirstMeasuredEntry(t *testing.T) {
	// HorizStdWidth/VertStdWidth read the first measured width, not an
	// average or a dedicated field; additional widths are the
	// style's other stem-width buckets, not alternatives to the first.
	s := &Style{HorizWidths: []int16{80, 82, 84}, VertWidths: []int16{90, 95}}
	if got := s.HorizStdWidth(); got != 80 {
		t.Errorf("HorizStdWidth() = %d, want 80 (first entry)", got)
	}
	if got := s.VertStdWidth(); got != 90 {
		t.Errorf("VertStdWidth() = %d, want 90 (first entry)", got)
	}
}
