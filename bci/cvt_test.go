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

import (
	"testing"

	"github.com/sshyran/ttfautohint-mirror/hinter"
)

func TestBuildCVTLayoutAndPadding(t *testing.T) {
	style := &hinter.Style{
		Name:        "test",
		HorizWidths: []int16{80},
		VertWidths:  []int16{90, 95},
		BlueZones:   []hinter.BlueZone{{Ref: 0, Shoot: -10}},
	}
	buf, err := BuildCVT(style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// entries: std_h, std_v, horiz(1), vert(2), blue_refs(1), blue_shoots(1), scaling(1) = 8
	wantRaw := 2 * 8
	wantPadded := (wantRaw + 3) &^ 3
	if len(buf) != wantPadded {
		t.Fatalf("len = %d, want %d", len(buf), wantPadded)
	}

	readU16 := func(i int) int16 { return int16(uint16(buf[2*i])<<8 | uint16(buf[2*i+1])) }

	if readU16(0) != 80 {
		t.Errorf("horiz std width = %d, want 80", readU16(0))
	}
	if readU16(1) != 90 {
		t.Errorf("vert std width = %d, want 90", readU16(1))
	}
	if readU16(2) != 80 {
		t.Errorf("horiz widths[0] = %d, want 80", readU16(2))
	}
	if readU16(3) != 90 || readU16(4) != 95 {
		t.Errorf("vert widths = (%d,%d), want (90,95)", readU16(3), readU16(4))
	}
	if readU16(5) != 0 {
		t.Errorf("blue ref = %d, want 0", readU16(5))
	}
	if readU16(6) != -10 {
		t.Errorf("blue shoot = %d, want -10", readU16(6))
	}
	if readU16(7) != 0 {
		t.Errorf("scaling slot = %d, want 0", readU16(7))
	}

	if style.ScalingValueOffset() != 7 {
		t.Fatalf("ScalingValueOffset() = %d, want 7", style.ScalingValueOffset())
	}
}

func TestBuildCVTFallsBackToStandardWidth(t *testing.T) {
	style := &hinter.Style{Name: "empty"}
	buf, err := BuildCVT(style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if int16(uint16(buf[0])<<8|uint16(buf[1])) != 50 {
		t.Errorf("fallback horiz std width should be 50")
	}
	if int16(uint16(buf[2])<<8|uint16(buf[3])) != 50 {
		t.Errorf("fallback vert std width should be 50")
	}
}
