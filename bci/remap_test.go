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

import "testing"

func TestRemapSimpleGlyphIsIdentity(t *testing.T) {
	r := NewPointIndexRemap(nil)
	for _, x := range []int{0, 1, 100} {
		if got := r.Remap(x); got != x {
			t.Fatalf("Remap(%d) = %d, want %d", x, got, x)
		}
	}
}

func TestRemapCompositeBoundaries(t *testing.T) {
	// two subglyphs: 5 real points + 1 phantom, then 7 real + 1 phantom
	pointSums := []int{5, 12}
	r := NewPointIndexRemap(pointSums)

	cases := []struct{ x, want int }{
		{0, 0},
		{4, 4},
		{5, 6},  // pointsums[0]-1 == 4 -> remap(4) == 4; pointsums[0] == 5 -> remap(5) == 5+1
		{6, 7},
		{11, 12}, // pointsums[1]-1 == 11 -> remap == 11+1
		{12, 14}, // pointsums[1] == 12 -> remap == 12+2
	}
	for _, c := range cases {
		if got := r.Remap(c.x); got != c.want {
			t.Fatalf("Remap(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}
