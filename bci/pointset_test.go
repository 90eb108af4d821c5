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
	"reflect"
	"testing"
)

func TestOrderedPointSetsBeforeAfterSorted(t *testing.T) {
	var s OrderedPointSets
	s.AddBefore(5)
	s.AddBefore(1)
	s.AddBefore(3)
	s.AddBefore(1) // duplicate

	if got := s.Before(); !reflect.DeepEqual(got, []int{1, 3, 5}) {
		t.Fatalf("Before() = %v", got)
	}
}

func TestOrderedPointSetsOnGrouping(t *testing.T) {
	var s OrderedPointSets
	s.AddOn(2, 9)
	s.AddOn(1, 3)
	s.AddOn(1, 1)
	s.AddOn(2, 4)

	groups := s.OnEdges()
	if len(groups) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(groups))
	}
	if groups[0].Edge != 1 || !reflect.DeepEqual(groups[0].Points, []int{1, 3}) {
		t.Fatalf("edge 1 group wrong: %+v", groups[0])
	}
	if groups[1].Edge != 2 || !reflect.DeepEqual(groups[1].Points, []int{4, 9}) {
		t.Fatalf("edge 2 group wrong: %+v", groups[1])
	}
}

func TestOrderedPointSetsBetweenGrouping(t *testing.T) {
	var s OrderedPointSets
	s.AddBetween(1, 2, 50)
	s.AddBetween(1, 2, 10)
	s.AddBetween(0, 2, 5)

	pairs := s.BetweenPairs()
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Before != 0 || pairs[0].After != 2 {
		t.Fatalf("first pair wrong ordering: %+v", pairs[0])
	}
	if pairs[1].Before != 1 || pairs[1].After != 2 || !reflect.DeepEqual(pairs[1].Points, []int{10, 50}) {
		t.Fatalf("second pair wrong: %+v", pairs[1])
	}
}

func TestOrderedPointSetsReset(t *testing.T) {
	var s OrderedPointSets
	s.AddBefore(1)
	s.AddOn(1, 1)
	s.Reset()
	if len(s.Before()) != 0 || len(s.OnEdges()) != 0 {
		t.Fatalf("Reset did not clear sets")
	}
}
