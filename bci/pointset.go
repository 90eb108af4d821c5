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

import "golang.org/x/exp/slices"

// onKey and betweenKey are the sort keys for the ip_on and ip_between
// collections; a total order on the key tuple is all OrderedPointSets
// needs from its backing storage, so plain sorted slices (built up by
// insertion during one ppem pass) serve as well as a balanced tree.
type onKey struct {
	Edge  int
	Point int
}

type betweenKey struct {
	Before int
	After  int
	Point  int
}

func compareOnKey(a, b onKey) int {
	if a.Edge != b.Edge {
		return a.Edge - b.Edge
	}
	return a.Point - b.Point
}

func compareBetweenKey(a, b betweenKey) int {
	if a.Before != b.Before {
		return a.Before - b.Before
	}
	if a.After != b.After {
		return a.After - b.After
	}
	return a.Point - b.Point
}

// OrderedPointSets holds the four interpolation-event collections the
// auto-hinter's ta_ip_before/after/on/between actions populate. Each
// set is rebuilt from scratch for every ppem in the sweep and iterates
// in ascending key order.
type OrderedPointSets struct {
	before []int // points, sorted and deduplicated
	after  []int

	on      []onKey
	between []betweenKey
}

// Reset empties all four collections, ready for the next ppem.
func (s *OrderedPointSets) Reset() {
	s.before = s.before[:0]
	s.after = s.after[:0]
	s.on = s.on[:0]
	s.between = s.between[:0]
}

// AddBefore records a point in the "before the first edge" class.
func (s *OrderedPointSets) AddBefore(point int) {
	i, found := slices.BinarySearch(s.before, point)
	if found {
		return
	}
	s.before = slices.Insert(s.before, i, point)
}

// AddAfter records a point in the "after the last edge" class.
func (s *OrderedPointSets) AddAfter(point int) {
	i, found := slices.BinarySearch(s.after, point)
	if found {
		return
	}
	s.after = slices.Insert(s.after, i, point)
}

// AddOn records a point interpolated on a single edge.
func (s *OrderedPointSets) AddOn(edge, point int) {
	k := onKey{Edge: edge, Point: point}
	i, found := slices.BinarySearchFunc(s.on, k, compareOnKey)
	if found {
		return
	}
	s.on = slices.Insert(s.on, i, k)
}

// AddBetween records a point interpolated between two edges.
func (s *OrderedPointSets) AddBetween(before, after, point int) {
	k := betweenKey{Before: before, After: after, Point: point}
	i, found := slices.BinarySearchFunc(s.between, k, compareBetweenKey)
	if found {
		return
	}
	s.between = slices.Insert(s.between, i, k)
}

// Before returns the ip_before points in ascending order.
func (s *OrderedPointSets) Before() []int { return s.before }

// After returns the ip_after points in ascending order.
func (s *OrderedPointSets) After() []int { return s.after }

// OnEdges returns the distinct edges carrying ip_on points, in
// ascending order, each paired with its points (also ascending).
func (s *OrderedPointSets) OnEdges() []struct {
	Edge   int
	Points []int
} {
	var out []struct {
		Edge   int
		Points []int
	}
	i := 0
	for i < len(s.on) {
		j := i
		edge := s.on[i].Edge
		var pts []int
		for j < len(s.on) && s.on[j].Edge == edge {
			pts = append(pts, s.on[j].Point)
			j++
		}
		out = append(out, struct {
			Edge   int
			Points []int
		}{edge, pts})
		i = j
	}
	return out
}

// BetweenPairs returns the distinct (before, after) edge pairs carrying
// ip_between points, in ascending order, each paired with its points.
func (s *OrderedPointSets) BetweenPairs() []struct {
	Before int
	After  int
	Points []int
} {
	var out []struct {
		Before int
		After  int
		Points []int
	}
	i := 0
	for i < len(s.between) {
		j := i
		before, after := s.between[i].Before, s.between[i].After
		var pts []int
		for j < len(s.between) && s.between[j].Before == before && s.between[j].After == after {
			pts = append(pts, s.between[j].Point)
			j++
		}
		out = append(out, struct {
			Before int
			After  int
			Points []int
		}{before, after, pts})
		i = j
	}
	return out
}
