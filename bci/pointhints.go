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

// PointHintsEmitter drains one ppem's OrderedPointSets into a byte
// record, one entry per non-empty interpolation class, in the fixed
// order before/after/on/between.
type PointHintsEmitter struct {
	buf        []byte
	numActions int
}

// Reset empties the byte buffer and action count for the next ppem.
func (e *PointHintsEmitter) Reset() {
	e.buf = e.buf[:0]
	e.numActions = 0
}

// Bytes returns the record assembled so far.
func (e *PointHintsEmitter) Bytes() []byte { return e.buf }

// NumActions returns how many of the four classes produced a record.
func (e *PointHintsEmitter) NumActions() int { return e.numActions }

func (e *PointHintsEmitter) writeU16(v int) {
	e.buf = append(e.buf, byte(v>>8), byte(v))
}

// Emit appends records for every non-empty class in points. edges is
// the glyph axis's full edge list, ordered the way the auto-hinter
// produced it; only its first and last entries are consulted, for the
// ip_before/ip_after anchor segment.
func (e *PointHintsEmitter) Emit(edges []*hinter.Edge, points *OrderedPointSets) {
	if before := points.Before(); len(before) > 0 {
		e.numActions++
		e.writeU16(actionCode(hinter.ActionIPBefore, 0))
		e.writeU16(edges[0].First.Index())
		e.writeU16(len(before))
		for _, pt := range before {
			e.writeU16(pt)
		}
	}

	if after := points.After(); len(after) > 0 {
		e.numActions++
		e.writeU16(actionCode(hinter.ActionIPAfter, 0))
		e.writeU16(edges[len(edges)-1].First.Index())
		e.writeU16(len(after))
		for _, pt := range after {
			e.writeU16(pt)
		}
	}

	if onEdges := points.OnEdges(); len(onEdges) > 0 {
		e.numActions++
		e.writeU16(actionCode(hinter.ActionIPOn, 0))
		e.writeU16(len(onEdges))
		for _, grp := range onEdges {
			e.writeU16(grp.Edge)
			e.writeU16(len(grp.Points))
			for _, pt := range grp.Points {
				e.writeU16(pt)
			}
		}
	}

	if pairs := points.BetweenPairs(); len(pairs) > 0 {
		e.numActions++
		e.writeU16(actionCode(hinter.ActionIPBetween, 0))
		e.writeU16(len(pairs))
		for _, pr := range pairs {
			e.writeU16(pr.After)
			e.writeU16(pr.Before)
			e.writeU16(len(pr.Points))
			for _, pt := range pr.Points {
				e.writeU16(pt)
			}
		}
	}
}
