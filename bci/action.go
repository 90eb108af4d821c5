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

// ActionRecorder implements hinter.Recorder, turning one ppem's worth
// of auto-hinter callbacks into a flat byte record: interpolation
// actions go into points (see OrderedPointSets), everything else is
// serialized directly into buf.
type ActionRecorder struct {
	buf []byte

	style  *hinter.Style
	remap  PointIndexRemap
	seg    *SegmentEmitter
	nSegs  int
	points *OrderedPointSets

	numActions int
}

// NewActionRecorder prepares a recorder for one glyph. remap and seg
// resolve, respectively, point and wrap-split indices; numSegments is
// the glyph axis's count of normal segments (split halves excluded),
// the base that SplitIndex adds a wrap-around segment's offset to.
func NewActionRecorder(style *hinter.Style, remap PointIndexRemap, seg *SegmentEmitter, numSegments int, points *OrderedPointSets) *ActionRecorder {
	return &ActionRecorder{style: style, remap: remap, seg: seg, nSegs: numSegments, points: points}
}

// Reset empties the byte buffer and action count for the next ppem.
func (r *ActionRecorder) Reset() {
	r.buf = r.buf[:0]
	r.numActions = 0
}

// Bytes returns the record assembled so far.
func (r *ActionRecorder) Bytes() []byte { return r.buf }

// NumActions returns how many non-interpolation actions were recorded.
func (r *ActionRecorder) NumActions() int { return r.numActions }

func (r *ActionRecorder) writeU16(v int) {
	r.buf = append(r.buf, byte(v>>8), byte(v))
}

// writeSegmentList appends the serialized segment list for edge: its
// first segment's index, then the number of entries that follow (one
// per other segment of the edge plus one split index per wrap-around
// segment; the first segment itself is not counted, so a single
// non-wrapping segment gives 0), the first segment's split index if it
// wraps, then every other segment of the edge's circular list the same
// way.
func (r *ActionRecorder) writeSegmentList(edge *hinter.Edge) {
	first := edge.First
	firstIdx := first.Index()

	numSegs := 0
	if first.Wraps() {
		numSegs++
	}
	for seg := first.Next; seg != first; seg = seg.Next {
		numSegs++
		if seg.Wraps() {
			numSegs++
		}
	}

	r.writeU16(firstIdx)
	r.writeU16(numSegs)
	if first.Wraps() {
		split, _ := r.seg.SplitIndex(r.nSegs, firstIdx)
		r.writeU16(split)
	}
	for seg := first.Next; seg != first; seg = seg.Next {
		idx := seg.Index()
		r.writeU16(idx)
		if seg.Wraps() {
			split, _ := r.seg.SplitIndex(r.nSegs, idx)
			r.writeU16(split)
		}
	}
}

// blueCVTIndex returns the CVT index an edge's blue-zone alignment
// reads from: the shoot array if the edge snapped to an overshoot,
// otherwise the ref array.
func (r *ActionRecorder) blueCVTIndex(edge *hinter.Edge) int {
	if edge.BestBlueIsShoot {
		return r.style.BlueShootsOffset() + edge.BestBlueIdx
	}
	return r.style.BlueRefsOffset() + edge.BestBlueIdx
}

func flagBit(cond bool, bit int) int {
	if cond {
		return 1 << bit
	}
	return 0
}

// Record implements hinter.Recorder.
func (r *ActionRecorder) Record(ev hinter.Event) {
	if ev.Dim == hinter.DimHorz {
		return
	}

	switch ev.Action {
	case hinter.ActionIPBefore:
		r.points.AddBefore(r.remap.Remap(ev.PointIndex))
		return
	case hinter.ActionIPAfter:
		r.points.AddAfter(r.remap.Remap(ev.PointIndex))
		return
	case hinter.ActionIPOn:
		r.points.AddOn(ev.Arg1Edge.First.Index(), r.remap.Remap(ev.PointIndex))
		return
	case hinter.ActionIPBetween:
		r.points.AddBetween(ev.Arg1Edge.First.Index(), ev.Edge2.First.Index(), r.remap.Remap(ev.PointIndex))
		return
	case hinter.ActionBound:
		return
	}

	switch ev.Action {
	case hinter.ActionLink:
		base, stem := ev.Arg1Edge, ev.Edge2
		flags := flagBit(stem.Flags&hinter.EdgeSerif != 0, 0) |
			flagBit(base.Flags&hinter.EdgeRound != 0, 1)
		r.writeU16(actionCode(hinter.ActionLink, flags))
		r.writeU16(base.First.Index())
		r.writeU16(stem.First.Index())
		r.writeSegmentList(stem)

	case hinter.ActionAnchor:
		edge, edge2 := ev.Arg1Edge, ev.Edge2
		flags := flagBit(edge2.Flags&hinter.EdgeSerif != 0, 0) |
			flagBit(edge.Flags&hinter.EdgeRound != 0, 1)
		r.writeU16(actionCode(hinter.ActionAnchor, flags))
		r.writeU16(edge.First.Index())
		r.writeU16(edge2.First.Index())
		r.writeSegmentList(edge)

	case hinter.ActionAdjust:
		edge, edge2, minusOne := ev.Arg1Edge, ev.Edge2, ev.LowerBound
		flags := flagBit(edge2.Flags&hinter.EdgeSerif != 0, 0) |
			flagBit(edge.Flags&hinter.EdgeRound != 0, 1) |
			flagBit(minusOne != nil, 2)
		r.writeU16(actionCode(hinter.ActionAdjust, flags))
		r.writeU16(edge.First.Index())
		r.writeU16(edge2.First.Index())
		if minusOne != nil {
			r.writeU16(minusOne.First.Index())
		}
		r.writeSegmentList(edge)

	case hinter.ActionBlueAnchor:
		edge, blue := ev.Arg1Edge, ev.Edge2
		r.writeU16(actionCode(hinter.ActionBlueAnchor, 0))
		r.writeU16(blue.First.Index())
		r.writeU16(r.blueCVTIndex(edge))
		r.writeU16(edge.First.Index())
		r.writeSegmentList(edge)

	case hinter.ActionStem:
		edge, edge2, minusOne := ev.Arg1Edge, ev.Edge2, ev.LowerBound
		flags := flagBit(edge2.Flags&hinter.EdgeSerif != 0, 0) |
			flagBit(edge.Flags&hinter.EdgeRound != 0, 1) |
			flagBit(minusOne != nil, 2)
		r.writeU16(actionCode(hinter.ActionStem, flags))
		r.writeU16(edge.First.Index())
		r.writeU16(edge2.First.Index())
		if minusOne != nil {
			r.writeU16(minusOne.First.Index())
		}
		r.writeSegmentList(edge)
		r.writeSegmentList(edge2)

	case hinter.ActionBlue:
		edge := ev.Arg1Edge
		r.writeU16(actionCode(hinter.ActionBlue, 0))
		r.writeU16(r.blueCVTIndex(edge))
		r.writeU16(edge.First.Index())
		r.writeSegmentList(edge)

	case hinter.ActionSerif:
		serif, base := ev.Arg1Edge, ev.Edge2
		flags := flagBit(ev.LowerBound != nil, 0) | flagBit(ev.UpperBound != nil, 1)
		r.writeU16(actionCode(hinter.ActionSerif, flags))
		r.writeU16(serif.First.Index())
		r.writeU16(base.First.Index())
		if ev.LowerBound != nil {
			r.writeU16(ev.LowerBound.First.Index())
		}
		if ev.UpperBound != nil {
			r.writeU16(ev.UpperBound.First.Index())
		}
		r.writeSegmentList(serif)

	case hinter.ActionSerifAnchor, hinter.ActionSerifLink2:
		edge := ev.Arg1Edge
		flags := flagBit(ev.LowerBound != nil, 0) | flagBit(ev.UpperBound != nil, 1)
		r.writeU16(actionCode(ev.Action, flags))
		r.writeU16(edge.First.Index())
		if ev.LowerBound != nil {
			r.writeU16(ev.LowerBound.First.Index())
		}
		if ev.UpperBound != nil {
			r.writeU16(ev.UpperBound.First.Index())
		}
		r.writeSegmentList(edge)

	case hinter.ActionSerifLink1:
		edge, before, after := ev.Arg1Edge, ev.Edge2, ev.Edge3
		flags := flagBit(ev.LowerBound != nil, 0) | flagBit(ev.UpperBound != nil, 1)
		r.writeU16(actionCode(hinter.ActionSerifLink1, flags))
		r.writeU16(before.First.Index())
		r.writeU16(edge.First.Index())
		r.writeU16(after.First.Index())
		if ev.LowerBound != nil {
			r.writeU16(ev.LowerBound.First.Index())
		}
		if ev.UpperBound != nil {
			r.writeU16(ev.UpperBound.First.Index())
		}
		r.writeSegmentList(edge)

	default:
		return
	}

	r.numActions++
}
