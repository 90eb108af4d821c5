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

// SegmentEmitter builds the bci_create_segments[_composite]_N call
// that pushes a glyph's vertical-axis segment table into storage.
type SegmentEmitter struct {
	remap PointIndexRemap

	// wraps maps a wrap-around segment's index to its position among
	// the synthesized split records, giving the num_segments+offset
	// index other components use to reference it.
	wraps map[int]int
}

// NewSegmentEmitter prepares an emitter for one glyph's segments.
func NewSegmentEmitter(remap PointIndexRemap, segments []*hinter.Segment) *SegmentEmitter {
	e := &SegmentEmitter{remap: remap, wraps: make(map[int]int)}
	offset := 0
	for i, seg := range segments {
		if seg.Wraps() {
			e.wraps[i] = offset
			offset++
		}
	}
	return e
}

// SplitIndex returns the index a wrap-around segment's second half is
// emitted at (num_segments + its position among the wraps), and
// whether seg is in fact a wrap-around segment.
func (e *SegmentEmitter) SplitIndex(numSegments int, segIndex int) (int, bool) {
	off, ok := e.wraps[segIndex]
	if !ok {
		return 0, false
	}
	return numSegments + off, true
}

// packable reports whether packing segment i as a nibble pair, given
// the running base, succeeds, and if so returns the updated base.
func packable(base, first, last int) (newBase int, ok bool) {
	if first-base >= 16 {
		return base, false
	}
	if first > last || last-first >= 16 {
		return base, false
	}
	return last, true
}

// Emit appends the segment-table CALL for outline to pa, given the
// glyph's axis segments (already sorted the way the auto-hinter
// produced them) and its outline (for locating contour boundaries of
// wrap-around segments). style gives the CVT offset the bytecode will
// read its scaling factor from. isComposite selects the _composite
// function-number family. optimize must be false when the caller
// intends to pass this block's start position to OptimizePush, since
// that pass only recognizes the long NPUSHB/NPUSHW forms.
func (e *SegmentEmitter) Emit(pa *PushAssembler, outline *hinter.Outline, segments []*hinter.Segment, style *hinter.Style, isComposite, optimize bool) {
	type packedSeg struct{ first, last int }
	type normalSeg struct {
		first, last       int
		wrapStart, wrapEnd int
		isWrap            bool
	}

	base := 0
	numPacked := 0
	var packed []packedSeg
	for _, seg := range segments {
		first := e.remap.Remap(seg.First)
		last := e.remap.Remap(seg.Last)
		if numPacked >= maxPackedSegments {
			break
		}
		newBase, ok := packable(base, first, last)
		if !ok {
			break
		}
		packed = append(packed, packedSeg{first, last})
		base = newBase
		numPacked++
	}

	var normals []normalSeg
	var splits []normalSeg
	needWords := false
	for i, seg := range segments {
		if i < numPacked {
			continue
		}
		first := e.remap.Remap(seg.First)
		last := e.remap.Remap(seg.Last)
		if last > 0xFF || first > 0xFF {
			needWords = true
		}
		ns := normalSeg{first: first, last: last}
		if seg.Wraps() {
			ns.isWrap = true
			contour := outline.ContourOf(seg.First)
			end := e.remap.Remap(outline.Contours[contour])
			start := e.remap.Remap(outline.ContourStart(contour))
			ns.wrapStart, ns.wrapEnd = start, end
			if end > 0xFF {
				needWords = true
			}
			splits = append(splits, normalSeg{first: start, last: e.remap.Remap(seg.Last)})
		}
		normals = append(normals, ns)
	}

	numSegments := len(segments) + len(splits)
	if numSegments > 0xFF {
		needWords = true
	}

	funcBase := bciCreateSegments0
	if isComposite {
		funcBase = bciCreateSegmentsComposite0
	}

	// args is built top-of-stack first, the order the specification
	// documents, then reversed once into push order for EmitPush.
	var args []uint32
	args = append(args, uint32(funcBase+numPacked))
	args = append(args, uint32(style.ScalingValueOffset()))
	args = append(args, uint32(numSegments))
	for i, p := range packed {
		base := 0
		if i > 0 {
			base = packed[i-1].last
		}
		lowNibble := p.first - base
		highNibble := p.last - p.first
		args = append(args, uint32(16*highNibble+lowNibble))
	}
	for _, ns := range normals {
		args = append(args, uint32(ns.first))
		args = append(args, uint32(ns.last))
		if ns.isWrap {
			// contour end before contour start, matching the emitted
			// quadruple order (first, last, contour_end, contour_start).
			args = append(args, uint32(ns.wrapEnd))
			args = append(args, uint32(ns.wrapStart))
		}
	}
	for _, s := range splits {
		args = append(args, uint32(s.first))
		args = append(args, uint32(s.last))
	}

	reverseUint32(args)

	pa.EmitPush(args, needWords, optimize)
	pa.WriteByte(opCALL)
}

func reverseUint32(s []uint32) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
