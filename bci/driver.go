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

// discardRecorder ignores every event; used for the priming call that
// wakes up the auto-hinter's lazy analysis before the real sweep.
type discardRecorder struct{}

func (discardRecorder) Record(hinter.Event) {}

// GlyphDriver orchestrates one glyph's full ppem sweep: priming the
// analysis, recording and deduplicating per-ppem action and point
// records, and composing the final instruction stream.
type GlyphDriver struct {
	HintingRangeMin int
	HintingRangeMax int

	// Verbose enables debug logging of dropped/stale control records
	// in the delta-exceptions drain (spec: "debug builds log duplicates").
	Verbose bool
}

// NewGlyphDriver returns a driver sweeping [min, max] inclusive.
func NewGlyphDriver(min, max int) *GlyphDriver {
	return &GlyphDriver{HintingRangeMin: min, HintingRangeMax: max}
}

// Build runs the full driver algorithm for one glyph at one style and
// returns its glyf instruction bytes (nil, nil for an empty glyph).
// segments and edges are the glyph's vertical-axis analysis output,
// already produced by engine's prior work on this glyph; fontIdx
// selects which font's control instructions apply when cursor is
// consulted for delta exceptions.
func (d *GlyphDriver) Build(
	engine hinter.Engine,
	style *hinter.Style,
	glyph *hinter.Glyph,
	segments []*hinter.Segment,
	edges []*hinter.Edge,
	cursor hinter.ControlCursor,
	fontIdx int,
) ([]byte, error) {
	if glyph.Index < 0 {
		return nil, &InvalidArgumentError{Reason: "negative glyph index"}
	}

	if err := engine.Hint(style, glyph, d.HintingRangeMin, discardRecorder{}); err != nil {
		return nil, err
	}

	if len(glyph.Outline.Contours) == 0 || glyph.Outline.NumPoints() == 0 {
		return nil, nil
	}

	isComposite := glyph.NumComponents > 0

	if isComposite {
		pa := NewPushAssembler()
		CompositeShifter{}.Emit(pa, glyph)
		if cursor != nil {
			DeltaExceptions{Verbose: d.Verbose}.Emit(pa, cursor, fontIdx, glyph.Index)
		}
		return pa.Bytes(), nil
	}

	remap := RemapGlyph(glyph)

	if style.None {
		pa := NewPushAssembler()
		scaler := NewGlyphScaler(remap)
		scaler.Emit(pa, &glyph.Outline, false)
		if cursor != nil {
			DeltaExceptions{Verbose: d.Verbose}.Emit(pa, cursor, fontIdx, glyph.Index)
		}
		return pa.Bytes(), nil
	}

	for i, seg := range segments {
		seg.SetIndex(i)
	}
	segEmitter := NewSegmentEmitter(remap, segments)

	actionStore := &RecordStore{}
	pointStore := &RecordStore{}
	points := &OrderedPointSets{}

	for ppem := d.HintingRangeMin; ppem <= d.HintingRangeMax; ppem++ {
		points.Reset()

		actionRec := NewActionRecorder(style, remap, segEmitter, len(segments), points)
		if err := engine.Hint(style, glyph, ppem, actionRec); err != nil {
			return nil, err
		}
		actionStore.Add(ppem, actionRec.Bytes())

		var pointsEmitter PointHintsEmitter
		pointsEmitter.Emit(edges, points)
		pointStore.Add(ppem, pointsEmitter.Bytes())
	}

	actionRecords := actionStore.Records()
	if len(actionRecords) == 1 && len(actionRecords[0].Bytes) == 0 {
		pa := NewPushAssembler()
		scaler := NewGlyphScaler(remap)
		scaler.Emit(pa, &glyph.Outline, false)
		if cursor != nil {
			DeltaExceptions{Verbose: d.Verbose}.Emit(pa, cursor, fontIdx, glyph.Index)
		}
		return pa.Bytes(), nil
	}

	// with a single action record and at most one point record neither
	// chain carries an MPPEM/IF gate, so every push the segment table
	// and the two records emit is immediately followed by the segment
	// CALL and OptimizePush can coalesce them; that pass only
	// recognizes the long NPUSHB/NPUSHW forms, so the three blocks must
	// be built unoptimized in that case.
	singleRecord := len(actionRecords) == 1 && len(pointStore.Records()) <= 1
	recordsOptimize := !singleRecord

	pa := NewPushAssembler()

	pointsStart := pa.Len()
	EmitHintsRecords(pa, pointStore.Records(), recordsOptimize)

	actionsStart := pa.Len()
	EmitHintsRecords(pa, actionRecords, recordsOptimize)

	segStart := pa.Len()
	segEmitter.Emit(pa, &glyph.Outline, segments, style, false, recordsOptimize)

	if singleRecord {
		pa.OptimizePush([3]int{pointsStart, actionsStart, segStart})
	}

	if cursor != nil {
		DeltaExceptions{Verbose: d.Verbose}.Emit(pa, cursor, fontIdx, glyph.Index)
	}

	return pa.Bytes(), nil
}
