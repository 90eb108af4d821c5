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
	"log"

	"github.com/sshyran/ttfautohint-mirror/hinter"
)

// controlDeltaPPemMin is the lowest ppem a delta exception may target;
// control records are bucketed into three consecutive 16-ppem ranges
// starting here, matching the three DELTAP1/2/3 opcodes.
const controlDeltaPPemMin = 6

// DeltaExceptions drains the control-instruction cursor for one glyph
// and emits the corresponding DELTAP1/2/3 sequences. When Verbose is
// set, records purged because they precede the glyph currently being
// emitted are logged instead of silently dropped.
type DeltaExceptions struct {
	Verbose bool
}

// deltaStack accumulates (arg, point_idx) pairs for one DELTAP opcode.
type deltaStack struct {
	pairs []uint32 // arg, point, arg, point, ...
}

func (s *deltaStack) add(arg, point int) {
	s.pairs = append(s.pairs, uint32(arg), uint32(point))
}

func (s *deltaStack) count() int { return len(s.pairs) / 2 }

// Emit drains cursor of every control record matching (fontIdx,
// glyphIdx) and appends the resulting delta-exception bytecode to pa.
func (d DeltaExceptions) Emit(pa *PushAssembler, cursor hinter.ControlCursor, fontIdx, glyphIdx int) {
	var stacks [6]deltaStack // 0-2: x offset 0-2, 3-5: y offset 0-2
	needWords := false
	any := false

	// the cursor is globally sorted by (FontIdx, GlyphIdx, Ppem, PointIdx);
	// records for glyphs already passed over (e.g. a glyph with no
	// contours or points, for which GlyphDriver returns before
	// consulting this cursor) are unreachable now and are dropped rather
	// than left at the head to block every later glyph's drain.
	for {
		ctrl, ok := cursor.Peek()
		if !ok {
			break
		}
		if ctrl.FontIdx < fontIdx || (ctrl.FontIdx == fontIdx && ctrl.GlyphIdx < glyphIdx) {
			if d.Verbose {
				log.Printf("bci: dropping stale control record for font %d glyph %d (now at font %d glyph %d)",
					ctrl.FontIdx, ctrl.GlyphIdx, fontIdx, glyphIdx)
			}
			cursor.Advance()
			continue
		}
		break
	}

	for {
		ctrl, ok := cursor.Peek()
		if !ok {
			break
		}
		if ctrl.FontIdx != fontIdx || ctrl.GlyphIdx != glyphIdx {
			break
		}
		if ctrl.Type != hinter.ControlDeltaBeforeIUP && ctrl.Type != hinter.ControlDeltaAfterIUP {
			break
		}

		any = true
		ppem := ctrl.Ppem - controlDeltaPPemMin
		offset := 2
		if ppem < 16 {
			offset = 0
		} else if ppem < 32 {
			offset = 1
		}
		ppem -= offset << 4

		if ctrl.XShift != 0 {
			shift := shiftIndex(ctrl.XShift)
			stacks[offset].add((ppem<<4)+shift, ctrl.PointIdx)
		}
		if ctrl.YShift != 0 {
			shift := shiftIndex(ctrl.YShift)
			stacks[3+offset].add((ppem<<4)+shift, ctrl.PointIdx)
		}
		if ctrl.PointIdx > 0xFF {
			needWords = true
		}

		cursor.Advance()
	}

	if !any {
		return
	}

	needWordCounts := false
	for i := range stacks {
		if stacks[i].count() > 0xFF {
			needWordCounts = true
		}
	}

	if needWords || !needWordCounts {
		emitDeltaMerged(pa, stacks[:], needWords)
	} else {
		emitDeltaSeparate(pa, stacks[:])
	}

	if stacks[5].count() > 0 {
		pa.WriteByte(opDELTAP3)
	}
	if stacks[4].count() > 0 {
		pa.WriteByte(opDELTAP2)
	}
	if stacks[3].count() > 0 {
		pa.WriteByte(opDELTAP1)
	}

	if stacks[0].count() > 0 || stacks[1].count() > 0 || stacks[2].count() > 0 {
		pa.WriteByte(opSVTCAx)
	}
	if stacks[2].count() > 0 {
		pa.WriteByte(opDELTAP3)
	}
	if stacks[1].count() > 0 {
		pa.WriteByte(opDELTAP2)
	}
	if stacks[0].count() > 0 {
		pa.WriteByte(opDELTAP1)
	}
}

// shiftIndex maps a nonzero signed eighth-pixel shift to the 0..15
// DELTAP shift code, skipping the unused zero-shift slot.
func shiftIndex(shift int) int {
	if shift < 0 {
		return shift + 8
	}
	return shift + 7
}

// emitDeltaMerged concatenates every stack's pairs plus its trailing
// pair-count into one combined push, in stack order 0..5.
func emitDeltaMerged(pa *PushAssembler, stacks []deltaStack, needWords bool) {
	var args []uint32
	for i := range stacks {
		if stacks[i].count() == 0 {
			continue
		}
		args = append(args, stacks[i].pairs...)
		args = append(args, uint32(stacks[i].count()))
	}
	pa.EmitPush(args, needWords, true)
}

// emitDeltaSeparate pushes each nonempty stack's pairs on their own
// (byte-mode, since needWords is false here) followed by its count as
// a forced word push; used only when no point index needs word mode
// but some stack's pair count does.
func emitDeltaSeparate(pa *PushAssembler, stacks []deltaStack) {
	for i := range stacks {
		if stacks[i].count() == 0 {
			continue
		}
		pa.EmitPush(stacks[i].pairs, false, true)
		pa.EmitPush([]uint32{uint32(stacks[i].count())}, true, true)
	}
}
