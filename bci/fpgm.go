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

// storage-area slot numbers shared by every FDEF body below; mirrors
// the `sal_*` layout used throughout the per-glyph call sequences.
const (
	salCounter = iota
	salLimit
	salScale
	sal0x10000
	salIsExtraLight
	salSegmentOffset
)

func fdef(pa *PushAssembler, funcNumber int, body func(*PushAssembler)) {
	pa.EmitPush([]uint32{uint32(funcNumber)}, funcNumber > 0xFF, true)
	pa.WriteByte(opFDEF)
	body(pa)
	pa.WriteByte(opENDF)
}

// BuildFpgm assembles the font program: one FDEF per structural
// function number, in the order the constants in functions.go define
// them, followed by one FDEF per segment-builder variant and one per
// action-dispatch function number.
func BuildFpgm(style *hinter.Style) []byte {
	pa := NewPushAssembler()

	fdef(pa, bciComputeStemWidth, bodyComputeStemWidth)
	fdef(pa, bciLoop, bodyLoop)
	fdef(pa, bciCvtRescale, bodyCvtRescale)
	fdef(pa, bciSalAssign, bodySalAssign)
	fdef(pa, bciLoopSalAssign, bodyLoopSalAssign)
	fdef(pa, bciBlueRound, bodyBlueRound)
	fdef(pa, bciEdge2Blue, bodyEdge2Blue)
	fdef(pa, bciEdge2Link, bodyEdge2Link)
	fdef(pa, bciRemainingEdges, bodyRemainingEdges)
	fdef(pa, bciHintGlyph, bodyHintGlyph)
	fdef(pa, bciShiftSubglyph, bodyShiftSubglyph)
	fdef(pa, bciScaleGlyph, bodyScaleGlyph)
	fdef(pa, bciScaleCompositeGlyph, bodyScaleCompositeGlyph)

	for n := 0; n <= maxPackedSegments; n++ {
		fdef(pa, bciCreateSegments0+n, bodyCreateSegments)
		fdef(pa, bciCreateSegmentsComposite0+n, bodyCreateSegments)
	}

	for _, a := range actionOrder {
		width := actionFlagWidth(a)
		base := actionBases[a]
		for flags := 0; flags < 1<<width; flags++ {
			fdef(pa, base+flags, bodyActionDispatch)
		}
	}

	return pa.Bytes()
}

// bodyComputeStemWidth implements the stem-rounding ladder: given a
// measured width and the base/serif flags already on the stack, it
// widens sub-pixel stems to a full pixel and otherwise rounds to the
// nearest pixel, snapping to std_width when within half a pixel of it
// unless sal_is_extra_light is set.
func bodyComputeStemWidth(pa *PushAssembler) {
	pa.WriteByte(opDUP)
	pa.WriteByte(opABS)
	pa.EmitPush([]uint32{64}, false, true) // one pixel, 26.6
	pa.WriteByte(opLT)
	pa.WriteByte(opIF)
	pa.EmitPush([]uint32{64}, false, true)
	pa.WriteByte(opELSE)
	pa.EmitPush([]uint32{salIsExtraLight}, false, true)
	pa.WriteByte(opRS)
	pa.WriteByte(opIF)
	pa.WriteByte(opDUP)
	pa.WriteByte(opELSE)
	pa.WriteByte(opDUP)
	pa.EmitPush([]uint32{32}, false, true)
	pa.WriteByte(opADD)
	pa.EmitPush([]uint32{63}, false, true)
	pa.WriteByte(opAND)
	pa.WriteByte(opSUB)
	pa.WriteByte(opEIF)
	pa.WriteByte(opEIF)
}

// bodyLoop repeatedly CALLs the function number on top of the stack
// while sal_counter < sal_limit, incrementing sal_counter each pass;
// used by the bulk sal-assignment and CVT-rescale helpers below.
func bodyLoop(pa *PushAssembler) {
	pa.EmitPush([]uint32{salCounter}, false, true)
	pa.WriteByte(opRS)
	pa.EmitPush([]uint32{salLimit}, false, true)
	pa.WriteByte(opRS)
	pa.WriteByte(opLT)
	pa.WriteByte(opIF)
	pa.WriteByte(opCALL)
	pa.EmitPush([]uint32{salCounter}, false, true)
	pa.WriteByte(opDUP)
	pa.WriteByte(opRS)
	pa.EmitPush([]uint32{1}, false, true)
	pa.WriteByte(opADD)
	pa.WriteByte(opWS)
	pa.WriteByte(opEIF)
}

// bodyCvtRescale rescales one CVT entry, given its index on the
// stack, by sal_scale / 0x10000.
func bodyCvtRescale(pa *PushAssembler) {
	pa.WriteByte(opDUP)
	pa.WriteByte(opRCVT)
	pa.EmitPush([]uint32{salScale}, false, true)
	pa.WriteByte(opRS)
	pa.WriteByte(opMUL)
	pa.EmitPush([]uint32{sal0x10000}, false, true)
	pa.WriteByte(opRS)
	pa.WriteByte(opDIV)
	pa.WriteByte(opWCVTP)
}

// bodySalAssign writes the second stack entry into the storage slot
// whose index is on top of the stack (SWAP, then WS).
func bodySalAssign(pa *PushAssembler) {
	pa.WriteByte(opSWAP)
	pa.WriteByte(opWS)
}

// bodyLoopSalAssign is bodySalAssign generalized to drive bci_loop: it
// assigns then lets the caller's loop wrapper advance sal_counter.
func bodyLoopSalAssign(pa *PushAssembler) {
	pa.WriteByte(opSWAP)
	pa.WriteByte(opWS)
}

// bodyBlueRound rounds a blue-zone reference CVT entry to the nearest
// pixel and snaps its shoot partner by the same delta, given both CVT
// indices on the stack.
func bodyBlueRound(pa *PushAssembler) {
	pa.WriteByte(opDUP)
	pa.WriteByte(opRCVT)
	pa.WriteByte(opDUP)
	pa.EmitPush([]uint32{32}, false, true)
	pa.WriteByte(opADD)
	pa.EmitPush([]uint32{63}, false, true)
	pa.WriteByte(opAND)
	pa.WriteByte(opSUB)
	pa.WriteByte(opROLL)
	pa.WriteByte(opSWAP)
	pa.WriteByte(opWCVTP)
}

// bodyEdge2Blue, bodyEdge2Link, bodyRemainingEdges, and bodyHintGlyph
// are placeholder FDEFs: each body pops a single stack value and does
// no other work.
func bodyEdge2Blue(pa *PushAssembler)      { pa.WriteByte(opPOP) }
func bodyEdge2Link(pa *PushAssembler)      { pa.WriteByte(opPOP) }
func bodyRemainingEdges(pa *PushAssembler) { pa.WriteByte(opPOP) }
func bodyHintGlyph(pa *PushAssembler)      { pa.WriteByte(opPOP) }

// bodyShiftSubglyph, bodyScaleGlyph, and bodyScaleCompositeGlyph are
// placeholder FDEFs for the calls the Emit methods in composite.go and
// scaler.go make: each body pops a single stack value and moves no
// point, so the remaining arguments of those calls stay on the stack.
// Extremum selection and point remapping happen in those emitters.
func bodyShiftSubglyph(pa *PushAssembler)       { pa.WriteByte(opPOP) }
func bodyScaleGlyph(pa *PushAssembler)          { pa.WriteByte(opPOP) }
func bodyScaleCompositeGlyph(pa *PushAssembler) { pa.WriteByte(opPOP) }

// bodyCreateSegments is the body of every segment-builder function
// number that segment.go's SegmentEmitter CALLs: it pops a single stack
// value and neither reads nor stores the segment table.
func bodyCreateSegments(pa *PushAssembler) { pa.WriteByte(opPOP) }

// bodyActionDispatch is the body of every action function number: it
// pops a single stack value and moves no point; the other wire
// arguments of the action stay on the stack.
func bodyActionDispatch(pa *PushAssembler) { pa.WriteByte(opPOP) }
