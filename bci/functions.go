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

// Function numbers select which fpgm-defined function a CALL invokes;
// they are pushed as the top-of-stack argument immediately before
// CALL. The structural functions below are FDEF'd once by the fpgm
// builder (see fpgm.go); the per-action functions are a contiguous
// range, action_base + flag_bits, so a single FDEF can dispatch on the
// low bits of its own function number.
const (
	bciComputeStemWidth = iota
	bciLoop
	bciCvtRescale
	bciSalAssign
	bciLoopSalAssign
	bciBlueRound
	bciEdge2Blue
	bciEdge2Link
	bciRemainingEdges
	bciHintGlyph
	bciShiftSubglyph
	bciScaleGlyph
	bciScaleCompositeGlyph

	// bciCreateSegments0 is the base for the simple-glyph segment
	// builder; num_packed_segments in 0..maxPackedSegments selects the
	// variant, so 10 functions numbers are reserved here.
	bciCreateSegments0

	bciCreateSegmentsComposite0 = bciCreateSegments0 + maxPackedSegments + 1

	numStructuralFunctions = bciCreateSegmentsComposite0 + maxPackedSegments + 1
)

// maxPackedSegments is the largest num_packed_segments the segment
// emitter will produce (property 6: packing stops at 9 segments).
const maxPackedSegments = 9

// actionFlagWidth returns the number of low bits of the wire action
// code that carry flags for the given action, i.e. log2 of the number
// of function numbers the action occupies.
func actionFlagWidth(a hinter.Action) int {
	switch a {
	case hinter.ActionLink, hinter.ActionAnchor:
		return 2
	case hinter.ActionAdjust, hinter.ActionStem:
		return 3
	case hinter.ActionBlueAnchor, hinter.ActionBlue:
		return 0
	case hinter.ActionSerif, hinter.ActionSerifAnchor,
		hinter.ActionSerifLink1, hinter.ActionSerifLink2:
		return 2
	case hinter.ActionIPBefore, hinter.ActionIPAfter,
		hinter.ActionIPOn, hinter.ActionIPBetween:
		return 0
	default:
		return 0
	}
}

// actionOrder lists the hint actions (the ones that reach the wire; ta_bound
// never does) in the order their function-number ranges are allocated.
// It mirrors the TA_Action enumeration order from the original analysis,
// which the bytecode's function numbers are defined to track.
var actionOrder = []hinter.Action{
	hinter.ActionLink,
	hinter.ActionAnchor,
	hinter.ActionAdjust,
	hinter.ActionBlueAnchor,
	hinter.ActionStem,
	hinter.ActionBlue,
	hinter.ActionSerif,
	hinter.ActionSerifAnchor,
	hinter.ActionSerifLink1,
	hinter.ActionSerifLink2,
	hinter.ActionIPBefore,
	hinter.ActionIPAfter,
	hinter.ActionIPOn,
	hinter.ActionIPBetween,
}

var actionBases = computeActionBases()

func computeActionBases() map[hinter.Action]int {
	bases := make(map[hinter.Action]int, len(actionOrder))
	next := numStructuralFunctions
	for _, a := range actionOrder {
		bases[a] = next
		next += 1 << actionFlagWidth(a)
	}
	return bases
}

// actionCode returns the wire action code (action_base + flag_bits)
// for action a with the given flag bits already shifted into place.
func actionCode(a hinter.Action, flags int) int {
	return actionBases[a] + flags
}
