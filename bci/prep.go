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

// BuildPrep assembles the preprogram for style: it runs once per ppem
// change. When the style has a blue zone marked for alignment
// (BlueZoneAdjustment >= 0), it computes sal_scale from that zone's
// rounded ref value and rescales every vertical width and every blue
// ref/shoot CVT entry by it; otherwise it sets sal_scale to identity
// (0x10000) so bci_cvt_rescale is a no-op wherever it is still CALLed.
func BuildPrep(style *hinter.Style) []byte {
	pa := NewPushAssembler()

	pa.EmitPush([]uint32{sal0x10000}, false, true)
	emitPushFixedOne(pa)
	pa.WriteByte(opWS)

	if style.BlueZoneAdjustment >= 0 && style.BlueZoneAdjustment < len(style.BlueZones) {
		refIdx := style.BlueRefsOffset() + style.BlueZoneAdjustment
		emitComputeScaleFromBlue(pa, refIdx)
		emitRescaleRange(pa, style.VertWidthsOffset(), len(style.VertWidths))
		emitRescaleRange(pa, style.BlueRefsOffset(), len(style.BlueZones))
		emitRescaleRange(pa, style.BlueShootsOffset(), len(style.BlueZones))
	} else {
		pa.EmitPush([]uint32{salScale}, false, true)
		emitPushFixedOne(pa)
		pa.WriteByte(opWS)
	}

	return pa.Bytes()
}

// emitPushFixedOne pushes the 16.16 fixed-point value 0x10000 (1.0),
// which does not fit in a single 16-bit push argument (pushed words are
// sign-extended, so 0x8000 would read as -0x8000): 0x4000 doubled twice.
func emitPushFixedOne(pa *PushAssembler) {
	pa.EmitPush([]uint32{0x4000}, true, true)
	pa.WriteByte(opDUP)
	pa.WriteByte(opADD)
	pa.WriteByte(opDUP)
	pa.WriteByte(opADD)
}

// emitComputeScaleFromBlue computes sal_scale = round(rcvt(refIdx)) *
// 0x10000 / rcvt(refIdx), i.e. the ratio between the pixel-rounded and
// scaled-but-unrounded value of the chosen blue reference.
func emitComputeScaleFromBlue(pa *PushAssembler, refIdx int) {
	pa.EmitPush([]uint32{uint32(refIdx)}, refIdx > 0xFF, true)
	pa.WriteByte(opRCVT)
	pa.WriteByte(opDUP)
	pa.EmitPush([]uint32{32}, false, true)
	pa.WriteByte(opADD)
	pa.WriteByte(opFLOOR)
	pa.EmitPush([]uint32{sal0x10000}, false, true)
	pa.WriteByte(opRS)
	pa.WriteByte(opMUL)
	pa.WriteByte(opSWAP)
	pa.WriteByte(opDIV)
	pa.EmitPush([]uint32{salScale}, false, true)
	pa.WriteByte(opSWAP)
	pa.WriteByte(opWS)
}

// emitRescaleRange CALLs bci_cvt_rescale once per CVT index in
// [start, start+count).
func emitRescaleRange(pa *PushAssembler, start, count int) {
	for i := 0; i < count; i++ {
		idx := start + i
		pa.EmitPush([]uint32{uint32(idx)}, idx > 0xFF, true)
		pa.EmitPush([]uint32{uint32(bciCvtRescale)}, false, true)
		pa.WriteByte(opCALL)
	}
}
