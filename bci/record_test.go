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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecordStoreDedupesAgainstPrevious(t *testing.T) {
	var s RecordStore
	s.Add(8, []byte{0x00, 0x01})
	s.Add(9, []byte{0x00, 0x01}) // identical to previous: dropped
	s.Add(10, []byte{0x00, 0x02})
	s.Add(11, []byte{0x00, 0x01}) // differs from immediately previous: retained

	recs := s.Records()
	want := []HintsRecord{
		{Size: 8, Bytes: []byte{0x00, 0x01}},
		{Size: 10, Bytes: []byte{0x00, 0x02}},
		{Size: 11, Bytes: []byte{0x00, 0x01}},
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitHintsRecordsSingleRecordUnconditional(t *testing.T) {
	pa := NewPushAssembler()
	EmitHintsRecords(pa, []HintsRecord{{Size: 8, Bytes: []byte{0x00, 0x01, 0x00, 0x02}}}, true)

	got := decodeArgs1(t, pa.Bytes())
	// reversed: the record's last pair (2) is pushed first and its first
	// pair (1) ends up on top; decodePush returns values in push order.
	want := []uint32{2, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEmitHintsRecordsChainStructure(t *testing.T) {
	pa := NewPushAssembler()
	records := []HintsRecord{
		{Size: 8, Bytes: []byte{0x00, 0x01}},
		{Size: 12, Bytes: []byte{0x00, 0x02}},
	}
	EmitHintsRecords(pa, records, true)

	buf := pa.Bytes()
	if buf[0] != opMPPEM {
		t.Fatalf("expected chain to start with MPPEM, got %#x", buf[0])
	}
	// PUSHB_1, 12 (next_size), LT, IF
	if buf[1] != opPUSHB1 || buf[2] != 12 || buf[3] != opLT || buf[4] != opIF {
		t.Fatalf("unexpected threshold encoding: % x", buf[1:5])
	}

	eifCount := 0
	elseCount := 0
	for _, b := range buf {
		if b == opEIF {
			eifCount++
		}
		if b == opELSE {
			elseCount++
		}
	}
	if eifCount != 1 || elseCount != 1 {
		t.Fatalf("got %d EIF and %d ELSE, want 1 each", eifCount, elseCount)
	}
}

// decodeArgs1 decodes a buffer holding exactly one push instruction
// (no trailing CALL).
func decodeArgs1(t *testing.T, buf []byte) []uint32 {
	t.Helper()
	vals, n := decodePush(buf)
	if n != len(buf) {
		t.Fatalf("decoded %d bytes, buffer has %d", n, len(buf))
	}
	return vals
}
