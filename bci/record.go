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

import "bytes"

// HintsRecord is one ppem's retained byte sequence (either an action
// record or a point-hints record), keyed by the ppem it was produced
// at. Bytes holds pairs of big-endian u16 arguments, not yet encoded
// as push instructions.
type HintsRecord struct {
	Size  int
	Bytes []byte
}

// RecordStore accumulates the distinct hints records of a ppem sweep,
// deduplicating against the immediately previous retained record
// (sweep monotonicity makes neighboring equality common, so this is
// cheaper than comparing against every prior record and catches the
// vast majority of repeats).
type RecordStore struct {
	records []HintsRecord
}

// Add retains (size, buf) unless it is byte-identical to the last
// retained record.
func (s *RecordStore) Add(size int, buf []byte) {
	if n := len(s.records); n > 0 && bytes.Equal(s.records[n-1].Bytes, buf) {
		return
	}
	cp := append([]byte(nil), buf...)
	s.records = append(s.records, HintsRecord{Size: size, Bytes: cp})
}

// Records returns the retained records, in ascending ppem order.
func (s *RecordStore) Records() []HintsRecord { return s.records }

// emitRecordArgs pushes one record's arguments, re-encoded in reverse
// so that the first byte pair of buf ends up on top of the stack.
// need_words is forced when any argument's high byte is non-zero.
func emitRecordArgs(pa *PushAssembler, buf []byte, optimize bool) {
	needWords := false
	for i := 0; i < len(buf); i += 2 {
		if buf[i] != 0 {
			needWords = true
			break
		}
	}

	n := len(buf) / 2
	args := make([]uint32, n)
	for i := 0; i < n; i++ {
		hi := uint32(buf[2*i])
		lo := uint32(buf[2*i+1])
		// reversed: the record's last argument is pushed first.
		args[n-1-i] = hi<<8 | lo
	}

	pa.EmitPush(args, needWords, optimize)
}

// EmitHintsRecords appends the size-gated MPPEM/IF/ELSE/EIF chain for
// records (ascending ppem order) to pa. A single record needs no
// conditional: its arguments are pushed unconditionally.
func EmitHintsRecords(pa *PushAssembler, records []HintsRecord, optimize bool) {
	if len(records) == 0 {
		return
	}
	if len(records) == 1 {
		emitRecordArgs(pa, records[0].Bytes, optimize)
		return
	}

	for i := 0; i < len(records)-1; i++ {
		nextSize := records[i+1].Size
		pa.WriteByte(opMPPEM)
		pa.EmitPush([]uint32{uint32(nextSize)}, nextSize > 0xFF, true)
		pa.WriteByte(opLT)
		pa.WriteByte(opIF)
		emitRecordArgs(pa, records[i].Bytes, optimize)
		pa.WriteByte(opELSE)
	}
	emitRecordArgs(pa, records[len(records)-1].Bytes, optimize)
	for i := 0; i < len(records)-1; i++ {
		pa.WriteByte(opEIF)
	}
}
