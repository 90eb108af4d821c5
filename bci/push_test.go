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
)

// decodePush parses a single push instruction and returns its values
// and the number of bytes consumed; it is the inverse of emitRun.
func decodePush(b []byte) (args []uint32, consumed int) {
	op := b[0]
	switch {
	case op == opNPUSHB:
		n := int(b[1])
		for i := 0; i < n; i++ {
			args = append(args, uint32(b[2+i]))
		}
		return args, 2 + n
	case op == opNPUSHW:
		n := int(b[1])
		for i := 0; i < n; i++ {
			hi := uint32(b[2+2*i])
			lo := uint32(b[2+2*i+1])
			args = append(args, hi<<8|lo)
		}
		return args, 2 + 2*n
	case op >= opPUSHB1 && op <= opPUSHB1+7:
		n := int(op-opPUSHB1) + 1
		for i := 0; i < n; i++ {
			args = append(args, uint32(b[1+i]))
		}
		return args, 1 + n
	case op >= opPUSHW1 && op <= opPUSHW1+7:
		n := int(op-opPUSHW1) + 1
		for i := 0; i < n; i++ {
			hi := uint32(b[1+2*i])
			lo := uint32(b[1+2*i+1])
			args = append(args, hi<<8|lo)
		}
		return args, 1 + 2*n
	}
	panic("not a push opcode")
}

func TestEmitPushRoundTrip(t *testing.T) {
	cases := []struct {
		name       string
		args       []uint32
		needWords  bool
		optimize   bool
	}{
		{"byte-short-run", []uint32{1, 2, 3}, false, true},
		{"byte-forced-long", []uint32{1, 2, 3}, false, false},
		{"byte-9-values", []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9}, false, true},
		{"word-short-run", []uint32{0x100, 0x200}, true, true},
		{"word-forced-long", []uint32{0x100, 0x200}, true, false},
		{"over-255", makeRange(300), false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pa := NewPushAssembler()
			pa.EmitPush(c.args, c.needWords, c.optimize)

			var got []uint32
			buf := pa.Bytes()
			for len(buf) > 0 {
				vals, n := decodePush(buf)
				got = append(got, vals...)
				buf = buf[n:]
			}
			if len(got) != len(c.args) {
				t.Fatalf("got %d values, want %d", len(got), len(c.args))
			}
			for i := range got {
				if got[i] != c.args[i] {
					t.Fatalf("value %d: got %d, want %d", i, got[i], c.args[i])
				}
			}
		})
	}
}

func TestEmitPushShortFormChoice(t *testing.T) {
	pa := NewPushAssembler()
	pa.EmitPush([]uint32{1, 2, 3}, false, true)
	if pa.Bytes()[0] != opPUSHB1+2 {
		t.Fatalf("expected PUSHB_3 short form, got opcode %#x", pa.Bytes()[0])
	}

	pa2 := NewPushAssembler()
	pa2.EmitPush([]uint32{1, 2, 3}, false, false)
	if pa2.Bytes()[0] != opNPUSHB {
		t.Fatalf("expected NPUSHB when optimize is false, got opcode %#x", pa2.Bytes()[0])
	}
}

func makeRange(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i % 256)
	}
	return out
}

func TestOptimizePushMergesTwoBlocks(t *testing.T) {
	pa := NewPushAssembler()
	pos0 := pa.Len()
	pa.EmitPush([]uint32{10, 20}, false, false)
	pos1 := pa.Len()
	pa.EmitPush([]uint32{30, 40, 50}, false, false)
	pa.WriteByte(opCALL)

	pa.OptimizePush([3]int{pos0, pos1, NoBlock})

	buf := pa.Bytes()
	if buf[0] != opPUSHB1+4 {
		t.Fatalf("expected a single PUSHB_5, got % x", buf)
	}
	want := []byte{opPUSHB1 + 4, 10, 20, 30, 40, 50, opCALL}
	if len(buf) != len(want) {
		t.Fatalf("got %d bytes, want %d: % x", len(buf), len(want), buf)
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: got %#x, want %#x", i, buf[i], want[i])
		}
	}
}

func TestOptimizePushCollapsesMissingMiddleBlock(t *testing.T) {
	pa := NewPushAssembler()
	pos0 := pa.Len()
	pos1 := pa.Len() // point-hints block absent: pos[0] == pos[1]
	pa.EmitPush([]uint32{1, 2, 3}, false, false)
	pos2 := pa.Len()
	pa.EmitPush([]uint32{4, 5}, false, false)
	pa.WriteByte(opCALL)

	pa.OptimizePush([3]int{pos0, pos1, pos2})

	buf := pa.Bytes()
	want := []byte{opPUSHB1 + 4, 1, 2, 3, 4, 5, opCALL}
	if len(buf) != len(want) {
		t.Fatalf("got % x, want % x", buf, want)
	}
}

func TestOptimizePushSkipsNPUSHW(t *testing.T) {
	pa := NewPushAssembler()
	pos0 := pa.Len()
	pa.EmitPush([]uint32{0x100, 0x200}, true, false)
	pos1 := pa.Len()
	pa.EmitPush([]uint32{1, 2}, false, false)
	pa.WriteByte(opCALL)
	before := append([]byte(nil), pa.Bytes()...)

	pa.OptimizePush([3]int{pos0, pos1, NoBlock})

	if string(pa.Bytes()) != string(before) {
		t.Fatalf("buffer should be unchanged when a block is NPUSHW")
	}
}

func TestOptimizePushGivesUpWhenTooLarge(t *testing.T) {
	pa := NewPushAssembler()
	pos0 := pa.Len()
	pa.EmitPush(makeRange(255), false, false)
	pos1 := pa.Len()
	pa.EmitPush(makeRange(255), false, false)
	pos2 := pa.Len()
	pa.EmitPush(makeRange(10), false, false)
	pa.WriteByte(opCALL)
	before := append([]byte(nil), pa.Bytes()...)

	pa.OptimizePush([3]int{pos0, pos1, pos2})

	if string(pa.Bytes()) != string(before) {
		t.Fatalf("sum of 520 bytes needs three NPUSHB blocks; buffer should be unchanged")
	}
}
