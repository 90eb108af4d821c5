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

// NoBlock is the sentinel used in place of a PushAssembler byte offset
// when a push block is absent (e.g. an empty point-hints record
// produced no block at all).
const NoBlock = -1

// PushAssembler appends PUSH instructions to a byte buffer, choosing
// among PUSHB_n, PUSHW_n, NPUSHB, and NPUSHW, and can later coalesce
// adjacent NPUSHB blocks that feed a single CALL.
type PushAssembler struct {
	buf []byte
}

// NewPushAssembler returns an assembler with an empty buffer.
func NewPushAssembler() *PushAssembler {
	return &PushAssembler{}
}

// Bytes returns the bytes written so far.
func (pa *PushAssembler) Bytes() []byte { return pa.buf }

// Len returns the number of bytes written so far; useful for recording
// a block-start position to pass to OptimizePush.
func (pa *PushAssembler) Len() int { return len(pa.buf) }

// Reset empties the buffer so the assembler can be reused for the next
// glyph or the next ppem in a sweep.
func (pa *PushAssembler) Reset() { pa.buf = pa.buf[:0] }

// WriteByte appends a single raw byte (an opcode not produced by
// EmitPush, such as CALL).
func (pa *PushAssembler) WriteByte(b byte) { pa.buf = append(pa.buf, b) }

// WriteBytes appends raw bytes verbatim.
func (pa *PushAssembler) WriteBytes(b []byte) { pa.buf = append(pa.buf, b...) }

// EmitPush splits args into runs of at most 255 values and appends one
// PUSH instruction per run.
//
// needWords must be set by the caller if any value in args exceeds
// 0xFF; values must never exceed 0xFFFF. When optimize is set, runs of
// length 1..8 use the short PUSHB_n/PUSHW_n forms instead of
// NPUSHB/NPUSHW; when it is clear, NPUSHB/NPUSHW are always used, which
// is what lets OptimizePush later recognize and coalesce the blocks.
func (pa *PushAssembler) EmitPush(args []uint32, needWords, optimize bool) {
	for i := 0; i < len(args); i += maxPushRun {
		end := i + maxPushRun
		if end > len(args) {
			end = len(args)
		}
		run := args[i:end]
		pa.emitRun(run, needWords, optimize)
	}
}

func (pa *PushAssembler) emitRun(run []uint32, needWords, optimize bool) {
	n := len(run)
	if needWords {
		if optimize && n >= 1 && n <= maxShortPush {
			pa.buf = append(pa.buf, byte(opPUSHW1+n-1))
		} else {
			pa.buf = append(pa.buf, opNPUSHW, byte(n))
		}
		for _, v := range run {
			pa.buf = append(pa.buf, byte(v>>8), byte(v))
		}
	} else {
		if optimize && n >= 1 && n <= maxShortPush {
			pa.buf = append(pa.buf, byte(opPUSHB1+n-1))
		} else {
			pa.buf = append(pa.buf, opNPUSHB, byte(n))
		}
		for _, v := range run {
			pa.buf = append(pa.buf, byte(v))
		}
	}
}

// OptimizePush coalesces up to three NPUSHB blocks, recorded at byte
// offsets pos (use NoBlock for a missing block), that are immediately
// followed by the CALL they feed, into one or two byte push blocks and
// a single CALL; a merged block of at most eight values uses the short
// PUSHB_n form, a longer one NPUSHB. It assumes pa.buf ends with
// exactly that CALL.
//
// The merge only fires when every recorded block is an NPUSHB (not
// NPUSHW) and the combined size fits in two NPUSHB blocks; otherwise
// the buffer is left unchanged.
func (pa *PushAssembler) OptimizePush(pos [3]int) {
	buf := pa.buf

	for _, p := range pos {
		if p == NoBlock {
			continue
		}
		if buf[p] == opNPUSHW {
			return
		}
	}

	// an empty point-hints record leaves pos[0] == pos[1]; collapse to
	// two blocks so the loop below always has pos[0] and pos[1] valid.
	if pos[0] == pos[1] {
		pos[1] = pos[2]
		pos[2] = NoBlock
	}

	size0 := int(buf[pos[0]+1])
	size1 := int(buf[pos[1]+1])
	size2 := 0
	if pos[2] != NoBlock {
		size2 = int(buf[pos[2]+1])
	}
	sum := size0 + size1 + size2

	if sum > 2*0xFF {
		return // would need three NPUSHB; not worth it
	}
	if size2 == 0 && sum > 0xFF {
		return // would still need two NPUSHB; no gain
	}

	var newSize1, newSize2 int
	if sum > 0xFF {
		newSize1 = 0xFF
		newSize2 = sum - 0xFF
	} else {
		newSize1 = sum
	}

	blockStarts := []int{pos[0], pos[1]}
	if pos[2] != NoBlock {
		blockStarts = append(blockStarts, pos[2])
	}

	out := make([]byte, 0, sum+6)
	p := pos[0]
	blockIdx := 0

	emitBlock := func(size int) {
		if size <= maxShortPush {
			out = append(out, byte(opPUSHB1+size-1))
		} else {
			out = append(out, opNPUSHB, byte(size))
		}
		for i := 0; i < size; i++ {
			if blockIdx < len(blockStarts) && p == blockStarts[blockIdx] {
				blockIdx++
				p += 2 // skip the NPUSHB opcode and its size byte
			}
			out = append(out, buf[p])
			p++
		}
	}

	emitBlock(newSize1)
	if newSize2 > 0 {
		emitBlock(newSize2)
	}
	out = append(out, opCALL)

	pa.buf = append(pa.buf[:pos[0]], out...)
}
