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

package hinter

import "errors"

// ParseControlScript would parse the textual control-instruction DSL
// (a per-glyph, per-ppem shift script) into a sorted Control stream.
// That parser is an external collaborator this core never implements;
// callers needing one must supply their own ControlCursor.
func ParseControlScript(script string) ([]Control, error) {
	return nil, errors.New("hinter: control script parsing is out of scope of this package")
}

// ControlType distinguishes the control-instruction kinds the delta
// emitter understands. Only the two IUP-relative delta exception types
// are consumed by package bci; the textual control-instruction parser
// that produces the full set is an external collaborator.
type ControlType int

const (
	ControlDeltaBeforeIUP ControlType = iota
	ControlDeltaAfterIUP
)

// Control is one parsed control instruction: a request to shift a
// single point by a fractional-pixel amount at a given ppem.
//
// XShift and YShift are signed eighths of a pixel in the range [-8, 8],
// excluding 0; a zero value means "no shift on this axis".
type Control struct {
	Type     ControlType
	FontIdx  int
	GlyphIdx int
	PointIdx int
	Ppem     int
	XShift   int
	YShift   int
}

// ControlCursor walks a stream of Control records that is globally
// sorted by (FontIdx, GlyphIdx, Ppem, PointIdx). The delta-exceptions
// emitter drains the cursor while the head record matches the glyph it
// is currently processing.
type ControlCursor interface {
	// Peek returns the record at the cursor without consuming it, and
	// false once the stream is exhausted.
	Peek() (Control, bool)
	// Advance consumes the record most recently returned by Peek.
	Advance()
}
