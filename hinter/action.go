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

// Action identifies the kind of event the auto-hinter reports through
// the Recorder callback. The bytecode generator maps each Action to a
// wire action code: a per-action base number plus flag bits derived
// from the edges involved (see Recorder).
type Action int

const (
	ActionLink Action = iota
	ActionAnchor
	ActionAdjust
	ActionBlueAnchor
	ActionStem
	ActionBlue
	ActionSerif
	ActionSerifAnchor
	ActionSerifLink1
	ActionSerifLink2
	ActionIPBefore
	ActionIPAfter
	ActionIPOn
	ActionIPBetween
	ActionBound
)

// Dimension selects the hinting axis an action applies to. Only Vert is
// emitted by the bytecode generator; Horz events are ignored.
type Dimension int

const (
	DimHorz Dimension = iota
	DimVert
)

// Event is the full parameter bundle the auto-hinter passes to a
// Recorder for one action. Not all fields are meaningful for every
// Action; see the field docs and the per-action wire formats in
// package bci.
type Event struct {
	Action Action
	Dim    Dimension

	// PointIndex is set for the four ta_ip_* actions: the index, into
	// the glyph's Outline.Points, of the point being interpolated.
	PointIndex int

	// Arg1Edge, Edge2, Edge3 carry the action's one to three edges;
	// which ones are populated depends on Action.
	Arg1Edge *Edge
	Edge2    *Edge
	Edge3    *Edge

	// LowerBound/UpperBound are optional bounding edges used by
	// ActionAdjust, ActionStem, and the serif family.
	LowerBound *Edge
	UpperBound *Edge
}

// Recorder is the callback surface the auto-hinter invokes once per
// action while hinting a glyph at a given style. Implementations
// serialize Events into a per-ppem bytecode record; see
// bci.ActionRecorder.
type Recorder interface {
	Record(ev Event)
}

// Engine is the external auto-hinter collaborator: given a glyph and a
// style, it runs its analysis and reports every action it takes through
// rec. The bytecode generator in package bci is a consumer of this
// interface, not an implementation of it.
type Engine interface {
	Hint(style *Style, glyph *Glyph, ppem int, rec Recorder) error
}
