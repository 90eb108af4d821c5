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

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt/funit"
)

// PointFlags records per-point properties produced by the outline
// analysis.  Only the bits the bytecode generator needs to inspect are
// kept here.
type PointFlags uint8

const (
	// FlagWeakInterpolation marks a point that the rasterizer's IUP
	// logic interpolates implicitly; such points never need an
	// explicit interpolation instruction.
	FlagWeakInterpolation PointFlags = 1 << iota
)

// Point is a single outline vertex, indexed the same way as the glyf
// table's point numbering (phantom points excluded).
type Point struct {
	Pos   vec.Vec2
	Y     funit.Int16
	Flags PointFlags
}

// Strong reports whether p takes part in explicit interpolation
// (i.e. it is not flagged for weak/IUP interpolation).
func (p *Point) Strong() bool {
	return p.Flags&FlagWeakInterpolation == 0
}

// EdgeFlags are carried by an Edge and influence the function number
// used to encode actions referencing it.
type EdgeFlags uint8

const (
	// EdgeSerif marks an edge that is the foot of a serif.
	EdgeSerif EdgeFlags = 1 << iota
	// EdgeRound marks an edge bounding a round stem.
	EdgeRound
)

// Segment is a contiguous run of points along a contour.
//
// If First > Last the segment wraps around the end of its contour (the
// run continues from First through the contour's last point and picks
// up again at the contour's first point through Last). At most one
// wrap-around segment occurs per contour.
type Segment struct {
	First int
	Last  int

	// Contour is the index, into the glyph's Outline.Contours, of the
	// contour this segment belongs to.
	Contour int

	// Next links the segments of one edge into a circular list,
	// starting and ending at that edge's First segment.
	Next *Segment

	// index is the segment's position within its glyph's segment list,
	// as assigned by SetIndex; it mirrors seg - segments in the original
	// analysis.
	index int
}

// Wraps reports whether the segment wraps around its contour.
func (s *Segment) Wraps() bool { return s.First > s.Last }

// Index returns the segment's position within its glyph's segment
// list, as assigned by SetIndex.
func (s *Segment) Index() int { return s.index }

// SetIndex records seg's position within its glyph's segment list;
// the bytecode generator calls this once while building that list, so
// that later Edge/Segment references can be serialized by position.
func (s *Segment) SetIndex(i int) { s.index = i }

// Edge groups one or more collinear segments of the vertical axis.
type Edge struct {
	First *Segment
	Flags EdgeFlags

	// BestBlueIdx/BestBlueIsShoot identify the blue zone this edge was
	// aligned to, if any; BestBlueIdx is only meaningful when HasBlue
	// is set.
	HasBlue       bool
	BestBlueIdx   int
	BestBlueIsShoot bool
}

// Outline is the minimal description of a glyph's point geometry that
// the bytecode generator needs: contour boundaries (as inclusive end
// point indices, FreeType-style) and the points themselves.
type Outline struct {
	Contours []int // last point index of each contour
	Points   []Point
}

// NumPoints returns the number of points on the outline.
func (o *Outline) NumPoints() int { return len(o.Points) }

// ContourStart returns the index of the first point of contour n.
func (o *Outline) ContourStart(n int) int {
	if n == 0 {
		return 0
	}
	return o.Contours[n-1] + 1
}

// ContourOf returns the index of the contour containing point p.
func (o *Outline) ContourOf(p int) int {
	for n, end := range o.Contours {
		if p <= end {
			return n
		}
	}
	return len(o.Contours) - 1
}

// Glyph is the analysis input for one glyph at one style.
type Glyph struct {
	Index   int
	Outline Outline

	// NumComponents is nonzero for composite glyphs.
	NumComponents int

	// PointSums holds cumulative subglyph point counts, including one
	// synthetic phantom point per subglyph; see PointIndexRemap.
	PointSums []int

	// Subglyphs describes each component of a composite glyph, in
	// order; empty for simple glyphs.
	Subglyphs []Subglyph
}

// Subglyph describes one component of a composite glyph.
type Subglyph struct {
	NumContours int
	UsesXYArgs  bool
	YOffset     int
}
