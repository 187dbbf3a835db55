// seehuhn.de/go/sdf - signed distance fields for font glyphs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package sdf

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ShapeBuilder assembles a Shape from a stream of path events in
// design-space coordinates.  Coordinates are multiplied by the
// builder's scale as they arrive.  A builder is single-use: call
// Build once, then discard it.
type ShapeBuilder struct {
	scale       float32
	orientation Orientation

	contours []Contour
	segments []Segment // current contour, reused between contours
	start    Vector2   // first point of the current contour
	current  Vector2
	open     bool
}

// NewShapeBuilder returns a builder that scales incoming coordinates
// by scale and derives contour windings under the given orientation
// convention.
func NewShapeBuilder(scale float32, o Orientation) *ShapeBuilder {
	return &ShapeBuilder{
		scale:       scale,
		orientation: o,
	}
}

// MoveTo starts a new contour at p.  Any contour in progress is closed
// first.
func (b *ShapeBuilder) MoveTo(p Vector2) {
	b.finalize()
	b.start = p.Mul(b.scale)
	b.current = b.start
	b.open = true
}

// LineTo appends a straight segment from the current point to p.
func (b *ShapeBuilder) LineTo(p Vector2) {
	q := p.Mul(b.scale)
	b.segments = append(b.segments, Line{From: b.current, To: q})
	b.current = q
}

// QuadTo appends a quadratic Bézier segment with control point ctrl
// ending at p.
func (b *ShapeBuilder) QuadTo(ctrl, p Vector2) {
	c := ctrl.Mul(b.scale)
	q := p.Mul(b.scale)
	b.segments = append(b.segments, Quad{From: b.current, Ctrl: c, To: q})
	b.current = q
}

// CubeTo appends a cubic Bézier segment with control points ctrl1 and
// ctrl2 ending at p.
func (b *ShapeBuilder) CubeTo(ctrl1, ctrl2, p Vector2) {
	c1 := ctrl1.Mul(b.scale)
	c2 := ctrl2.Mul(b.scale)
	q := p.Mul(b.scale)
	b.segments = append(b.segments, Cubic{From: b.current, Ctrl1: c1, Ctrl2: c2, To: q})
	b.current = q
}

// Close finishes the current contour, adding a straight segment back
// to the contour start if the path did not return there on its own.
func (b *ShapeBuilder) Close() {
	b.finalize()
}

// finalize closes the contour in progress and derives its winding from
// the shoelace sum.  Contours without segments are dropped.
func (b *ShapeBuilder) finalize() {
	if !b.open {
		return
	}
	b.open = false

	if len(b.segments) == 0 {
		return
	}
	if b.current != b.start {
		b.segments = append(b.segments, Line{From: b.current, To: b.start})
	}

	var sum float32
	for _, seg := range b.segments {
		sum += seg.shoelace()
	}
	clockwise := sum > 0
	additive := clockwise
	if b.orientation == OrientationPostScript {
		additive = !clockwise
	}

	segs := make([]Segment, len(b.segments))
	copy(segs, b.segments)
	b.contours = append(b.contours, Contour{
		Segments: segs,
		Winding:  Winding(additive),
	})
	b.segments = b.segments[:0]
}

// AppendPath feeds a seehuhn.de/go/geom path into the builder.
// Commands index into the path's flat coordinate array.
func (b *ShapeBuilder) AppendPath(p *path.Data) {
	pt := func(v vec.Vec2) Vector2 {
		return Vector2{X: float32(v.X), Y: float32(v.Y)}
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			b.MoveTo(pt(p.Coords[coordIdx]))
			coordIdx++
		case path.CmdLineTo:
			b.LineTo(pt(p.Coords[coordIdx]))
			coordIdx++
		case path.CmdQuadTo:
			b.QuadTo(pt(p.Coords[coordIdx]), pt(p.Coords[coordIdx+1]))
			coordIdx += 2
		case path.CmdCubeTo:
			b.CubeTo(pt(p.Coords[coordIdx]), pt(p.Coords[coordIdx+1]), pt(p.Coords[coordIdx+2]))
			coordIdx += 3
		case path.CmdClose:
			b.Close()
		}
	}
}

// Build closes any open contour and returns the finished shape.
// Outlines with no contours at all yield ErrEmptyOutline.
func (b *ShapeBuilder) Build() (*Shape, error) {
	b.finalize()
	if len(b.contours) == 0 {
		return nil, ErrEmptyOutline
	}
	s := &Shape{
		Contours:    b.contours,
		Orientation: b.orientation,
	}
	b.contours = nil
	return s, nil
}
