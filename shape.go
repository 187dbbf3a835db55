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

// Winding reports whether a contour is additive.  A true winding fills
// the enclosed area, a false winding cuts a hole.  For TrueType
// sources the additive orientation is clockwise in the y-up
// convention; for PostScript sources it is counter-clockwise.
type Winding bool

// Additive reports whether the contour fills its interior.
func (w Winding) Additive() bool { return bool(w) }

// Subtractive reports whether the contour cuts a hole.
func (w Winding) Subtractive() bool { return !bool(w) }

// Orientation identifies the fill convention of an outline source.
// TrueType and PostScript outlines wind their outer contours in
// opposite directions, so the interpretation of the shoelace sign and
// of local tangent signs must be parameterized by the source format.
type Orientation int

const (
	// OrientationTrueType marks outlines whose additive contours run
	// clockwise (y up), with the filled side to the right of the
	// direction of travel.
	OrientationTrueType Orientation = iota

	// OrientationPostScript marks outlines whose additive contours run
	// counter-clockwise, with the filled side to the left.
	OrientationPostScript
)

// Contour is a closed, oriented sequence of segments.  Segments
// connect head to tail, and the last segment ends where the first one
// starts.
type Contour struct {
	Segments []Segment
	Winding  Winding
}

// Distance returns the best Distance from p to the contour under the
// corner tie-break rule: the smallest real distance wins, and
// near-ties go to the more perpendicular hit.
func (c *Contour) Distance(p Vector2, tol float32) Distance {
	best := distanceMax
	for _, seg := range c.Segments {
		if d := seg.Distance(p); d.closerThan(best, tol) {
			best = d
		}
	}
	return best
}

// rayCrossings counts the signed crossings of the horizontal ray from
// p towards +x over all segments of the contour.
func (c *Contour) rayCrossings(p Vector2) int {
	n := 0
	for _, seg := range c.Segments {
		n += seg.rayCrossings(p)
	}
	return n
}

// Shape is a glyph outline: an ordered set of closed contours together
// with the fill convention they were built under.  A Shape is
// immutable after construction and owns its geometry outright; it
// keeps no reference to the font it came from.
type Shape struct {
	Contours    []Contour
	Orientation Orientation
}

// BBox returns the bounding box over the control and end points of all
// segments.  Curve bodies never extend past their control polygon, so
// this box covers the whole outline.
func (s *Shape) BBox() BBox {
	var bb BBox
	first := true
	for i := range s.Contours {
		for _, seg := range s.Contours[i].Segments {
			if first {
				p := seg.start()
				bb = BBox{TL: p, BR: p}
				first = false
			}
			seg.grow(&bb)
		}
	}
	return bb
}

// windingNumber accumulates ray crossings over all contours.  The
// result is nonzero for points inside the outline under the nonzero
// rule; its parity gives the even-odd answer.
func (s *Shape) windingNumber(p Vector2) int {
	n := 0
	for i := range s.Contours {
		n += s.Contours[i].rayCrossings(p)
	}
	return n
}

// BBox is an axis-aligned box in the y-up font convention: TL holds
// the minimum x and maximum y, BR the maximum x and minimum y.
type BBox struct {
	TL Vector2
	BR Vector2
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float32 { return b.BR.X - b.TL.X }

// Height returns the vertical extent of the box.
func (b BBox) Height() float32 { return b.TL.Y - b.BR.Y }

// Mul returns the box scaled by s about the origin.
func (b BBox) Mul(s float32) BBox {
	return BBox{TL: b.TL.Mul(s), BR: b.BR.Mul(s)}
}

// add grows the box to cover p.
func (b *BBox) add(p Vector2) {
	if p.X < b.TL.X {
		b.TL.X = p.X
	}
	if p.X > b.BR.X {
		b.BR.X = p.X
	}
	if p.Y > b.TL.Y {
		b.TL.Y = p.Y
	}
	if p.Y < b.BR.Y {
		b.BR.Y = p.Y
	}
}
