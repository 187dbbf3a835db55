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
	"github.com/chewxy/math32"
)

// FillRule selects how accumulated ray crossings decide whether a
// point is inside the outline.
type FillRule int

const (
	// FillNonZero treats a point as inside when the signed crossing
	// count is nonzero.  This is the rule font rasterisers use and the
	// default.
	FillNonZero FillRule = iota

	// FillEvenOdd treats a point as inside when the crossing count is
	// odd.
	FillEvenOdd
)

// SignPolicy selects how the inside/outside sign of a pixel is
// determined.
type SignPolicy int

const (
	// SignRayCast casts a horizontal ray from the probe point and
	// accumulates crossings over all contours.  The result is
	// independent of which segment happens to be nearest, which makes
	// it robust near contour intersections.  This is the default.
	SignRayCast SignPolicy = iota

	// SignNearest takes the local tangent sign of the winning contour.
	// This matches the nearest-segment policy of simple distance field
	// generators; it can misjudge pixels near self-intersections.
	SignNearest
)

// Generator produces signed distance field bitmaps from glyph
// outlines.  The zero value with a positive Range is ready to use, and
// a Generator may be reused for any number of outlines.
type Generator struct {
	// Range is the pixel margin added around the glyph bounding box.
	// It doubles as the saturation radius: pixels farther than Range
	// from the outline clamp to the extreme 8-bit values.
	// Must be positive.
	Range int

	// Rule is the fill rule applied by the SignRayCast policy.
	Rule FillRule

	// Sign selects the inside/outside test.
	Sign SignPolicy
}

// SDF generates a signed distance field: each pixel holds the true
// Euclidean distance to the nearest outline point, signed, clamped to
// [-Range, +Range] and mapped to [0, 255] with 128 on the contour.
func (g *Generator) SDF(o *GlyphOutline) *Bitmap {
	return g.generate(o, false)
}

// PseudoSDF generates a pseudo signed distance field.  The nearest
// segment is still chosen by true distance, but the emitted value uses
// the segment extended beyond its endpoints, which removes the creases
// a true distance field shows where segments join at an angle.
func (g *Generator) PseudoSDF(o *GlyphOutline) *Bitmap {
	return g.generate(o, true)
}

func (g *Generator) generate(o *GlyphOutline, pseudo bool) *Bitmap {
	width := int(math32.Ceil(o.BBox.Width())) + 2*g.Range
	height := int(math32.Ceil(o.BBox.Height())) + 2*g.Range
	bm := NewBitmap(width, height)

	// The corner tie-break threshold is expressed in shape-space units
	// and so must follow the outline's scale.
	tol := cornerTolerance * float32(o.Scale) / float32(DefaultScale)

	rng := float32(g.Range)
	for j := range height {
		// Row 0 is the top of the glyph; shape space has y growing
		// upwards.  Pixels are probed at their centres.
		py := o.BBox.TL.Y + rng - (float32(j) + 0.5)
		row := bm.Pix[j*width : (j+1)*width]
		for i := range width {
			px := o.BBox.TL.X - rng + float32(i) + 0.5
			p := Vector2{X: px, Y: py}

			sd := g.signedAt(o.Shape, p, tol, pseudo)
			if math32.IsNaN(sd) {
				numericFailure("signed distance", "point", p)
				sd = -math32.MaxFloat32
			}
			row[i] = encode(sd, rng)
		}
	}
	return bm
}

// signedAt reduces the per-contour distances at p to a single signed
// value.
func (g *Generator) signedAt(s *Shape, p Vector2, tol float32, pseudo bool) float32 {
	best := distanceMax
	for i := range s.Contours {
		if d := s.Contours[i].Distance(p, tol); d.closerThan(best, tol) {
			best = d
		}
	}

	if g.Sign == SignNearest {
		sd := best.RealSigned()
		if pseudo {
			sd = best.PseudoSigned()
		}
		if s.Orientation == OrientationPostScript {
			// PostScript outlines keep the filled side on the left of
			// the direction of travel, opposite to the cross product
			// convention used by the distance queries.
			sd = -sd
		}
		return sd
	}

	mag := best.Real
	if pseudo {
		mag = best.Extended
	}

	w := s.windingNumber(p)
	inside := w != 0
	if g.Rule == FillEvenOdd {
		inside = w&1 != 0
	}
	if inside {
		return mag
	}
	return -mag
}

// encode clamps a signed distance to [-rng, +rng] and maps it to an
// 8-bit gray value, 0 for deep outside, 255 for deep inside and 128 on
// the contour.
func encode(sd, rng float32) byte {
	if sd > rng {
		sd = rng
	} else if sd < -rng {
		sd = -rng
	}
	return byte(math32.Floor(127.5*(sd/rng+1) + 0.5))
}

// Numerical tolerances for the generator.
const (
	// cornerTolerance is the real-distance window within which two
	// segments count as equidistant and the tie-break falls back to
	// orthogonality.  The value is in shape-space units at
	// DefaultScale and is rescaled for other scales.
	cornerTolerance = 0.01
)
