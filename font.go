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
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Scale is the nominal glyph height in output pixels.  The effective
// coordinate scale is Scale divided by the font's units per em, so
// that Scale(32) yields a glyph roughly 32 pixels tall.
type Scale float32

// DefaultScale is the scale used by the GlyphOutline convenience
// methods' callers when nothing better is known, and the reference
// point for the corner tie-break tolerance.
const DefaultScale Scale = 32

// effective returns the factor applied to design-space coordinates.
func (s Scale) effective(unitsPerEm int) float32 {
	return float32(s) / float32(unitsPerEm)
}

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// VMetrics holds the font-wide vertical metrics, scaled to output
// pixels.  Ascent is positive, descent is negative (below the
// baseline), following font conventions.
type VMetrics struct {
	Ascent  float32
	Descent float32
	LineGap float32
}

// Font provides glyph outlines from a parsed OpenType or TrueType
// font.  Outlines are constructed eagerly: the shapes returned by
// Outline own their geometry and keep no reference back to the font.
//
// A Font is not safe for concurrent use.
type Font struct {
	font        *sfnt.Font
	buf         sfnt.Buffer
	orientation Orientation
	unitsPerEm  int
}

// NewFont parses font data.  The orientation defaults to the TrueType
// convention (clockwise contours fill); use SetOrientation for fonts
// with PostScript-style outlines.
func NewFont(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFont, err)
	}
	return &Font{
		font:        f,
		orientation: OrientationTrueType,
		unitsPerEm:  int(f.UnitsPerEm()),
	}, nil
}

// SetOrientation selects the fill convention used to interpret contour
// windings.  This must match the font's outline format.
func (f *Font) SetOrientation(o Orientation) {
	f.orientation = o
}

// GlyphCount returns the number of glyphs in the font.
func (f *Font) GlyphCount() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm returns the design-space grid resolution of the font.
func (f *Font) UnitsPerEm() int {
	return f.unitsPerEm
}

// GlyphIndex looks up the glyph for a rune.
func (f *Font) GlyphIndex(r rune) (GlyphID, error) {
	x, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFont, err)
	}
	if x == 0 {
		return 0, fmt.Errorf("%w: no glyph for %q", ErrInvalidFont, r)
	}
	return GlyphID(x), nil
}

// Outline builds the scaled outline of a glyph.  The glyph's path
// events are fed through a ShapeBuilder at the effective scale, and
// the bounding box is derived from the resulting shape.  Glyphs
// without contours (such as the space) yield ErrEmptyOutline.
func (f *Font) Outline(g GlyphID, scale Scale) (*GlyphOutline, error) {
	// Loading at ppem = unitsPerEm makes the sfnt package hand back
	// unhinted design-space coordinates in 26.6 fixed point.
	ppem := fixed.Int26_6(f.unitsPerEm << 6)

	segs, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(g), ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: glyph %d: %s", ErrInvalidFont, g, err)
	}

	eff := scale.effective(f.unitsPerEm)
	b := NewShapeBuilder(eff, f.orientation)
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.MoveTo(fixedPoint(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.LineTo(fixedPoint(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.QuadTo(fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.CubeTo(fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]), fixedPoint(seg.Args[2]))
		default:
			return nil, fmt.Errorf("%w: op %d", ErrUnsupportedSegment, seg.Op)
		}
	}

	shape, err := b.Build()
	if err != nil {
		return nil, err
	}

	outline := &GlyphOutline{
		BBox:  shape.BBox(),
		Shape: shape,
		Scale: scale,
	}

	if adv, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(g), ppem, font.HintingNone); err == nil {
		outline.Advance = float32(adv) / 64 * eff
	}
	return outline, nil
}

// VMetrics returns the font's vertical metrics scaled to output
// pixels.
func (f *Font) VMetrics(scale Scale) (VMetrics, error) {
	ppem := fixed.Int26_6(f.unitsPerEm << 6)
	m, err := f.font.Metrics(&f.buf, ppem, font.HintingNone)
	if err != nil {
		return VMetrics{}, fmt.Errorf("%w: %s", ErrInvalidFont, err)
	}

	factor := scale.effective(f.unitsPerEm)
	ascent := float32(m.Ascent) / 64
	descent := float32(m.Descent) / 64
	height := float32(m.Height) / 64
	return VMetrics{
		Ascent:  ascent * factor,
		Descent: -descent * factor,
		LineGap: (height - ascent - descent) * factor,
	}, nil
}

// fixedPoint converts a 26.6 fixed-point provider coordinate to shape
// space.  The sfnt package uses a y-down coordinate system, so y is
// negated to restore the y-up font convention.
func fixedPoint(p fixed.Point26_6) Vector2 {
	return Vector2{
		X: float32(p.X) / 64,
		Y: -float32(p.Y) / 64,
	}
}

// GlyphOutline is a glyph's shape prepared for distance field
// generation: the scaled contours, their bounding box, and the scale
// they were built at.
type GlyphOutline struct {
	BBox    BBox
	Shape   *Shape
	Scale   Scale
	Advance float32 // horizontal advance width, in output pixels
}

// Width returns the horizontal extent of the outline.
func (o *GlyphOutline) Width() float32 { return o.BBox.Width() }

// Height returns the vertical extent of the outline.
func (o *GlyphOutline) Height() float32 { return o.BBox.Height() }

// SDF generates a signed distance field for the outline using a
// default Generator with the given range.
func (o *GlyphOutline) SDF(rng int) *Bitmap {
	g := Generator{Range: rng}
	return g.SDF(o)
}

// PseudoSDF generates a pseudo signed distance field for the outline
// using a default Generator with the given range.
func (o *GlyphOutline) PseudoSDF(rng int) *Bitmap {
	g := Generator{Range: rng}
	return g.PseudoSDF(o)
}
