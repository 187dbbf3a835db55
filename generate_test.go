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
	"bytes"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sdf/testcases"
)

// fixtureOutline turns a test case path into a GlyphOutline.  Fixture
// geometry is already in shape-space units, so the builder scale is 1;
// the nominal scale is recorded for the corner tolerance.
func fixtureOutline(t *testing.T, tc testcases.TestCase) *GlyphOutline {
	t.Helper()

	b := NewShapeBuilder(1, OrientationTrueType)
	b.AppendPath(tc.Path)
	shape, err := b.Build()
	if err != nil {
		t.Fatalf("building %s: %v", tc.Name, err)
	}

	return &GlyphOutline{
		BBox:  shape.BBox(),
		Shape: shape,
		Scale: DefaultScale,
	}
}

// probePixel maps a shape-space probe point to its pixel coordinates.
func probePixel(o *GlyphOutline, rng int, p vec.Vec2) (int, int) {
	i := int(math.Floor(p.X - float64(o.BBox.TL.X) + float64(rng)))
	j := int(math.Floor(float64(o.BBox.TL.Y) + float64(rng) - p.Y))
	return i, j
}

func TestFixtures(t *testing.T) {
	// Every fixture is run under both sign policies; on these shapes
	// the local tangent sign and the ray-cast winding must agree.
	policies := []struct {
		name string
		sign SignPolicy
	}{
		{"raycast", SignRayCast},
		{"nearest", SignNearest},
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			for _, policy := range policies {
				name := category + "_" + tc.Name + "_" + policy.name
				t.Run(name, func(t *testing.T) {
					o := fixtureOutline(t, tc)
					g := Generator{Range: tc.Range, Sign: policy.sign}
					bm := g.SDF(o)

					wantW := int(math.Ceil(float64(o.BBox.Width()))) + 2*tc.Range
					wantH := int(math.Ceil(float64(o.BBox.Height()))) + 2*tc.Range
					if bm.Width != wantW || bm.Height != wantH {
						t.Fatalf("dimensions: got %dx%d, want %dx%d",
							bm.Width, bm.Height, wantW, wantH)
					}

					for _, p := range tc.Inside {
						i, j := probePixel(o, tc.Range, p)
						if v := bm.At(i, j); v <= 128 {
							t.Errorf("probe (%g,%g): got %d, want > 128", p.X, p.Y, v)
						}
					}
					for _, p := range tc.Outside {
						i, j := probePixel(o, tc.Range, p)
						if v := bm.At(i, j); v >= 128 {
							t.Errorf("probe (%g,%g): got %d, want < 128", p.X, p.Y, v)
						}
					}
				})
			}
		}
	}
}

// TestDeterminism renders the same outline twice and requires
// byte-identical output.
func TestDeterminism(t *testing.T) {
	tc := testcases.All["hole"][0]
	o := fixtureOutline(t, tc)
	g := Generator{Range: tc.Range}

	a := g.SDF(o)
	b := g.SDF(o)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two runs produced different bitmaps")
	}

	pa := g.PseudoSDF(o)
	pb := g.PseudoSDF(o)
	if !bytes.Equal(pa.Pix, pb.Pix) {
		t.Error("two pseudo runs produced different bitmaps")
	}
}

// TestPseudoFixtures checks that the pseudo distance field keeps the
// same inside/outside classification as the true field.
func TestPseudoFixtures(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				o := fixtureOutline(t, tc)
				g := Generator{Range: tc.Range}
				bm := g.PseudoSDF(o)

				for _, p := range tc.Inside {
					i, j := probePixel(o, tc.Range, p)
					if v := bm.At(i, j); v <= 128 {
						t.Errorf("probe (%g,%g): got %d, want > 128", p.X, p.Y, v)
					}
				}
				for _, p := range tc.Outside {
					i, j := probePixel(o, tc.Range, p)
					if v := bm.At(i, j); v >= 128 {
						t.Errorf("probe (%g,%g): got %d, want < 128", p.X, p.Y, v)
					}
				}
			})
		}
	}
}

// TestPseudoCorner checks the defining property of the pseudo field:
// outside a corner, the extended segments yield a smaller distance
// than the true Euclidean distance to the corner point.
func TestPseudoCorner(t *testing.T) {
	tc := testcases.All["fill"][0] // square (4,4)..(28,28)
	o := fixtureOutline(t, tc)
	g := Generator{Range: tc.Range}

	plain := g.SDF(o)
	pseudo := g.PseudoSDF(o)

	// diagonal probe outside the bottom-left corner
	i, j := probePixel(o, tc.Range, vec.Vec2{X: 2, Y: 2})
	if pseudo.At(i, j) <= plain.At(i, j) {
		t.Errorf("corner probe: pseudo %d should exceed true %d",
			pseudo.At(i, j), plain.At(i, j))
	}
}

func TestEncode(t *testing.T) {
	const rng = 4

	if got := encode(0, rng); got != 128 {
		t.Errorf("encode(0) = %d, want 128", got)
	}
	if got := encode(rng, rng); got != 255 {
		t.Errorf("encode(+rng) = %d, want 255", got)
	}
	if got := encode(-rng, rng); got != 0 {
		t.Errorf("encode(-rng) = %d, want 0", got)
	}

	// clamping
	if got := encode(100, rng); got != 255 {
		t.Errorf("encode(100) = %d, want 255", got)
	}
	if got := encode(-100, rng); got != 0 {
		t.Errorf("encode(-100) = %d, want 0", got)
	}

	// monotone in the signed distance
	prev := encode(-rng-1, rng)
	for sd := float32(-rng); sd <= rng; sd += 0.125 {
		cur := encode(sd, rng)
		if cur < prev {
			t.Fatalf("encode not monotone at %g: %d < %d", sd, cur, prev)
		}
		prev = cur
	}
}

func TestBitmapGray(t *testing.T) {
	bm := NewBitmap(3, 2)
	bm.Pix[0] = 10
	bm.Pix[5] = 200

	img := bm.Gray()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds: %v", img.Bounds())
	}
	if img.GrayAt(0, 0).Y != 10 || img.GrayAt(2, 1).Y != 200 {
		t.Error("pixel sharing broken")
	}
}
