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
	"log/slog"

	"github.com/chewxy/math32"
)

// Segment is one piece of a contour: a straight line, a quadratic
// Bézier or a cubic Bézier.  Implementations are restricted to this
// package.
type Segment interface {
	// Distance measures the relation between p and the segment.
	Distance(p Vector2) Distance

	// start and end are the segment endpoints.  Within a contour,
	// segments connect head to tail and the last end meets the first
	// start.
	start() Vector2
	end() Vector2

	// shoelace is the segment's contribution to the contour's signed
	// area, start × end under the clockwise-positive cross.
	shoelace() float32

	// grow extends the bounding box to cover all control and end
	// points of the segment.
	grow(bb *BBox)

	// rayCrossings counts the signed crossings of the horizontal ray
	// from p towards +x, +1 for a downward crossing and -1 for an
	// upward one.  Crossings exactly at a contour join are counted
	// once; see countCrossing for the boundary rule.
	rayCrossings(p Vector2) int
}

// Line is a straight segment.
type Line struct {
	From, To Vector2
}

// Quad is a quadratic Bézier segment with one control point.
type Quad struct {
	From, Ctrl, To Vector2
}

// Cubic is a cubic Bézier segment with two control points.
type Cubic struct {
	From, Ctrl1, Ctrl2, To Vector2
}

// Distance projects p onto the line and clamps the parameter to the
// segment for the real distance, keeping the unclamped projection for
// the extended distance.
func (l Line) Distance(p Vector2) Distance {
	d := l.To.Sub(l.From)
	dd := d.Dot(d)
	if dd == 0 {
		// degenerate segment, collapse to a point
		dist := p.Sub(l.From).Length()
		return Distance{Real: dist, Extended: dist}
	}

	tExt := p.Sub(l.From).Dot(d) / dd
	tReal := clamp01(tExt)

	closest := l.From.Add(d.Mul(tReal))
	extended := l.From.Add(d.Mul(tExt))

	res := Distance{
		Real:     p.Sub(closest).Length(),
		Extended: p.Sub(extended).Length(),
	}

	pc := p.Sub(closest)
	if !pc.IsZero() {
		ortho := d.Normalize().Cross(pc.Normalize())
		res.Sign = signum(ortho)
		res.Orthogonality = math32.Abs(ortho)
	}
	return res
}

func (l Line) start() Vector2    { return l.From }
func (l Line) end() Vector2      { return l.To }
func (l Line) shoelace() float32 { return l.From.Cross(l.To) }

func (l Line) grow(bb *BBox) {
	bb.add(l.From)
	bb.add(l.To)
}

func (l Line) rayCrossings(p Vector2) int {
	y0, y1 := l.From.Y, l.To.Y
	var dir int
	switch {
	case y0 <= p.Y && p.Y < y1:
		dir = -1 // upward segment
	case y1 <= p.Y && p.Y < y0:
		dir = 1 // downward segment
	default:
		return 0 // outside the span, or horizontal
	}
	t := (p.Y - y0) / (y1 - y0)
	x := l.From.X + t*(l.To.X-l.From.X)
	if x > p.X {
		return dir
	}
	return 0
}

// pointAt evaluates the curve at parameter t.
func (q Quad) pointAt(t float32) Vector2 {
	// B(t) = P0 + 2t(P1-P0) + t²(P2-2P1+P0)
	v1 := q.Ctrl.Sub(q.From)
	v2 := q.To.Sub(q.Ctrl.Mul(2)).Add(q.From)
	return q.From.Add(v1.Mul(2 * t)).Add(v2.Mul(t * t))
}

// derivativeAt returns the curve tangent B'(t).
func (q Quad) derivativeAt(t float32) Vector2 {
	v1 := q.Ctrl.Sub(q.From)
	v2 := q.To.Sub(q.Ctrl.Mul(2)).Add(q.From)
	return v2.Mul(2 * t).Add(v1.Mul(2))
}

// Distance finds the closest point on the curve analytically.  The
// stationary points of the squared distance are the real roots of a
// cubic in the curve parameter; the root with the smallest clamped
// distance wins, and its unclamped value yields the extended distance.
func (q Quad) Distance(p Vector2) Distance {
	v := p.Sub(q.From)
	v1 := q.Ctrl.Sub(q.From)
	v2 := q.To.Sub(q.Ctrl.Mul(2)).Add(q.From)

	// (v2·v2)t³ + 3(v1·v2)t² + (2 v1·v1 − v2·v)t − v1·v = 0
	a := v2.Dot(v2)
	b := 3 * v1.Dot(v2)
	c := 2*v1.Dot(v1) - v2.Dot(v)
	d := -v1.Dot(v)

	roots, n := cubicRoots(a, b, c, d)

	var tExt, tReal float32
	var closest Vector2
	best2 := float32(math32.MaxFloat32)
	found := false

	for _, r := range roots[:n] {
		if math32.IsNaN(r) {
			continue
		}
		t := clamp01(r)
		bez := v2.Mul(t * t).Add(v1.Mul(2 * t)).Add(q.From)
		dist2 := bez.Sub(p).LengthSquared()
		if dist2 < best2 {
			tExt = r
			tReal = t
			closest = bez
			best2 = dist2
			found = true
		}
	}

	if !found {
		if v1.IsZero() && v2.IsZero() {
			// degenerate segment, collapse to a point
			dist := p.Sub(q.From).Length()
			return Distance{Real: dist, Extended: dist}
		}
		numericFailure("quadratic distance query",
			"segment", q, "point", p)
		return distanceMax
	}

	extended := v2.Mul(tExt * tExt).Add(v1.Mul(2 * tExt)).Add(q.From)

	res := Distance{
		Real:     math32.Sqrt(best2),
		Extended: extended.Sub(p).Length(),
	}

	dir := q.derivativeAt(tReal)
	pc := p.Sub(closest)
	if !pc.IsZero() && !dir.IsZero() {
		ortho := dir.Normalize().Cross(pc.Normalize())
		res.Sign = signum(ortho)
		res.Orthogonality = math32.Abs(ortho)
	}
	return res
}

func (q Quad) start() Vector2    { return q.From }
func (q Quad) end() Vector2      { return q.To }
func (q Quad) shoelace() float32 { return q.From.Cross(q.To) }

func (q Quad) grow(bb *BBox) {
	bb.add(q.From)
	bb.add(q.Ctrl)
	bb.add(q.To)
}

func (q Quad) rayCrossings(p Vector2) int {
	// y component of B(t) as a polynomial in t
	a := q.From.Y - 2*q.Ctrl.Y + q.To.Y
	b := 2 * (q.Ctrl.Y - q.From.Y)
	c := q.From.Y - p.Y

	roots, n := quadraticRoots(a, b, c)

	count := 0
	for _, t := range roots[:n] {
		dy := 2*a*t + b
		count += countCrossing(t, dy, func() float32 { return q.pointAt(t).X }, p.X)
	}
	return count
}

// countCrossing applies the scanline crossing rule to a single root of
// y(t) = probeY.  A crossing counts only if the curve locally covers
// the half-open band [probeY, probeY+ε): an upward crossing needs
// curve ahead of t, a downward one needs curve behind t.  This makes
// joins between segments count once and grazing extrema not at all.
func countCrossing(t, dy float32, x func() float32, probeX float32) int {
	if math32.IsNaN(t) || t < 0 || t > 1 {
		return 0
	}
	var dir int
	switch {
	case dy > 0: // upward
		if t >= 1 {
			return 0
		}
		dir = -1
	case dy < 0: // downward
		if t <= 0 {
			return 0
		}
		dir = 1
	default: // grazing an extremum
		return 0
	}
	if x() <= probeX {
		return 0
	}
	return dir
}

// pointAt evaluates the curve at parameter t.
func (cu Cubic) pointAt(t float32) Vector2 {
	u := 1 - t
	a := cu.From.Mul(u * u * u)
	b := cu.Ctrl1.Mul(3 * u * u * t)
	c := cu.Ctrl2.Mul(3 * u * t * t)
	d := cu.To.Mul(t * t * t)
	return a.Add(b).Add(c).Add(d)
}

// derivativeAt returns the curve tangent B'(t).
func (cu Cubic) derivativeAt(t float32) Vector2 {
	u := 1 - t
	a := cu.Ctrl1.Sub(cu.From).Mul(3 * u * u)
	b := cu.Ctrl2.Sub(cu.Ctrl1).Mul(6 * u * t)
	c := cu.To.Sub(cu.Ctrl2).Mul(3 * t * t)
	return a.Add(b).Add(c)
}

// secondDerivativeAt returns B''(t).
func (cu Cubic) secondDerivativeAt(t float32) Vector2 {
	a := cu.Ctrl2.Sub(cu.Ctrl1.Mul(2)).Add(cu.From)
	b := cu.To.Sub(cu.Ctrl2.Mul(2)).Add(cu.Ctrl1)
	u := 1 - t
	return a.Mul(6 * u).Add(b.Mul(6 * t))
}

// Distance finds the closest point on the curve numerically.  The
// stationary points of the squared distance form a quintic with no
// usable closed form, so Newton iteration refines uniformly spaced
// seeds; the refined parameter is left unclamped so that the extended
// distance covers the curve beyond its endpoints.
func (cu Cubic) Distance(p Vector2) Distance {
	const seeds = 8

	var tExt, tReal float32
	var closest Vector2
	best2 := float32(math32.MaxFloat32)
	found := false

	for i := 0; i <= seeds; i++ {
		r := cu.refineClosest(p, float32(i)/seeds)
		if math32.IsNaN(r) {
			continue
		}
		t := clamp01(r)
		bez := cu.pointAt(t)
		dist2 := bez.Sub(p).LengthSquared()
		if dist2 < best2 {
			tExt = r
			tReal = t
			closest = bez
			best2 = dist2
			found = true
		}
	}

	if !found {
		numericFailure("cubic distance query",
			"segment", cu, "point", p)
		return distanceMax
	}

	res := Distance{
		Real:     math32.Sqrt(best2),
		Extended: cu.pointAt(tExt).Sub(p).Length(),
	}

	dir := cu.derivativeAt(tReal)
	pc := p.Sub(closest)
	if !pc.IsZero() && !dir.IsZero() {
		ortho := dir.Normalize().Cross(pc.Normalize())
		res.Sign = signum(ortho)
		res.Orthogonality = math32.Abs(ortho)
	}
	return res
}

// refineClosest runs Newton iteration on the stationarity condition
// (B(t)−p)·B'(t) = 0, starting from t0.  The iteration is free to
// leave [0, 1]; callers clamp as needed.
func (cu Cubic) refineClosest(p Vector2, t0 float32) float32 {
	const (
		maxIter = 8
		eps     = 1e-6
	)

	t := t0
	for range maxIter {
		diff := cu.pointAt(t).Sub(p)
		d1 := cu.derivativeAt(t)
		d2 := cu.secondDerivativeAt(t)

		f := diff.Dot(d1)
		fp := d1.Dot(d1) + diff.Dot(d2)
		if math32.Abs(fp) < eps {
			break
		}

		dt := -f / fp
		t += dt
		if math32.IsNaN(t) {
			return t0
		}
		if math32.Abs(dt) < eps {
			break
		}
	}
	return t
}

func (cu Cubic) start() Vector2    { return cu.From }
func (cu Cubic) end() Vector2      { return cu.To }
func (cu Cubic) shoelace() float32 { return cu.From.Cross(cu.To) }

func (cu Cubic) grow(bb *BBox) {
	bb.add(cu.From)
	bb.add(cu.Ctrl1)
	bb.add(cu.Ctrl2)
	bb.add(cu.To)
}

func (cu Cubic) rayCrossings(p Vector2) int {
	// y component of B(t) as a polynomial in t
	a := cu.To.Y - 3*cu.Ctrl2.Y + 3*cu.Ctrl1.Y - cu.From.Y
	b := 3 * (cu.Ctrl2.Y - 2*cu.Ctrl1.Y + cu.From.Y)
	c := 3 * (cu.Ctrl1.Y - cu.From.Y)
	d := cu.From.Y - p.Y

	roots, n := cubicRoots(a, b, c, d)

	count := 0
	for _, t := range roots[:n] {
		dy := 3*a*t*t + 2*b*t + c
		count += countCrossing(t, dy, func() float32 { return cu.pointAt(t).X }, p.X)
	}
	return count
}

// numericFailure records solver inputs that produced no usable result.
// The affected pixel falls back to the maximal distance instead of
// propagating a NaN into the bitmap.
func numericFailure(msg string, args ...any) {
	slog.Error("sdf: numeric failure in "+msg, args...)
}
