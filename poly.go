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

import "github.com/chewxy/math32"

// quadraticRoots finds the real roots of a·t² + b·t + c = 0.
// Up to two roots are stored in roots[:n].  The linear and constant
// degenerations are handled: a zero leading coefficient falls back to
// the linear solution, and a constant equation has no roots.
func quadraticRoots(a, b, c float32) (roots [2]float32, n int) {
	if a == 0 {
		if b == 0 {
			return roots, 0
		}
		roots[0] = -c / b
		return roots, 1
	}

	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return roots, 0
	case disc > 0:
		s := math32.Sqrt(disc)
		a2 := 1 / (2 * a)
		roots[0] = -(b + s) * a2
		roots[1] = (s - b) * a2
		return roots, 2
	}
	// repeated root at the parabola's extremum
	roots[0] = -0.5 * b / a
	return roots, 1
}

// cubicRoots finds the real roots of a·t³ + b·t² + c·t + d = 0 and
// stores them in roots[:n].  A zero leading coefficient delegates to
// quadraticRoots.
//
// The closed forms follow the trigonometric method described at
// https://mathworld.wolfram.com/CubicFormula.html, normalised so that
// q = (b² − 3c)/9 and r = (2b³ + 27d − 9cb)/54.  With this convention
// r² > q³ signals a single real root; otherwise q is non-negative and
// the three-cosine branch applies, except for a triple root (q = 0),
// which is reported once.
func cubicRoots(a, b, c, d float32) (roots [3]float32, n int) {
	if a == 0 {
		r2, n2 := quadraticRoots(b, c, d)
		copy(roots[:], r2[:n2])
		return roots, n2
	}

	bn, cn, dn := b/a, c/a, d/a
	if math32.IsInf(bn, 0) || math32.IsInf(cn, 0) || math32.IsInf(dn, 0) {
		// the leading coefficient is too small to matter
		r2, n2 := quadraticRoots(b, c, d)
		copy(roots[:], r2[:n2])
		return roots, n2
	}
	b, c, d = bn, cn, dn

	q := (b*b - 3*c) / 9
	r := (2*b*b*b + 27*d - 9*c*b) / 54
	qqq := q * q * q
	rr := r * r
	b3 := b / 3

	if rr > qqq {
		// one real root
		s := -math32.Cbrt(math32.Abs(r) + math32.Sqrt(rr-qqq))
		if r < 0 {
			s = -s
		}
		x := s - b3
		if s != 0 {
			x += q / s
		}
		roots[0] = x
		return roots, 1
	}

	// three real roots; rr ≤ qqq forces q ≥ 0 here
	if q == 0 {
		// q = r = 0: a triple root, where the cosine form would divide
		// zero by zero
		roots[0] = -b3
		return roots, 1
	}
	qSqrt := math32.Sqrt(q)
	theta := math32.Acos(r / (qSqrt * qSqrt * qSqrt))
	m := -2 * qSqrt
	roots[0] = m*math32.Cos(theta/3) - b3
	roots[1] = m*math32.Cos((theta+2*math32.Pi)/3) - b3
	roots[2] = m*math32.Cos((theta-2*math32.Pi)/3) - b3
	return roots, 3
}

// LineLineIntersection returns the intersection point of two line
// segments.  Parallel segments, coincident segments and collinear
// segments that merely touch report no intersection.
//
// The procedure follows
// https://web.archive.org/web/20121001232059/http://paulbourke.net/geometry/lineline2d/
func LineLineIntersection(l1, l2 Line) (Vector2, bool) {
	p0 := l1.From
	p1 := l1.To
	p2 := l2.From
	p3 := l2.To

	x02 := p0.X - p2.X
	y02 := p0.Y - p2.Y
	x10 := p1.X - p0.X
	y10 := p1.Y - p0.Y
	x32 := p3.X - p2.X
	y32 := p3.Y - p2.Y

	num1 := x32*y02 - y32*x02
	num2 := x10*y02 - y10*x02
	den := y32*x10 - x32*y10

	if den != 0 {
		t1 := num1 / den
		t2 := num2 / den
		if t1 >= 0 && t1 <= 1 && t2 >= 0 && t2 <= 1 {
			return p0.Add(p1.Sub(p0).Mul(t1)), true
		}
	}

	return Vector2{}, false
}

// QuadLineIntersection returns the points where a quadratic Bézier
// crosses a line segment, up to two.  Each returned point lies on both
// the curve (for a parameter in [0,1]) and the segment.
func QuadLineIntersection(q Quad, l Line) []Vector2 {
	d := l.To.Sub(l.From)

	// Substituting the Bézier polynomial into the line equation gives a
	// quadratic in the curve parameter.
	a := q.From.Add(q.To).Sub(q.Ctrl.Mul(2)).Cross(d)
	b := 2 * q.Ctrl.Sub(q.From).Cross(d)
	c := q.From.Sub(l.From).Cross(d)

	roots, n := quadraticRoots(a, b, c)

	var pts []Vector2
	for _, t := range roots[:n] {
		if t < 0 || t > 1 {
			continue
		}
		p := q.pointAt(t)

		// Recover the line parameter along the dominant axis; the minor
		// axis would lose precision (or divide by zero) for axis-aligned
		// segments.
		var s float32
		if math32.Abs(d.X) >= math32.Abs(d.Y) {
			s = (p.X - l.From.X) / d.X
		} else {
			s = (p.Y - l.From.Y) / d.Y
		}
		if s >= 0 && s <= 1 {
			pts = append(pts, l.From.Add(d.Mul(s)))
		}
	}
	return pts
}
