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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineDistance(t *testing.T) {
	l := Line{From: Vector2{0, 0}, To: Vector2{10, 0}}

	// perpendicular probe above the line: the filled side of a
	// left-to-right segment is below it, so the sign is negative
	d := l.Distance(Vector2{5, 3})
	assert.InDelta(t, 3, d.Real, 1e-6)
	assert.InDelta(t, 3, d.Extended, 1e-6)
	assert.Equal(t, float32(-1), d.Sign)
	assert.InDelta(t, 1, d.Orthogonality, 1e-6)

	// probe below the line
	d = l.Distance(Vector2{5, -2})
	assert.InDelta(t, 2, d.Real, 1e-6)
	assert.Equal(t, float32(1), d.Sign)

	// probe beyond the endpoint: the real distance clamps to the
	// endpoint, the extended distance uses the infinite line
	d = l.Distance(Vector2{12, 0})
	assert.InDelta(t, 2, d.Real, 1e-6)
	assert.InDelta(t, 0, d.Extended, 1e-6)
	assert.Equal(t, float32(0), d.Sign)
	assert.Equal(t, float32(0), d.Orthogonality)

	// diagonal probe past the endpoint: orthogonality is partial
	d = l.Distance(Vector2{12, 2})
	assert.InDelta(t, 2.8284271, d.Real, 1e-4)
	assert.InDelta(t, 2, d.Extended, 1e-4)
	assert.Greater(t, d.Orthogonality, float32(0))
	assert.Less(t, d.Orthogonality, float32(1))
}

func TestLineDistanceDegenerate(t *testing.T) {
	l := Line{From: Vector2{3, 3}, To: Vector2{3, 3}}
	d := l.Distance(Vector2{7, 3})
	assert.InDelta(t, 4, d.Real, 1e-6)
	assert.InDelta(t, 4, d.Extended, 1e-6)
	assert.Equal(t, float32(0), d.Sign)
	assert.Equal(t, float32(0), d.Orthogonality)
}

func TestQuadDistance(t *testing.T) {
	q := Quad{From: Vector2{0, 0}, Ctrl: Vector2{1, 2}, To: Vector2{2, 0}}

	// (1, 1) is on the curve at t = 0.5
	d := q.Distance(Vector2{1, 1})
	assert.Less(t, d.Real, float32(1e-3))

	// above the arch: outside the filled (clockwise) side
	d = q.Distance(Vector2{1, 1.2})
	assert.InDelta(t, 0.2, d.Real, 1e-2)
	assert.Equal(t, float32(-1), d.Sign)

	// below the arch: inside
	d = q.Distance(Vector2{1, 0.5})
	assert.Equal(t, float32(1), d.Sign)

	// far probe: distance to the nearest endpoint
	d = q.Distance(Vector2{5, 0})
	assert.InDelta(t, 3, d.Real, 1e-3)
	assert.LessOrEqual(t, d.Extended, d.Real+1e-3)
}

func TestQuadDistanceDegenerate(t *testing.T) {
	q := Quad{From: Vector2{3, 3}, Ctrl: Vector2{3, 3}, To: Vector2{3, 3}}
	d := q.Distance(Vector2{3, 8})
	assert.InDelta(t, 5, d.Real, 1e-6)
	assert.Equal(t, float32(0), d.Sign)
}

func TestCubicDistanceLinear(t *testing.T) {
	// control points spaced evenly on the x axis give B(t) = (3t, 0)
	cu := Cubic{
		From:  Vector2{0, 0},
		Ctrl1: Vector2{1, 0},
		Ctrl2: Vector2{2, 0},
		To:    Vector2{3, 0},
	}

	d := cu.Distance(Vector2{1.5, 2})
	assert.InDelta(t, 2, d.Real, 1e-4)
	assert.Equal(t, float32(-1), d.Sign)
	assert.InDelta(t, 1, d.Orthogonality, 1e-4)

	// beyond the start point: extended distance follows the curve
	// outside [0, 1]
	d = cu.Distance(Vector2{-1, 0})
	assert.InDelta(t, 1, d.Real, 1e-4)
	assert.Less(t, d.Extended, float32(1e-3))
}

func TestCubicDistanceDegenerate(t *testing.T) {
	p := Vector2{4, 4}
	cu := Cubic{From: p, Ctrl1: p, Ctrl2: p, To: p}
	d := cu.Distance(Vector2{4, 1})
	assert.InDelta(t, 3, d.Real, 1e-5)
	assert.Equal(t, float32(0), d.Sign)
}

// TestOnCurveZero samples points on each segment type and checks that
// the measured distance is (numerically) zero.
func TestOnCurveZero(t *testing.T) {
	l := Line{From: Vector2{2, 3}, To: Vector2{29, 17}}
	q := Quad{From: Vector2{3, 4}, Ctrl: Vector2{18, 30}, To: Vector2{31, 6}}
	cu := Cubic{
		From:  Vector2{2, 2},
		Ctrl1: Vector2{10, 28},
		Ctrl2: Vector2{24, 28},
		To:    Vector2{30, 4},
	}

	const steps = 16
	for i := 0; i <= steps; i++ {
		s := float32(i) / steps

		onLine := l.From.Add(l.To.Sub(l.From).Mul(s))
		assert.Less(t, l.Distance(onLine).Real, float32(1e-4), "line t=%g", s)

		assert.Less(t, q.Distance(q.pointAt(s)).Real, float32(0.02), "quad t=%g", s)
		assert.Less(t, cu.Distance(cu.pointAt(s)).Real, float32(0.02), "cubic t=%g", s)
	}
}

// TestExtendedVsReal checks that the extended distance never exceeds
// the real distance: the unconstrained optimum cannot be worse.
func TestExtendedVsReal(t *testing.T) {
	probes := []Vector2{
		{-3, 0}, {35, 2}, {16, 40}, {16, -12}, {0, 16}, {14, 15},
	}
	segments := []Segment{
		Line{From: Vector2{2, 3}, To: Vector2{29, 17}},
		Quad{From: Vector2{3, 4}, Ctrl: Vector2{18, 30}, To: Vector2{31, 6}},
		Cubic{
			From:  Vector2{2, 2},
			Ctrl1: Vector2{10, 28},
			Ctrl2: Vector2{24, 28},
			To:    Vector2{30, 4},
		},
	}

	for _, seg := range segments {
		for _, p := range probes {
			d := seg.Distance(p)
			assert.GreaterOrEqual(t, d.Real, float32(0))
			assert.LessOrEqual(t, d.Extended, d.Real+1e-3,
				"segment %v probe %v", seg, p)
			assert.GreaterOrEqual(t, d.Orthogonality, float32(0))
			assert.LessOrEqual(t, d.Orthogonality, float32(1)+1e-5)
		}
	}
}

func TestDistanceOrdering(t *testing.T) {
	const tol = 0.01

	// clear difference: smaller real distance wins
	near := Distance{Real: 1.0, Orthogonality: 0.1}
	far := Distance{Real: 1.5, Orthogonality: 0.9}
	assert.True(t, near.closerThan(far, tol))
	assert.False(t, far.closerThan(near, tol))

	// near-tie at a corner: higher orthogonality wins
	flat := Distance{Real: 1.0, Orthogonality: 0.2}
	steep := Distance{Real: 1.005, Orthogonality: 0.9}
	assert.True(t, steep.closerThan(flat, tol))
	assert.False(t, flat.closerThan(steep, tol))

	// everything beats the reduction identity
	require.True(t, near.closerThan(distanceMax, tol))
}

func TestRayCrossings(t *testing.T) {
	// clockwise square contour around (0,0)..(10,10)
	square := []Segment{
		Line{From: Vector2{0, 0}, To: Vector2{0, 10}},
		Line{From: Vector2{0, 10}, To: Vector2{10, 10}},
		Line{From: Vector2{10, 10}, To: Vector2{10, 0}},
		Line{From: Vector2{10, 0}, To: Vector2{0, 0}},
	}
	c := &Contour{Segments: square, Winding: Winding(true)}

	assert.Equal(t, 1, c.rayCrossings(Vector2{5, 5.5}), "inside")
	assert.Equal(t, 0, c.rayCrossings(Vector2{-3, 5.5}), "left: crossings cancel")
	assert.Equal(t, 0, c.rayCrossings(Vector2{11, 5.5}), "right")
	assert.Equal(t, 0, c.rayCrossings(Vector2{5, 11.5}), "above")

	// a ray through the bottom-right corner join must count the
	// descending right edge exactly once; the horizontal bottom edge
	// contributes nothing
	assert.Equal(t, 1, c.rayCrossings(Vector2{5, 0}))
}
