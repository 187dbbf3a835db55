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

// Distance describes the relation between a probe point and a single
// segment.
type Distance struct {
	// Real is the shortest Euclidean distance from the probe to the
	// segment restricted to the parameter interval [0, 1].
	Real float32

	// Extended is the distance evaluated at the unrestricted optimal
	// parameter, treating the segment as an infinite parametric curve.
	// It equals Real while the optimum falls inside [0, 1].
	Extended float32

	// Orthogonality is the magnitude of the sine of the angle between
	// the segment tangent at the closest point and the vector from the
	// closest point to the probe.  It is 1 for a perpendicular hit and
	// 0 when either vector degenerates.
	Orthogonality float32

	// Sign is +1 when the probe lies on the filled side of the
	// segment, -1 on the other side, and 0 when the side is undefined
	// (probe on the curve, or degenerate tangent).
	Sign float32
}

// distanceMax is the identity element for distance reduction.  It
// loses against every measured distance.
var distanceMax = Distance{
	Real:     math32.MaxFloat32,
	Extended: math32.MaxFloat32,
	Sign:     math32.NaN(),
}

// RealSigned returns the true signed distance, using the clamped
// closest point.
func (d Distance) RealSigned() float32 {
	return d.Sign * d.Real
}

// PseudoSigned returns the signed pseudo-distance, using the segment
// extended beyond its endpoints.  Pseudo-distances avoid the creases
// that true distance fields show where segments join at an angle.
func (d Distance) PseudoSigned() float32 {
	return d.Sign * d.Extended
}

// closerThan reports whether d is a better candidate than e.  Real
// distances within tol of each other count as a tie; ties happen where
// two segments meet at a corner and are broken in favour of the more
// perpendicular hit, which carries the correct side information for
// the corner.
func (d Distance) closerThan(e Distance, tol float32) bool {
	if math32.Abs(d.Real-e.Real) < tol {
		return d.Orthogonality > e.Orthogonality
	}
	return d.Real < e.Real
}
