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

// Vector2 is a point or direction in shape space.  The coordinate
// system follows font conventions: x grows to the right, y grows
// upwards.
type Vector2 struct {
	X, Y float32
}

// Add returns the component-wise sum v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{v.X + w.X, v.Y + w.Y}
}

// Sub returns the component-wise difference v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{v.X - w.X, v.Y - w.Y}
}

// Mul returns v scaled by s.
func (v Vector2) Mul(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Neg returns the vector pointing in the opposite direction.
func (v Vector2) Neg() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the planar cross product of v and w, taken
// clockwise-positive: the result is positive when w lies clockwise
// from v in the y-up font convention.  With this orientation the
// shoelace sum of a clockwise contour is positive, and the cross of a
// contour tangent with the vector to a probe point is positive exactly
// when the probe lies on the filled side of a TrueType outline.
func (v Vector2) Cross(w Vector2) float32 {
	return v.Y*w.X - v.X*w.Y
}

// Length returns the Euclidean magnitude of v.
func (v Vector2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude of v.  This avoids the
// square root where only comparisons are needed.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{v.X / l, v.Y / l}
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// signum returns -1, 0 or +1 according to the sign of x.
func signum(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// clamp01 restricts t to the parameter interval [0, 1].
func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
