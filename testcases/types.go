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

// Package testcases holds shared outline fixtures for the distance
// field generators.  Geometry is expressed as seehuhn.de/go/geom
// paths in shape-space units, y growing upwards, with additive
// contours wound clockwise (the TrueType convention).
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single outline fixture.
type TestCase struct {
	Name string // lowercase a-z and _ only

	// Path is the outline geometry, already in shape-space units.
	Path *path.Data

	// Range is the saturation radius in pixels.
	Range int

	// Inside lists probe points strictly inside the filled area.
	Inside []vec.Vec2

	// Outside lists probe points strictly outside the filled area,
	// within the bitmap.
	Outside []vec.Vec2
}

// pt is shorthand for a path coordinate.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
