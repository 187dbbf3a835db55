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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bézier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:    "quad_diamond",
		Path:    quadDiamond(16, 16, 12, 8),
		Range:   4,
		Inside:  []vec.Vec2{pt(16, 16), pt(22, 16)},
		Outside: []vec.Vec2{pt(5, 5), pt(27, 27)},
	},
	{
		Name:    "circle",
		Path:    circle(16, 16, 12),
		Range:   4,
		Inside:  []vec.Vec2{pt(16, 16), pt(16, 25)},
		Outside: []vec.Vec2{pt(5, 5), pt(27, 27)},
	},
}

// quadDiamond builds a clockwise diamond whose sides bulge outwards as
// quadratic Béziers.  r is the vertex radius; the control points lie
// on the diagonals, offset from the centre by bulge in both x and y.
func quadDiamond(cx, cy, r, bulge float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy+r)).
		QuadTo(pt(cx+bulge, cy+bulge), pt(cx+r, cy)).
		QuadTo(pt(cx+bulge, cy-bulge), pt(cx, cy-r)).
		QuadTo(pt(cx-bulge, cy-bulge), pt(cx-r, cy)).
		QuadTo(pt(cx-bulge, cy+bulge), pt(cx, cy+r)).
		Close()
}

// circle approximates a clockwise circle with four cubic Béziers.
func circle(cx, cy, r float64) *path.Data {
	k := kappa * r
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close()
}
