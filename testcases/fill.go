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

var fillCases = []TestCase{
	{
		Name:    "square",
		Path:    rectangle(4, 4, 28, 28),
		Range:   4,
		Inside:  []vec.Vec2{pt(16, 16), pt(6, 6), pt(26, 26)},
		Outside: []vec.Vec2{pt(2, 2), pt(30.5, 16)},
	},
	{
		Name:    "diamond",
		Path:    diamond(16, 16, 12),
		Range:   4,
		Inside:  []vec.Vec2{pt(16, 16), pt(16, 24)},
		Outside: []vec.Vec2{pt(6, 26), pt(26, 6)},
	},
	{
		Name:    "triangle",
		Path:    triangle(4, 4, 16, 26, 28, 4),
		Range:   4,
		Inside:  []vec.Vec2{pt(16, 10), pt(16, 20)},
		Outside: []vec.Vec2{pt(4, 22), pt(28, 22)},
	},
}

// rectangle builds an axis-aligned rectangle wound clockwise (y up).
// (x1, y1) is the bottom-left corner, (x2, y2) the top-right.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x1, y2)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x2, y1)).
		Close()
}

// diamond builds a clockwise diamond centred on (cx, cy).
func diamond(cx, cy, r float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy+r)).
		LineTo(pt(cx+r, cy)).
		LineTo(pt(cx, cy-r)).
		LineTo(pt(cx-r, cy)).
		Close()
}

// triangle builds a clockwise triangle from a bottom-left corner, an
// apex and a bottom-right corner.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}
