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
	"seehuhn.de/go/geom/vec"
)

var holeCases = []TestCase{
	{
		Name: "square_hole",
		Path: rectangle(4, 4, 28, 28).
			MoveTo(pt(12, 12)).
			LineTo(pt(20, 12)).
			LineTo(pt(20, 20)).
			LineTo(pt(12, 20)).
			Close(),
		Range:   4,
		Inside:  []vec.Vec2{pt(8, 16), pt(16, 9), pt(24, 16)},
		Outside: []vec.Vec2{pt(16, 16), pt(2, 2)},
	},
	{
		Name: "triangle_hole",
		Path: triangle(4, 4, 16, 28, 28, 4).
			MoveTo(pt(10, 8)).
			LineTo(pt(22, 8)).
			LineTo(pt(16, 16)).
			Close(),
		Range:   4,
		Inside:  []vec.Vec2{pt(16, 6)},
		Outside: []vec.Vec2{pt(16, 10), pt(2, 14)},
	},
}
