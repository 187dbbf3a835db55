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

// Package sdf generates signed distance field bitmaps from vector
// glyph outlines.  Each pixel of the output encodes the Euclidean
// distance from the pixel centre to the nearest point on the outline,
// signed by whether the pixel lies inside the filled glyph, clamped to
// a saturation radius and mapped to an 8-bit gray value.  A single
// low-resolution distance field is enough to render crisp glyph edges
// at arbitrary magnification on a GPU.
package sdf
