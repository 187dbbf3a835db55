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

import "errors"

var (
	// ErrInvalidFont indicates that font data could not be parsed or
	// that a requested glyph is not present in the font.
	ErrInvalidFont = errors.New("invalid font")

	// ErrUnsupportedSegment indicates that the font provider produced
	// a path operator this package does not understand.
	ErrUnsupportedSegment = errors.New("unsupported segment type")

	// ErrEmptyOutline indicates a glyph with no contours, for example
	// a space character.  Such glyphs have no signed distance answer.
	ErrEmptyOutline = errors.New("empty outline")
)
