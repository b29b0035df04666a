// seehuhn.de/go/dxf - a library for creating DXF drawings
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

package layout

import "fmt"

// Margins describes empty space around the content of a container.
// All values are non-negative drawing units.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// ResolveMargins expands a shorthand margin list into a [Margins] value,
// following the CSS convention:
//
//	nil or empty: all margins are zero
//	one value:    used for all four sides
//	two values:   top/bottom, right/left
//	three values: top, right/left, bottom
//	four values:  top, right, bottom, left
//
// More than four values is an error.
func ResolveMargins(margins []float64) (Margins, error) {
	switch len(margins) {
	case 0:
		return Margins{}, nil
	case 1:
		m := margins[0]
		return Margins{Top: m, Right: m, Bottom: m, Left: m}, nil
	case 2:
		return Margins{
			Top:    margins[0],
			Right:  margins[1],
			Bottom: margins[0],
			Left:   margins[1],
		}, nil
	case 3:
		return Margins{
			Top:    margins[0],
			Right:  margins[1],
			Bottom: margins[2],
			Left:   margins[1],
		}, nil
	case 4:
		return Margins{
			Top:    margins[0],
			Right:  margins[1],
			Bottom: margins[2],
			Left:   margins[3],
		}, nil
	default:
		return Margins{}, fmt.Errorf("too many margin values (%d)", len(margins))
	}
}
