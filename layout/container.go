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

import (
	"iter"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// container is the common base of all boxes which contain other boxes.
type container struct {
	x, y    float64
	placed  bool
	margins Margins
	render  ContentRenderer
}

// anchor pins the container so that (x, y) is the top/left corner,
// including margins.
func (c *container) anchor(x, y float64) {
	c.x = x
	c.y = y
	c.placed = true
}

// IsPlaced reports whether the container has been placed.
func (c *container) IsPlaced() bool { return c.placed }

// FinalLocation returns the top/left corner assigned by Place.
// The method panics if the container has not been placed.
func (c *container) FinalLocation() vec.Vec2 {
	if !c.placed {
		panic("box is not placed")
	}
	return vec.Vec2{X: c.x, Y: c.y}
}

// contentLocation returns the top/left corner of the content area,
// inside the margins.
func (c *container) contentLocation() (x, y float64) {
	return c.x + c.margins.Left, c.y - c.margins.Top
}

func (c *container) totalWidth(contentWidth float64) float64 {
	return contentWidth + c.margins.Left + c.margins.Right
}

func (c *container) totalHeight(contentHeight float64) float64 {
	return contentHeight + c.margins.Top + c.margins.Bottom
}

// renderSequence builds the render sequence for a container.  The
// background is drawn first, covering the full area of the container
// including margins.  Then the content is placed again, so that
// containers which moved since the last Place call draw at the right
// position, and the children are rendered one by one.
func (c *container) renderSequence(m matrix.Matrix, totalWidth, totalHeight float64, placeContent func(), children iter.Seq[RenderBox]) iter.Seq2[DrawOp, error] {
	if !c.placed {
		panic("box is not placed")
	}
	done := false
	return func(yield func(DrawOp, error) bool) {
		if done {
			return
		}
		done = true
		if c.render != nil {
			op := DrawOp{
				Kind:     OpRender,
				Renderer: c.render,
				Bounds: rect.Rect{
					LLx: c.x,
					LLy: c.y - totalHeight,
					URx: c.x + totalWidth,
					URy: c.y,
				},
			}
			err := c.render.Render(op.Bounds, m)
			if !yield(op, err) || err != nil {
				return
			}
		}
		placeContent()
		for child := range children {
			for op, err := range child.Render(m) {
				if !yield(op, err) || err != nil {
					return
				}
			}
		}
	}
}
